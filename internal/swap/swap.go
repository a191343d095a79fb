// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swap provides streaming filters that swap adjacent byte
// pairs. Some bootloaders store their EEPROM images in this order.
// The result is independent of how the stream is chunked across
// calls: an unpaired byte in the middle of the stream is held until
// its partner arrives, an unpaired byte at the very end passes
// through unchanged.
package swap

import (
	"io"

	"golang.org/x/text/transform"
)

type pairSwap struct {
	transform.NopResetter
}

func (pairSwap) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc+1 < len(src) {
		if nDst+1 >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst], dst[nDst+1] = src[nSrc+1], src[nSrc]
		nDst += 2
		nSrc += 2
	}
	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = src[nSrc]
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

// NewReader returns a reader that yields the bytes of r with every
// adjacent pair swapped.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, pairSwap{})
}

// NewWriter returns a writer that swaps every adjacent byte pair of
// the written data before passing it on to w. Closing the returned
// writer flushes a pending unpaired byte; it does not close w.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, pairSwap{})
}
