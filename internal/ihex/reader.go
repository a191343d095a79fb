// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"bufio"
	"io"
)

// Reader reads an Intel HEX stream record by record. It accepts LF and
// CRLF line endings and stops at the end of the stream or at the first
// malformed record, whichever comes first. An EndOfFile record is not
// required to terminate the stream.
type Reader struct {
	s    *bufio.Scanner
	line int
	rec  *Record
	err  error
}

// NewReader returns a Reader decoding records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Scan advances to the next record, which is then available through
// the Record method. It returns false when the stream is exhausted or
// a record fails to decode; the Err method tells the two cases apart.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.s.Scan() {
		r.err = r.s.Err()
		return false
	}
	r.line++
	r.rec, r.err = ParseRecord(r.s.Text(), r.line)
	return r.err == nil
}

// Record returns the record read by the last successful call to Scan.
func (r *Reader) Record() *Record {
	return r.rec
}

// Err returns the first error encountered by the Reader, or nil if the
// stream was exhausted without one.
func (r *Reader) Err() error {
	return r.err
}
