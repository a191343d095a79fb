// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build fuzz
// +build fuzz

package swap

import (
	"bytes"
	"io"
	"testing"
)

// FuzzRoundTrip checks that writing through the outbound filter and
// reading back through the inbound filter restores the original bytes
// for any input and any write chunking.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""), 1)
	f.Add([]byte("3"), 1)
	f.Add([]byte("012345678"), 2)
	f.Add(bytes.Repeat([]byte{0xA5, 0x5A}, 300), 7)

	f.Fuzz(func(t *testing.T, data []byte, size int) {
		if size < 1 {
			size = 1
		}
		var buf bytes.Buffer
		w := NewWriter(&buf)
		for beg := 0; beg < len(data); beg += size {
			end := min(beg+size, len(data))
			if _, err := w.Write(data[beg:end]); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		got, err := io.ReadAll(NewReader(&buf))
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if !bytes.Equal(data, got) {
			t.Errorf("round trip mismatch for %d bytes, chunk size %d", len(data), size)
		}
	})
}
