// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import "io"

// Data records carry at most this many payload bytes.
const bytesPerRecord = 16

// RawToHex encodes data as Intel HEX text and writes it to w. The
// output starts with an ExtendedSegmentAddress record holding addr
// big-endian, followed by the data split into records of at most 16
// bytes, and ends with an EndOfFile record. The load offset of every
// data record is the offset of its payload within data, truncated to
// 16 bits; files are expected to be smaller than 64 KiB.
func RawToHex(w io.Writer, data []byte, addr uint16) error {
	rec := &Record{
		Type: ExtendedSegmentAddress,
		Data: []byte{byte(addr >> 8), byte(addr)},
	}
	if _, err := rec.WriteTo(w); err != nil {
		return err
	}
	for ptr := 0; ptr < len(data); ptr += bytesPerRecord {
		end := ptr + bytesPerRecord
		if end > len(data) {
			end = len(data)
		}
		rec.Type = Data
		rec.Offset = uint16(ptr)
		rec.Data = data[ptr:end]
		if _, err := rec.WriteTo(w); err != nil {
			return err
		}
	}
	rec.Type = EndOfFile
	rec.Offset = 0
	rec.Data = nil
	_, err := rec.WriteTo(w)
	return err
}

// HexToRaw decodes Intel HEX text from r and writes the concatenated
// payloads of its Data records to w, in stream order. Records of other
// types contribute nothing. It returns the number of raw bytes written
// and the first decoding or write error.
func HexToRaw(w io.Writer, r io.Reader) (int, error) {
	rd := NewReader(r)
	n := 0
	for rd.Scan() {
		raw := rd.Record().RawData()
		if len(raw) == 0 {
			continue
		}
		m, err := w.Write(raw)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, rd.Err()
}
