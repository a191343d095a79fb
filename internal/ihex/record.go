// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ihex reads and writes the Intel HEX format used to program
// embedded flash memory.
package ihex

import (
	"fmt"
	"io"
)

// RecordType identifies the kind of an Intel HEX record.
type RecordType byte

const (
	Data RecordType = iota
	EndOfFile
	ExtendedSegmentAddress
	StartSegmentAddress
	ExtendedLinearAddress
	StartLinearAddress
)

var typeNames = [...]string{
	Data:                   "Data",
	EndOfFile:              "EndOfFile",
	ExtendedSegmentAddress: "ExtendedSegmentAddress",
	StartSegmentAddress:    "StartSegmentAddress",
	ExtendedLinearAddress:  "ExtendedLinearAddress",
	StartLinearAddress:     "StartLinearAddress",
}

func (t RecordType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("RecordType(%d)", byte(t))
}

// Record is one record (line) of an Intel HEX file. The textual length
// and checksum fields are not stored: the length is len(Data) and the
// checksum is recomputed on demand.
type Record struct {
	Type   RecordType
	Offset uint16 // load offset, meaning depends on Type
	Data   []byte // payload, at most 255 bytes
}

func (r *Record) String() string {
	return fmt.Sprintf("%s, len=%d, loadOffset=0x%04x", r.Type, len(r.Data), r.Offset)
}

// RawData returns the payload for Data records and nil for all other
// record types.
func (r *Record) RawData() []byte {
	if r.Type == Data {
		return r.Data
	}
	return nil
}

// Checksum computes the record checksum: the two's complement of the
// low byte of the sum of the length, load offset, type id and payload
// bytes.
func (r *Record) Checksum() byte {
	sum := byte(r.Type) + byte(len(r.Data)) + byte(r.Offset>>8) + byte(r.Offset)
	for _, b := range r.Data {
		sum += b
	}
	return ^sum + 1
}

const hexDigits = "0123456789ABCDEF"

func appendByte(buf []byte, b byte) []byte {
	return append(buf, hexDigits[b>>4], hexDigits[b&0x0f])
}

// WriteTo writes the textual form of the record, terminated by CRLF,
// to w. The length and checksum fields are always computed from the
// other fields, never supplied by the caller.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	if len(r.Data) > 255 {
		return 0, fmt.Errorf("record payload too long: %d bytes", len(r.Data))
	}
	buf := make([]byte, 0, 13+2*len(r.Data))
	buf = append(buf, ':')
	buf = appendByte(buf, byte(len(r.Data)))
	buf = appendByte(buf, byte(r.Offset>>8))
	buf = appendByte(buf, byte(r.Offset))
	buf = appendByte(buf, byte(r.Type))
	for _, b := range r.Data {
		buf = appendByte(buf, b)
	}
	buf = appendByte(buf, r.Checksum())
	buf = append(buf, '\r', '\n')
	n, err := w.Write(buf)
	return int64(n), err
}
