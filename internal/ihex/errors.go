// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import "fmt"

// SyntaxError reports a line that does not match the record grammar,
// a ':' followed by at least one hex digit.
type SyntaxError struct {
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: syntax error", e.Line)
}

// OddDigitError reports a record with an odd number of hex digits.
type OddDigitError struct {
	Line int
}

func (e *OddDigitError) Error() string {
	return fmt.Sprintf("line %d: odd number of hex digits", e.Line)
}

// UnknownTypeError reports a record type id outside the six known
// kinds.
type UnknownTypeError struct {
	Line int
	ID   byte
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("line %d: unknown record type %d", e.Line, e.ID)
}

// TruncatedError reports a record with fewer bytes than its header and
// length field require.
type TruncatedError struct {
	Line int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("line %d: truncated record", e.Line)
}

// TrailingDataError reports a record with more bytes than its length
// field allows. Expected and Actual count the hex encoded bytes.
type TrailingDataError struct {
	Line     int
	Expected int
	Actual   int
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("line %d: extra characters, expected %d bytes but got %d",
		e.Line, e.Expected, e.Actual)
}

// ChecksumMismatchError reports a record whose checksum disagrees with
// the one computed over its fields. Expected is the computed value,
// Actual the one parsed from the line.
type ChecksumMismatchError struct {
	Line     int
	Expected byte
	Actual   byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("line %d: checksum mismatch: got 0x%02X, expected 0x%02X",
		e.Line, e.Actual, e.Expected)
}
