// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"encoding/hex"
	"regexp"
)

var linePattern = regexp.MustCompile(`^:[0-9a-fA-F]+$`)

// ParseRecord parses one line of an Intel HEX file, without the line
// terminator. Hex digits may be upper or lower case. The 1-based line
// number is recorded in any returned error.
func ParseRecord(line string, lineNo int) (*Record, error) {
	if !linePattern.MatchString(line) {
		return nil, &SyntaxError{Line: lineNo}
	}
	digits := line[1:]
	if len(digits)&1 != 0 {
		return nil, &OddDigitError{Line: lineNo}
	}
	// Cannot fail, the pattern and parity checks above guarantee an
	// even number of hex digits.
	b, _ := hex.DecodeString(digits)
	if len(b) < 4 {
		return nil, &TruncatedError{Line: lineNo}
	}
	rec := &Record{
		Type:   RecordType(b[3]),
		Offset: uint16(b[1])<<8 | uint16(b[2]),
	}
	if rec.Type > StartLinearAddress {
		return nil, &UnknownTypeError{Line: lineNo, ID: b[3]}
	}
	want := 4 + int(b[0]) + 1
	if len(b) < want {
		return nil, &TruncatedError{Line: lineNo}
	}
	if len(b) > want {
		return nil, &TrailingDataError{Line: lineNo, Expected: want, Actual: len(b)}
	}
	rec.Data = b[4 : want-1]
	if sum := rec.Checksum(); b[want-1] != sum {
		return nil, &ChecksumMismatchError{Line: lineNo, Expected: sum, Actual: b[want-1]}
	}
	return rec, nil
}
