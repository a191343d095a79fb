// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func Warn(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
}

func Fatal(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// OutFile derives the name of the output file from the name of the
// input file, replacing its extension with suffix. If in has no
// extension the suffix is appended.
func OutFile(in, suffix string) string {
	if ext := filepath.Ext(in); ext != "" {
		return strings.TrimSuffix(in, ext) + suffix
	}
	return in + suffix
}

// ParseAddress parses a 16-bit segment starting address given as a
// decimal number or as a hexadecimal number prefixed with 0x or $.
func ParseAddress(s string) (uint16, error) {
	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "0x"):
		base, digits = 16, s[2:]
	case strings.HasPrefix(s, "$"):
		base, digits = 16, s[1:]
	}
	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return uint16(v), nil
}
