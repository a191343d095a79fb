// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutFile(t *testing.T) {
	testCases := []struct {
		in, suffix, want string
	}{
		{"firmware.hex", ".raw", "firmware.raw"},
		{"firmware.bin", ".hex", "firmware.hex"},
		{"firmware", ".raw", "firmware.raw"},
		{"a.b.hex", ".raw", "a.b.raw"},
		{"dir.d/firmware", ".hex", "dir.d/firmware.hex"},
		{"dir/firmware.raw", ".hex", "dir/firmware.hex"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, OutFile(tc.in, tc.suffix), "OutFile(%q, %q)", tc.in, tc.suffix)
	}
}

func TestParseAddress(t *testing.T) {
	testCases := []struct {
		in   string
		want uint16
	}{
		{"0", 0},
		{"4096", 4096},
		{"65535", 65535},
		{"0x1000", 0x1000},
		{"0xffff", 0xFFFF},
		{"$1F00", 0x1F00},
		{"$2", 2},
	}
	for _, tc := range testCases {
		got, err := ParseAddress(tc.in)
		require.NoError(t, err, "ParseAddress(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseAddress(%q)", tc.in)
	}
}

func TestParseAddressErrors(t *testing.T) {
	for _, in := range []string{"", "$", "0x", "zz", "-1", "65536", "0x10000", "0X10", "16h"} {
		_, err := ParseAddress(in)
		assert.Error(t, err, "ParseAddress(%q)", in)
	}
}
