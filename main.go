// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hexraw converts files between the Intel HEX format and their raw
// binary form.
//
// Usage:
//
//	hexraw [OPTIONS] INPUT [OUTPUT]
//
// By default hexraw reads INPUT as Intel HEX text and writes its raw
// binary content to OUTPUT. With the -r option it reads INPUT as raw
// binary and writes Intel HEX text instead. If OUTPUT is not given its
// name is derived from INPUT by replacing the extension with .raw or
// .hex.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/embeddedgo/hexraw/internal/ihex"
	"github.com/embeddedgo/hexraw/internal/swap"
	"github.com/embeddedgo/hexraw/internal/util"
)

var (
	debug   bool
	verbose bool
)

func debugf(f string, args ...any) {
	if debug {
		util.Warn(f, args...)
	}
}

func verbosef(f string, args ...any) {
	if verbose {
		util.Warn(f, args...)
	}
}

func main() {
	fs := flag.NewFlagSet("hexraw", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(
			os.Stderr,
			"Usage:\n  hexraw [OPTIONS] INPUT [OUTPUT]\n\n"+
				"Converts an Intel HEX file to its raw binary form or, with the -r\n"+
				"option, a raw binary file to the Intel HEX format. If OUTPUT is not\n"+
				"given its name is derived from INPUT by replacing the extension with\n"+
				".raw or .hex.\n\nOptions:\n",
		)
		fs.PrintDefaults()
	}
	d := fs.Bool("d", false, "print debug output (implies -v)")
	v := fs.Bool("v", false, "print verbose output")
	r := fs.String("r", "", "convert raw binary to Intel HEX using the given starting `address` (decimal, 0x- or $-prefixed hex)")
	s := fs.Bool("s", false, "swap adjacent byte pairs in the raw data (bootloader storage order)")
	fs.Parse(os.Args[1:])

	debug = *d
	verbose = *v || *d

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		os.Exit(1)
	}

	rawToHex := *r != ""
	var addr uint16
	if rawToHex {
		a, err := util.ParseAddress(*r)
		util.FatalErr("", err)
		addr = a
		verbosef("using starting address: %s", *r)
	}

	suffix := ".raw"
	if rawToHex {
		suffix = ".hex"
	}
	in := fs.Arg(0)
	out := fs.Arg(1)
	if out == "" {
		out = util.OutFile(in, suffix)
	}
	verbosef("reading: %s", in)
	verbosef("writing: %s", out)

	inf, err := os.Open(in)
	util.FatalErr("", err)
	defer inf.Close()
	outf, err := os.Create(out)
	util.FatalErr("", err)

	if rawToHex {
		verbosef("converting raw -> hex")
		ir := io.Reader(inf)
		if *s {
			ir = swap.NewReader(ir)
		}
		data, err := io.ReadAll(ir)
		util.FatalErr("", err)
		util.FatalErr("", ihex.RawToHex(outf, data, addr))
	} else {
		verbosef("converting hex -> raw")
		ow := io.Writer(outf)
		var sw io.WriteCloser
		if *s {
			sw = swap.NewWriter(ow)
			ow = sw
		}
		var n int
		if debug {
			// Record by record, printing each one.
			rd := ihex.NewReader(inf)
			for rd.Scan() {
				rec := rd.Record()
				debugf("%s", rec)
				raw := rec.RawData()
				if len(raw) == 0 {
					continue
				}
				m, err := ow.Write(raw)
				n += m
				util.FatalErr("", err)
			}
			util.FatalErr("", rd.Err())
		} else {
			n, err = ihex.HexToRaw(ow, inf)
			util.FatalErr("", err)
		}
		if sw != nil {
			util.FatalErr("", sw.Close())
		}
		verbosef("wrote %d raw bytes", n)
	}
	util.FatalErr("", outf.Close())
}
