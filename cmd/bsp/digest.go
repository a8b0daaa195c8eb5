package main

// HLBSP
//
// Copyright (C) Thomas Habets <thomas@habets.se> 2026
// https://github.com/ThomasHabets/hlbsp
//
//   This program is free software; you can redistribute it and/or modify
//   it under the terms of the GNU General Public License as published by
//   the Free Software Foundation; either version 2 of the License, or
//   (at your option) any later version.
//
//   This program is distributed in the hope that it will be useful,
//   but WITHOUT ANY WARRANTY; without even the implied warranty of
//   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//   GNU General Public License for more details.
//
//   You should have received a copy of the GNU General Public License along
//   with this program; if not, write to the Free Software Foundation, Inc.,
//   51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash"

	"github.com/ThomasHabets/hlbsp/pkg/bsp"
)

type digestCmd struct {
	Args mapArg `positional-args:"true"`
}

type lumpDigest struct {
	Kind   bsp.LumpKind
	Length int
	Sum    uint64
}

// lumpDigests hashes the raw bytes of every lump, for comparing maps
// without decoding them.
func lumpDigests(r io.ReadSeeker) ([]lumpDigest, error) {
	d, err := bsp.ReadDirectory(r)
	if err != nil {
		return nil, err
	}
	var ret []lumpDigest
	for k := bsp.LumpEntities; k <= bsp.LumpModels; k++ {
		data, err := d.RawLump(r, k)
		if err != nil {
			return nil, err
		}
		ret = append(ret, lumpDigest{
			Kind:   k,
			Length: len(data),
			Sum:    xxhash.Sum64(data),
		})
	}
	return ret, nil
}

// Execute prints the lump hashes.
func (c *digestCmd) Execute(_ []string) error {
	r, done, err := openMap(c.Args.Map)
	if err != nil {
		return err
	}
	defer done()
	ds, err := lumpDigests(r)
	if err != nil {
		return err
	}
	for _, d := range ds {
		fmt.Fprintf(stdout, "%-13s %10d %016x\n", d.Kind, d.Length, d.Sum)
	}
	return nil
}
