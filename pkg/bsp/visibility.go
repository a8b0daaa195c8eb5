package bsp

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
	"io"
)

// Visibility is the potentially visible set, one run-length compressed bit
// vector per leaf, found via Leaf.VisOffset. It's kept compressed.
type Visibility struct {
	Compressed []byte
}

func (*Visibility) Kind() LumpKind { return LumpVisibility }

func (l *Visibility) decode(r io.ReadSeeker, p LumpPointer) error {
	buf, err := readLump(r, LumpVisibility, p)
	if err != nil {
		return err
	}
	l.Compressed = buf
	return nil
}

// Leaf returns the set of leaves visible from a leaf.
// TODO: implement the zero-run decompression (a 0 byte followed by a count
// of zero bytes) and return a per-leaf bitmap.
func (l *Visibility) Leaf(leaf *Leaf) ([]byte, error) {
	return nil, ErrVisibilityUnsupported
}
