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
	"fmt"

	"github.com/pkg/errors"
)

// ErrVisibilityUnsupported is returned when asking for decompressed
// visibility data. The PVS is kept in its compressed form.
var ErrVisibilityUnsupported = errors.New("visibility decompression is not implemented")

// A VersionError is returned when the directory has an unsupported version.
type VersionError struct {
	Valid []int32
	Found int32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("wrong version %d, only %v supported", e.Found, e.Valid)
}

// A PointerError is returned when an offset, length or count in the file
// can't be used as a position or size.
type PointerError struct {
	Field string
	Value int64
}

func (e *PointerError) Error() string {
	return fmt.Sprintf("bad %s value %d", e.Field, e.Value)
}

// A StringError is returned when the entity lump is not valid UTF-8.
// Offset is the position of the first bad byte within the lump.
type StringError struct {
	Offset int
}

func (e *StringError) Error() string {
	return fmt.Sprintf("entity data is not valid UTF-8 at byte %d", e.Offset)
}

// An EntityParseError is returned when the entity text doesn't follow the
// entity grammar. Line and Column are 1-based, Offset is 0-based.
type EntityParseError struct {
	Offset   int
	Line     int
	Column   int
	Expected string
}

func (e *EntityParseError) Error() string {
	return fmt.Sprintf("entity parse error at %d:%d (byte %d): expected %s", e.Line, e.Column, e.Offset, e.Expected)
}

// A ReadError wraps an I/O failure while seeking or reading.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// A RecordSizeError is returned when a lump's length is not a whole number
// of records.
type RecordSizeError struct {
	Lump       LumpKind
	Length     int
	RecordSize int
}

func (e *RecordSizeError) Error() string {
	return fmt.Sprintf("%v size %d not divisible by %d", e.Lump, e.Length, e.RecordSize)
}

// An IndexError is returned by the relational queries when a record refers
// to an index outside of the table it points into.
type IndexError struct {
	Table string
	Index int64
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Table, e.Index, e.Len)
}

// checkIndex returns an IndexError unless 0 <= i < n.
func checkIndex(table string, i int64, n int) error {
	if i < 0 || i >= int64(n) {
		return &IndexError{Table: table, Index: i, Len: n}
	}
	return nil
}
