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

// The file contains the seek and read discipline shared by all lump
// decoders, and the generic blit decoder for fixed size records.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// lump is implemented by a pointer to every lump type. Kind ties the type to
// its directory entry, and decode reads it from the file.
type lump[T any] interface {
	*T
	Kind() LumpKind
	decode(r io.ReadSeeker, p LumpPointer) error
}

// Extract decodes one lump, found via the directory, from r.
// E.g.:
//
//	faces, err := bsp.Extract[bsp.Faces](dir, f)
func Extract[T any, P lump[T]](d *Directory, r io.ReadSeeker) (T, error) {
	var v T
	k := P(&v).Kind()
	p := d.Pointer(k)
	if err := P(&v).decode(r, p); err != nil {
		var zero T
		return zero, errors.Wrapf(err, "decoding %v lump at %d+%d", k, p.Offset, p.Length)
	}
	log.Debugf("Decoded %v lump at %d+%d", k, p.Offset, p.Length)
	return v, nil
}

// seekTo moves r to an absolute file position.
func seekTo(r io.Seeker, pos int64) error {
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return &ReadError{Op: fmt.Sprintf("seeking to %d", pos), Err: err}
	}
	return nil
}

// checkSpan makes sure [off, end) is inside the file, so that a corrupt
// length can't make us allocate more than the file holds.
func checkSpan(r io.Seeker, k LumpKind, off, end int64) error {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return &ReadError{Op: "finding file size", Err: err}
	}
	if end > size {
		return &ReadError{
			Op:  fmt.Sprintf("reading %v at %d..%d of %d byte file", k, off, end, size),
			Err: io.ErrUnexpectedEOF,
		}
	}
	return nil
}

// readLump returns the bytes a pointer points to.
func readLump(r io.ReadSeeker, k LumpKind, p LumpPointer) ([]byte, error) {
	off, err := p.offset()
	if err != nil {
		return nil, err
	}
	n, err := p.length()
	if err != nil {
		return nil, err
	}
	if err := checkSpan(r, k, off, off+int64(n)); err != nil {
		return nil, err
	}
	if err := seekTo(r, off); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, &ReadError{Op: fmt.Sprintf("reading %d bytes of %v data", n, k), Err: err}
	}
	return buf, nil
}

// recordSize returns the size in the file of one T.
func recordSize[T any]() int {
	var zero T
	return binary.Size(zero)
}

// readRecords reads a lump of fixed size records. The lump length must be a
// whole number of records.
func readRecords[T any](r io.ReadSeeker, k LumpKind, p LumpPointer) ([]T, error) {
	size := recordSize[T]()
	n, err := p.length()
	if err != nil {
		return nil, err
	}
	if n%size != 0 {
		return nil, &RecordSizeError{Lump: k, Length: n, RecordSize: size}
	}
	buf, err := readLump(r, k, p)
	if err != nil {
		return nil, err
	}
	recs := make([]T, n/size)
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, recs); err != nil {
		return nil, &ReadError{Op: fmt.Sprintf("decoding %d %v records", len(recs), k), Err: err}
	}
	return recs, nil
}

// readStruct reads one fixed size value at the current position.
func readStruct(r io.Reader, what string, v any) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return &ReadError{Op: "reading " + what, Err: err}
	}
	return nil
}
