// Package pak reads Quake and Half-Life PAK archives.
//
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
//
package pak

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	fileEntrySize = 64
	maxName       = 56
)

var magic = [4]byte{'P', 'A', 'C', 'K'}

type fileHeader struct {
	ID            [4]byte
	Directory     int32
	DirectorySize int32
}

type fileEntry struct {
	NameBytes [maxName]byte
	Offset    int32
	Size      int32
}

func (e *fileEntry) Name() string {
	n := bytes.IndexByte(e.NameBytes[:], 0)
	if n < 0 {
		n = len(e.NameBytes)
	}
	return string(e.NameBytes[:n])
}

// Entry is the location of one file in the archive.
type Entry struct {
	Pos  int64
	Size int64
}

// Pak is one open archive.
type Pak struct {
	Name    string
	Entries map[string]Entry

	r      io.ReaderAt
	closer io.Closer
}

// Open reads the directory of a PAK file. The file is owned by the Pak
// from then on, and is closed by Close.
func Open(f *os.File) (*Pak, error) {
	p, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", f.Name())
	}
	p.Name = f.Name()
	p.closer = f
	return p, nil
}

// Read reads the directory of a PAK archive from r.
func Read(r io.ReaderAt) (*Pak, error) {
	var h fileHeader
	if err := binary.Read(io.NewSectionReader(r, 0, int64(binary.Size(h))), binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if h.ID != magic {
		return nil, errors.Errorf("bad magic %q, not a pak file", h.ID[:])
	}
	if h.Directory < 0 || h.DirectorySize < 0 {
		return nil, errors.Errorf("bad directory position %d size %d", h.Directory, h.DirectorySize)
	}
	if h.DirectorySize%fileEntrySize != 0 {
		return nil, errors.Errorf("directory size %d not a multiple of %d", h.DirectorySize, fileEntrySize)
	}

	entries := make([]fileEntry, h.DirectorySize/fileEntrySize)
	dir := io.NewSectionReader(r, int64(h.Directory), int64(h.DirectorySize))
	if err := binary.Read(dir, binary.LittleEndian, entries); err != nil {
		return nil, errors.Wrap(err, "reading directory")
	}

	ret := &Pak{
		Entries: make(map[string]Entry, len(entries)),
		r:       r,
	}
	for n := range entries {
		e := &entries[n]
		if e.Offset < 0 || e.Size < 0 {
			return nil, errors.Errorf("entry %q: bad position %d size %d", e.Name(), e.Offset, e.Size)
		}
		name := e.Name()
		if _, found := ret.Entries[name]; found {
			return nil, errors.Errorf("duplicate entry %q", name)
		}
		ret.Entries[name] = Entry{
			Pos:  int64(e.Offset),
			Size: int64(e.Size),
		}
	}
	log.Debugf("Pak has %d entries", len(ret.Entries))
	return ret, nil
}

// Get returns a reader for the named file.
func (p *Pak) Get(fn string) (*io.SectionReader, error) {
	entry, found := p.Entries[fn]
	if !found {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(p.r, entry.Pos, entry.Size), nil
}

// Close closes the underlying file, if Open was used.
func (p *Pak) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// MultiPak is a search path of archives. Later ones override earlier
// ones, so that pak1.pak replaces files in pak0.pak.
type MultiPak []*Pak

// List returns the names of all files in all archives, sorted.
func (m MultiPak) List() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, p := range m {
		for fn := range p.Entries {
			if !seen[fn] {
				seen[fn] = true
				ret = append(ret, fn)
			}
		}
	}
	sort.Strings(ret)
	return ret
}

// MultiOpen opens the named archives, skipping empty names.
func MultiOpen(fns ...string) (MultiPak, error) {
	var ret MultiPak
	for _, fn := range fns {
		if fn == "" {
			continue
		}
		f, err := os.Open(fn)
		if err != nil {
			ret.Close()
			return nil, err
		}
		p, err := Open(f)
		if err != nil {
			f.Close()
			ret.Close()
			return nil, err
		}
		ret = append(ret, p)
	}
	return ret, nil
}

// Get returns a reader for the named file from the last archive that has it.
func (m MultiPak) Get(s string) (*io.SectionReader, error) {
	for i := len(m); i > 0; i-- {
		if r, err := m[i-1].Get(s); err == nil {
			return r, nil
		}
	}
	return nil, errors.Wrapf(os.ErrNotExist, "%q", s)
}

// Close closes all archives.
func (m MultiPak) Close() {
	for _, p := range m {
		if err := p.Close(); err != nil {
			log.Warningf("Closing %q: %v", p.Name, err)
		}
	}
}
