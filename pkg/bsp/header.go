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

// The file contains the lump directory at the start of the file.

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// BSP file version. Half-Life and other GoldSrc games use 30.
	Version = 30

	// Number of entries in the lump directory.
	HeaderLumps = 15

	fileDirectorySize = 4 + HeaderLumps*(4+4)
)

// ValidVersions is the set of versions ReadDirectory accepts.
var ValidVersions = []int32{Version}

// LumpKind is the index of a lump in the directory.
type LumpKind int

const (
	LumpEntities     LumpKind = iota // Entities (lights, spawn points, triggers...) as text.
	LumpPlanes                       // Splitting planes.
	LumpTextures                     // Mip texture headers.
	LumpVertices                     // Points in space.
	LumpVisibility                   // Compressed PVS.
	LumpNodes                        // BSP nodes.
	LumpTexInfo                      // How to apply a miptex to a face.
	LumpFaces                        // Polygons.
	LumpLighting                     // RGB lightmap samples.
	LumpClipNodes                    // Collision hulls.
	LumpLeaves                       // BSP leaves.
	LumpMarkSurfaces                 // Leaf to face redirection.
	LumpEdges                        // Vertex pairs.
	LumpSurfEdges                    // Signed face to edge redirection.
	LumpModels                       // Level geometry and brush entities.
)

var lumpNames = [HeaderLumps]string{
	"entities",
	"planes",
	"textures",
	"vertices",
	"visibility",
	"nodes",
	"texinfo",
	"faces",
	"lighting",
	"clipnodes",
	"leaves",
	"marksurfaces",
	"edges",
	"surfedges",
	"models",
}

func (k LumpKind) String() string {
	if k < 0 || int(k) >= len(lumpNames) {
		return fmt.Sprintf("lump(%d)", int(k))
	}
	return lumpNames[k]
}

// LumpPointer is the location of one lump, relative to the beginning of the file.
type LumpPointer struct {
	Offset int32
	Length int32
}

// offset returns the offset as a seekable position.
func (p LumpPointer) offset() (int64, error) {
	if p.Offset < 0 {
		return 0, &PointerError{Field: "offset", Value: int64(p.Offset)}
	}
	return int64(p.Offset), nil
}

// length returns the length as a buffer size.
func (p LumpPointer) length() (int, error) {
	if p.Length < 0 {
		return 0, &PointerError{Field: "length", Value: int64(p.Length)}
	}
	return int(p.Length), nil
}

// end returns the first byte after the lump. Both fields are int32, so the
// sum always fits.
func (p LumpPointer) end() (int64, error) {
	off, err := p.offset()
	if err != nil {
		return 0, err
	}
	n, err := p.length()
	if err != nil {
		return 0, err
	}
	return off + int64(n), nil
}

// Directory is the first thing in the file.
type Directory struct {
	Version int32 // 30 (const Version).
	Lumps   [HeaderLumps]LumpPointer
}

// ReadDirectory reads the file header from the current position of r.
// It reads exactly the size of the header and never seeks, so callers
// wanting a single lump can use the returned Directory with Extract.
func ReadDirectory(r io.Reader) (*Directory, error) {
	d := &Directory{}
	if err := binary.Read(r, binary.LittleEndian, d); err != nil {
		return nil, &ReadError{Op: "reading directory", Err: err}
	}
	for _, v := range ValidVersions {
		if d.Version == v {
			return d, nil
		}
	}
	return nil, &VersionError{Valid: ValidVersions, Found: d.Version}
}

// Pointer returns the directory entry for a lump kind.
func (d *Directory) Pointer(k LumpKind) LumpPointer {
	return d.Lumps[k]
}

// RawLump returns the undecoded bytes of one lump.
func (d *Directory) RawLump(r io.ReadSeeker, k LumpKind) ([]byte, error) {
	return readLump(r, k, d.Pointer(k))
}
