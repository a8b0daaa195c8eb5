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

// The file contains the texture lump decoder. Unlike the other binary lumps
// the texture lump starts with a table of offsets, relative to the start of
// the lump, to variable sized texture entries.

import (
	"bytes"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

const (
	MaxTextureName = 16
	MipLevels      = 4

	fileMipTexSize = MaxTextureName + 4 + 4 + MipLevels*4

	// Offset table value for textures dropped by the compiler.
	unusedMipTexOffset = -1
)

// A MipTex is the metadata about a texture.
// Textures are stored four times. One in original size, and three
// precalculated downsamples. Offsets are relative to the MipTex itself.
// If they are all zero the pixels are in an external WAD file.
type MipTex struct {
	NameBytes [MaxTextureName]byte // NUL padded, not always NUL terminated.
	Width     int32
	Height    int32
	Offsets   [MipLevels]int32 // Full, 1/2, 1/4 and 1/8 scale.
}

// Name returns the texture name, which ends at the first NUL.
// This is not a field because the struct must be fixed size.
func (m *MipTex) Name() string {
	n := bytes.IndexByte(m.NameBytes[:], 0)
	if n < 0 {
		n = len(m.NameBytes)
	}
	return string(m.NameBytes[:n])
}

// External reports whether the pixel data lives outside the BSP file.
func (m *MipTex) External() bool {
	return m.Offsets == [MipLevels]int32{}
}

// Missing reports whether this is a placeholder for a texture the
// compiler left out of the file.
func (m *MipTex) Missing() bool {
	return *m == MipTex{}
}

// Textures is the texture lump. Missing textures are kept as zero values so
// that TexInfo.MipTexID still indexes it.
type Textures []MipTex

func (*Textures) Kind() LumpKind { return LumpTextures }

func (l *Textures) decode(r io.ReadSeeker, p LumpPointer) error {
	base, err := p.offset()
	if err != nil {
		return err
	}
	n, err := p.length()
	if err != nil {
		return err
	}
	if n == 0 {
		*l = Textures{}
		return nil
	}
	if err := checkSpan(r, LumpTextures, base, base+int64(n)); err != nil {
		return err
	}
	if err := seekTo(r, base); err != nil {
		return err
	}

	var count int32
	if err := readStruct(r, "texture count", &count); err != nil {
		return err
	}
	if count < 0 || 4+int64(count)*4 > int64(n) {
		return &PointerError{Field: "texture count", Value: int64(count)}
	}
	offsets := make([]int32, count)
	if err := readStruct(r, fmt.Sprintf("%d texture offsets", count), offsets); err != nil {
		return err
	}

	tex := make(Textures, count)
	for i, rel := range offsets {
		if rel == unusedMipTexOffset {
			log.Debugf("Texture %d not in file, leaving it empty", i)
			continue
		}
		if rel < 0 || int64(rel)+fileMipTexSize > int64(n) {
			return &PointerError{Field: fmt.Sprintf("texture %d offset", i), Value: int64(rel)}
		}
		if err := seekTo(r, base+int64(rel)); err != nil {
			return err
		}
		if err := readStruct(r, fmt.Sprintf("texture %d header", i), &tex[i]); err != nil {
			return err
		}
	}
	*l = tex
	return nil
}

// ByName returns the index of the first texture with the given name.
func (l Textures) ByName(name string) (int, bool) {
	for i := range l {
		if l[i].Name() == name {
			return i, true
		}
	}
	return 0, false
}
