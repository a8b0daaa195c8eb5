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
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

const (
	// World units per lightmap sample.
	luxelSize = 16

	// Style value ending the list of light styles in Face.Styles.
	styleEnd = 255

	// Largest face side in world units that gets a lightmap. The engine
	// refuses to load maps with bigger ("Bad surface extents").
	maxSurfaceExtent = 256
)

// A Lightmap is the baked light of one face. There is one Width*Height
// block of samples per light style.
type Lightmap struct {
	Width, Height int
	Styles        []uint8
	Samples       []LightSample // len(Styles) blocks, row by row.
}

// Style returns the samples for the n'th light style of the face, or nil
// if there's no such style.
func (l *Lightmap) Style(n int) []LightSample {
	if n < 0 || n >= len(l.Styles) {
		return nil
	}
	size := l.Width * l.Height
	return l.Samples[n*size : (n+1)*size]
}

// styles returns the light styles in use, up to the end marker.
func (f *Face) styles() []uint8 {
	for n, s := range f.Styles {
		if s == styleEnd {
			return f.Styles[:n]
		}
	}
	return f.Styles[:]
}

// LightmapSize returns the lightmap dimensions of the face, found by
// projecting its vertices onto the texture axes and snapping to whole
// luxels.
func (f *Face) LightmapSize(b *BSP) (int, int, error) {
	ti, err := f.TexInfo(b)
	if err != nil {
		return 0, 0, err
	}
	vs, err := f.Vertices(b)
	if err != nil {
		return 0, 0, err
	}
	if len(vs) == 0 {
		return 0, 0, errors.Errorf("face has no vertices")
	}
	var size [2]int
	for n, axis := range []TextureAxis{ti.S, ti.T} {
		lo, hi := math32.Inf(1), math32.Inf(-1)
		for _, v := range vs {
			c := axis.Project(v)
			lo = math32.Min(lo, c)
			hi = math32.Max(hi, c)
		}
		lo = math32.Floor(lo / luxelSize)
		hi = math32.Ceil(hi / luxelSize)
		extent := (hi - lo) * luxelSize
		if math32.IsNaN(extent) || math32.IsInf(extent, 0) || extent > maxSurfaceExtent {
			return 0, 0, errors.Errorf("bad surface extent %g on texture axis %d", extent, n)
		}
		size[n] = int(hi-lo) + 1
	}
	return size[0], size[1], nil
}

// Lightmap returns the baked light of the face, or nil if it has none.
func (f *Face) Lightmap(b *BSP) (*Lightmap, error) {
	styles := f.styles()
	if f.LightmapOffset < 0 || len(styles) == 0 {
		return nil, nil
	}
	if f.LightmapOffset%fileLightSampleSize != 0 {
		return nil, errors.Errorf("lightmap offset %d not a multiple of %d", f.LightmapOffset, fileLightSampleSize)
	}
	w, h, err := f.LightmapSize(b)
	if err != nil {
		return nil, err
	}
	first := int64(f.LightmapOffset / fileLightSampleSize)
	end := first + int64(w)*int64(h)*int64(len(styles))
	if end > int64(len(b.Lighting)) {
		return nil, &IndexError{Table: "lighting", Index: end - 1, Len: len(b.Lighting)}
	}
	return &Lightmap{
		Width:   w,
		Height:  h,
		Styles:  append([]uint8(nil), styles...),
		Samples: b.Lighting[first:end],
	}, nil
}
