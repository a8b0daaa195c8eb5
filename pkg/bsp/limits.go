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
)

// Limits of the map compilers. The compilers use static arrays, so no map
// they produce exceeds these. They're only used by CheckLimits.
const (
	MaxMapHulls        = 4
	MaxMapModels       = 400
	MaxMapBrushes      = 4096
	MaxMapEntities     = 1024
	MaxMapEntString    = 128 * 1024
	MaxMapPlanes       = 32767
	MaxMapNodes        = 32767
	MaxMapClipNodes    = 32767
	MaxMapLeafs        = 8192
	MaxMapVerts        = 65535
	MaxMapFaces        = 65535
	MaxMapMarkSurfaces = 65535
	MaxMapTexInfo      = 8192
	MaxMapEdges        = 256000
	MaxMapSurfEdges    = 512000
	MaxMapTextures     = 512
	MaxMapMipTex       = 0x200000
	MaxMapLighting     = 0x200000
	MaxMapVisibility   = 0x200000
)

// A LimitViolation is something in the map that's bigger than the
// compilers allow.
type LimitViolation struct {
	What  string
	Count int
	Max   int
}

func (v LimitViolation) String() string {
	return fmt.Sprintf("%s: %d > %d", v.What, v.Count, v.Max)
}

// CheckLimits returns everything in the map that is over the compiler
// limits. Such maps still load, but may not work in the game.
func (b *BSP) CheckLimits() []LimitViolation {
	var ret []LimitViolation
	check := func(what string, n, max int) {
		if n > max {
			ret = append(ret, LimitViolation{What: what, Count: n, Max: max})
		}
	}
	check("models", len(b.Models), MaxMapModels)
	check("entities", len(b.Entities), MaxMapEntities)
	check("planes", len(b.Planes), MaxMapPlanes)
	check("nodes", len(b.Nodes), MaxMapNodes)
	check("clipnodes", len(b.ClipNodes), MaxMapClipNodes)
	check("leaves", len(b.Leaves), MaxMapLeafs)
	check("vertices", len(b.Vertices), MaxMapVerts)
	check("faces", len(b.Faces), MaxMapFaces)
	check("marksurfaces", len(b.MarkSurfaces), MaxMapMarkSurfaces)
	check("texinfo", len(b.TexInfo), MaxMapTexInfo)
	check("edges", len(b.Edges), MaxMapEdges)
	check("surfedges", len(b.SurfEdges), MaxMapSurfEdges)
	check("textures", len(b.Textures), MaxMapTextures)
	check("lighting bytes", len(b.Lighting)*fileLightSampleSize, MaxMapLighting)
	check("visibility bytes", len(b.Visibility.Compressed), MaxMapVisibility)
	for n := range b.Entities {
		for _, kv := range b.Entities[n].Pairs {
			check(fmt.Sprintf("entity %d key %q length", n, kv.Key), len(kv.Key), MaxKey-1)
			check(fmt.Sprintf("entity %d value of %q length", n, kv.Key), len(kv.Value), MaxValue-1)
		}
	}
	return ret
}
