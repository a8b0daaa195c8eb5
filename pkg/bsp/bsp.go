// Package bsp loads GoldSrc (Half-Life) BSP version 30 map files.
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
// A map is a directory of lumps. Most lumps are arrays of fixed size
// records, the texture lump is a table of offsets to records, and the
// entity lump is text. Records refer to each other by index, e.g.
// Face -> SurfEdge -> Edge -> Vertex, and those indirections are kept as
// indices. Methods on the records resolve them against a *BSP.
//
// References:
// * https://developer.valvesoftware.com/wiki/BSP_(GoldSrc)
// * http://hlbsp.sourceforge.net/index.php?content=bspdef
// * http://www.gamers.org/dEngine/quake/spec/quake-spec34/qkspec_4.htm
package bsp

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// BSP is a fully decoded map. It's not modified after Load, so it's safe
// to query from multiple goroutines.
type BSP struct {
	Entities     Entities // Player start points, lights, brush entities, ...
	Planes       Planes
	Textures     Textures // Texture metadata.
	Vertices     Vertices
	Visibility   Visibility // PVS, still compressed.
	Nodes        Nodes
	TexInfo      TexInfos // How to apply a miptex to a face.
	Faces        Faces    // Polygons.
	Lighting     Lighting // Lightmap samples for all faces.
	ClipNodes    ClipNodes
	Leaves       Leaves
	MarkSurfaces MarkSurfaces // Connect leaves with faces.
	Edges        Edges        // Connections between vertices.
	SurfEdges    SurfEdges    // Connect faces with edges.
	Models       Models       // Parts of geometry. 0 is everything non-movable.
}

// Load loads a map from something that reads and seeks. The directory is
// read from the current position, lumps are found by absolute offset.
// Lumps are decoded in directory order, and the first error is returned.
func Load(r io.ReadSeeker) (*BSP, error) {
	d, err := ReadDirectory(r)
	if err != nil {
		return nil, err
	}
	b := &BSP{}
	if b.Entities, err = Extract[Entities](d, r); err != nil {
		return nil, err
	}
	if b.Planes, err = Extract[Planes](d, r); err != nil {
		return nil, err
	}
	if b.Textures, err = Extract[Textures](d, r); err != nil {
		return nil, err
	}
	if b.Vertices, err = Extract[Vertices](d, r); err != nil {
		return nil, err
	}
	if b.Visibility, err = Extract[Visibility](d, r); err != nil {
		return nil, err
	}
	if b.Nodes, err = Extract[Nodes](d, r); err != nil {
		return nil, err
	}
	if b.TexInfo, err = Extract[TexInfos](d, r); err != nil {
		return nil, err
	}
	if b.Faces, err = Extract[Faces](d, r); err != nil {
		return nil, err
	}
	if b.Lighting, err = Extract[Lighting](d, r); err != nil {
		return nil, err
	}
	if b.ClipNodes, err = Extract[ClipNodes](d, r); err != nil {
		return nil, err
	}
	if b.Leaves, err = Extract[Leaves](d, r); err != nil {
		return nil, err
	}
	if b.MarkSurfaces, err = Extract[MarkSurfaces](d, r); err != nil {
		return nil, err
	}
	if b.Edges, err = Extract[Edges](d, r); err != nil {
		return nil, err
	}
	if b.SurfEdges, err = Extract[SurfEdges](d, r); err != nil {
		return nil, err
	}
	if b.Models, err = Extract[Models](d, r); err != nil {
		return nil, err
	}
	log.Debugf("Loaded map: %d entities, %d faces, %d textures, %d models",
		len(b.Entities), len(b.Faces), len(b.Textures), len(b.Models))
	return b, nil
}
