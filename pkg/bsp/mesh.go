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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// A Triangle is one triangle of a Mesh.
type Triangle struct {
	Face    int           // Face it was cut from.
	V       [3]int        // Index into Mesh.Positions.
	UV      [3]mgl32.Vec2 // Texture coordinates, 0-1 across the texture.
	Normal  mgl32.Vec3
	Texture string
}

// A Mesh is a model as triangles, ready to be put in a vertex buffer.
type Mesh struct {
	Positions []mgl32.Vec3
	Triangles []Triangle
}

// MeshOptions control what Mesh includes.
type MeshOptions struct {
	// Faces with these textures are left out, e.g. "aaatrigger" or "clip".
	SkipTextures []string
}

// remapVertex returns the mesh vertex for a map vertex, adding it if it's
// not in the mesh yet. This is to avoid duplicate vertices.
func (m *Mesh) remapVertex(b *BSP, in int, vertexMap map[int]int) int {
	if v, found := vertexMap[in]; found {
		return v
	}
	v := len(m.Positions)
	m.Positions = append(m.Positions, b.Vertices[in].Mgl())
	vertexMap[in] = v
	return v
}

// textureCoord returns the normalized texture coordinates of v.
func textureCoord(ti *TexInfo, tex *MipTex, v Vec3) mgl32.Vec2 {
	s, t := ti.S.Project(v), ti.T.Project(v)
	if tex.Width > 0 && tex.Height > 0 {
		s /= float32(tex.Width)
		t /= float32(tex.Height)
	}
	return mgl32.Vec2{s, t}
}

// Mesh returns the faces of a model as triangles. Faces are convex, so
// each is cut into a fan from its first vertex.
func (b *BSP) Mesh(model int, opts *MeshOptions) (*Mesh, error) {
	if opts == nil {
		opts = &MeshOptions{}
	}
	if err := checkIndex("model", int64(model), len(b.Models)); err != nil {
		return nil, err
	}
	skip := make(map[string]bool)
	for _, s := range opts.SkipTextures {
		skip[s] = true
	}
	faces, err := b.Models[model].Faces(b)
	if err != nil {
		return nil, err
	}

	m := &Mesh{}
	vertexMap := make(map[int]int) // Map from map vertex to mesh vertex.
	for _, fn := range faces {
		f := &b.Faces[fn]
		tex, err := f.Texture(b)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", fn)
		}
		if skip[tex.Name()] {
			continue
		}
		ti, err := f.TexInfo(b)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", fn)
		}
		normal, err := f.Normal(b)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", fn)
		}
		vs, err := f.VertexIndices(b)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", fn)
		}
		for i := 0; i < len(vs)-2; i++ {
			corners := [3]int{vs[0], vs[i+1], vs[i+2]}
			tri := Triangle{
				Face:    fn,
				Normal:  normal.Mgl(),
				Texture: tex.Name(),
			}
			for c, vi := range corners {
				tri.V[c] = m.remapVertex(b, vi, vertexMap)
				tri.UV[c] = textureCoord(ti, tex, b.Vertices[vi])
			}
			m.Triangles = append(m.Triangles, tri)
		}
	}
	return m, nil
}
