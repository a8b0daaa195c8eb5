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

// The file contains the queries that follow indices from one lump into
// another. Indices come from the file, so they are all checked.

// surfEdges returns the slice of the surf-edge table belonging to the face.
func (f *Face) surfEdges(b *BSP) (SurfEdges, error) {
	first := int64(f.FirstEdge)
	end := first + int64(f.NumEdges)
	if end > int64(len(b.SurfEdges)) {
		return nil, &IndexError{Table: "surfedge", Index: end - 1, Len: len(b.SurfEdges)}
	}
	return b.SurfEdges[first:end], nil
}

// surfEdge resolves one surf-edge value to an edge. A negative value means
// the edge at -v is walked backwards, so it's returned with its vertices
// swapped.
func (b *BSP) surfEdge(v int32) (Edge, error) {
	i := int64(v)
	reversed := i < 0
	if reversed {
		i = -i
	}
	if err := checkIndex("edge", i, len(b.Edges)); err != nil {
		return Edge{}, err
	}
	e := b.Edges[i]
	if reversed {
		e.V[0], e.V[1] = e.V[1], e.V[0]
	}
	return e, nil
}

// Edges returns the edges around the face in winding order. Each edge is
// oriented so that V[0] is the vertex where it starts on this face.
func (f *Face) Edges(b *BSP) ([]Edge, error) {
	ses, err := f.surfEdges(b)
	if err != nil {
		return nil, err
	}
	ret := make([]Edge, len(ses))
	for n, se := range ses {
		if ret[n], err = b.surfEdge(se); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// VertexIndices returns the indices of the face corners, in winding order.
// A surf-edge v >= 0 gives the first vertex of edge v, and v < 0 the second
// vertex of edge -v.
func (f *Face) VertexIndices(b *BSP) ([]int, error) {
	edges, err := f.Edges(b)
	if err != nil {
		return nil, err
	}
	ret := make([]int, len(edges))
	for n := range edges {
		vi := int(edges[n].V[0])
		if err := checkIndex("vertex", int64(vi), len(b.Vertices)); err != nil {
			return nil, err
		}
		ret[n] = vi
	}
	return ret, nil
}

// Vertices returns the face corners, in winding order.
func (f *Face) Vertices(b *BSP) ([]Vec3, error) {
	vis, err := f.VertexIndices(b)
	if err != nil {
		return nil, err
	}
	ret := make([]Vec3, len(vis))
	for n, vi := range vis {
		ret[n] = b.Vertices[vi]
	}
	return ret, nil
}

// Vertices returns the start and end vertex of the edge.
func (e *Edge) Vertices(b *BSP) ([2]Vec3, error) {
	var ret [2]Vec3
	for n, vi := range e.V {
		if err := checkIndex("vertex", int64(vi), len(b.Vertices)); err != nil {
			return ret, err
		}
		ret[n] = b.Vertices[vi]
	}
	return ret, nil
}

// Plane returns the plane the face lies in.
func (f *Face) Plane(b *BSP) (*Plane, error) {
	if err := checkIndex("plane", int64(f.PlaneID), len(b.Planes)); err != nil {
		return nil, err
	}
	return &b.Planes[f.PlaneID], nil
}

// Normal returns the front facing normal of the face.
func (f *Face) Normal(b *BSP) (Vec3, error) {
	p, err := f.Plane(b)
	if err != nil {
		return Vec3{}, err
	}
	if f.Side != 0 {
		return p.Normal.Scale(-1), nil
	}
	return p.Normal, nil
}

// TexInfo returns how the texture is applied to the face.
func (f *Face) TexInfo(b *BSP) (*TexInfo, error) {
	if err := checkIndex("texinfo", int64(f.TexInfoID), len(b.TexInfo)); err != nil {
		return nil, err
	}
	return &b.TexInfo[f.TexInfoID], nil
}

// Texture returns the texture of the face, via its TexInfo.
func (f *Face) Texture(b *BSP) (*MipTex, error) {
	ti, err := f.TexInfo(b)
	if err != nil {
		return nil, err
	}
	if err := checkIndex("texture", int64(ti.MipTexID), len(b.Textures)); err != nil {
		return nil, err
	}
	return &b.Textures[ti.MipTexID], nil
}

// faceRange checks a [first, first+num) range of face indices.
func faceRange(b *BSP, first, num int64) ([]int, error) {
	if num < 0 {
		return nil, &IndexError{Table: "face count", Index: num, Len: len(b.Faces)}
	}
	if num == 0 {
		return []int{}, nil
	}
	if err := checkIndex("face", first, len(b.Faces)); err != nil {
		return nil, err
	}
	if err := checkIndex("face", first+num-1, len(b.Faces)); err != nil {
		return nil, err
	}
	ret := make([]int, num)
	for n := range ret {
		ret[n] = int(first) + n
	}
	return ret, nil
}

// Faces returns the indices of the faces on the node's plane.
func (n *Node) Faces(b *BSP) ([]int, error) {
	return faceRange(b, int64(n.FirstFace), int64(n.NumFaces))
}

// Faces returns the indices of the faces of the model.
func (m *Model) Faces(b *BSP) ([]int, error) {
	return faceRange(b, int64(m.FirstFace), int64(m.NumFaces))
}

// Faces returns the indices of the faces visible in the leaf, via the
// mark-surface table.
func (l *Leaf) Faces(b *BSP) ([]int, error) {
	first := int64(l.FirstMarkSurface)
	end := first + int64(l.NumMarkSurfaces)
	if end > int64(len(b.MarkSurfaces)) {
		return nil, &IndexError{Table: "marksurface", Index: end - 1, Len: len(b.MarkSurfaces)}
	}
	ret := make([]int, 0, l.NumMarkSurfaces)
	for _, fi := range b.MarkSurfaces[first:end] {
		if err := checkIndex("face", int64(fi), len(b.Faces)); err != nil {
			return nil, err
		}
		ret = append(ret, int(fi))
	}
	return ret, nil
}

// PointLeaf returns the index of the leaf containing p, walking the BSP
// tree of the given model.
func (b *BSP) PointLeaf(model int, p Vec3) (int, error) {
	if err := checkIndex("model", int64(model), len(b.Models)); err != nil {
		return 0, err
	}
	n := int(b.Models[model].HeadNodes[0])
	// A tree can't be deeper than it has nodes, so more steps means a loop.
	for steps := 0; steps <= len(b.Nodes); steps++ {
		if err := checkIndex("node", int64(n), len(b.Nodes)); err != nil {
			return 0, err
		}
		node := &b.Nodes[n]
		if err := checkIndex("plane", int64(node.PlaneID), len(b.Planes)); err != nil {
			return 0, err
		}
		side := 0
		if b.Planes[node.PlaneID].Distance(p) < 0 {
			side = 1
		}
		child, leaf := node.Child(side)
		if leaf {
			if err := checkIndex("leaf", int64(child), len(b.Leaves)); err != nil {
				return 0, err
			}
			return child, nil
		}
		n = child
	}
	return 0, &IndexError{Table: "node depth", Index: int64(len(b.Nodes)) + 1, Len: len(b.Nodes)}
}
