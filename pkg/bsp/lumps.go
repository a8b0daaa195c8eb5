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

// The file contains the fixed size records and the lumps that are decoded
// by reading them straight out of the file.

import (
	"fmt"
	"io"
)

const (
	// Sizes of the structs that are part of the file format.
	// This is to prevent accidentally adding fields to those structs.
	filePlaneSize       = 3*4 + 4 + 4
	fileVertexSize      = 3 * 4
	fileNodeSize        = 4 + 2*2 + 6*2 + 2 + 2
	fileTexInfoSize     = 3*4 + 4 + 3*4 + 4 + 4 + 4
	fileFaceSize        = 2 + 2 + 4 + 2 + 2 + 4 + 4
	fileLightSampleSize = 3
	fileClipNodeSize    = 4 + 2*2
	fileLeafSize        = 4 + 4 + 6*2 + 2 + 2 + 4
	fileMarkSurfaceSize = 2
	fileEdgeSize        = 2 + 2
	fileSurfEdgeSize    = 4
	fileModelSize       = 2*3*4 + 3*4 + MaxMapHulls*4 + 4 + 4 + 4
)

// PlaneType says if a plane is axial, or else which axis it's closest to.
type PlaneType int32

const (
	PlaneX    PlaneType = iota // Normal is (1,0,0).
	PlaneY                     // Normal is (0,1,0).
	PlaneZ                     // Normal is (0,0,1).
	PlaneAnyX                  // Mostly along X.
	PlaneAnyY                  // Mostly along Y.
	PlaneAnyZ                  // Mostly along Z.
)

// Axial reports whether the plane is perpendicular to an axis.
func (t PlaneType) Axial() bool {
	return t >= PlaneX && t <= PlaneZ
}

// A Plane splits space in two. Points p with Normal·p - Dist > 0 are in front.
type Plane struct {
	Normal Vec3
	Dist   float32
	Type   PlaneType
}

// Distance returns the signed distance from the plane to p.
func (p *Plane) Distance(v Vec3) float32 {
	return p.Normal.Dot(v) - p.Dist
}

// Contents is the type of a leaf. All values are negative, which is what
// tells a leaf reference in a clip node apart from a node index.
type Contents int32

const (
	ContentsEmpty Contents = -1 - iota
	ContentsSolid
	ContentsWater
	ContentsSlime
	ContentsLava
	ContentsSky
	ContentsOrigin
	ContentsClip
	ContentsCurrent0
	ContentsCurrent90
	ContentsCurrent180
	ContentsCurrent270
	ContentsCurrentUp
	ContentsCurrentDown
	ContentsTranslucent
)

var contentsNames = []string{
	"empty", "solid", "water", "slime", "lava", "sky", "origin", "clip",
	"current_0", "current_90", "current_180", "current_270",
	"current_up", "current_down", "translucent",
}

func (c Contents) String() string {
	i := int(-1 - c)
	if i < 0 || i >= len(contentsNames) {
		return fmt.Sprintf("contents(%d)", int32(c))
	}
	return contentsNames[i]
}

// A Node is an inner node of the BSP tree used for rendering.
type Node struct {
	PlaneID   int32
	Children  [2]int16 // Front and back. See Child.
	Box       ShortBox
	FirstFace uint16
	NumFaces  uint16
}

// Child returns child i (0 is front, 1 is back). Non-negative values are
// node indices. Negative values are bitwise inverted leaf indices, so -1 is
// leaf 0, the shared solid leaf.
func (n *Node) Child(i int) (index int, leaf bool) {
	c := n.Children[i]
	if c < 0 {
		return int(^c), true
	}
	return int(c), false
}

// A TextureAxis projects a world position onto one texture axis:
//
//	s = pos·Vector + Shift
type TextureAxis struct {
	Vector Vec3
	Shift  float32
}

// Project returns the texture coordinate of v along this axis.
func (a TextureAxis) Project(v Vec3) float32 {
	return v.Dot(a.Vector) + a.Shift
}

// A TexInfo is information about how to apply a texture (MipTex) onto a face.
// Texture coordinates are not stored with the vertices, but calculated by
// projecting world coordinates onto the S and T axes.
type TexInfo struct {
	S        TextureAxis // Horizontal in texture space.
	T        TextureAxis // Vertical in texture space.
	MipTexID uint32      // Index into the texture lump.
	Flags    uint32
}

// TexInfo flags.
const (
	TexSpecial = 1 // Sky or liquid, no lightmap and no subdivision.
)

// A Face is a polygon as it appears in the file.
type Face struct {
	PlaneID   uint16
	Side      uint16 // Nonzero if the face normal points away from the plane normal.
	FirstEdge uint32 // First entry in the surf-edge table.
	NumEdges  uint16
	TexInfoID uint16

	// Lighting styles. 0 is normal, 1-254 are animated light styles,
	// 255 marks the end of the list.
	Styles [MaxLightmaps]uint8

	LightmapOffset int32 // Byte offset into the lighting lump, or -1 for none.
}

// MaxLightmaps is the number of light styles per face.
const MaxLightmaps = 4

// A LightSample is one luxel of a lightmap.
type LightSample struct {
	R, G, B uint8
}

// A ClipNode is a node of the reduced BSP tree used for collision.
type ClipNode struct {
	PlaneID  int32
	Children [2]int16 // Node index if non-negative, else a Contents value.
}

// Child returns child i (0 is front, 1 is back): either a clip node index,
// or the contents of the space on that side.
func (n *ClipNode) Child(i int) (index int, contents Contents, leaf bool) {
	c := n.Children[i]
	if c < 0 {
		return 0, Contents(c), true
	}
	return int(c), 0, false
}

// A Leaf is a convex region of space at the bottom of the BSP tree.
type Leaf struct {
	Contents         Contents
	VisOffset        int32 // Offset into the visibility lump, or -1 for none.
	Box              ShortBox
	FirstMarkSurface uint16
	NumMarkSurfaces  uint16
	Ambient          [4]uint8 // Ambient sound levels.
}

// An Edge connects two vertices.
// Edges are not referenced directly from faces, only via the surf-edge table.
type Edge struct {
	V [2]uint16 // Start and end vertex index.
}

// A Model is a group of faces with its own BSP trees. Model 0 is the
// static level, the others are brush entities like doors. Entities refer to
// them as "*N".
type Model struct {
	Bounds    FloatBox
	Origin    Vec3
	HeadNodes [MaxMapHulls]int32 // Root node, then clip node roots for each hull.
	VisLeafs  int32              // Not counting leaf 0.
	FirstFace int32
	NumFaces  int32
}

// Blit decoded lumps.
type (
	Planes       []Plane
	Vertices     []Vec3
	Nodes        []Node
	TexInfos     []TexInfo
	Faces        []Face
	Lighting     []LightSample
	ClipNodes    []ClipNode
	Leaves       []Leaf
	MarkSurfaces []uint16 // Face indices.
	Edges        []Edge
	SurfEdges    []int32 // Signed edge indices. Negative means reversed.
	Models       []Model
)

func (*Planes) Kind() LumpKind       { return LumpPlanes }
func (*Vertices) Kind() LumpKind     { return LumpVertices }
func (*Nodes) Kind() LumpKind        { return LumpNodes }
func (*TexInfos) Kind() LumpKind     { return LumpTexInfo }
func (*Faces) Kind() LumpKind        { return LumpFaces }
func (*Lighting) Kind() LumpKind     { return LumpLighting }
func (*ClipNodes) Kind() LumpKind    { return LumpClipNodes }
func (*Leaves) Kind() LumpKind       { return LumpLeaves }
func (*MarkSurfaces) Kind() LumpKind { return LumpMarkSurfaces }
func (*Edges) Kind() LumpKind        { return LumpEdges }
func (*SurfEdges) Kind() LumpKind    { return LumpSurfEdges }
func (*Models) Kind() LumpKind       { return LumpModels }

func (l *Planes) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Plane](r, LumpPlanes, p)
	return err
}

func (l *Vertices) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Vec3](r, LumpVertices, p)
	return err
}

func (l *Nodes) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Node](r, LumpNodes, p)
	return err
}

func (l *TexInfos) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[TexInfo](r, LumpTexInfo, p)
	return err
}

func (l *Faces) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Face](r, LumpFaces, p)
	return err
}

func (l *Lighting) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[LightSample](r, LumpLighting, p)
	return err
}

func (l *ClipNodes) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[ClipNode](r, LumpClipNodes, p)
	return err
}

func (l *Leaves) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Leaf](r, LumpLeaves, p)
	return err
}

func (l *MarkSurfaces) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[uint16](r, LumpMarkSurfaces, p)
	return err
}

func (l *Edges) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Edge](r, LumpEdges, p)
	return err
}

func (l *SurfEdges) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[int32](r, LumpSurfEdges, p)
	return err
}

func (l *Models) decode(r io.ReadSeeker, p LumpPointer) (err error) {
	*l, err = readRecords[Model](r, LumpModels, p)
	return err
}
