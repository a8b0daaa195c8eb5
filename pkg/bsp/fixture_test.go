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
	"bytes"
	"encoding/binary"
	"testing"
)

// fixture builds BSP files in memory.
type fixture struct {
	version int32
	lumps   [HeaderLumps][]byte
}

func encode(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		t.Fatalf("Encoding %T: %v", v, err)
	}
	return buf.Bytes()
}

func (f *fixture) set(t *testing.T, k LumpKind, v any) {
	t.Helper()
	f.lumps[k] = encode(t, v)
}

// build returns the file, and the directory that's in it. patch, if not
// nil, can change the directory before it's written.
func (f *fixture) build(t *testing.T, patch func(*Directory)) ([]byte, *Directory) {
	t.Helper()
	d := &Directory{Version: f.version}
	pos := int32(fileDirectorySize)
	var body bytes.Buffer
	for k, data := range f.lumps {
		d.Lumps[k] = LumpPointer{Offset: pos, Length: int32(len(data))}
		body.Write(data)
		pos += int32(len(data))
		for pos%4 != 0 {
			body.WriteByte(0)
			pos++
		}
	}
	if patch != nil {
		patch(d)
	}
	return append(encode(t, d), body.Bytes()...), d
}

func mipTex(name string, w, h int32) MipTex {
	m := MipTex{Width: w, Height: h}
	copy(m.NameBytes[:], name)
	return m
}

// textureLump makes a texture lump of the given size, with an offset table
// and textures at the given offsets.
func textureLump(t *testing.T, size int, offsets []int32, tex map[int32]MipTex) []byte {
	t.Helper()
	buf := make([]byte, size)
	hdr := encode(t, append([]int32{int32(len(offsets))}, offsets...))
	copy(buf, hdr)
	for ofs, m := range tex {
		copy(buf[ofs:], encode(t, &m))
	}
	return buf
}

const testEntities = "{\n\"classname\" \"worldspawn\"\n\"wad\" \"\\half-life\\valve\\halflife.wad\"\n}\n" +
	"{\n\"classname\" \"info_player_start\"\n\"origin\" \"32 32 8\"\n\"angle\" \"90\"\n}\n" +
	"{\n\"model\" \"*1\"\n\"classname\" \"func_door\"\n}\n\x00"

// testFixture is a map with one square floor face, drawn by surf-edges
// that include a reversed edge, and an unused first surf-edge so that
// slicing the edge table by the face's first edge gives the wrong answer.
func testFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{version: Version}
	f.lumps[LumpEntities] = []byte(testEntities)
	f.set(t, LumpPlanes, []Plane{
		{Normal: Vec3{Z: 1}, Dist: 0, Type: PlaneZ},
	})
	f.lumps[LumpTextures] = textureLump(t, 48, []int32{8}, map[int32]MipTex{
		8: mipTex("floor", 64, 64),
	})
	f.set(t, LumpVertices, []Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 64, Y: 0, Z: 0},
		{X: 64, Y: 64, Z: 0},
		{X: 0, Y: 64, Z: 0},
	})
	f.lumps[LumpVisibility] = []byte{0xff, 0x00, 0x02}
	f.set(t, LumpNodes, []Node{
		{PlaneID: 0, Children: [2]int16{-1, -2}, Box: ShortBox{Max: [3]int16{64, 64, 0}}, FirstFace: 0, NumFaces: 1},
	})
	f.set(t, LumpTexInfo, []TexInfo{
		{S: TextureAxis{Vector: Vec3{X: 1}}, T: TextureAxis{Vector: Vec3{Y: 1}}, MipTexID: 0},
	})
	f.set(t, LumpFaces, []Face{
		{PlaneID: 0, FirstEdge: 1, NumEdges: 4, TexInfoID: 0, Styles: [4]uint8{0, 255, 255, 255}, LightmapOffset: 0},
	})
	light := make([]LightSample, 25)
	for n := range light {
		light[n] = LightSample{R: uint8(n), G: 10, B: 20}
	}
	f.set(t, LumpLighting, light)
	f.set(t, LumpClipNodes, []ClipNode{
		{PlaneID: 0, Children: [2]int16{int16(ContentsEmpty), int16(ContentsSolid)}},
	})
	f.set(t, LumpLeaves, []Leaf{
		{Contents: ContentsSolid, VisOffset: -1},
		{Contents: ContentsEmpty, VisOffset: 0, Box: ShortBox{Max: [3]int16{64, 64, 0}}, FirstMarkSurface: 0, NumMarkSurfaces: 1},
	})
	f.set(t, LumpMarkSurfaces, []uint16{0})
	f.set(t, LumpEdges, []Edge{
		{V: [2]uint16{0, 0}}, // Edge 0 can't be reversed, so it's never used.
		{V: [2]uint16{0, 1}},
		{V: [2]uint16{1, 2}},
		{V: [2]uint16{3, 2}}, // Walked backwards by the face.
		{V: [2]uint16{3, 0}},
	})
	f.set(t, LumpSurfEdges, []int32{0, 1, 2, -3, 4})
	f.set(t, LumpModels, []Model{
		{Bounds: FloatBox{Max: Vec3{X: 64, Y: 64}}, VisLeafs: 1, FirstFace: 0, NumFaces: 1},
	})
	return f
}

// loadFixture builds and loads the test fixture.
func loadFixture(t *testing.T) *BSP {
	t.Helper()
	data, _ := testFixture(t).build(t, nil)
	b, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}
