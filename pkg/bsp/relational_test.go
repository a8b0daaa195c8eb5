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
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSurfEdgeSign(t *testing.T) {
	b := &BSP{
		Vertices:  Vertices{{X: 0}, {X: 1}, {X: 2}},
		Edges:     Edges{{}, {V: [2]uint16{1, 2}}},
		SurfEdges: SurfEdges{-1, 1},
	}
	for _, test := range []struct {
		first uint32
		want  int
	}{
		{0, 2}, // -1: second vertex of edge 1.
		{1, 1}, // 1: first vertex of edge 1.
	} {
		f := Face{FirstEdge: test.first, NumEdges: 1}
		got, err := f.VertexIndices(b)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, []int{test.want}) {
			t.Errorf("Surf-edge %d: got vertices %v, want [%d]", b.SurfEdges[test.first], got, test.want)
		}
	}
}

// Walking the edge table directly from FirstEdge, skipping the surf-edge
// table, gives a different polygon for the fixture. Make sure that's not
// what happens.
func TestFaceVerticesUseSurfEdges(t *testing.T) {
	b := loadFixture(t)
	f := &b.Faces[0]
	got, err := f.VertexIndices(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got vertices %v, want %v", got, want)
	}

	var direct []int
	for _, e := range b.Edges[f.FirstEdge : f.FirstEdge+uint32(f.NumEdges)] {
		direct = append(direct, int(e.V[0]))
	}
	if reflect.DeepEqual(direct, want) {
		t.Fatalf("Fixture doesn't tell direct edge slicing apart: %v", direct)
	}

	vs, err := f.Vertices(b)
	if err != nil {
		t.Fatal(err)
	}
	if vs[2] != (Vec3{X: 64, Y: 64}) {
		t.Errorf("Vertex 2: got %v", vs[2])
	}
}

func TestFaceEdgesWinding(t *testing.T) {
	b := loadFixture(t)
	edges, err := b.Faces[0].Edges(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []Edge{
		{V: [2]uint16{0, 1}},
		{V: [2]uint16{1, 2}},
		{V: [2]uint16{2, 3}},
		{V: [2]uint16{3, 0}},
	}
	if !reflect.DeepEqual(edges, want) {
		t.Fatalf("Got edges %v, want %v", edges, want)
	}
	for n := range edges {
		next := edges[(n+1)%len(edges)]
		if edges[n].V[1] != next.V[0] {
			t.Errorf("Edge %d doesn't end where edge %d starts", n, n+1)
		}
	}

	vs, err := edges[1].Vertices(b)
	if err != nil {
		t.Fatal(err)
	}
	if want := [2]Vec3{{X: 64}, {X: 64, Y: 64}}; vs != want {
		t.Errorf("Edge 1 vertices: got %v, want %v", vs, want)
	}
}

func TestRelationalIndexErrors(t *testing.T) {
	b := loadFixture(t)
	for _, test := range []struct {
		name string
		f    func() error
	}{
		{"surfedge range", func() error {
			f := Face{FirstEdge: 3, NumEdges: 3}
			_, err := f.Edges(b)
			return err
		}},
		{"surfedge range overflow", func() error {
			f := Face{FirstEdge: math.MaxUint32, NumEdges: 2}
			_, err := f.Edges(b)
			return err
		}},
		{"edge index", func() error {
			b2 := *b
			b2.SurfEdges = SurfEdges{5}
			f := Face{FirstEdge: 0, NumEdges: 1}
			_, err := f.Edges(&b2)
			return err
		}},
		{"min int32 surfedge", func() error {
			b2 := *b
			b2.SurfEdges = SurfEdges{math.MinInt32}
			f := Face{FirstEdge: 0, NumEdges: 1}
			_, err := f.VertexIndices(&b2)
			return err
		}},
		{"vertex index", func() error {
			e := Edge{V: [2]uint16{0, 4}}
			_, err := e.Vertices(b)
			return err
		}},
		{"plane index", func() error {
			f := Face{PlaneID: 1}
			_, err := f.Plane(b)
			return err
		}},
		{"texinfo index", func() error {
			f := Face{TexInfoID: 9}
			_, err := f.Texture(b)
			return err
		}},
		{"model first face", func() error {
			m := Model{FirstFace: -1, NumFaces: 1}
			_, err := m.Faces(b)
			return err
		}},
		{"model face count", func() error {
			m := Model{FirstFace: 0, NumFaces: -1}
			_, err := m.Faces(b)
			return err
		}},
		{"node faces", func() error {
			n := Node{FirstFace: 0, NumFaces: 2}
			_, err := n.Faces(b)
			return err
		}},
		{"marksurface range", func() error {
			l := Leaf{FirstMarkSurface: 1, NumMarkSurfaces: 1}
			_, err := l.Faces(b)
			return err
		}},
		{"point leaf model", func() error {
			_, err := b.PointLeaf(1, Vec3{})
			return err
		}},
	} {
		err := test.f()
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Errorf("%s: got %v, want IndexError", test.name, err)
		}
	}
}

func TestNodeChildren(t *testing.T) {
	n := Node{Children: [2]int16{5, -1}}
	if i, leaf := n.Child(0); i != 5 || leaf {
		t.Errorf("Child 0: got %d %v, want node 5", i, leaf)
	}
	if i, leaf := n.Child(1); i != 0 || !leaf {
		t.Errorf("Child 1: got %d %v, want leaf 0", i, leaf)
	}
	n.Children[1] = -8
	if i, leaf := n.Child(1); i != 7 || !leaf {
		t.Errorf("Child 1: got %d %v, want leaf 7", i, leaf)
	}

	c := ClipNode{Children: [2]int16{3, int16(ContentsSolid)}}
	if i, _, leaf := c.Child(0); i != 3 || leaf {
		t.Errorf("Clip child 0: got %d %v, want node 3", i, leaf)
	}
	if _, contents, leaf := c.Child(1); contents != ContentsSolid || !leaf {
		t.Errorf("Clip child 1: got %v %v, want solid", contents, leaf)
	}
}

func TestContentsString(t *testing.T) {
	for c, want := range map[Contents]string{
		ContentsEmpty:       "empty",
		ContentsSky:         "sky",
		ContentsTranslucent: "translucent",
		Contents(0):         "contents(0)",
		Contents(-16):       "contents(-16)",
	} {
		if got := c.String(); got != want {
			t.Errorf("Contents %d: got %q, want %q", int32(c), got, want)
		}
	}
}

func TestPointLeaf(t *testing.T) {
	b := loadFixture(t)
	for _, test := range []struct {
		p    Vec3
		want int
	}{
		{Vec3{X: 32, Y: 32, Z: 10}, 0},
		{Vec3{X: 32, Y: 32, Z: -10}, 1},
	} {
		got, err := b.PointLeaf(0, test.p)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("PointLeaf(%v): got %d, want %d", test.p, got, test.want)
		}
	}

	// A node pointing to itself.
	b.Nodes[0].Children[0] = 0
	if _, err := b.PointLeaf(0, Vec3{Z: 10}); err == nil {
		t.Errorf("Looping tree: want error")
	}
}

func TestFaceLookups(t *testing.T) {
	b := loadFixture(t)
	for _, test := range []struct {
		name string
		f    func() ([]int, error)
	}{
		{"leaf", func() ([]int, error) { return b.Leaves[1].Faces(b) }},
		{"node", func() ([]int, error) { return b.Nodes[0].Faces(b) }},
		{"model", func() ([]int, error) { return b.Models[0].Faces(b) }},
	} {
		got, err := test.f()
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(got, []int{0}) {
			t.Errorf("%s: got faces %v, want [0]", test.name, got)
		}
	}
	if got, err := b.Leaves[0].Faces(b); err != nil || len(got) != 0 {
		t.Errorf("Solid leaf: got %v, %v", got, err)
	}

	f := &b.Faces[0]
	tex, err := f.Texture(b)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Name() != "floor" {
		t.Errorf("Texture: got %q", tex.Name())
	}
	if n, err := f.Normal(b); err != nil || n != (Vec3{Z: 1}) {
		t.Errorf("Normal: got %v, %v", n, err)
	}
	f.Side = 1
	if n, err := f.Normal(b); err != nil || n != (Vec3{Z: -1}) {
		t.Errorf("Back side normal: got %v, %v", n, err)
	}
}

func TestLightmap(t *testing.T) {
	b := loadFixture(t)
	f := &b.Faces[0]
	lm, err := f.Lightmap(b)
	if err != nil {
		t.Fatal(err)
	}
	if lm.Width != 5 || lm.Height != 5 {
		t.Errorf("Lightmap size: got %dx%d, want 5x5", lm.Width, lm.Height)
	}
	if !reflect.DeepEqual(lm.Styles, []uint8{0}) {
		t.Errorf("Styles: got %v", lm.Styles)
	}
	s := lm.Style(0)
	if len(s) != 25 || s[0].R != 0 || s[24].R != 24 {
		t.Errorf("Samples: got %v", s)
	}
	for _, n := range []int{-1, 1} {
		if got := lm.Style(n); got != nil {
			t.Errorf("Style(%d) of one style lightmap: got %d samples, want nil", n, len(got))
		}
	}

	for _, test := range []struct {
		name    string
		offset  int32
		styles  [4]uint8
		wantErr bool
		wantNil bool
	}{
		{"no lightmap", -1, [4]uint8{0, 255, 255, 255}, false, true},
		{"no styles", 0, [4]uint8{255, 255, 255, 255}, false, true},
		{"unaligned", 1, [4]uint8{0, 255, 255, 255}, true, false},
		{"past end", 3, [4]uint8{0, 255, 255, 255}, true, false},
		{"two styles", 0, [4]uint8{0, 2, 255, 255}, true, false},
	} {
		g := *f
		g.LightmapOffset = test.offset
		g.Styles = test.styles
		lm, err := g.Lightmap(b)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: got error %v", test.name, err)
		}
		if (lm == nil) != test.wantNil && !test.wantErr {
			t.Errorf("%s: got lightmap %v", test.name, lm)
		}
	}
}

func TestLightmapBadExtents(t *testing.T) {
	for _, test := range []struct {
		name string
		s, t Vec3
	}{
		{"huge axes", Vec3{X: 1 << 29}, Vec3{Y: 1 << 29}},
		{"huge S", Vec3{X: 1 << 29}, Vec3{Y: 1}},
		{"just too big", Vec3{X: 5}, Vec3{Y: 1}}, // 320 units.
		{"nan", Vec3{X: float32(math.NaN())}, Vec3{Y: 1}},
		{"inf", Vec3{X: float32(math.Inf(1))}, Vec3{Y: 1}},
	} {
		b := loadFixture(t)
		b.TexInfo[0].S.Vector = test.s
		b.TexInfo[0].T.Vector = test.t
		f := &b.Faces[0]
		f.Styles = [4]uint8{0, 1, 255, 255}
		var lm *Lightmap
		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%s: panic: %v", test.name, r)
				}
			}()
			lm, err = f.Lightmap(b)
		}()
		if err == nil {
			t.Errorf("%s: got lightmap %+v, want error", test.name, lm)
		}
	}

	// 256 units is the largest allowed side.
	b := loadFixture(t)
	b.TexInfo[0].S.Vector = Vec3{X: 4}
	b.Lighting = make(Lighting, 17*5)
	lm, err := b.Faces[0].Lightmap(b)
	if err != nil {
		t.Fatal(err)
	}
	if lm.Width != 17 || lm.Height != 5 {
		t.Errorf("Lightmap size: got %dx%d, want 17x5", lm.Width, lm.Height)
	}
}

func TestMesh(t *testing.T) {
	b := loadFixture(t)
	m, err := b.Mesh(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Positions) != 4 {
		t.Errorf("Got %d positions, want 4", len(m.Positions))
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("Got %d triangles, want 2", len(m.Triangles))
	}
	if got, want := m.Triangles[1].V, [3]int{0, 2, 3}; got != want {
		t.Errorf("Triangle 1: got %v, want %v", got, want)
	}
	tri := m.Triangles[0]
	if tri.Texture != "floor" || tri.Face != 0 {
		t.Errorf("Triangle 0: got texture %q face %d", tri.Texture, tri.Face)
	}
	if tri.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Normal: got %v", tri.Normal)
	}
	if got, want := tri.UV[2], (mgl32.Vec2{1, 1}); got != want {
		t.Errorf("UV of (64,64,0): got %v, want %v", got, want)
	}
	if got, want := m.Positions[tri.V[1]], (mgl32.Vec3{64, 0, 0}); got != want {
		t.Errorf("Position: got %v, want %v", got, want)
	}

	m, err = b.Mesh(0, &MeshOptions{SkipTextures: []string{"floor"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 0 {
		t.Errorf("Skipped texture still has %d triangles", len(m.Triangles))
	}
}
