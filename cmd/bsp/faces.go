package main

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

	"github.com/pkg/errors"

	"github.com/ThomasHabets/hlbsp/pkg/bsp"
)

type facesCmd struct {
	Model int      `short:"m" long:"model" default:"0" description:"Model number. 0 is the world."`
	Skip  []string `long:"skip" description:"Leave out faces with this texture from the triangle count. Can be repeated."`
	Args  mapArg   `positional-args:"true"`
}

// Execute lists the faces of a model, and what they turn into as a mesh.
func (c *facesCmd) Execute(_ []string) error {
	b, err := loadMap(c.Args.Map)
	if err != nil {
		return err
	}
	if c.Model < 0 || c.Model >= len(b.Models) {
		return errors.Errorf("model %d out of range, map has %d", c.Model, len(b.Models))
	}
	faces, err := b.Models[c.Model].Faces(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%6s %-16s %5s %-22s %s\n", "Face", "Texture", "Edges", "Normal", "Lightmap")
	for _, fn := range faces {
		f := &b.Faces[fn]
		tex, err := f.Texture(b)
		if err != nil {
			return errors.Wrapf(err, "face %d", fn)
		}
		normal, err := f.Normal(b)
		if err != nil {
			return errors.Wrapf(err, "face %d", fn)
		}
		lm, err := f.Lightmap(b)
		if err != nil {
			return errors.Wrapf(err, "face %d", fn)
		}
		light := "-"
		if lm != nil {
			light = fmt.Sprintf("%dx%d styles %v", lm.Width, lm.Height, lm.Styles)
		}
		fmt.Fprintf(stdout, "%6d %-16s %5d %-22v %s\n", fn, tex.Name(), f.NumEdges, normal, light)
	}

	m, err := b.Mesh(c.Model, &bsp.MeshOptions{SkipTextures: c.Skip})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nMesh: %d triangles, %d vertices\n", len(m.Triangles), len(m.Positions))
	return nil
}
