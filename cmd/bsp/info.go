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
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ThomasHabets/hlbsp/pkg/bsp"
)

type infoCmd struct {
	Args mapArg `positional-args:"true"`
}

// Execute prints an overview of the map.
func (c *infoCmd) Execute(_ []string) error {
	r, done, err := openMap(c.Args.Map)
	if err != nil {
		return err
	}
	defer done()
	d, err := bsp.ReadDirectory(r)
	if err != nil {
		return err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	b, err := bsp.Load(r)
	if err != nil {
		return errors.Wrapf(err, "loading %q", c.Args.Map)
	}

	counts := []int{
		len(b.Entities),
		len(b.Planes),
		len(b.Textures),
		len(b.Vertices),
		len(b.Visibility.Compressed),
		len(b.Nodes),
		len(b.TexInfo),
		len(b.Faces),
		len(b.Lighting),
		len(b.ClipNodes),
		len(b.Leaves),
		len(b.MarkSurfaces),
		len(b.Edges),
		len(b.SurfEdges),
		len(b.Models),
	}
	fmt.Fprintf(stdout, "Version: %d\n", d.Version)
	fmt.Fprintf(stdout, "%-13s %10s %10s %8s\n", "Lump", "Offset", "Length", "Count")
	for k := bsp.LumpEntities; k <= bsp.LumpModels; k++ {
		p := d.Pointer(k)
		fmt.Fprintf(stdout, "%-13s %10d %10d %8d\n", k, p.Offset, p.Length, counts[k])
	}

	fmt.Fprintf(stdout, "\nModel  Faces  Origin\n")
	for n, m := range b.Models {
		fmt.Fprintf(stdout, "%5d %6d  %v\n", n, m.NumFaces, m.Origin)
	}

	if vs := b.CheckLimits(); len(vs) > 0 {
		fmt.Fprintf(os.Stderr, "\nLimits exceeded:\n")
		for _, v := range vs {
			fmt.Fprintf(os.Stderr, "  %v\n", v)
		}
	}
	return nil
}
