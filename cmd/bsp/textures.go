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
)

type texturesCmd struct {
	Args mapArg `positional-args:"true"`
}

// Execute lists the textures of the map.
func (c *texturesCmd) Execute(_ []string) error {
	b, err := loadMap(c.Args.Map)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%4s %-16s %9s  %s\n", "#", "Name", "Size", "Data")
	for n := range b.Textures {
		t := &b.Textures[n]
		where := "embedded"
		switch {
		case t.Missing():
			fmt.Fprintf(stdout, "%4d %-16s %9s  %s\n", n, "", "", "missing")
			continue
		case t.External():
			where = "wad"
		}
		fmt.Fprintf(stdout, "%4d %-16s %9s  %s\n", n, t.Name(), fmt.Sprintf("%dx%d", t.Width, t.Height), where)
	}
	return nil
}
