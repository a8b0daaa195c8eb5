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
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ThomasHabets/hlbsp/pkg/bsp"
)

type entitiesCmd struct {
	Class string `short:"c" long:"class" description:"Only show entities of this classname"`
	Args  mapArg `positional-args:"true"`
}

// entitiesNode turns entities into a YAML sequence of mappings. A yaml.Node
// is used instead of maps so that key order and repeated keys survive.
func entitiesNode(ents bsp.Entities) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range ents {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, kv := range e.Pairs {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Value},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq
}

// Execute dumps the entities of the map.
func (c *entitiesCmd) Execute(_ []string) error {
	b, err := loadMap(c.Args.Map)
	if err != nil {
		return err
	}
	ents := b.Entities
	if c.Class != "" {
		ents = ents.ByClass(c.Class)
	}
	return writeEntities(stdout, ents)
}

func writeEntities(w io.Writer, ents bsp.Entities) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entitiesNode(ents)); err != nil {
		return err
	}
	return enc.Close()
}
