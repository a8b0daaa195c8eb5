// bsp inspects GoldSrc (Half-Life) BSP30 map files.
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
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/ThomasHabets/hlbsp/pkg/bsp"
	"github.com/ThomasHabets/hlbsp/pkg/pak"
)

type rootCmd struct {
	Pak     string `long:"pak" description:"Comma-separated list of pakfiles to search for maps. If unset, maps are read from the file system."`
	Verbose []bool `short:"v" long:"verbose" description:"Log more. Repeat for debug output."`

	Info     infoCmd     `command:"info" description:"Show lump sizes, record counts and limit violations"`
	Entities entitiesCmd `command:"entities" description:"Dump entities as YAML"`
	Textures texturesCmd `command:"textures" description:"List textures"`
	Faces    facesCmd    `command:"faces" description:"List the faces of a model"`
	Digest   digestCmd   `command:"digest" description:"Print a hash of every lump"`
	PakCmd   pakCmd      `command:"pak" description:"List or extract pakfile contents"`
}

var (
	root rootCmd

	// Where command output goes.
	stdout io.Writer = os.Stdout
)

// mapArg is the positional map name shared by the map commands.
type mapArg struct {
	Map string `positional-arg-name:"MAP" required:"true" description:"Map file, or name inside the pakfiles (e.g. maps/crossfire.bsp)"`
}

func setupLogging() {
	switch len(root.Verbose) {
	case 0:
		log.SetLevel(log.WarnLevel)
	case 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.DebugLevel)
	}
}

// openPaks opens the pakfiles from --pak.
func openPaks() (pak.MultiPak, error) {
	return pak.MultiOpen(strings.Split(root.Pak, ",")...)
}

// openMap returns the raw map data, either from the pakfiles or from disk.
// The returned function closes whatever was opened.
func openMap(name string) (io.ReadSeeker, func(), error) {
	if root.Pak == "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	p, err := openPaks()
	if err != nil {
		return nil, nil, err
	}
	r, err := p.Get(name)
	if err != nil {
		p.Close()
		return nil, nil, err
	}
	return r, p.Close, nil
}

// loadMap opens and decodes a map.
func loadMap(name string) (*bsp.BSP, error) {
	r, done, err := openMap(name)
	if err != nil {
		return nil, err
	}
	defer done()
	log.Infof("Loading %q", name)
	return bsp.Load(r)
}

func main() {
	parser := flags.NewParser(&root, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging()
		return cmd.Execute(args)
	}
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
