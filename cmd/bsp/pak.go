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
	"path"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type pakCmd struct {
	List    pakListCmd    `command:"list" description:"List files in the pakfiles"`
	Extract pakExtractCmd `command:"extract" description:"Extract a file from the pakfiles"`
}

type pakListCmd struct{}

// Execute lists the files in all pakfiles.
func (c *pakListCmd) Execute(_ []string) error {
	if root.Pak == "" {
		return errors.New("--pak is required")
	}
	p, err := openPaks()
	if err != nil {
		return err
	}
	defer p.Close()
	for _, k := range p.List() {
		fmt.Fprintf(stdout, "%s\n", k)
	}
	return nil
}

type pakExtractCmd struct {
	Out  string `short:"o" long:"out" description:"Output file (default: base name of the entry)"`
	Args struct {
		Name string `positional-arg-name:"NAME" required:"true" description:"Entry to extract"`
	} `positional-args:"true"`
}

// Execute copies one file out of the pakfiles.
func (c *pakExtractCmd) Execute(_ []string) error {
	if root.Pak == "" {
		return errors.New("--pak is required")
	}
	p, err := openPaks()
	if err != nil {
		return err
	}
	defer p.Close()

	fn := c.Args.Name
	handle, err := p.Get(fn)
	if err != nil {
		return errors.Wrapf(err, "getting %q", fn)
	}
	out := c.Out
	if out == "" {
		out = path.Base(fn)
	}
	of, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "opening output file %q", out)
	}
	if _, err := io.Copy(of, handle); err != nil {
		of.Close()
		os.Remove(out)
		return errors.Wrapf(err, "extracting %q", fn)
	}
	if err := of.Close(); err != nil {
		return err
	}
	log.Infof("Extracted %q to %q", fn, out)
	return nil
}
