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

// The file contains the entity lump parser.

import (
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// Longest key and value the compilers write. Not enforced when parsing.
	MaxKey   = 32
	MaxValue = 1024
)

var coordRE = regexp.MustCompile(`^\s*([-+0-9.eE]+)\s+([-+0-9.eE]+)\s+([-+0-9.eE]+)\s*$`)

// KeyValue is one line of an entity.
type KeyValue struct {
	Key   string
	Value string
}

// An Entity is a list of key values, in file order. Keys may repeat.
type Entity struct {
	Pairs []KeyValue
}

// Get returns the value of a key. If the key is set more than once the last
// one wins, like when the game spawns the entity.
func (e *Entity) Get(key string) (string, bool) {
	for i := len(e.Pairs) - 1; i >= 0; i-- {
		if e.Pairs[i].Key == key {
			return e.Pairs[i].Value, true
		}
	}
	return "", false
}

// ClassName returns the "classname" value, e.g. "info_player_start".
func (e *Entity) ClassName() string {
	s, _ := e.Get("classname")
	return s
}

func parseFloat32(s string) (float32, error) {
	t, err := strconv.ParseFloat(s, 32)
	return float32(t), err
}

func parseVec3(s string) (Vec3, error) {
	m := coordRE.FindStringSubmatch(s)
	if len(m) != 4 {
		return Vec3{}, errors.Errorf("vertex coord parse fail: %q", s)
	}
	var c [3]float32
	for i := range c {
		var err error
		if c[i], err = parseFloat32(m[i+1]); err != nil {
			return Vec3{}, errors.Wrapf(err, "vertex coord parse fail: %q", s)
		}
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Origin returns the "origin" position. Entities without one are at (0,0,0).
func (e *Entity) Origin() (Vec3, error) {
	s, ok := e.Get("origin")
	if !ok {
		return Vec3{}, nil
	}
	return parseVec3(s)
}

// Angles returns pitch, yaw and roll in degrees, from either "angles" or
// the yaw-only "angle".
func (e *Entity) Angles() (Vec3, error) {
	if s, ok := e.Get("angles"); ok {
		return parseVec3(s)
	}
	if s, ok := e.Get("angle"); ok {
		a, err := parseFloat32(strings.TrimSpace(s))
		if err != nil {
			return Vec3{}, errors.Errorf("bad angle string: %q", s)
		}
		return Vec3{Y: a}, nil
	}
	return Vec3{}, nil
}

// Model returns the brush model index for entities with a "*N" model.
func (e *Entity) Model() (int, bool) {
	s, ok := e.Get("model")
	if !ok || !strings.HasPrefix(s, "*") {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Entities is the entity lump. Entity 0 is always "worldspawn".
type Entities []Entity

func (*Entities) Kind() LumpKind { return LumpEntities }

// ByClass returns the entities with the given classname.
func (l Entities) ByClass(name string) Entities {
	var ret Entities
	for i := range l {
		if l[i].ClassName() == name {
			ret = append(ret, l[i])
		}
	}
	return ret
}

// The lump length includes the C string terminator, and some compilers pad
// it with more NULs. Those are not part of the text.
func (l *Entities) decode(r io.ReadSeeker, p LumpPointer) error {
	buf, err := readLump(r, LumpEntities, p)
	if err != nil {
		return err
	}
	buf = bytes.TrimRight(buf, "\x00")
	if !utf8.Valid(buf) {
		return &StringError{Offset: invalidUTF8(buf)}
	}
	ents, err := ParseEntities(string(buf))
	if err != nil {
		return err
	}
	*l = ents
	return nil
}

// invalidUTF8 returns the offset of the first invalid UTF-8 sequence.
func invalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return len(b)
}

// ParseEntities parses entity text. E.g.:
//
//	{
//	"classname" "light"
//	"origin" "1 2 3"
//	}
//	{
//	"classname" "weapon_shotgun"
//	"origin" "4 5 6"
//	}
//
// There must be at least one entity. Quoted text can't contain quotes;
// there is no escaping.
func ParseEntities(s string) (Entities, error) {
	p := &entityParser{s: s}
	var ents Entities
	p.skipSpace()
	for {
		e, err := p.entity()
		if err != nil {
			return nil, err
		}
		ents = append(ents, e)
		p.skipSpace()
		if p.pos == len(p.s) {
			return ents, nil
		}
	}
}

type entityParser struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (p *entityParser) skipSpace() {
	for p.pos < len(p.s) && isSpace(p.s[p.pos]) {
		p.pos++
	}
}

func (p *entityParser) fail(expected string) error {
	before := p.s[:p.pos]
	return &EntityParseError{
		Offset:   p.pos,
		Line:     strings.Count(before, "\n") + 1,
		Column:   p.pos - strings.LastIndexByte(before, '\n'),
		Expected: expected,
	}
}

func (p *entityParser) expect(c byte) error {
	if p.pos >= len(p.s) || p.s[p.pos] != c {
		return p.fail(strconv.QuoteRune(rune(c)))
	}
	p.pos++
	return nil
}

// entity parses '{' pair* '}'.
func (p *entityParser) entity() (Entity, error) {
	var e Entity
	if err := p.expect('{'); err != nil {
		return e, err
	}
	p.skipSpace()
	for {
		if p.pos >= len(p.s) {
			return e, p.fail(`'"' or '}'`)
		}
		switch p.s[p.pos] {
		case '}':
			p.pos++
			return e, nil
		case '"':
			kv, err := p.pair()
			if err != nil {
				return e, err
			}
			e.Pairs = append(e.Pairs, kv)
		default:
			return e, p.fail(`'"' or '}'`)
		}
	}
}

// pair parses "key" "value", and the whitespace after it.
func (p *entityParser) pair() (KeyValue, error) {
	var kv KeyValue
	var err error
	if kv.Key, err = p.quoted(); err != nil {
		return kv, err
	}
	p.skipSpace()
	if kv.Value, err = p.quoted(); err != nil {
		return kv, err
	}
	p.skipSpace()
	return kv, nil
}

func (p *entityParser) quoted() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	n := strings.IndexByte(p.s[p.pos:], '"')
	if n < 0 {
		p.pos-- // Report the opening quote.
		return "", p.fail(`closing '"'`)
	}
	ret := p.s[p.pos : p.pos+n]
	p.pos += n + 1
	return ret, nil
}
