// seehuhn.de/go/ellipses - practice sheets for drawing ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ellipse

import (
	"bytes"
	"encoding/json"
	"math"

	"seehuhn.de/go/ellipses/errors"
)

// wireDef mirrors Def with every field optional, so that missing fields
// can be told apart from zero values.
type wireDef struct {
	Center *[]float64 `json:"cntr"`
	Major  *float64   `json:"w"`
	Minor  *float64   `json:"h"`
	Angle  *float64   `json:"a"`
	Color  *string    `json:"clr"`
}

// EncodeList serializes a list of ellipses in wire format.
// A nil list is encoded as an empty JSON array.
func EncodeList(defs []Def) ([]byte, error) {
	if defs == nil {
		defs = []Def{}
	}
	data, err := json.Marshal(defs)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot encode ellipse list")
	}
	return data, nil
}

// DecodeList parses a JSON array of ellipses in wire format.
// All fields must be present and valid, see [Def.Validate].
// Failures are reported with code [errors.ErrCodeMalformedInput].
func DecodeList(data []byte) ([]Def, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, errors.New(errors.ErrCodeMalformedInput, "ellipse list must be a JSON array")
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "cannot parse ellipse list")
	}

	defs := make([]Def, len(raw))
	for i, msg := range raw {
		var w wireDef
		if err := json.Unmarshal(msg, &w); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "ellipse %d", i)
		}
		d, err := w.toDef(i)
		if err != nil {
			return nil, err
		}
		defs[i] = d
	}
	return defs, nil
}

func (w *wireDef) toDef(i int) (Def, error) {
	missing := func(field string) error {
		return errors.New(errors.ErrCodeMalformedInput, "ellipse %d: missing field %q", i, field)
	}
	switch {
	case w.Center == nil:
		return Def{}, missing("cntr")
	case w.Major == nil:
		return Def{}, missing("w")
	case w.Minor == nil:
		return Def{}, missing("h")
	case w.Angle == nil:
		return Def{}, missing("a")
	case w.Color == nil:
		return Def{}, missing("clr")
	}
	if len(*w.Center) != 2 {
		return Def{}, errors.New(errors.ErrCodeMalformedInput,
			"ellipse %d: field \"cntr\" must have 2 elements, got %d", i, len(*w.Center))
	}

	d := Def{
		Center: [2]float64{(*w.Center)[0], (*w.Center)[1]},
		Major:  *w.Major,
		Minor:  *w.Minor,
		Angle:  *w.Angle,
		Color:  *w.Color,
	}
	if err := d.Validate(); err != nil {
		return Def{}, errors.Wrap(errors.ErrCodeMalformedInput, err, "ellipse %d", i)
	}
	return d, nil
}

// Validate checks that all numbers are finite, that both axes are positive
// with the minor axis no longer than the major axis, and that the color
// label can be resolved.
func (d Def) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"cntr[0]", d.Center[0]},
		{"cntr[1]", d.Center[1]},
		{"w", d.Major},
		{"h", d.Minor},
		{"a", d.Angle},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return errors.New(errors.ErrCodeMalformedInput, "field %q is not a finite number", f.name)
		}
	}
	if d.Major <= 0 || d.Minor <= 0 {
		return errors.New(errors.ErrCodeMalformedInput,
			"axes must be positive, got w=%g h=%g", d.Major, d.Minor)
	}
	if d.Minor > d.Major {
		return errors.New(errors.ErrCodeMalformedInput,
			"minor axis must not exceed the major axis, got w=%g h=%g", d.Major, d.Minor)
	}
	if _, err := ParseColor(d.Color); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "field \"clr\"")
	}
	return nil
}
