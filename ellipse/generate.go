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
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/ellipses/errors"
)

// Default generation parameters.  The canvas is A4 landscape in millimetres.
const (
	DefaultWidth    = 297
	DefaultHeight   = 210
	DefaultMinMajor = 50
	DefaultMaxMajor = 150
	DefaultMaxAngle = 180
	DefaultCount    = 12
)

// The minor axis is a random fraction of the major axis.
const (
	minAxisRatio = 0.2
	maxAxisRatio = 0.8
)

// Source is the random number source used by a [Generator].
// Float64 must return values in the half-open interval [0, 1).
// *rand.Rand from math/rand/v2 implements this interface.
type Source interface {
	Float64() float64
}

// Params controls the generation of a batch of ellipses.
type Params struct {
	Count    int     // number of ellipses, at least 1
	Width    float64 // canvas width
	Height   float64 // canvas height
	MinMajor float64 // smallest major axis
	MaxMajor float64 // largest major axis
	MaxAngle float64 // angles are drawn from [0, MaxAngle]

	// Margin shrinks the placement area to [0, (1-Margin)*Width] x
	// [0, (1-Margin)*Height].  Must be in [0, 1).
	Margin float64
}

// DefaultParams returns the parameters used when nothing else is specified.
func DefaultParams() Params {
	return Params{
		Count:    DefaultCount,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MinMajor: DefaultMinMajor,
		MaxMajor: DefaultMaxMajor,
		MaxAngle: DefaultMaxAngle,
	}
}

// Validate checks the parameters.  Failures are reported with code
// [errors.ErrCodeInvalidParameter].
//
// The rotated bounding box of an ellipse is never wider or taller than its
// major axis.  Requiring MaxMajor to fit into the placement area therefore
// guarantees that every generated ellipse can be placed.
func (p Params) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeInvalidParameter, format, args...)
	}
	finite := func(x float64) bool {
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}

	if p.Count < 1 {
		return invalid("number of ellipses must be positive, got %d", p.Count)
	}
	if !finite(p.Width) || !finite(p.Height) || p.Width <= 0 || p.Height <= 0 {
		return invalid("canvas size must be positive, got %gx%g", p.Width, p.Height)
	}
	if !finite(p.MinMajor) || !finite(p.MaxMajor) || p.MinMajor <= 0 || p.MinMajor > p.MaxMajor {
		return invalid("invalid major axis range [%g, %g]", p.MinMajor, p.MaxMajor)
	}
	if !finite(p.MaxAngle) || p.MaxAngle < 0 {
		return invalid("maximum angle must be non-negative, got %g", p.MaxAngle)
	}
	if !finite(p.Margin) || p.Margin < 0 || p.Margin >= 1 {
		return invalid("margin must be in [0, 1), got %g", p.Margin)
	}
	if avail := (1 - p.Margin) * min(p.Width, p.Height); p.MaxMajor > avail {
		return invalid("major axis up to %g does not fit into the placement area (%g)", p.MaxMajor, avail)
	}
	return nil
}

// Generator produces random ellipses.
//
// A Generator is not safe for concurrent use, since the underlying random
// source is not.
type Generator struct {
	Rand   Source
	Logger *log.Logger
}

// NewGenerator returns a generator with a PCG source seeded from seed.
// Two generators with the same seed produce the same ellipses.
func NewGenerator(seed uint64, logger *log.Logger) *Generator {
	return &Generator{
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Logger: logger,
	}
}

// NewRandomGenerator returns a generator with a randomly seeded source.
func NewRandomGenerator(logger *log.Logger) *Generator {
	return NewGenerator(rand.Uint64(), logger)
}

// Generate returns p.Count ellipses which fit into the placement area.
// The i-th ellipse has color label "C<i>".
func (g *Generator) Generate(p Params) ([]Def, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	availX := (1 - p.Margin) * p.Width
	availY := (1 - p.Margin) * p.Height

	defs := make([]Def, 0, p.Count)
	for i := range p.Count {
		major := round2(p.MinMajor + g.Rand.Float64()*(p.MaxMajor-p.MinMajor))
		ratio := minAxisRatio + g.Rand.Float64()*(maxAxisRatio-minAxisRatio)
		minor := max(round2(ratio*major), 0.01)
		angle := round2(g.Rand.Float64() * p.MaxAngle)

		d := Def{
			Major: major,
			Minor: minor,
			Angle: angle,
			Color: Label(i),
		}
		hx, hy := d.halfExtent()
		d.Center[0] = place(g.Rand.Float64(), availX, 2*hx)
		d.Center[1] = place(g.Rand.Float64(), availY, 2*hy)

		defs = append(defs, d)
	}

	logger := g.logger()
	logger.Info("generated ellipses", "count", len(defs))
	logger.Debug("generation parameters",
		"width", p.Width, "height", p.Height,
		"min_major", p.MinMajor, "max_major", p.MaxMajor,
		"max_angle", p.MaxAngle, "margin", p.Margin)

	return defs, nil
}

// Generate is a shorthand for generating n ellipses with the given source
// and all other parameters taken from the arguments.
func Generate(src Source, n int, width, height, minMajor, maxMajor, maxAngle float64) ([]Def, error) {
	g := &Generator{Rand: src}
	return g.Generate(Params{
		Count:    n,
		Width:    width,
		Height:   height,
		MinMajor: minMajor,
		MaxMajor: maxMajor,
		MaxAngle: maxAngle,
	})
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.Default()
}

// place draws a center coordinate for a shape of the given extent, so that
// the shape fits into [0, avail].  u is uniform in [0, 1).  The result is
// rounded to an integer, unless no integer position keeps the shape inside.
// The caller guarantees extent <= avail.
func place(u, avail, extent float64) float64 {
	c := math.Round(u*(avail-extent) + extent/2)
	lo := math.Ceil(extent / 2)
	hi := math.Floor(avail - extent/2)
	if lo > hi {
		return avail / 2
	}
	return min(max(c, lo), hi)
}

// round2 rounds x to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
