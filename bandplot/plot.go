/*
 * plot.go, part of goband.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package bandplot renders optical absorption spectra with gonum/plot.
//Several spectra can share one figure, each with its own color, and
//band gaps can be marked with dashed vertical lines in the matching
//color.
package bandplot

import (
	"image/color"
	"math"

	"github.com/rmera/goband/optics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Options collects the tunable parameters of an absorption plot.
type Options struct {
	width  float64 //cm
	height float64 //cm
	xmin   float64
	xmax   float64
	ymin   float64
	ymax   float64
}

//DefaultOptions returns an Options with the default parameters:
//a 15x10 cm figure with the axis limits taken from the data.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.width = 15
	ret.height = 10
	ret.xmin = math.NaN()
	ret.xmax = math.NaN()
	ret.ymin = math.NaN()
	ret.ymax = math.NaN()
	return ret
}

//Size returns the width and height of the figure, in cm, and sets them,
//if valid (positive) values are given.
func (o *Options) Size(dims ...float64) (float64, float64) {
	w, h := o.width, o.height
	if len(dims) >= 2 && dims[0] > 0 && dims[1] > 0 {
		o.width = dims[0]
		o.height = dims[1]
	}
	return w, h
}

//XRange returns the limits of the energy axis, in eV, and sets them,
//if a pair with min<max is given. NaN limits are taken from the data.
func (o *Options) XRange(lims ...float64) (float64, float64) {
	min, max := o.xmin, o.xmax
	if len(lims) >= 2 && lims[0] < lims[1] {
		o.xmin = lims[0]
		o.xmax = lims[1]
	}
	return min, max
}

//YRange returns the limits of the absorption axis, in cm^-1, and sets
//them, if a pair with min<max is given. NaN limits are taken from the
//data.
func (o *Options) YRange(lims ...float64) (float64, float64) {
	min, max := o.ymin, o.ymax
	if len(lims) >= 2 && lims[0] < lims[1] {
		o.ymin = lims[0]
		o.ymax = lims[1]
	}
	return min, max
}

func basicAbsPlot(o *Options) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.X.Label.Text = "Energy (eV)"
	p.Y.Label.Text = "Absorption (cm^-1)"
	if !math.IsNaN(o.xmin) {
		p.X.Min = o.xmin
		p.X.Max = o.xmax
	}
	if !math.IsNaN(o.ymin) {
		p.Y.Min = o.ymin
		p.Y.Max = o.ymax
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

//Absorption plots the given spectra in one figure and saves it to
//filename, whose extension selects the format (png, svg, pdf, among
//others, as supported by gonum/plot). If gaps is not nil, each non-zero
//entry is drawn as a dashed vertical line in the color of the spectrum
//with the same index. Anisotropic spectra contribute one curve per
//column.
func Absorption(spectra []*optics.Spectrum, gaps []float64, filename string, options ...*Options) error {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if len(spectra) == 0 {
		return Error{message: NothingToPlot, filename: filename, critical: true}
	}
	if gaps != nil && len(gaps) != len(spectra) {
		return Error{message: MismatchedGaps, filename: filename, critical: true}
	}
	p := basicAbsPlot(o)
	for key, s := range spectra {
		r, g, b := colors(key, len(spectra))
		col := color.RGBA{R: r, G: g, B: b, A: 255}
		for ci, name := range s.Columns {
			xys := make(plotter.XYs, len(s.Energies))
			for i, e := range s.Energies {
				xys[i].X = e
				xys[i].Y = s.Abs[ci][i]
			}
			l, err := plotter.NewLine(xys)
			if err != nil {
				return errDecorate(err, "Absorption")
			}
			l.LineStyle.Color = col
			//anisotropic columns of one spectrum share a color and
			//are told apart by dash pattern.
			if ci > 0 {
				l.LineStyle.Dashes = []vg.Length{vg.Points(float64(2 * ci)), vg.Points(2)}
			}
			label := s.Label
			if len(s.Columns) > 1 {
				if label != "" {
					label = label + " "
				}
				label = label + name
			}
			if label != "" {
				p.Legend.Add(label, l)
			}
			p.Add(l)
		}
		if gaps != nil && gaps[key] > 0 {
			m, err := gapMarker(gaps[key], s, col)
			if err != nil {
				return errDecorate(err, "Absorption")
			}
			p.Add(m)
		}
	}
	err := p.Save(vg.Length(o.width)*vg.Centimeter, vg.Length(o.height)*vg.Centimeter, filename)
	if err != nil {
		return Error{message: SaveFailed, filename: filename, deco: []string{err.Error()}, critical: true}
	}
	return nil
}

//gapMarker builds a dashed vertical line at energy gap spanning the
//absorption range of s.
func gapMarker(gap float64, s *optics.Spectrum, col color.Color) (*plotter.Line, error) {
	var top float64
	for _, c := range s.Abs {
		for _, v := range c {
			if v > top {
				top = v
			}
		}
	}
	xys := plotter.XYs{{X: gap, Y: 0}, {X: gap, Y: top}}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = col
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return l, nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}
	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

//colors spreads the hue circle over the given number of curves.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
