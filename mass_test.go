/*
 * mass_test.go, part of goband.
 *
 * Copyright 2021 Raul Mera <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 */

package band

import (
	"math"
	"testing"

	v3 "github.com/rmera/goband/v3"
	"gonum.org/v1/gonum/mat"
)

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

//testWindow samples the parabola E = a*kx^2 + c on 2*steps+1 points
//spaced by dk along the x axis, centered on the origin.
func testWindow(a, c, dk float64, steps int) *Window {
	n := 2*steps + 1
	w := &Window{Start: 0, End: steps}
	w.Kpoints = v3.Zeros(n)
	dir := v3.Zeros(1)
	dir.Set(0, 0, -1) //k[start]-k[end] normalized, as the builder produces
	w.Dir = dir
	for i := 0; i < n; i++ {
		kx := float64(i-steps) * dk
		w.Kpoints.Set(i, 0, kx)
		w.Energies = append(w.Energies, a*kx*kx+c)
	}
	return w
}

func TestEffectiveMass(Te *testing.T) {
	w := testWindow(4.0, 2.0, 0.25, 2)
	m, err := EffectiveMass(w, eye3())
	if err != nil {
		Te.Fatal(err)
	}
	want := HBar2 / (2 * 4.0)
	if math.Abs(m-want) > 1e-9 {
		Te.Errorf("Effective mass %f, expected %f", m, want)
	}
}

//TestEffectiveMassDirSign checks that reversing the window direction
//doesn't change the fitted mass: all projected coordinates negate
//uniformly and the quadratic coefficient is unchanged.
func TestEffectiveMassDirSign(Te *testing.T) {
	w := testWindow(-3.2, -0.2, 0.5, 1)
	m1, err := EffectiveMass(w, eye3())
	if err != nil {
		Te.Fatal(err)
	}
	w.Dir.Scale(-1, w.Dir.Dense)
	m2, err := EffectiveMass(w, eye3())
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(m1-m2) > 1e-9 {
		Te.Errorf("Mass changed with direction sign: %f vs %f", m1, m2)
	}
	if m1 >= 0 {
		Te.Error("Negative curvature should give a negative mass")
	}
}

//TestEffectiveMassLengths checks the axis-length scaling: doubling the
//reciprocal basis doubles every projected distance and quarters the
//fitted curvature, so the mass grows by 4.
func TestEffectiveMassLengths(Te *testing.T) {
	w := testWindow(1.0, 0, 0.25, 2)
	m1, err := EffectiveMass(w, eye3())
	if err != nil {
		Te.Fatal(err)
	}
	double := mat.NewDense(3, 3, nil)
	double.Scale(2, eye3())
	w2 := testWindow(1.0, 0, 0.25, 2)
	m2, err := EffectiveMass(w2, double)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(m2-4*m1) > 1e-9 {
		Te.Errorf("Expected 4m = %f with a doubled basis, got %f", 4*m1, m2)
	}
}

func TestSingularFit(Te *testing.T) {
	w := testWindow(1.0, 0, 0.25, 1)
	//Collapse all k-points onto one projected coordinate.
	for i := 0; i < w.Kpoints.NVecs(); i++ {
		w.Kpoints.Set(i, 0, 0.5)
	}
	_, err := EffectiveMass(w, eye3())
	if err == nil {
		Te.Fatal("Expected a singular-fit error")
	}
	if e, ok := err.(Error); !ok || e.Message() != SingularFit {
		Te.Errorf("Expected SingularFit, got %v", err)
	}
}

func TestPolyFit(Te *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3*v*v - 2*v + 1
	}
	c, err := polyFit(x, y, 2)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{1, -2, 3}
	for i, v := range want {
		if math.Abs(c[i]-v) > 1e-9 {
			Te.Errorf("Coefficient %d: %f, expected %f", i, c[i], v)
		}
	}
}

func TestReciprocal(Te *testing.T) {
	a := 4.0
	lat := mat.NewDense(3, 3, []float64{a, 0, 0, 0, a, 0, 0, 0, a})
	recip, err := Reciprocal(lat)
	if err != nil {
		Te.Fatal(err)
	}
	want := 2 * math.Pi / a
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := 0.0
			if i == j {
				expected = want
			}
			if math.Abs(recip.At(i, j)-expected) > 1e-12 {
				Te.Errorf("recip[%d][%d] = %f, expected %f", i, j, recip.At(i, j), expected)
			}
		}
	}
	singular := mat.NewDense(3, 3, nil)
	if _, err := Reciprocal(singular); err == nil {
		Te.Error("Expected an error for a singular lattice")
	}
	lengths := axisLengths(recip)
	for i := 0; i < 3; i++ {
		if math.Abs(lengths[i]-want) > 1e-12 {
			Te.Errorf("Axis length %d: %f, expected %f", i, lengths[i], want)
		}
	}
}
