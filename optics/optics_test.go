/*
 * optics_test.go, part of goband.
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

package optics

import (
	"math"
	"strings"
	"testing"

	band "github.com/rmera/goband"
	"gonum.org/v1/gonum/floats"
)

//flatDielectric returns a dielectric function constant over n energy
//points 0.1 eV apart, with the same re and im on the diagonal
//components and zero off-diagonal.
func flatDielectric(Te *testing.T, n int, re, im float64) *Dielectric {
	energies := make([]float64, n)
	reRows := make([][]float64, n)
	imRows := make([][]float64, n)
	for i := 0; i < n; i++ {
		energies[i] = 0.1 * float64(i)
		reRows[i] = []float64{re, re, re, 0, 0, 0}
		imRows[i] = []float64{im, im, im, 0, 0, 0}
	}
	d, err := NewDielectric(energies, reRows, imRows)
	if err != nil {
		Te.Fatal(err)
	}
	return d
}

//TestAbsorption checks the conversion on a case with a round extinction
//coefficient: eps = 3+4i gives |eps| = 5 and kappa = 1, so alpha is
//just 4*pi*E/hc.
func TestAbsorption(Te *testing.T) {
	d := flatDielectric(Te, 5, 3, 4)
	s := Absorption(d, true)
	if len(s.Abs) != 1 || len(s.Abs[0]) != 5 {
		Te.Fatalf("Wrong spectrum shape: %d columns", len(s.Abs))
	}
	for i, e := range s.Energies {
		want := e * 4 * math.Pi / band.HC
		if math.Abs(s.Abs[0][i]-want) > 1e-6*want && want != 0 {
			Te.Errorf("alpha(%f) = %e, expected %e", e, s.Abs[0][i], want)
		}
	}
}

func TestAbsorptionAnisotropic(Te *testing.T) {
	d := flatDielectric(Te, 4, 3, 4)
	//make the yy component different to tell the columns apart
	for i := range d.Imag {
		d.Imag[i][1] = 0
		d.Real[i][1] = 1 //kappa = 0 for a purely real positive eps
	}
	s := Absorption(d, false)
	if len(s.Abs) != 3 || s.Columns[1] != "alpha_yy" {
		Te.Fatalf("Expected 3 labeled columns, got %v", s.Columns)
	}
	for i := range s.Energies {
		if s.Abs[1][i] != 0 {
			Te.Errorf("A transparent direction should not absorb: %e", s.Abs[1][i])
		}
		if i > 0 && s.Abs[0][i] == 0 {
			Te.Error("The absorbing directions should not vanish")
		}
	}
}

//TestBroaden checks that the Gaussian filter preserves the integral of
//an impulse and actually spreads it.
func TestBroaden(Te *testing.T) {
	d := flatDielectric(Te, 101, 0, 0)
	d.Imag[50][0] = 1.0
	b := d.Broaden(0.2)
	var sum float64
	for i := range b.Imag {
		sum += b.Imag[i][0]
	}
	if math.Abs(sum-1.0) > 1e-9 {
		Te.Errorf("Broadening should preserve the total weight, got %f", sum)
	}
	if b.Imag[50][0] >= 1.0 || b.Imag[48][0] <= 0 {
		Te.Error("Broadening should spread the impulse")
	}
	if !floats.Equal(b.Energies, d.Energies) {
		Te.Error("Broadening should not touch the energy grid")
	}
	//sigma <= 0 is a no-op copy
	n := d.Broaden(0)
	if n.Imag[50][0] != 1.0 || n.Imag[49][0] != 0 {
		Te.Error("A non-positive sigma should leave the data unchanged")
	}
}

//TestBroadenDegenerateGrid checks that a grid with no usable spacing
//can't produce an infinite kernel width; the data comes back untouched.
func TestBroadenDegenerateGrid(Te *testing.T) {
	d := flatDielectric(Te, 3, 0, 0)
	for i := range d.Energies {
		d.Energies[i] = 1.0 //zero spacing
	}
	d.Imag[1][0] = 1.0
	b := d.Broaden(0.2)
	if b.Imag[1][0] != 1.0 || b.Imag[0][0] != 0 {
		Te.Error("A degenerate energy grid should leave the data unchanged")
	}
}

func TestNewDielectricBad(Te *testing.T) {
	if _, err := NewDielectric([]float64{1, 2}, [][]float64{{1, 1, 1, 0, 0, 0}}, [][]float64{{1, 1, 1, 0, 0, 0}}); err == nil {
		Te.Error("Expected an error for mismatched rows")
	}
	if _, err := NewDielectric([]float64{1}, [][]float64{{1, 1}}, [][]float64{{1, 1}}); err == nil {
		Te.Error("Expected an error for rows with fewer than 6 components")
	}
}

func TestSpectrumWrite(Te *testing.T) {
	d := flatDielectric(Te, 3, 3, 4)
	s := Absorption(d, true)
	var b strings.Builder
	if err := s.Write(&b); err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "energy(eV) alpha(cm^-1)") {
		Te.Errorf("Unexpected header: %q", out)
	}
	if len(strings.Split(strings.TrimSpace(out), "\n")) != 4 {
		Te.Errorf("Expected a header plus 3 rows:\n%s", out)
	}
}
