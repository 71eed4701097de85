/*
 * mass.go, part of goband.
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

package band

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//EffectiveMass fits the window's energies against the reciprocal-space
//distance along its direction and converts the curvature into an
//effective mass in units of the free-electron mass. Each k-point is
//turned into a scalar coordinate by projecting it, scaled by the
//per-axis lengths of the reciprocal basis vectors, onto the window
//direction. Using the row lengths instead of the full basis contraction
//also handles lattices with zeros on the diagonal, like the ones
//pymatgen produces, and is a good approximation whenever the
//off-diagonal lattice terms are small. No sign correction is applied:
//hole masses fitted on valence-band curvature come out negative.
func EffectiveMass(w *Window, recip *mat.Dense) (float64, error) {
	lengths := axisLengths(recip)
	n := len(w.Energies)
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < 3; i++ {
			x[j] += w.Dir.At(0, i) * lengths[i] * w.Kpoints.At(j, i)
		}
	}
	fit, err := polyFit(x, w.Energies, 2)
	if err != nil {
		return 0, errDecorate(err, "EffectiveMass")
	}
	//The curvature is twice the coefficient of the quadratic term, in
	//eV/Angstrom^-2. HBar2 over that is a mass in electron masses.
	return HBar2 / (2 * fit[2]), nil
}

//polyFit returns the least-squares polynomial fit of degree deg to the
//points (x[i], y[i]), as deg+1 coefficients in ascending order of
//power. It fails with SingularFit if x holds fewer distinct values than
//coefficients, or if the system is numerically singular anyway.
func polyFit(x, y []float64, deg int) ([]float64, error) {
	if len(x) != len(y) || len(x) == 0 {
		return nil, Error{InvalidInput, "mismatched or empty fit data", []string{"polyFit"}, true}
	}
	if distinct(x) < deg+1 {
		return nil, Error{SingularFit, "", []string{"polyFit"}, false}
	}
	a := mat.NewDense(len(x), deg+1, nil)
	for i, v := range x {
		p := 1.0
		for j := 0; j <= deg; j++ {
			a.Set(i, j, p)
			p *= v
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	coef := mat.NewVecDense(deg+1, nil)
	if err := qr.SolveVecTo(coef, false, mat.NewVecDense(len(y), y)); err != nil {
		return nil, Error{SingularFit, err.Error(), []string{"polyFit"}, false}
	}
	return coef.RawVector().Data, nil
}

//distinct returns the number of distinct values in x.
func distinct(x []float64) int {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	n := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			n++
		}
	}
	return n
}

//axisLengths returns the Euclidean length of each row of the 3x3
//reciprocal basis.
func axisLengths(recip *mat.Dense) []float64 {
	l := make([]float64, 3)
	for i := 0; i < 3; i++ {
		l[i] = floats.Norm(recip.RawRowView(i), 2)
	}
	return l
}
