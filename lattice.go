/*
 * lattice.go, part of goband.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Reciprocal returns the reciprocal lattice basis of the real-space
//lattice given, i.e. 2*pi times the transposed inverse of the 3x3
//matrix whose rows are the lattice vectors in Angstrom. It fails with
//BadLattice if the matrix is not 3x3 or is singular.
func Reciprocal(lattice *mat.Dense) (*mat.Dense, error) {
	if r, c := lattice.Dims(); r != 3 || c != 3 {
		return nil, Error{BadLattice, "lattice matrix is not 3x3", []string{"Reciprocal"}, true}
	}
	var inv mat.Dense
	if err := inv.Inverse(lattice); err != nil {
		return nil, Error{BadLattice, err.Error(), []string{"Reciprocal"}, true}
	}
	recip := mat.NewDense(3, 3, nil)
	recip.Scale(2*math.Pi, inv.T())
	return recip, nil
}
