/*
 * v3.go, part of goband.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of points in 3D reciprocal space, one point per row.
//It embeds a gonum Dense matrix, so every gonum operation remains
//available; the methods here add the fixed-3-columns checks and the
//point-set operations used when building k-point windows.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense matrix into a Matrix.
//It panics if A doesn't have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrShape)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs points.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of points in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrShape)
	}
	return r
}

//VecView returns a view of the ith point of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F spanning the rows i to i+r (not inclusive).
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//SomeVecs puts in the receiver the points of A with the indexes in clist,
//in the order of clist. Panics if the receiver doesn't have as many rows
//as clist has elements, or if an index is out of range.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if fr != len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < 3; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//Sub puts in the first point of the receiver the difference between
//the first points of A and B.
func (F *Matrix) SubVec(A, B *Matrix) {
	for j := 0; j < 3; j++ {
		F.Set(0, j, A.At(0, j)-B.At(0, j))
	}
}

//Mirror puts in the receiver the reflection of every point of A through
//the point center, i.e. 2*center - a for each point a. The receiver must
//have the dimensions of A, and center must be a single point.
func (F *Matrix) Mirror(A, center *Matrix) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	cr, _ := center.Dims()
	if ar != fr || cr != 1 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, 2*center.At(0, j)-A.At(i, j))
		}
	}
}

//Norm returns the Euclidean norm of the first point of F.
func (F *Matrix) Norm() float64 {
	return floats.Norm(F.RawRowView(0), 2)
}

//Dot returns the dot product between the first points of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	return floats.Dot(F.RawRowView(0), B.RawRowView(0))
}

//Unit puts in the receiver the first point of A scaled to unit norm.
//It returns an error if the point has zero norm.
func (F *Matrix) Unit(A *Matrix) error {
	n := A.Norm()
	if n == 0 {
		return Error{ZeroVector, []string{"Unit"}, true}
	}
	for j := 0; j < 3; j++ {
		F.Set(0, j, A.At(0, j)/n)
	}
	return nil
}

//String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		v = append(v, fmt.Sprintf("%8.4f %8.4f %8.4f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}

//Errors

//Error is the v3 implementation of the goband Error interface. It is
//the same as band.Error but avoids a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("goband/v3 error: %s", err.message)
}

//Decorate adds new information to the error and returns the
//current decoration slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	ZeroVector = "Attempted to normalize a zero-norm vector"
)

//PanicMsg is the type used for the errors thrown by panicking
//functions in this package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape = PanicMsg("goband/v3: Dimension mismatch")
)
