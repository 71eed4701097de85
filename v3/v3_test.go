/*
 * v3_test.go, part of goband.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
	A, err := NewMatrix([]float64{0, 0, 0, 0.5, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 points, got %d", A.NVecs())
	}
}

//TestMirror checks that reflecting a set of points twice through the
//same center recovers the original points exactly.
func TestMirror(Te *testing.T) {
	A, _ := NewMatrix([]float64{0.1, 0.2, 0.3, -0.4, 0.5, -0.6})
	c, _ := NewMatrix([]float64{0.25, 0, 0})
	B := Zeros(2)
	B.Mirror(A, c)
	C := Zeros(2)
	C.Mirror(B, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if C.At(i, j) != A.At(i, j) {
				Te.Errorf("Mirror round-trip changed element %d,%d: %f vs %f", i, j, C.At(i, j), A.At(i, j))
			}
		}
	}
}

func TestUnit(Te *testing.T) {
	A, _ := NewMatrix([]float64{3, 0, 4})
	U := Zeros(1)
	if err := U.Unit(A); err != nil {
		Te.Error(err)
	}
	if math.Abs(U.Norm()-1) > 1e-12 {
		Te.Errorf("Unit vector has norm %f", U.Norm())
	}
	Z := Zeros(1)
	if err := U.Unit(Z); err == nil {
		Te.Error("Expected an error when normalizing the zero vector")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	B := Zeros(2)
	B.SomeVecs(A, []int{2, 0})
	if B.At(0, 0) != 7 || B.At(1, 2) != 3 {
		Te.Errorf("SomeVecs picked the wrong rows: %v", B)
	}
}
