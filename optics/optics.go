/*
 * optics.go, part of goband.
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

//Package optics turns frequency-dependent dielectric functions into
//optical absorption spectra: Gaussian broadening of the raw data and
//conversion of the extinction coefficient into absorption in cm^-1.
package optics

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	band "github.com/rmera/goband"
	"gonum.org/v1/gonum/floats"
)

//The six Cartesian components of each dielectric tensor row, in the
//order VASP writes them.
var components = [6]string{"xx", "yy", "zz", "xy", "yz", "xz"}

//Dielectric is a frequency-dependent dielectric function on a uniform
//energy grid. Real and Imag hold one row per energy, with the six
//Cartesian components xx, yy, zz, xy, yz, xz.
type Dielectric struct {
	Energies []float64
	Real     [][]float64
	Imag     [][]float64
}

//NewDielectric builds a Dielectric after checking that all rows are
//index-aligned with the energy grid and hold six components.
func NewDielectric(energies []float64, re, im [][]float64) (*Dielectric, error) {
	if len(energies) == 0 || len(re) != len(energies) || len(im) != len(energies) {
		return nil, Error{BadDielectric, "", []string{"NewDielectric"}, true}
	}
	for i := range re {
		if len(re[i]) != 6 || len(im[i]) != 6 {
			return nil, Error{BadDielectric, fmt.Sprintf("row %d doesn't hold 6 components", i), []string{"NewDielectric"}, true}
		}
	}
	return &Dielectric{Energies: energies, Real: re, Imag: im}, nil
}

//Broaden returns a copy of D with every component of the real and
//imaginary parts convoluted with a Gaussian of standard deviation sigma
//(in eV) along the energy grid. The grid itself is unchanged. The
//kernel is truncated at 4 sigma and the data is reflected at both ends
//of the grid. A non-positive sigma, or a grid too short or too
//degenerate (non-increasing) to define a spacing, returns the data
//unbroadened.
func (D *Dielectric) Broaden(sigma float64) *Dielectric {
	n := len(D.Energies)
	ret := &Dielectric{Energies: D.Energies, Real: make([][]float64, n), Imag: make([][]float64, n)}
	for i := 0; i < n; i++ {
		ret.Real[i] = make([]float64, 6)
		ret.Imag[i] = make([]float64, 6)
	}
	if sigma <= 0 || n < 2 || D.Energies[1]-D.Energies[0] <= 0 {
		for i := 0; i < n; i++ {
			copy(ret.Real[i], D.Real[i])
			copy(ret.Imag[i], D.Imag[i])
		}
		return ret
	}
	kernel := gaussKernel(sigma / (D.Energies[1] - D.Energies[0]))
	col := make([]float64, n)
	smoothed := make([]float64, n)
	for c := 0; c < 6; c++ {
		for _, part := range [2]struct{ src, dst [][]float64 }{{D.Real, ret.Real}, {D.Imag, ret.Imag}} {
			for i := 0; i < n; i++ {
				col[i] = part.src[i][c]
			}
			convolve(smoothed, col, kernel)
			for i := 0; i < n; i++ {
				part.dst[i][c] = smoothed[i]
			}
		}
	}
	return ret
}

//gaussKernel returns a normalized Gaussian kernel with the standard
//deviation given in grid points, truncated at 4 sigma.
func gaussKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	k := make([]float64, 2*radius+1)
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

//convolve filters src with the kernel into dst, reflecting src at both
//boundaries.
func convolve(dst, src, kernel []float64) {
	n := len(src)
	radius := len(kernel) / 2
	for i := 0; i < n; i++ {
		var acc float64
		for j, kv := range kernel {
			acc += kv * src[reflect(i+j-radius, n)]
		}
		dst[i] = acc
	}
}

//reflect maps an out-of-range index back into [0,n) by mirroring at the
//boundaries, edge sample included (i.e. ...cba|abcd|dcb...).
func reflect(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

//Spectrum is an optical absorption spectrum: one column of absorption
//values in cm^-1 per polarization direction (a single averaged column,
//or x, y, z), index-aligned with the energy grid.
type Spectrum struct {
	Energies []float64
	Abs      [][]float64 //Abs[column][energy index]
	Columns  []string    //column names, e.g. ["average"] or ["x","y","z"]
	Label    string      //identifies the calculation the spectrum came from
}

//Absorption converts a dielectric function into an absorption spectrum.
//The extinction coefficient at each energy follows from the complex
//refractive index, kappa = sqrt((|eps|-Re(eps))/2), and the absorption
//is alpha = 4*pi*E*kappa/(hc), in cm^-1. With average set, the xx, yy
//and zz components are averaged before the conversion; otherwise one
//column per Cartesian direction is produced.
func Absorption(D *Dielectric, average bool) *Spectrum {
	n := len(D.Energies)
	ret := &Spectrum{Energies: D.Energies}
	if average {
		ret.Columns = []string{"alpha"}
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			re := (D.Real[i][0] + D.Real[i][1] + D.Real[i][2]) / 3
			im := (D.Imag[i][0] + D.Imag[i][1] + D.Imag[i][2]) / 3
			col[i] = alpha(D.Energies[i], re, im)
		}
		ret.Abs = [][]float64{col}
		return ret
	}
	ret.Abs = make([][]float64, 3)
	for c := 0; c < 3; c++ {
		ret.Columns = append(ret.Columns, "alpha_"+components[c])
		ret.Abs[c] = make([]float64, n)
		for i := 0; i < n; i++ {
			ret.Abs[c][i] = alpha(D.Energies[i], D.Real[i][c], D.Imag[i][c])
		}
	}
	return ret
}

//alpha is the absorption coefficient in cm^-1 at energy e (eV) for one
//dielectric component.
func alpha(e, re, im float64) float64 {
	kappa := math.Sqrt((math.Hypot(re, im) - re) / 2)
	return kappa * e * 4 * math.Pi / band.HC
}

//Write writes the spectrum in the two-or-more-column text format of the
//absorption.dat files, one energy per line.
func (S *Spectrum) Write(w io.Writer) error {
	header := "energy(eV)"
	for _, c := range S.Columns {
		header += fmt.Sprintf(" %s(cm^-1)", c)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return Error{WriteFailed, err.Error(), []string{"Write"}, true}
	}
	for i, e := range S.Energies {
		line := fmt.Sprintf("%.8f", e)
		for _, col := range S.Abs {
			line += fmt.Sprintf(" %.8e", col[i])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return Error{WriteFailed, err.Error(), []string{"Write"}, true}
		}
	}
	return nil
}

//WriteFile writes the spectrum to dir/prefix_absorption.dat (or
//absorption.dat with an empty prefix) and returns the file name used.
func (S *Spectrum) WriteFile(dir, prefix string) (string, error) {
	name := "absorption.dat"
	if prefix != "" {
		name = prefix + "_" + name
	}
	if dir != "" {
		name = filepath.Join(dir, name)
	}
	f, err := os.Create(name)
	if err != nil {
		return "", Error{WriteFailed, err.Error(), []string{"WriteFile"}, true}
	}
	defer f.Close()
	if err := S.Write(f); err != nil {
		return "", errDecorate(err, "WriteFile")
	}
	return name, nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements band.Interface and decorates it with the caller's name
//before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(band.Interface)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for optics errors. It fulfills the
//band.Interface interface.
type Error struct {
	message  string
	detail   string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.detail == "" {
		return fmt.Sprintf("goband/optics error: %s", err.message)
	}
	return fmt.Sprintf("goband/optics error: %s: %s", err.message, err.detail)
}

//Decorate adds new information to the error and returns the current
//decoration slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	BadDielectric = "Dielectric rows don't match the energy grid"
	WriteFailed   = "Unable to write the spectrum"
)
