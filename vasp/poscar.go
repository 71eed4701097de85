/*
 * poscar.go, part of goband.
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

//Package vasp reads the VASP files goband consumes: POSCAR/CONTCAR
//structures, PROCAR band eigenvalues and vasprun.xml dielectric
//functions. Gzipped PROCAR and vasprun.xml files are read transparently.
package vasp

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/goband/v3"
	"gonum.org/v1/gonum/mat"
)

//Poscar holds a VASP POSCAR/CONTCAR structure. The lattice rows are the
//real-space lattice vectors in Angstrom, with the scale factor already
//applied.
type Poscar struct {
	Comment   string
	Lattice   *mat.Dense
	Species   []string
	Counts    []int
	Cartesian bool
	Positions *v3.Matrix
}

//ReadPoscar reads a POSCAR or CONTCAR file. Both VASP 4 (no species
//line) and VASP 5 headers are accepted, as are selective-dynamics
//blocks and a negative scale factor (interpreted, as VASP does, as the
//target cell volume).
func ReadPoscar(filename string) (*Poscar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"ReadPoscar"}, true}
	}
	defer f.Close()
	scn := bufio.NewScanner(f)
	line := func() (string, error) {
		if !scn.Scan() {
			return "", Error{WrongFormat + ": truncated file", filename, []string{"ReadPoscar"}, true}
		}
		return scn.Text(), nil
	}
	ret := new(Poscar)
	if ret.Comment, err = line(); err != nil {
		return nil, err
	}
	sl, err := line()
	if err != nil {
		return nil, err
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(sl), 64)
	if err != nil {
		return nil, Error{WrongFormat + ": bad scale factor", filename, []string{"ReadPoscar"}, true}
	}
	latdata := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		l, err := line()
		if err != nil {
			return nil, err
		}
		row, err := parseFloats(l, 3)
		if err != nil {
			return nil, Error{WrongFormat + ": bad lattice vector", filename, []string{"ReadPoscar"}, true}
		}
		latdata = append(latdata, row...)
	}
	ret.Lattice = mat.NewDense(3, 3, latdata)
	if scale < 0 {
		//A negative scale is the desired cell volume.
		vol := math.Abs(mat.Det(ret.Lattice))
		scale = math.Cbrt(-scale / vol)
	}
	ret.Lattice.Scale(scale, ret.Lattice)
	l, err := line()
	if err != nil {
		return nil, err
	}
	//VASP 5 has a species line before the counts; VASP 4 doesn't.
	if _, err := strconv.Atoi(strings.Fields(l)[0]); err != nil {
		ret.Species = strings.Fields(l)
		if l, err = line(); err != nil {
			return nil, err
		}
	}
	var natoms int
	for _, field := range strings.Fields(l) {
		c, err := strconv.Atoi(field)
		if err != nil {
			return nil, Error{WrongFormat + ": bad species counts", filename, []string{"ReadPoscar"}, true}
		}
		ret.Counts = append(ret.Counts, c)
		natoms += c
	}
	if l, err = line(); err != nil {
		return nil, err
	}
	//optional selective-dynamics marker
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(l)), "s") {
		if l, err = line(); err != nil {
			return nil, err
		}
	}
	mode := strings.ToLower(strings.TrimSpace(l))
	ret.Cartesian = strings.HasPrefix(mode, "c") || strings.HasPrefix(mode, "k")
	pos := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if l, err = line(); err != nil {
			return nil, err
		}
		row, err := parseFloats(l, 3)
		if err != nil {
			return nil, Error{WrongFormat + fmt.Sprintf(": bad position line %d", i+1), filename, []string{"ReadPoscar"}, true}
		}
		pos = append(pos, row...)
	}
	ret.Positions, err = v3.NewMatrix(pos)
	if err != nil {
		return nil, errDecorate(err, "ReadPoscar")
	}
	if ret.Cartesian {
		ret.Positions.Scale(scale, ret.Positions)
	}
	return ret, nil
}

//parseFloats parses at least n whitespace-separated floats from a line,
//returning the first n.
func parseFloats(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}
