/*
 * procar.go, part of goband.
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

package vasp

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	band "github.com/rmera/goband"
	v3 "github.com/rmera/goband/v3"
)

//Procar holds the band structure data of a PROCAR file: the k-points of
//the path with their weights, and the eigenvalues and occupancies of
//every band at every k-point. The nominal band edges are located from
//the occupancies over all k-points, weighted ones included.
type Procar struct {
	NKpoints int
	NBands   int
	NIons    int
	Kpoints  *v3.Matrix
	Weights  []float64
	Eigen    [][]float64 //Eigen[band][kpoint], eV
	Occ      [][]float64 //Occ[band][kpoint]
	VBM      *band.Nominal
	CBM      *band.Nominal
}

//Band returns the eigenvalue sequence of the 1-based band index given,
//aligned with the k-point path.
func (P *Procar) Band(i int) []float64 {
	return P.Eigen[i-1]
}

//EdgePath builds the band path for the edge analysis: the k-points of
//the file, the valence and conduction bands that hold the nominal
//edges, and the nominal edges themselves.
func (P *Procar) EdgePath() (*band.Path, error) {
	path, err := band.NewPath(P.Kpoints, P.Band(P.VBM.Band), P.Band(P.CBM.Band))
	if err != nil {
		return nil, errDecorate(err, "EdgePath")
	}
	path.NominalVBM = P.VBM
	path.NominalCBM = P.CBM
	return path, nil
}

//occupied is the occupancy above which a state counts as occupied when
//locating the band edges (occupancies are 2/0 or 1/0 depending on spin
//treatment, with fractional values near the Fermi level in metals).
const occupied = 0.5

//ReadProcar reads a PROCAR file, gzipped if the name ends in .gz, and
//locates the nominal VBM and CBM from the occupancies.
func ReadProcar(filename string) (*Procar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"ReadProcar"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{UnableToOpen + ": " + err.Error(), filename, []string{"ReadProcar"}, true}
		}
		defer gz.Close()
		r = gz
	}
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 1024*1024), 1024*1024) //PROCAR lines can be long
	if !scn.Scan() {
		return nil, Error{WrongFormat + ": empty file", filename, []string{"ReadProcar"}, true}
	}
	if !scn.Scan() {
		return nil, Error{WrongFormat + ": missing counts line", filename, []string{"ReadProcar"}, true}
	}
	counts := intsIn(scn.Text())
	if len(counts) < 3 {
		return nil, Error{WrongFormat + ": missing counts line", filename, []string{"ReadProcar"}, true}
	}
	ret := &Procar{NKpoints: counts[0], NBands: counts[1], NIons: counts[2]}
	ret.Kpoints = v3.Zeros(ret.NKpoints)
	ret.Weights = make([]float64, ret.NKpoints)
	ret.Eigen = make([][]float64, ret.NBands)
	ret.Occ = make([][]float64, ret.NBands)
	for i := range ret.Eigen {
		ret.Eigen[i] = make([]float64, ret.NKpoints)
		ret.Occ[i] = make([]float64, ret.NKpoints)
	}
	kpt := 0 //current 1-based k-point index
	for scn.Scan() {
		l := scn.Text()
		switch {
		case strings.HasPrefix(strings.TrimSpace(l), "k-point"):
			if err := ret.parseKpointLine(l, &kpt, filename); err != nil {
				return nil, err
			}
		case strings.HasPrefix(strings.TrimSpace(l), "band"):
			if err := ret.parseBandLine(l, kpt, filename); err != nil {
				return nil, err
			}
		}
	}
	if kpt != ret.NKpoints {
		return nil, Error{WrongFormat + ": fewer k-points than declared", filename, []string{"ReadProcar"}, true}
	}
	if err := ret.findEdges(filename); err != nil {
		return nil, err
	}
	return ret, nil
}

//parseKpointLine reads "k-point N : kx ky kz weight = w", bumping the
//current k-point index.
func (P *Procar) parseKpointLine(l string, kpt *int, filename string) error {
	colon := strings.Index(l, ":")
	weightPos := strings.Index(l, "weight")
	if colon < 0 || weightPos < colon {
		return Error{WrongFormat + ": bad k-point line", filename, []string{"parseKpointLine"}, true}
	}
	num := intsIn(l[:colon])
	if len(num) < 1 || num[0] != *kpt+1 {
		return Error{WrongFormat + ": k-points out of order", filename, []string{"parseKpointLine"}, true}
	}
	*kpt = num[0]
	coords, err := parseFloats(fixNegatives(l[colon+1:weightPos]), 3)
	if err != nil {
		return Error{WrongFormat + ": bad k-point coordinates", filename, []string{"parseKpointLine"}, true}
	}
	for j := 0; j < 3; j++ {
		P.Kpoints.Set(*kpt-1, j, coords[j])
	}
	eq := strings.Index(l, "=")
	w, err := parseFloats(l[eq+1:], 1)
	if err != nil {
		return Error{WrongFormat + ": bad k-point weight", filename, []string{"parseKpointLine"}, true}
	}
	P.Weights[*kpt-1] = w[0]
	return nil
}

//parseBandLine reads "band N # energy E # occ. O" for the current
//k-point.
func (P *Procar) parseBandLine(l string, kpt int, filename string) error {
	if kpt < 1 {
		return Error{WrongFormat + ": band data before any k-point", filename, []string{"parseBandLine"}, true}
	}
	parts := strings.Split(l, "#")
	if len(parts) < 3 {
		return Error{WrongFormat + ": bad band line", filename, []string{"parseBandLine"}, true}
	}
	num := intsIn(parts[0])
	if len(num) < 1 || num[0] < 1 || num[0] > P.NBands {
		return Error{WrongFormat + ": bad band index", filename, []string{"parseBandLine"}, true}
	}
	e, err1 := parseFloats(strings.TrimPrefix(strings.TrimSpace(parts[1]), "energy"), 1)
	o, err2 := parseFloats(strings.TrimPrefix(strings.TrimSpace(parts[2]), "occ."), 1)
	if err1 != nil || err2 != nil {
		return Error{WrongFormat + ": bad band energy/occupancy", filename, []string{"parseBandLine"}, true}
	}
	P.Eigen[num[0]-1][kpt-1] = e[0]
	P.Occ[num[0]-1][kpt-1] = o[0]
	return nil
}

//findEdges locates the nominal VBM and CBM over all k-points.
func (P *Procar) findEdges(filename string) error {
	for b := 0; b < P.NBands; b++ {
		for k := 0; k < P.NKpoints; k++ {
			e := P.Eigen[b][k]
			if P.Occ[b][k] > occupied {
				if P.VBM == nil || e > P.VBM.Energy {
					P.VBM = &band.Nominal{Band: b + 1, Kpoint: k + 1, Energy: e}
				}
			} else {
				if P.CBM == nil || e < P.CBM.Energy {
					P.CBM = &band.Nominal{Band: b + 1, Kpoint: k + 1, Energy: e}
				}
			}
		}
	}
	if P.VBM == nil || P.CBM == nil {
		return Error{NoBandEdges, filename, []string{"findEdges"}, true}
	}
	return nil
}

//intsIn returns every whitespace-separated integer found in a line.
func intsIn(l string) []int {
	var ret []int
	for _, f := range strings.Fields(l) {
		if v, err := strconv.Atoi(f); err == nil {
			ret = append(ret, v)
		}
	}
	return ret
}

//fixNegatives splits float fields VASP prints without a separating
//space, like "0.00000000-0.50000000".
func fixNegatives(l string) string {
	var b strings.Builder
	for i, c := range l {
		if c == '-' && i > 0 && (l[i-1] >= '0' && l[i-1] <= '9') {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String()
}
