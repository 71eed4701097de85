/*
 * edges.go, part of goband.
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
	"fmt"
	"math"
)

//Edges holds the band-edge locations of one path: every k-point hosting
//the valence-band maximum or the conduction-band minimum within
//tolerance, the indirect and direct gaps, and the cluster of k-points
//sharing the minimum direct gap. All point slices are in path traversal
//order. Flags carries advisory findings, never failures.
type Edges struct {
	VBM          []*Extremum
	CBM          []*Extremum
	IndirectGap  float64
	DirectGap    float64
	DirectPoints []*GapPoint
	Flags        []string
}

//FindEdges scans the path for its band edges. A k-point enters VBM (CBM)
//when its 1-based index is force-included via the options, or when its
//valence (conduction) energy is strictly within tolerance of the path
//maximum (minimum). The indirect gap pairs the first VBM point with the
//first CBM point in traversal order, not the globally best pairing; see
//firstFoundPairing below. If the path carries nominal band edges that
//beat the path extrema by more than the tolerance, an advisory flag is
//attached, since that means the true edge lives outside the
//high-symmetry path.
func FindEdges(path *Path, o *Options) (*Edges, error) {
	if path == nil || path.Len() == 0 {
		return nil, Error{InvalidInput, "nil or empty path", []string{"FindEdges"}, true}
	}
	if n := path.Kpoints.NVecs(); n != len(path.VB) || n != len(path.CB) {
		return nil, Error{InvalidInput, "k-point and energy sequences of unequal length", []string{"FindEdges"}, true}
	}
	if o.tol <= 0 {
		return nil, Error{InvalidInput, "non-positive tolerance", []string{"FindEdges"}, true}
	}
	trueVBM := math.Inf(-1)
	trueCBM := math.Inf(1)
	for i, v := range path.VB {
		if v > trueVBM {
			trueVBM = v
		}
		if path.CB[i] < trueCBM {
			trueCBM = path.CB[i]
		}
	}
	ret := new(Edges)
	if n := path.NominalVBM; n != nil && n.Energy >= trueVBM+o.tol {
		ret.Flags = append(ret.Flags, fmt.Sprintf("A higher VBM was found outside of the high symmetry band path, i.e. in the weighted kpoints. CHECK YOUR BAND PATH. energy: %.5f kpoint: %d", n.Energy, n.Kpoint))
	}
	if n := path.NominalCBM; n != nil && n.Energy+o.tol <= trueCBM {
		ret.Flags = append(ret.Flags, fmt.Sprintf("A lower CBM was found outside of the high symmetry band path, i.e. in the weighted kpoints. CHECK YOUR BAND PATH. energy: %.5f kpoint: %d", n.Energy, n.Kpoint))
	}
	//The direct-gap cluster is seeded with an infinite gap so the first
	//k-point always replaces it.
	bestGap := math.Inf(1)
	var direct []*GapPoint
	for i := 0; i < path.Len(); i++ {
		num := i + 1 //k-point indexes are 1-based everywhere upstream
		v := path.VB[i]
		c := path.CB[i]
		if isInInt(o.vkpts, num) || math.Abs(v-trueVBM) < o.tol {
			ret.VBM = append(ret.VBM, &Extremum{num, path.Kpoints.VecView(i), v})
		}
		if isInInt(o.ckpts, num) || math.Abs(c-trueCBM) < o.tol {
			ret.CBM = append(ret.CBM, &Extremum{num, path.Kpoints.VecView(i), c})
		}
		//A strictly smaller direct gap restarts the cluster; a gap within
		//tolerance of the current best joins it. Note the asymmetry with
		//the strict comparisons above: a gap exactly tol smaller than the
		//best neither restarts nor joins.
		gap := c - v
		if bestGap-gap > o.tol {
			bestGap = gap
			direct = []*GapPoint{{num, path.Kpoints.VecView(i), gap}}
		} else if math.Abs(bestGap-gap) < o.tol {
			direct = append(direct, &GapPoint{num, path.Kpoints.VecView(i), gap})
		}
	}
	ret.DirectGap = direct[0].Gap
	ret.DirectPoints = direct
	ret.IndirectGap = firstFoundPairing(ret.VBM, ret.CBM)
	return ret, nil
}

//firstFoundPairing computes the indirect gap from the first VBM and CBM
//points in traversal order. When an edge is degenerate over several
//k-points all candidates share the edge energy within tolerance, so any
//pairing agrees with any other to within 2*tol; the first-found pairing
//is kept because it is the historical behavior downstream tooling
//compares against.
func firstFoundPairing(vbm, cbm []*Extremum) float64 {
	return cbm[0].Energy - vbm[0].Energy
}

//isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
