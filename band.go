/*
 * band.go, part of goband.
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
	"encoding/json"
	"fmt"

	v3 "github.com/rmera/goband/v3"
)

//Path holds a band structure sampled along one high-symmetry k-point
//path: the k-points in fractional reciprocal coordinates plus two
//index-aligned energy sequences, one for the selected valence band and
//one for the selected conduction band. The optional nominal band edges
//come from upstream parsing (e.g. a PROCAR) and are only used for the
//advisory cross-check against the path extrema. A Path is not modified
//after creation.
type Path struct {
	Kpoints *v3.Matrix
	VB      []float64
	CB      []float64
	//NominalVBM and NominalCBM may be nil.
	NominalVBM *Nominal
	NominalCBM *Nominal
}

//NewPath builds a Path after checking that kpoints, vb and cb all have
//the same non-zero length.
func NewPath(kpoints *v3.Matrix, vb, cb []float64) (*Path, error) {
	if kpoints == nil || len(vb) == 0 || len(cb) == 0 {
		return nil, Error{InvalidInput, "nil or empty k-point/energy sequence", []string{"NewPath"}, true}
	}
	if n := kpoints.NVecs(); n != len(vb) || n != len(cb) {
		return nil, Error{InvalidInput, fmt.Sprintf("%d k-points, %d valence and %d conduction energies", n, len(vb), len(cb)), []string{"NewPath"}, true}
	}
	return &Path{Kpoints: kpoints, VB: vb, CB: cb}, nil
}

//Len returns the number of k-points in the path.
func (P *Path) Len() int {
	return len(P.VB)
}

//Nominal is a band edge as reported by upstream parsing, possibly
//located outside the high-symmetry path (i.e. in the weighted k-points
//of a hybrid calculation).
type Nominal struct {
	Band   int     //1-based band index
	Kpoint int     //1-based k-point index
	Energy float64 //eV
}

//Extremum is one k-point hosting a band edge. A path can host the same
//edge at several k-points when the band is degenerate within tolerance.
//Kpoint indexes are 1-based, following the upstream file convention,
//and immutable once found.
type Extremum struct {
	Kpoint int        //1-based k-point index along the path
	Coord  *v3.Matrix //1x3, fractional coordinates
	Energy float64    //eV
}

//GapPoint is one k-point of the cluster sharing the minimum direct gap.
type GapPoint struct {
	Kpoint int        //1-based
	Coord  *v3.Matrix //1x3, fractional coordinates
	Gap    float64    //conduction minus valence at this k-point, eV
}

//Window is a symmetric k-point sampling around one band extremum, built
//by reflecting the one-sided path data through the extremum. Start and
//End are 0-based path indexes with Start < End; Dir is a unit vector in
//fractional reciprocal coordinates. Energies and Kpoints are index
//aligned and have odd length 2*steps+1. A window whose construction
//failed carries the failure in Err; only Start, End and Label are
//meaningful then. Failed windows are kept so a degenerate direction on
//one side of an extremum doesn't hide the window on the other side.
type Window struct {
	Start    int
	End      int
	Dir      *v3.Matrix
	Energies []float64
	Kpoints  *v3.Matrix
	Label    string
	Err      error
}

//Mass is one effective-mass result, in units of the free-electron mass.
//No sign correction is applied, so masses fitted on valence-band
//curvature typically come out negative. If the fit for this window
//failed, Err carries the failure and Mass is meaningless; other windows
//of the same report are unaffected.
type Mass struct {
	Label      string
	Start, End int //1-based k-point indexes of the window bounds
	Mass       float64
	Err        error
}

//Describe returns the label of the window the mass was fitted on, or a
//"kpoints i to j" fallback when no label was attached.
func (M *Mass) Describe() string {
	if M.Label != "" {
		return M.Label
	}
	return fmt.Sprintf("kpoints %d to %d", M.Start, M.End)
}

//Report is the structured result of one band analysis. The presentation
//layer (logging, CLI) formats it; the pipeline only fills it.
type Report struct {
	VBM            []*Extremum
	CBM            []*Extremum
	IndirectGap    float64
	DirectGap      float64
	DirectPoints   []*GapPoint
	Flags          []string //advisory findings, never errors
	HoleMasses     []*Mass
	ElectronMasses []*Mass
}

type jsonExtremum struct {
	Kpoint int        `json:"kpoint"`
	Coord  [3]float64 `json:"coord"`
	Energy float64    `json:"energy"`
}

type jsonMass struct {
	Label string  `json:"label"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Mass  float64 `json:"mass"`
	Err   string  `json:"error,omitempty"`
}

func coord3(m *v3.Matrix) [3]float64 {
	return [3]float64{m.At(0, 0), m.At(0, 1), m.At(0, 2)}
}

//MarshalJSON encodes the report so batch tooling can consume it without
//parsing log output.
func (R *Report) MarshalJSON() ([]byte, error) {
	ext := func(es []*Extremum) []jsonExtremum {
		r := make([]jsonExtremum, 0, len(es))
		for _, e := range es {
			r = append(r, jsonExtremum{e.Kpoint, coord3(e.Coord), e.Energy})
		}
		return r
	}
	masses := func(ms []*Mass) []jsonMass {
		r := make([]jsonMass, 0, len(ms))
		for _, m := range ms {
			jm := jsonMass{Label: m.Label, Start: m.Start, End: m.End, Mass: m.Mass}
			if m.Err != nil {
				jm.Err = m.Err.Error()
			}
			r = append(r, jm)
		}
		return r
	}
	gaps := make([]jsonExtremum, 0, len(R.DirectPoints))
	for _, g := range R.DirectPoints {
		gaps = append(gaps, jsonExtremum{g.Kpoint, coord3(g.Coord), g.Gap})
	}
	return json.Marshal(struct {
		VBM            []jsonExtremum `json:"vbm"`
		CBM            []jsonExtremum `json:"cbm"`
		IndirectGap    float64        `json:"indirect_gap"`
		DirectGap      float64        `json:"direct_gap"`
		DirectPoints   []jsonExtremum `json:"direct_gap_points"`
		Flags          []string       `json:"flags,omitempty"`
		HoleMasses     []jsonMass     `json:"hole_masses"`
		ElectronMasses []jsonMass     `json:"electron_masses"`
	}{
		VBM:            ext(R.VBM),
		CBM:            ext(R.CBM),
		IndirectGap:    R.IndirectGap,
		DirectGap:      R.DirectGap,
		DirectPoints:   gaps,
		Flags:          R.Flags,
		HoleMasses:     masses(R.HoleMasses),
		ElectronMasses: masses(R.ElectronMasses),
	})
}
