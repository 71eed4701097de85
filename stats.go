/*
 * stats.go, part of goband.
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
	"gonum.org/v1/gonum/mat"
)

//Stats runs the full analysis on one band path: it locates the band
//edges, builds the sampling windows around each of them and fits one
//effective mass per window, for the valence and the conduction band.
//recip is the reciprocal lattice basis (see Reciprocal). A window whose
//construction or fit fails contributes a mass entry carrying the error
//instead of aborting the report; only invalid input fails the whole
//call.
func Stats(path *Path, recip *mat.Dense, options ...*Options) (*Report, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	edges, err := FindEdges(path, o)
	if err != nil {
		return nil, errDecorate(err, "Stats")
	}
	ret := &Report{
		VBM:          edges.VBM,
		CBM:          edges.CBM,
		IndirectGap:  edges.IndirectGap,
		DirectGap:    edges.DirectGap,
		DirectPoints: edges.DirectPoints,
		Flags:        edges.Flags,
	}
	ret.HoleMasses = fitBand(path, path.VB, edges.VBM, recip, o)
	ret.ElectronMasses = fitBand(path, path.CB, edges.CBM, recip, o)
	return ret, nil
}

//fitBand builds the windows for every extremum of one band and fits an
//effective mass on each. Failures are kept as per-window annotations.
func fitBand(path *Path, energies []float64, edges []*Extremum, recip *mat.Dense, o *Options) []*Mass {
	var masses []*Mass
	for _, e := range edges {
		var label string
		if o.labels != nil {
			label = o.labels[e.Kpoint]
		}
		windows, err := EdgeWindows(path, energies, e, o)
		if err != nil {
			masses = append(masses, &Mass{Label: label, Start: e.Kpoint, End: e.Kpoint, Err: err})
			continue
		}
		for _, w := range windows {
			m := &Mass{Label: w.Label, Start: w.Start + 1, End: w.End + 1}
			if w.Err != nil {
				m.Err = w.Err
			} else {
				m.Mass, m.Err = EffectiveMass(w, recip)
			}
			masses = append(masses, m)
		}
	}
	return masses
}
