/*
 * window.go, part of goband.
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
	v3 "github.com/rmera/goband/v3"
)

//EdgeWindows builds the sampling windows for one band extremum: one
//window going steps k-points backwards along the path and one going
//steps k-points forward. An offset that would leave the path produces
//no window for that sign, so edges at the ends of the path yield a
//single window, and an isolated path of one k-point yields none. The
//raw path only extends to one side of each window, so the missing side
//is synthesized by reflecting energies and k-points through the
//extremum; the quadratic fit then sees a symmetric sampling of
//2*steps+1 points centered on the band edge. A window that cannot be
//built, e.g. because its end-points coincide in reciprocal space, is
//still returned, carrying the failure in its Err field, so the window
//on the other side of the extremum is not lost with it.
func EdgeWindows(path *Path, energies []float64, e *Extremum, o *Options) ([]*Window, error) {
	if o.steps < 1 {
		return nil, Error{InvalidInput, "non-positive step count", []string{"EdgeWindows"}, true}
	}
	if len(energies) != path.Len() {
		return nil, Error{InvalidInput, "energy sequence doesn't match the path", []string{"EdgeWindows"}, true}
	}
	if e.Kpoint < 1 || e.Kpoint > path.Len() {
		return nil, Error{InvalidInput, "extremum k-point off the path", []string{"EdgeWindows"}, true}
	}
	var label string
	if o.labels != nil {
		label = o.labels[e.Kpoint]
	}
	ret := make([]*Window, 0, 2)
	for _, x := range [2]int{-o.steps, o.steps} {
		if w := windowAt(path, energies, e.Kpoint-1, x, label); w != nil {
			ret = append(ret, w)
		}
	}
	return ret, nil
}

//windowAt builds the window for the signed offset x from the 0-based
//path index p, or returns nil when p+x falls off the path.
func windowAt(path *Path, energies []float64, p, x int, label string) *Window {
	q := p + x
	if q < 0 || q >= path.Len() {
		return nil
	}
	start, end := p, q
	if start > end {
		start, end = end, start
	}
	dir := v3.Zeros(1)
	dir.SubVec(path.Kpoints.VecView(start), path.Kpoints.VecView(end))
	if err := dir.Unit(dir); err != nil {
		return &Window{Start: start, End: end, Label: label,
			Err: Error{DegenerateDirection, "", []string{"windowAt"}, false}}
	}
	m := end - start + 1 //steps+1 raw samples, extremum included
	vals := energies[start : end+1]
	kpts := path.Kpoints.View(start, m)
	w := &Window{Start: start, End: end, Dir: dir, Label: label}
	w.Energies = make([]float64, 0, 2*m-1)
	w.Kpoints = v3.Zeros(2*m - 1)
	mirrored := v3.Zeros(m)
	if x < 0 {
		//The extremum sits at the high end of the raw window: the raw
		//samples come first and the reflection, minus the duplicated
		//extremum, is appended behind them.
		w.Energies = append(w.Energies, vals...)
		for i := m - 2; i >= 0; i-- {
			w.Energies = append(w.Energies, vals[i])
		}
		mirrored.Mirror(kpts, kpts.VecView(m-1))
		setVec(w.Kpoints, 0, kpts, 0, m)
		for i := 0; i < m-1; i++ {
			setVec(w.Kpoints, m+i, mirrored, m-2-i, 1)
		}
	} else {
		//Extremum at the low end: the reflection comes first, already
		//reversed, and the raw samples minus the extremum follow.
		for i := m - 1; i >= 0; i-- {
			w.Energies = append(w.Energies, vals[i])
		}
		w.Energies = append(w.Energies, vals[1:]...)
		mirrored.Mirror(kpts, kpts.VecView(0))
		for i := 0; i < m; i++ {
			setVec(w.Kpoints, i, mirrored, m-1-i, 1)
		}
		setVec(w.Kpoints, m, kpts, 1, m-1)
	}
	return w
}

//setVec copies n consecutive points of src, starting at srow, into dst
//starting at drow.
func setVec(dst *v3.Matrix, drow int, src *v3.Matrix, srow, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			dst.Set(drow+i, j, src.At(srow+i, j))
		}
	}
}
