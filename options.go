/*
 * options.go, part of goband.
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

//Options collects the tunable parameters of a band analysis.
type Options struct {
	tol    float64
	steps  int
	vkpts  []int
	ckpts  []int
	labels map[int]string
}

//DefaultOptions returns an Options with the default parameters.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.tol = DefTol
	ret.steps = DefSteps
	return ret
}

//Tol returns the energy tolerance, in eV, within which two band energies
//are considered degenerate, and sets it to the value given, if any valid
//(positive) value is given.
func (o *Options) Tol(tol ...float64) float64 {
	ret := o.tol
	if len(tol) > 0 && tol[0] > 0 {
		o.tol = tol[0]
	}
	return ret
}

//Steps returns the number of k-points sampled to each side of a band
//edge for the effective-mass fit, and sets it, if a valid (>=1) value
//is given.
func (o *Options) Steps(steps ...int) int {
	ret := o.steps
	if len(steps) > 0 && steps[0] >= 1 {
		o.steps = steps[0]
	}
	return ret
}

//VKpoints returns the 1-based k-point indexes force-included among the
//valence-band maxima regardless of tolerance, and sets them, if given.
func (o *Options) VKpoints(kpts ...[]int) []int {
	ret := o.vkpts
	if len(kpts) > 0 {
		o.vkpts = kpts[0]
	}
	return ret
}

//CKpoints returns the 1-based k-point indexes force-included among the
//conduction-band minima regardless of tolerance, and sets them, if given.
func (o *Options) CKpoints(kpts ...[]int) []int {
	ret := o.ckpts
	if len(kpts) > 0 {
		o.ckpts = kpts[0]
	}
	return ret
}

//Labels returns the table of human-readable labels attached to 1-based
//k-point indexes (e.g. "Gamma", "X"), and sets it, if given. Windows
//built on an extremum whose k-index appears in the table inherit its
//label.
func (o *Options) Labels(labels ...map[int]string) map[int]string {
	ret := o.labels
	if len(labels) > 0 {
		o.labels = labels[0]
	}
	return ret
}
