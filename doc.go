/*
 * doc.go, part of goband.
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

/*Package band is the main package of the goband library. It extracts
physical quantities from electronic-structure calculation output: band
gaps, band-edge locations and carrier effective masses from a band
structure sampled along a high-symmetry k-point path.


	**goband capabilities**

    Locates all the k-points hosting the valence-band maximum and the
	conduction-band minimum within an energy tolerance, including
	degenerate band edges.

    Reports the indirect band gap and the direct band gap, together
	with the cluster of k-points sharing the minimum direct gap.

    Builds k-point-symmetric sampling windows around each band edge by
	reflecting the available one-sided path data, so a quadratic fit
	sees a roughly symmetric sampling even at path end-points.

    Fits the band energy against the reciprocal-space distance along
	each window and converts the curvature into an effective mass in
	units of the free-electron mass.

    Reads VASP POSCAR/CONTCAR, PROCAR and vasprun.xml dielectric data
	(package vasp), computes optical absorption spectra (package
	optics) and plots them (package bandplot, uses gonum/plot).

The pipeline is purely functional: every stage consumes immutable inputs
and returns new values, so independent analyses can run concurrently
with no coordination. Errors never abort a whole report; a window whose
fit fails gets a per-window error annotation and the rest of the report
survives.

goband stores sets of k-points in the v3.Matrix type, a row-major Nx3
matrix based on gonum's Dense (package github.com/rmera/goband/v3).*/
package band
