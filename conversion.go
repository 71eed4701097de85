/*
 * conversion.go, part of goband.
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

//This provides useful conversion factors and other constants

//Conversions
const (
	//HBar2 is hbar^2 in eV * Angstrom^2 * electron masses. Dividing it by a
	//band curvature in eV/Angstrom^-2 gives an effective mass in units of
	//the free-electron mass.
	HBar2 = 7.61996348863
	//HC is h*c in eV*cm, used to convert extinction coefficients into
	//absorption in cm^-1.
	HC = 1.23984212e-4
)

//Defaults
const (
	//DefTol is the default tolerance, in eV, for considering two band
	//energies degenerate.
	DefTol = 0.0002
	//DefSteps is the default number of k-points to each side of a band
	//edge used for the effective-mass fit.
	DefSteps = 2
)
