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

/*Package v3 implements a Matrix type representing a row-major Nx3 matrix.
In goband a v3.Matrix holds sets of points in reciprocal space, one k-point
per row, either in fractional or in Cartesian coordinates. It is based on
gonum's (gonum.org/v1/gonum/mat) Dense type, with additional restrictions
because of the fixed number of columns and with the few extra operations
that k-point window construction needs, such as reflecting a set of points
through a common center.
*/
package v3
