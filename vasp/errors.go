/*
 * errors.go, part of goband.
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
	"fmt"

	band "github.com/rmera/goband"
)

//errDecorate is a helper function that asserts that the error
//implements band.Interface and decorates the error with the caller's
//name before returning it. If used with any other error type, it will
//cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(band.Interface)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for VASP file errors. It fulfills the
//band.Interface interface.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("VASP file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error and returns the current
//decoration slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file the failing read was associated to.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in file"
	NoDielectric = "No dielectric function in file"
	NoBandEdges  = "Could not locate band edges from the occupancies"
)
