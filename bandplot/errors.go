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

package bandplot

import "fmt"

//Error is the error type for the bandplot package.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goband/bandplot error: %s, plot %s", err.message, err.filename)
}

//Decorate adds the given string to the decoration slice of the error
//and returns the updated slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Message returns a short description of the error.
func (err Error) Message() string {
	return err.message
}

//FileName returns the file to which the plot was to be saved.
func (err Error) FileName() string {
	return err.filename
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool {
	return err.critical
}

//errDecorate wraps errors from gonum/plot so they carry the usual
//decoration trail.
func errDecorate(err error, caller string) error {
	err2, ok := err.(interface{ Decorate(string) []string })
	if !ok {
		return Error{message: err.Error(), deco: []string{caller}, critical: true}
	}
	err2.Decorate(caller)
	return err2.(error)
}

//Common errors of the bandplot package.
const (
	NothingToPlot  = "No spectra were given"
	MismatchedGaps = "One gap per spectrum is needed when gap markers are requested"
	SaveFailed     = "Could not save the figure"
)
