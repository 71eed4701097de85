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

package band

import "fmt"

//Errors

// Interface is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decorate slice should contain a list of functions in the calling
// stack, plus, for each function, any relevant information, in the format
// "FunctionName: Extra info".
type Interface interface {
	Error() string
	Decorate(string) []string
}

//errDecorate is a helper function that asserts that the error implements
//band.Interface and decorates the error with the caller's name before
//returning it. If used with any other error type, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Interface)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for band analysis errors.
//It fulfills the band.Interface interface.
type Error struct {
	message  string
	detail   string //extra information on the specific failure, or empty.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.detail == "" {
		return fmt.Sprintf("goband error: %s", err.message)
	}
	return fmt.Sprintf("goband error: %s: %s", err.message, err.detail)
}

//Decorate adds new information to the error and returns the
//current decoration slice.
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and
	//tries to alter the receiver, it should work, since err.deco is a
	//slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Message returns the sentinel message identifying the kind of failure,
//one of the constants below.
func (err Error) Message() string { return err.message }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//The error kinds produced by the band analysis pipeline. A caller that
//needs to distinguish them can type-assert to band.Error and compare
//Message() against these.
const (
	InvalidInput        = "Empty or mismatched band structure input"
	DegenerateDirection = "Window end-points coincide in reciprocal space"
	SingularFit         = "Not enough distinct points for a quadratic fit"
	BadLattice          = "Lattice matrix is singular or malformed"
)
