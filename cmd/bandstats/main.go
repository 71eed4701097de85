/*
 * main.go, part of goband.
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

//bandstats reports the nature and size of the band gaps, and the
//effective masses at the band edges, from the CONTCAR and PROCAR of a
//band-structure calculation in the working directory. Everything
//printed also goes to bandstats.log.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	band "github.com/rmera/goband"
	"github.com/rmera/goband/vasp"
)

func main() {
	tol := flag.Float64("t", band.DefTol, "tolerance for finding the individual VBMs/CBMs, in eV")
	steps := flag.Int("s", band.DefSteps, "number of points from the VBM/CBM to sample")
	vkpts := flag.String("v", "", "k-points to force into the hole-mass calculation, comma separated, starting from 1")
	ckpts := flag.String("c", "", "k-points to force into the electron-mass calculation, comma separated, starting from 1")
	jsonout := flag.String("json", "", "also write the full report, as JSON, to the given file")
	poscarname := flag.String("poscar", "CONTCAR", "POSCAR/CONTCAR file with the relaxed structure")
	procarname := flag.String("procar", "PROCAR", "PROCAR file with the band eigenvalues")
	flag.Parse()

	logfile, err := os.Create("bandstats.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logfile.Close()
	out := log.New(io.MultiWriter(os.Stdout, logfile), "", 0)

	o := band.DefaultOptions()
	o.Tol(*tol)
	o.Steps(*steps)
	if kpts, err := parseInts(*vkpts); err != nil {
		log.Fatal(err)
	} else {
		o.VKpoints(kpts)
	}
	if kpts, err := parseInts(*ckpts); err != nil {
		log.Fatal(err)
	} else {
		o.CKpoints(kpts)
	}

	poscar, err := vasp.ReadPoscar(*poscarname)
	if err != nil {
		log.Fatal(err)
	}
	procar, err := vasp.ReadProcar(*procarname)
	if err != nil {
		log.Fatal(err)
	}
	recip, err := band.Reciprocal(poscar.Lattice)
	if err != nil {
		log.Fatal(err)
	}
	path, err := procar.EdgePath()
	if err != nil {
		log.Fatal(err)
	}
	rep, err := band.Stats(path, recip, o)
	if err != nil {
		log.Fatal(err)
	}
	printReport(out, rep)
	if *jsonout != "" {
		if err := writeJSON(*jsonout, rep); err != nil {
			log.Fatal(err)
		}
	}
}

func printReport(out *log.Logger, rep *band.Report) {
	for _, f := range rep.Flags {
		out.Println(f)
	}
	out.Printf("\nFound the VBM at %d points:", len(rep.VBM))
	for _, p := range rep.VBM {
		printPoint(out, p.Coord.String(), p.Kpoint, p.Energy, true)
	}
	out.Printf("Found the CBM at %d points:", len(rep.CBM))
	for _, p := range rep.CBM {
		printPoint(out, p.Coord.String(), p.Kpoint, p.Energy, true)
	}
	out.Printf("\nIndirect band gap: %.4f", rep.IndirectGap)
	out.Printf("Direct band gap: %.4f found at %d points:", rep.DirectGap, len(rep.DirectPoints))
	for _, p := range rep.DirectPoints {
		printPoint(out, p.Coord.String(), p.Kpoint, 0, false)
	}
	out.Println("")
	for _, m := range rep.HoleMasses {
		if m.Err != nil {
			out.Printf("m_h from %s could not be obtained: %v", m.Describe(), m.Err)
			continue
		}
		out.Printf("m_h from %s = %.4f", m.Describe(), m.Mass)
	}
	out.Println("")
	for _, m := range rep.ElectronMasses {
		if m.Err != nil {
			out.Printf("m_e from %s could not be obtained: %v", m.Describe(), m.Err)
			continue
		}
		out.Printf("m_e from %s = %.4f", m.Describe(), m.Mass)
	}
}

func printPoint(out *log.Logger, coord string, kpoint int, energy float64, withE bool) {
	coord = strings.Trim(coord, "[]")
	if withE {
		out.Printf("\t%s  (kpoint #%d)  with E = %.8f", coord, kpoint, energy)
		return
	}
	out.Printf("\t%s  (kpoint #%d)", coord, kpoint)
}

func writeJSON(filename string, rep *band.Report) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

//parseInts turns a comma-separated list of 1-based k-point numbers
//into a slice of ints. An empty string gives a nil slice.
func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ret := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bandstats: badly formatted k-point list %q: %v", s, err)
		}
		ret = append(ret, n)
	}
	return ret, nil
}
