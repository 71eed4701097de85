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

//optplot calculates and plots optical absorption spectra from the
//dielectric functions in one or more vasprun.xml files (gzipped ones
//included). Absorption is given in cm^-1. The data behind each curve
//is also written to a text file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmera/goband/bandplot"
	"github.com/rmera/goband/optics"
	"github.com/rmera/goband/vasp"
)

//stringList collects a flag given several times.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var filenames stringList
	var labels stringList
	flag.Var(&filenames, "f", "vasprun.xml file to plot, give several times for several spectra")
	flag.Var(&labels, "l", "label for the corresponding spectrum, give one per -f")
	gaussian := flag.Float64("g", 0, "standard deviation for Gaussian broadening, in eV (0 for none)")
	gaps := flag.String("b", "", "fundamental band gaps to mark, comma separated, one per spectrum")
	anisotropic := flag.Bool("a", false, "give the absorption separated into the x, y and z directions")
	prefix := flag.String("p", "", "prefix for the files generated")
	directory := flag.String("d", "", "output directory for the files generated")
	format := flag.String("format", "pdf", "image format: pdf, png, svg, among others")
	width := flag.Float64("width", 15, "width of the figure, in cm")
	height := flag.Float64("height", 10, "height of the figure, in cm")
	xmin := flag.Float64("xmin", 0, "minimum energy on the x axis")
	xmax := flag.Float64("xmax", 0, "maximum energy on the x axis (0 takes it from the data)")
	ymin := flag.Float64("ymin", 0, "minimum absorption on the y axis")
	ymax := flag.Float64("ymax", 1e5, "maximum absorption on the y axis")
	flag.Parse()

	if len(filenames) == 0 {
		filenames = stringList{"vasprun.xml"}
	}
	if len(labels) > 0 && len(labels) != len(filenames) {
		log.Fatal("optplot: one label per vasprun file is needed")
	}
	gapvals, err := parseGaps(*gaps, len(filenames))
	if err != nil {
		log.Fatal(err)
	}

	spectra := make([]*optics.Spectrum, 0, len(filenames))
	for i, fn := range filenames {
		d, err := vasp.ReadDielectric(fn)
		if err != nil {
			log.Fatal(err)
		}
		if *gaussian > 0 {
			d = d.Broaden(*gaussian)
		}
		s := optics.Absorption(d, !*anisotropic)
		if len(labels) > 0 {
			s.Label = labels[i]
		} else if len(filenames) > 1 {
			s.Label = strings.TrimSuffix(filepath.Base(fn), ".xml")
		}
		spectra = append(spectra, s)
	}

	for _, s := range spectra {
		dataprefix := *prefix
		if s.Label != "" {
			if dataprefix != "" {
				dataprefix = dataprefix + "_"
			}
			dataprefix = dataprefix + s.Label
		}
		written, err := s.WriteFile(*directory, dataprefix)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Wrote", written)
	}

	plotname := "absorption." + *format
	if *prefix != "" {
		plotname = *prefix + "_" + plotname
	}
	if *directory != "" {
		if err := os.MkdirAll(*directory, 0755); err != nil {
			log.Fatal(err)
		}
		plotname = filepath.Join(*directory, plotname)
	}
	o := bandplot.DefaultOptions()
	o.Size(*width, *height)
	if *xmax > *xmin {
		o.XRange(*xmin, *xmax)
	}
	if *ymax > *ymin {
		o.YRange(*ymin, *ymax)
	}
	if err := bandplot.Absorption(spectra, gapvals, plotname, o); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote", plotname)
}

//parseGaps turns a comma-separated list of band gaps into one float
//per spectrum. An empty string means no gap markers.
func parseGaps(s string, nspectra int) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) != nspectra {
		return nil, fmt.Errorf("optplot: %d band gaps given for %d spectra", len(fields), nspectra)
	}
	ret := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("optplot: badly formatted band gap list %q: %v", s, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
