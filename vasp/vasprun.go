/*
 * vasprun.go, part of goband.
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
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rmera/goband/optics"
)

//ReadDielectric reads the first frequency-dependent dielectric function
//of a vasprun.xml file (gzipped if the name ends in .gz). vasprun.xml
//files run to hundreds of megabytes, so the XML is streamed and
//everything outside the <dielectricfunction> block is skipped without
//building a document tree.
func ReadDielectric(filename string) (*optics.Dielectric, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"ReadDielectric"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{UnableToOpen + ": " + err.Error(), filename, []string{"ReadDielectric"}, true}
		}
		defer gz.Close()
		r = gz
	}
	dec := xml.NewDecoder(r)
	var energies []float64
	var re, im [][]float64
	var inDielectric bool
	var part string //"real", "imag" or ""
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Error{WrongFormat + ": " + err.Error(), filename, []string{"ReadDielectric"}, true}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "dielectricfunction":
				inDielectric = true
			case "imag", "real":
				if inDielectric {
					part = t.Name.Local
				}
			case "r":
				if !inDielectric || part == "" {
					continue
				}
				var raw string
				if err := dec.DecodeElement(&raw, &t); err != nil {
					return nil, Error{WrongFormat + ": " + err.Error(), filename, []string{"ReadDielectric"}, true}
				}
				row, err := parseFloats(raw, 7)
				if err != nil {
					return nil, Error{WrongFormat + ": bad dielectric row", filename, []string{"ReadDielectric"}, true}
				}
				if part == "imag" {
					im = append(im, row[1:])
					//the energy grid is shared between both parts
					if len(re) == 0 {
						energies = append(energies, row[0])
					}
				} else {
					re = append(re, row[1:])
					if len(im) == 0 {
						energies = append(energies, row[0])
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "imag", "real":
				part = ""
			case "dielectricfunction":
				if inDielectric && len(im) > 0 && len(re) > 0 {
					//only the first block is wanted; VASP can write
					//several (density-density, current-current).
					d, err := optics.NewDielectric(energies, re, im)
					if err != nil {
						return nil, errDecorate(err, "ReadDielectric")
					}
					return d, nil
				}
				inDielectric = false
			}
		}
	}
	return nil, Error{NoDielectric, filename, []string{"ReadDielectric"}, true}
}
