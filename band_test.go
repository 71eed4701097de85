/*
 * band_test.go, part of goband.
 *
 * Copyright 2021 Raul Mera <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 */

package band

import (
	"fmt"
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/goband/v3"
	"gonum.org/v1/gonum/mat"
)

//testPath returns a 3-point path with the valence maximum and the
//conduction minimum both at the middle k-point.
func testPath(Te *testing.T) *Path {
	k, err := v3.NewMatrix([]float64{0, 0, 0, 0.5, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	p, err := NewPath(k, []float64{-1.0, -0.2, -1.0}, []float64{3.0, 2.0, 3.0})
	if err != nil {
		Te.Fatal(err)
	}
	return p
}

func testOptions() *Options {
	o := DefaultOptions()
	o.Tol(1e-4)
	o.Steps(1)
	return o
}

func TestFindEdges(Te *testing.T) {
	p := testPath(Te)
	e, err := FindEdges(p, testOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if len(e.VBM) != 1 || e.VBM[0].Kpoint != 2 || e.VBM[0].Energy != -0.2 {
		Te.Errorf("Wrong VBM points: %+v", e.VBM)
	}
	if len(e.CBM) != 1 || e.CBM[0].Kpoint != 2 || e.CBM[0].Energy != 2.0 {
		Te.Errorf("Wrong CBM points: %+v", e.CBM)
	}
	if math.Abs(e.IndirectGap-2.2) > 1e-12 {
		Te.Errorf("Indirect gap %f, expected 2.2", e.IndirectGap)
	}
	if math.Abs(e.DirectGap-2.2) > 1e-12 || len(e.DirectPoints) != 1 || e.DirectPoints[0].Kpoint != 2 {
		Te.Errorf("Wrong direct gap: %f at %+v", e.DirectGap, e.DirectPoints)
	}
	fmt.Println("Edges found:", e.VBM[0], e.CBM[0])
}

func TestFindEdgesInvalidInput(Te *testing.T) {
	k, _ := v3.NewMatrix([]float64{0, 0, 0})
	if _, err := NewPath(k, []float64{}, []float64{1}); err == nil {
		Te.Error("Expected an error for an empty valence band")
	}
	if _, err := FindEdges(nil, testOptions()); err == nil {
		Te.Error("Expected an error for a nil path")
	}
	//A zero-value Options carries a non-positive tolerance.
	if _, err := FindEdges(testPath(Te), new(Options)); err == nil {
		Te.Error("Expected an error for a non-positive tolerance")
	} else if e, ok := err.(Error); !ok || e.Message() != InvalidInput {
		Te.Errorf("Expected InvalidInput, got %v", err)
	}
}

//TestForcedKpoints checks both the forced-index sets and the
//first-found pairing the indirect gap is computed with: forcing the
//first k-point into the VBM set makes it the first point found, so the
//indirect gap pairs it with the conduction minimum.
func TestForcedKpoints(Te *testing.T) {
	p := testPath(Te)
	o := testOptions()
	o.VKpoints([]int{1})
	e, err := FindEdges(p, o)
	if err != nil {
		Te.Fatal(err)
	}
	if len(e.VBM) != 2 || e.VBM[0].Kpoint != 1 || e.VBM[1].Kpoint != 2 {
		Te.Errorf("Forced VBM point missing or out of order: %+v", e.VBM)
	}
	if math.Abs(e.IndirectGap-3.0) > 1e-12 {
		Te.Errorf("First-found pairing should give 3.0, got %f", e.IndirectGap)
	}
}

func TestDirectGapCluster(Te *testing.T) {
	k, _ := v3.NewMatrix([]float64{0, 0, 0, 0.5, 0, 0, 1, 0, 0})
	p, err := NewPath(k, []float64{0, -1, 0}, []float64{1, 3, 1})
	if err != nil {
		Te.Fatal(err)
	}
	e, err := FindEdges(p, testOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if len(e.DirectPoints) != 2 || e.DirectPoints[0].Kpoint != 1 || e.DirectPoints[1].Kpoint != 3 {
		Te.Errorf("Expected the direct gap at k-points 1 and 3, got %+v", e.DirectPoints)
	}
}

func TestAdvisoryFlags(Te *testing.T) {
	p := testPath(Te)
	p.NominalVBM = &Nominal{Band: 4, Kpoint: 17, Energy: -0.1}
	p.NominalCBM = &Nominal{Band: 5, Kpoint: 17, Energy: 1.0}
	e, err := FindEdges(p, testOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if len(e.Flags) != 2 {
		Te.Fatalf("Expected 2 advisory flags, got %d: %v", len(e.Flags), e.Flags)
	}
	if !strings.Contains(e.Flags[0], "higher VBM") || !strings.Contains(e.Flags[1], "lower CBM") {
		Te.Errorf("Unexpected flag text: %v", e.Flags)
	}
	//The flags are advisory only: the results are those of the path.
	if e.VBM[0].Energy != -0.2 || e.CBM[0].Energy != 2.0 {
		Te.Error("Advisory flags altered the edge results")
	}
}

func TestStats(Te *testing.T) {
	p := testPath(Te)
	recip := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	rep, err := Stats(p, recip, testOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if len(rep.HoleMasses) != 2 || len(rep.ElectronMasses) != 2 {
		Te.Fatalf("Expected 2 windows per edge, got %d and %d", len(rep.HoleMasses), len(rep.ElectronMasses))
	}
	//vb = -3.2*x^2 centered on the edge, so m_h = HBar2/(2*-3.2).
	wantH := HBar2 / (2 * -3.2)
	//cb = 4*x^2 + 2 centered on the edge, so m_e = HBar2/(2*4).
	wantE := HBar2 / (2 * 4.0)
	for _, m := range rep.HoleMasses {
		if m.Err != nil {
			Te.Fatal(m.Err)
		}
		if math.Abs(m.Mass-wantH) > 1e-6 {
			Te.Errorf("m_h from %s = %f, expected %f", m.Describe(), m.Mass, wantH)
		}
		if m.Mass >= 0 {
			Te.Error("Hole masses should come out negative by convention")
		}
	}
	for _, m := range rep.ElectronMasses {
		if m.Err != nil {
			Te.Fatal(m.Err)
		}
		if math.Abs(m.Mass-wantE) > 1e-6 {
			Te.Errorf("m_e from %s = %f, expected %f", m.Describe(), m.Mass, wantE)
		}
	}
}

//TestStatsPartial checks that a window whose direction is degenerate
//annotates its mass entry without taking down the rest of the report.
func TestStatsPartial(Te *testing.T) {
	//k-points 2 and 3 coincide, so the forward window from the edge at
	//k-point 2 has no direction.
	k, _ := v3.NewMatrix([]float64{0, 0, 0, 0.5, 0, 0, 0.5, 0, 0})
	p, err := NewPath(k, []float64{-1.0, -0.2, -1.0}, []float64{3.0, 2.0, 3.0})
	if err != nil {
		Te.Fatal(err)
	}
	recip := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	rep, err := Stats(p, recip, testOptions())
	if err != nil {
		Te.Fatal(err)
	}
	var failed, succeeded int
	for _, m := range rep.HoleMasses {
		if m.Err != nil {
			failed++
			if e, ok := m.Err.(Error); !ok || e.Message() != DegenerateDirection {
				Te.Errorf("Expected DegenerateDirection, got %v", m.Err)
			}
			if m.Start != 2 || m.End != 3 {
				Te.Errorf("Wrong bounds on the failed entry: %d %d", m.Start, m.End)
			}
		} else {
			succeeded++
			//the backward window from the edge is intact and must be
			//fitted: its projected samples lie on a parabola with
			//quadratic coefficient -3.2.
			want := HBar2 / (2 * -3.2)
			if math.Abs(m.Mass-want) > 1e-9 {
				Te.Errorf("Mass from the surviving window: got %f, expected %f", m.Mass, want)
			}
		}
	}
	if failed != 1 {
		Te.Errorf("Expected exactly one annotated window failure, got %d", failed)
	}
	if succeeded != 1 {
		Te.Errorf("The valid sibling window must survive the degenerate one: %d fitted", succeeded)
	}
	if rep.DirectGap == 0 || len(rep.VBM) == 0 {
		Te.Error("Partial failure should not erase the gap results")
	}
}

func TestReportJSON(Te *testing.T) {
	p := testPath(Te)
	recip := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	rep, err := Stats(p, recip, testOptions())
	if err != nil {
		Te.Fatal(err)
	}
	j, err := rep.MarshalJSON()
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(j), "\"indirect_gap\":2.2") {
		Te.Errorf("Unexpected JSON: %s", string(j))
	}
}
