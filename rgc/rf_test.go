// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

func TestSupportScenarios(t *testing.T) {
	pf, err := NewProfile(OnMidget)
	if err != nil {
		t.Fatal(err)
	}
	// max(7, floor(1 + 0.2*0)) = 7 at the fovea
	if sup := pf.Support(0); sup != 7 {
		t.Errorf("onmidget support at ecc 0: %v, want 7\n", sup)
	}
	pf, err = NewProfile(OnDiffuse)
	if err != nil {
		t.Fatal(err)
	}
	// floor(2 + 0.3*30) = 11 is below the diffuse floor of 12
	if sup := pf.Support(30); sup != 12 {
		t.Errorf("ondiffuse support at ecc 30: %v, want 12\n", sup)
	}
	if sup := pf.Support(40); sup != 14 {
		t.Errorf("ondiffuse support at ecc 40: %v, want 14\n", sup)
	}
	pf, err = NewProfile(SmallBistratified)
	if err != nil {
		t.Fatal(err)
	}
	for _, ecc := range []float32{0, 10, 50} {
		if sup := pf.Support(ecc); sup != 15 {
			t.Errorf("small bistratified support at ecc %v: %v, want fixed 15\n", ecc, sup)
		}
	}
}

func TestSupportMonotonic(t *testing.T) {
	for ct := OnDiffuse; ct < CellTypeN; ct++ {
		pf, err := NewProfile(ct)
		if err != nil {
			t.Fatal(err)
		}
		prev := 0
		for ecc := float32(0); ecc <= 60; ecc += 0.5 {
			sup := pf.Support(ecc)
			if sup < pf.MinSupport {
				t.Errorf("%v support below floor at ecc %v: %v\n", ct, ecc, sup)
			}
			if sup < prev {
				t.Errorf("%v support decreasing at ecc %v: %v < %v\n", ct, ecc, sup, prev)
			}
			prev = sup
		}
	}
}

func TestUnknownCellType(t *testing.T) {
	if _, err := NewProfile(CellType(99)); err == nil {
		t.Errorf("expected error for unrecognized cell type\n")
	}
	if _, err := NewMosaic("bad", CellTypeN, ConeMosaicRef{Rows: 8, Cols: 8, Pitch: 0.002}, 0); err == nil {
		t.Errorf("mosaic construction should fail fast on unrecognized cell type\n")
	}
}

func TestKernels(t *testing.T) {
	pf, err := NewProfile(OnMidget)
	if err != nil {
		t.Fatal(err)
	}
	ctr, sur, err := pf.Kernels(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ctr.Dim(0) != 7 || ctr.Dim(1) != 7 || sur.Dim(0) != 7 || sur.Dim(1) != 7 {
		t.Fatalf("kernels must be square support x support: %v x %v\n", ctr.Dim(0), ctr.Dim(1))
	}
	csum, ssum := float32(0), float32(0)
	for i := range ctr.Values {
		csum += ctr.Values[i]
		ssum += sur.Values[i]
	}
	if math32.Abs(csum-1) > difTol {
		t.Errorf("center kernel sum: %v, want 1\n", csum)
	}
	// midget surround amplitude is scaled by 1.3
	if math32.Abs(ssum-1.3) > difTol {
		t.Errorf("surround kernel sum: %v, want 1.3\n", ssum)
	}
	// center peak at the middle, symmetric falloff
	pk := ctr.Value([]int{3, 3})
	if ctr.Value([]int{0, 0}) >= pk {
		t.Errorf("center kernel corner should be below peak\n")
	}
	if math32.Abs(ctr.Value([]int{3, 0})-ctr.Value([]int{0, 3})) > difTol {
		t.Errorf("center kernel should be isotropic\n")
	}
	// surround is broader: relatively more weight off-center
	if sur.Value([]int{0, 0})/sur.Value([]int{3, 3}) <= ctr.Value([]int{0, 0})/pk {
		t.Errorf("surround should be broader than center\n")
	}
	// a degenerate Gaussian sigma would produce NaN kernels
	if _, _, err := pf.Kernels(0, 0); err == nil {
		t.Errorf("expected error for non-positive spread\n")
	}
	if _, _, err := pf.Kernels(0, -1); err == nil {
		t.Errorf("expected error for negative spread\n")
	}
}

func TestBuildGrid(t *testing.T) {
	locs, rows, cols, err := BuildGrid(ConeMosaicRef{Rows: 8, Cols: 8, Pitch: 0.002}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 4 || cols != 4 {
		t.Fatalf("grid dims: %v x %v, want 4 x 4\n", rows, cols)
	}
	// grid mean must be the origin
	var mx, my float32
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			mx += locs.Value([]int{r, c, 0})
			my += locs.Value([]int{r, c, 1})
		}
	}
	n := float32(rows * cols)
	if math32.Abs(mx/n) > difTol || math32.Abs(my/n) > difTol {
		t.Errorf("grid not recentered: mean = (%v, %v)\n", mx/n, my/n)
	}
	// stride spacing between neighbors
	d := locs.Value([]int{0, 1, 0}) - locs.Value([]int{0, 0, 0})
	if math32.Abs(d-2) > difTol {
		t.Errorf("grid stride: %v, want 2\n", d)
	}
	if _, _, _, err := BuildGrid(ConeMosaicRef{Rows: 8, Cols: 8}, 0); err == nil {
		t.Errorf("expected error for non-positive stride\n")
	}
	if _, _, _, err := BuildGrid(ConeMosaicRef{Rows: 0, Cols: 8}, 1); err == nil {
		t.Errorf("expected error for empty reference mosaic\n")
	}
}
