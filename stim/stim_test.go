// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

// constFrame returns a ySize x xSize frame filled with val
func constFrame(ySize, xSize int, val float32) *Frame {
	fr := NewFrame("const", ySize, xSize, 1)
	for i := range fr.Img.Values {
		fr.Img.Values[i] = val
	}
	return fr
}

func TestBlendComposition(t *testing.T) {
	fixed := constFrame(4, 4, 1)
	mod := constFrame(4, 4, 3)
	sq := NewSequence(Blend, fixed, mod, []float32{0, 0.5, 1})
	cory := []float32{1, 2, 3}
	for i, cor := range cory {
		fr, err := sq.Compose(i)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range fr.Values {
			if math32.Abs(v-cor) > difTol {
				t.Errorf("blend err: frame: %v, val: %v, cor: %v\n", i, v, cor)
			}
		}
	}
}

func TestAddComposition(t *testing.T) {
	fixed := constFrame(3, 5, 2)
	mod := constFrame(3, 5, 4)
	sq := NewSequence(Add, fixed, mod, []float32{0, 1, 0.25})
	cory := []float32{2, 6, 3}
	for i, cor := range cory {
		fr, err := sq.Compose(i)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range fr.Values {
			if math32.Abs(v-cor) > difTol {
				t.Errorf("add err: frame: %v, val: %v, cor: %v\n", i, v, cor)
			}
		}
	}
}

func TestCompositionValidation(t *testing.T) {
	fixed := constFrame(2, 2, 1)
	mod := constFrame(2, 2, 1)
	sq := NewSequence(Composition(7), fixed, mod, []float32{0})
	if _, err := sq.Compose(0); err == nil {
		t.Errorf("expected error for unknown composition rule\n")
	}
	sq = NewSequence(Blend, fixed, nil, []float32{0})
	if err := sq.Validate(); err == nil {
		t.Errorf("expected error for missing mod frame\n")
	}
	sq = NewSequence(Blend, fixed, constFrame(3, 3, 1), []float32{0})
	if err := sq.Validate(); err == nil {
		t.Errorf("expected error for mismatched frame shapes\n")
	}
}

func TestValueRangeDegenerate(t *testing.T) {
	fr := constFrame(4, 4, 2)
	rng := ValueRange(&fr.Img)
	if math32.Abs(rng.Min-1.98) > difTol || math32.Abs(rng.Max-2.02) > difTol {
		t.Errorf("degenerate range should widen by 1 percent: %v .. %v\n", rng.Min, rng.Max)
	}
	zfr := constFrame(4, 4, 0)
	rng = ValueRange(&zfr.Img)
	if math32.Abs(rng.Min+0.01) > difTol || math32.Abs(rng.Max-0.01) > difTol {
		t.Errorf("degenerate zero range should widen to +/- 0.01: %v .. %v\n", rng.Min, rng.Max)
	}
}

func TestUnitNorm(t *testing.T) {
	fr := NewFrame("ramp", 1, 5, 1)
	for i := range fr.Img.Values {
		fr.Img.Values[i] = float32(i)
	}
	UnitNorm(&fr.Img)
	cory := []float32{0, 0.25, 0.5, 0.75, 1}
	for i, cor := range cory {
		if math32.Abs(fr.Img.Values[i]-cor) > difTol {
			t.Errorf("unit norm err: idx: %v, val: %v, cor: %v\n", i, fr.Img.Values[i], cor)
		}
	}
}

func TestFrameFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}
	fr := FrameFromImage(img, "red", image.Point{4, 4}, false)
	if fr.NChans() != 3 {
		t.Fatalf("expected 3 channels, got %v\n", fr.NChans())
	}
	if math32.Abs(fr.Img.Value([]int{0, 0, 0})-1) > difTol {
		t.Errorf("red channel should be 1: %v\n", fr.Img.Value([]int{0, 0, 0}))
	}
	if fr.Img.Value([]int{0, 0, 1}) > difTol {
		t.Errorf("green channel should be 0\n")
	}
	gfr := FrameFromImage(img, "grey", image.Point{4, 4}, true)
	if gfr.NChans() != 1 {
		t.Fatalf("expected 1 channel, got %v\n", gfr.NChans())
	}
	if math32.Abs(gfr.Img.Value([]int{0, 0})-1.0/3) > difTol {
		t.Errorf("grey value should be 1/3: %v\n", gfr.Img.Value([]int{0, 0}))
	}
}
