// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim provides time-varying stimulus sequences for the retinal
pipeline: ordered lists of optical image frames, each tagged with a time
value, plus the per-frame modulation weights and composition rule that
combine a fixed background frame with a modulated stimulus frame at each
time step.
*/
package stim

import (
	"fmt"
	"log"

	"github.com/emer/etable/v2/etensor"
	"github.com/goki/ki/kit"
)

// Composition is the rule for combining the fixed and modulated frames of a
// sequence at each time step.
type Composition int

//go:generate stringer -type=Composition

var KiT_Composition = kit.Enums.AddEnum(CompositionN, kit.NotBitFlag, nil)

func (ev Composition) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Composition) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Blend is the convex combination (1-w)*fixed + w*modulated.
	// Weights are expected in [0,1] but this is not enforced: values
	// outside that range extrapolate, and keeping them sensible is the
	// caller's responsibility.
	Blend Composition = iota

	// Add is fixed + w*modulated
	Add

	CompositionN
)

// Frame is one optical image in a sequence: a 2D (Y,X) or 3D (Y,X,Chan)
// tensor of irradiance / illuminance values plus the per-frame metadata
// supplied by the optical image provider.
type Frame struct {

	// identifier from the image provider
	Name string

	// time of this frame in the sequence, seconds
	Time float32

	// spatial sample spacing, retinal mm per sample
	SampleSpacing float32

	// wavelength support of the channel dimension, nm (nil for scalar frames)
	Wavelengths []float32

	// image values, shape (Y,X) or (Y,X,Chan)
	Img etensor.Float32
}

// NChans returns the number of channels in the frame (1 for 2D frames).
func (fr *Frame) NChans() int {
	if fr.Img.NumDims() == 3 {
		return fr.Img.Dim(2)
	}
	return 1
}

// NewFrame returns a frame with an allocated (Y,X) or (Y,X,Chan) image
// tensor; chans <= 1 allocates a 2D frame.
func NewFrame(name string, ySize, xSize, chans int) *Frame {
	fr := &Frame{Name: name}
	if chans > 1 {
		fr.Img.SetShape([]int{ySize, xSize, chans}, nil, []string{"Y", "X", "Chan"})
	} else {
		fr.Img.SetShape([]int{ySize, xSize}, nil, []string{"Y", "X"})
	}
	return fr
}

// Sequence is an ordered list of stimulus frames.  It can either hold
// pre-composed frames directly (Frames), or a fixed background frame and a
// modulated frame combined per-timestep by the composition rule and the
// per-frame modulation weights.
type Sequence struct {

	// composition rule combining Fixed and Mod
	Comp Composition

	// fixed (background) frame
	Fixed *Frame

	// modulated (stimulus) frame
	Mod *Frame

	// per-frame modulation weights (the modulation function)
	Weights []float32

	// per-frame times, seconds; optional, defaults to frame index * DT
	Times []float32

	// time step between frames when Times is not set, seconds
	DT float32 `def:"0.01"`

	// pre-composed frames -- when non-nil, Fixed / Mod / Weights are ignored
	Frames []*Frame
}

func (sq *Sequence) Defaults() {
	sq.DT = 0.01
}

// NewSequence returns a modulated sequence combining fixed and mod frames
// with the given weights under the given composition rule.
func NewSequence(comp Composition, fixed, mod *Frame, weights []float32) *Sequence {
	sq := &Sequence{Comp: comp, Fixed: fixed, Mod: mod, Weights: weights}
	sq.Defaults()
	return sq
}

// Len returns the number of frames in the sequence.
func (sq *Sequence) Len() int {
	if sq.Frames != nil {
		return len(sq.Frames)
	}
	return len(sq.Weights)
}

// FrameTime returns the time of frame i in seconds.
func (sq *Sequence) FrameTime(i int) float32 {
	if sq.Times != nil && i < len(sq.Times) {
		return sq.Times[i]
	}
	if sq.Frames != nil {
		return sq.Frames[i].Time
	}
	return float32(i) * sq.DT
}

// Validate checks the sequence configuration, failing fast on an unknown
// composition rule or mismatched fixed / modulated frame shapes.  Weight
// values themselves are not range-checked.
func (sq *Sequence) Validate() error {
	if sq.Frames != nil {
		if len(sq.Frames) == 0 {
			err := fmt.Errorf("stim.Sequence: empty frame list")
			log.Println(err)
			return err
		}
		return nil
	}
	if sq.Comp < 0 || sq.Comp >= CompositionN {
		err := fmt.Errorf("stim.Sequence: %d is not a valid composition rule", sq.Comp)
		log.Println(err)
		return err
	}
	if sq.Fixed == nil || sq.Mod == nil {
		err := fmt.Errorf("stim.Sequence: modulated sequence requires both fixed and mod frames")
		log.Println(err)
		return err
	}
	if !sq.Fixed.Img.Shape.IsEqual(&sq.Mod.Img.Shape) {
		err := fmt.Errorf("stim.Sequence: fixed and mod frame shapes differ")
		log.Println(err)
		return err
	}
	return nil
}

// Compose returns the image tensor for frame i, applying the composition
// rule for modulated sequences.  The returned tensor is freshly allocated
// for modulated sequences and shared with the frame for pre-composed ones.
func (sq *Sequence) Compose(i int) (*etensor.Float32, error) {
	if sq.Frames != nil {
		if i < 0 || i >= len(sq.Frames) {
			return nil, fmt.Errorf("stim.Sequence: frame index %d out of range", i)
		}
		return &sq.Frames[i].Img, nil
	}
	if err := sq.Validate(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(sq.Weights) {
		return nil, fmt.Errorf("stim.Sequence: frame index %d out of range", i)
	}
	w := sq.Weights[i]
	out := &etensor.Float32{}
	out.SetShape(sq.Fixed.Img.Shape.Shp, nil, sq.Fixed.Img.Shape.Nms)
	fx := sq.Fixed.Img.Values
	md := sq.Mod.Img.Values
	switch sq.Comp {
	case Blend:
		for j := range out.Values {
			out.Values[j] = (1-w)*fx[j] + w*md[j]
		}
	case Add:
		for j := range out.Values {
			out.Values[j] = fx[j] + w*md[j]
		}
	}
	return out, nil
}

// ComposeAll returns the composed image tensors for all frames.
func (sq *Sequence) ComposeAll() ([]*etensor.Float32, error) {
	if err := sq.Validate(); err != nil {
		return nil, err
	}
	n := sq.Len()
	frs := make([]*etensor.Float32, n)
	for i := 0; i < n; i++ {
		fr, err := sq.Compose(i)
		if err != nil {
			return nil, err
		}
		frs[i] = fr
	}
	return frs, nil
}
