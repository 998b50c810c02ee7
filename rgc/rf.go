// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
)

// ConeMosaicRef is the cone-mosaic reference frame a cell grid is built
// over: only the grid extent and spatial sample pitch are used, so any cone
// mosaic implementation can supply these.
type ConeMosaicRef struct {

	// number of cone rows in the reference mosaic
	Rows int

	// number of cone columns in the reference mosaic
	Cols int

	// spatial sample pitch, retinal mm per cone sample
	Pitch float32
}

// GaussKernel fills the tensor with a square support x support isotropic 2D
// Gaussian with the given standard deviation (in samples), normalized to
// unit sum and then scaled by amp.  The Gaussian is centered on the middle
// of the kernel.
func GaussKernel(tsr *etensor.Float32, support int, sigma, amp float32) {
	tsr.SetShape([]int{support, support}, nil, []string{"Y", "X"})
	ctr := 0.5 * float32(support-1)
	sum := float32(0)
	for y := 0; y < support; y++ {
		dy := float32(y) - ctr
		for x := 0; x < support; x++ {
			dx := float32(x) - ctr
			v := math32.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			tsr.Values[y*support+x] = v
			sum += v
		}
	}
	nrm := amp / sum
	for i := range tsr.Values {
		tsr.Values[i] *= nrm
	}
}

// Kernels constructs the center and surround spatial receptive field
// kernels for this profile at the given eccentricity (retinal mm) and
// center Gaussian spread (sigma, in cone samples).  Both kernels are square
// with side length Support(eccMM); the surround sigma is SurroundRatio
// times the center sigma and its amplitude is scaled by SurroundAmp.
// A non-positive spread is a configuration error.
func (pf *Profile) Kernels(eccMM, spread float32) (center, surround *etensor.Float32, err error) {
	if spread <= 0 {
		err = fmt.Errorf("rgc.Profile: center Gaussian spread must be positive, got %g", spread)
		log.Println(err)
		return
	}
	sup := pf.Support(eccMM)
	center = &etensor.Float32{}
	surround = &etensor.Float32{}
	GaussKernel(center, sup, spread, 1)
	GaussKernel(surround, sup, pf.SurroundRatio*spread, pf.SurroundAmp)
	return
}

// BuildGrid samples cell positions on the given stride over the reference
// mosaic extent and recenters them so the grid mean position is the origin.
// Returns a (rows, cols, 2) tensor of (x, y) positions in cone-sample units
// and the grid dimensions.  Stride must be positive.
func BuildGrid(ref ConeMosaicRef, stride int) (locs *etensor.Float32, rows, cols int, err error) {
	if stride <= 0 {
		err = fmt.Errorf("rgc.BuildGrid: stride must be positive, got %d", stride)
		log.Println(err)
		return
	}
	if ref.Rows <= 0 || ref.Cols <= 0 {
		err = fmt.Errorf("rgc.BuildGrid: reference mosaic extent must be positive, got %d x %d", ref.Rows, ref.Cols)
		log.Println(err)
		return
	}
	rows = (ref.Rows-1)/stride + 1
	cols = (ref.Cols-1)/stride + 1
	locs = etensor.NewFloat32([]int{rows, cols, 2}, nil, []string{"Row", "Col", "XY"})
	// mean of 0, stride, 2*stride, ... over n positions
	xmean := 0.5 * float32(stride*(cols-1))
	ymean := 0.5 * float32(stride*(rows-1))
	for r := 0; r < rows; r++ {
		y := float32(r*stride) - ymean
		for c := 0; c < cols; c++ {
			x := float32(c*stride) - xmean
			locs.Set([]int{r, c, 0}, x)
			locs.Set([]int{r, c, 1}, y)
		}
	}
	return
}
