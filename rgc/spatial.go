// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/retina/stim"
)

// weightedLocalSum applies the kernel to the frame patch centered on cone
// sample (cx, cy) for the given channel, treating samples outside the frame
// as zero.  The frame is (Y,X) for nChans 1 or (Y,X,Chan) otherwise.
func weightedLocalSum(frame *etensor.Float32, nChans int, kern *etensor.Float32, cy, cx, ch int) float32 {
	sup := kern.Dim(0)
	half := sup / 2
	ys := frame.Dim(0)
	xs := frame.Dim(1)
	var sum float32
	for ky := 0; ky < sup; ky++ {
		iy := cy + ky - half
		if iy < 0 || iy >= ys {
			continue
		}
		for kx := 0; kx < sup; kx++ {
			ix := cx + kx - half
			if ix < 0 || ix >= xs {
				continue
			}
			var v float32
			if nChans > 1 {
				v = frame.Values[(iy*xs+ix)*nChans+ch]
			} else {
				v = frame.Values[iy*xs+ix]
			}
			sum += kern.Values[ky*sup+kx] * v
		}
	}
	return sum
}

// ComputeSpatial applies every cell's center and surround receptive fields
// to every frame of the input sequence, producing the
// (rows, cols, frames, chans) center and surround spatial response tensors.
// Each channel of multi-channel frames is filtered independently.  The
// response is the kernel-weighted local sum at the cell's location on the
// cone sampling grid.  Purely functional: no state is modified until the
// full pass succeeds.
func (mo *Mosaic) ComputeSpatial(sq *stim.Sequence) error {
	if mo.State < SpatialBuilt {
		err := fmt.Errorf("rgc.Mosaic %s: ComputeSpatial requires SpatialBuilt state, have %s", mo.Nm, mo.State)
		log.Println(err)
		return err
	}
	frames, err := sq.ComposeAll()
	if err != nil {
		return err
	}
	nf := len(frames)
	if nf == 0 {
		err := fmt.Errorf("rgc.Mosaic %s: input sequence has no frames", mo.Nm)
		log.Println(err)
		return err
	}
	nc := 1
	if frames[0].NumDims() == 3 {
		nc = frames[0].Dim(2)
	}
	for fi, fr := range frames {
		if !fr.Shape.IsEqual(&frames[0].Shape) {
			err := fmt.Errorf("rgc.Mosaic %s: frame %d shape differs from frame 0", mo.Nm, fi)
			log.Println(err)
			return err
		}
	}

	// cell locations are grid-mean centered; frame indexing needs the
	// frame-centered equivalents
	fys := frames[0].Dim(0)
	fxs := frames[0].Dim(1)
	fcy := 0.5 * float32(fys-1)
	fcx := 0.5 * float32(fxs-1)

	shp := []int{mo.Rows, mo.Cols, nf, nc}
	nms := []string{"Row", "Col", "Frame", "Chan"}
	spc := etensor.NewFloat32(shp, nil, nms)
	sps := etensor.NewFloat32(shp, nil, nms)

	n := mo.Rows * mo.Cols
	for r := 0; r < mo.Rows; r++ {
		for c := 0; c < mo.Cols; c++ {
			ci := r*mo.Cols + c
			cx := int(math32.Round(mo.CellLocs.Value([]int{r, c, 0}) + fcx))
			cy := int(math32.Round(mo.CellLocs.Value([]int{r, c, 1}) + fcy))
			for f := 0; f < nf; f++ {
				for ch := 0; ch < nc; ch++ {
					oi := (ci*nf+f)*nc + ch
					spc.Values[oi] = weightedLocalSum(frames[f], nc, &mo.SRFCenter, cy, cx, ch)
					sps.Values[oi] = weightedLocalSum(frames[f], nc, &mo.SRFSurround, cy, cx, ch)
				}
			}
		}
		if mo.Progress != nil {
			mo.Progress(ComputedSpatial, (r+1)*mo.Cols, n)
		}
	}

	mo.NFrames = nf
	mo.NChans = nc
	mo.SpCenter = *spc
	mo.SpSurround = *sps
	mo.LinResp = etensor.Float32{}
	mo.Rate = etensor.Float32{}
	mo.State = ComputedSpatial
	return nil
}
