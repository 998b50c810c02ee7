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

// GenParams configures the static generator nonlinearity mapping a cell's
// linear filtered response to its output rate.  The default collapses the
// linear time series to a scalar rate via Gain * exp(mean(linear)); the
// Series form applies the same exponential pointwise for callers that need
// a full-series nonlinearity.
type GenParams struct {

	// apply the generator function; off for the linear-only mosaic variant
	On bool

	// multiplicative gain on the generator output
	Gain float32 `def:"1" min:"0"`
}

func (gp *GenParams) Defaults() {
	gp.On = true
	gp.Gain = 1
}

func (gp *GenParams) Update() {
}

// Rate collapses a linear response time series to a scalar rate:
// Gain * exp(mean(lin)).
func (gp *GenParams) Rate(lin []float32) float32 {
	if len(lin) == 0 {
		return 0
	}
	mean := float32(0)
	for _, v := range lin {
		mean += v
	}
	mean /= float32(len(lin))
	return gp.Gain * math32.Exp(mean)
}

// Series applies the generator exponential pointwise: out[i] = Gain * exp(lin[i]).
// out must be the same length as lin.
func (gp *GenParams) Series(lin, out []float32) {
	for i, v := range lin {
		out[i] = gp.Gain * math32.Exp(v)
	}
}

// ComputeNonlinear applies the generator function to every cell's linear
// response, producing the (rows, cols) rate tensor and entering the
// terminal ComputedNonlinear state.  For the linear-only mosaic variant
// (generator off) this stage is a no-op: no rate tensor is produced but the
// state still advances.
func (mo *Mosaic) ComputeNonlinear() error {
	if mo.State < ComputedTemporal {
		err := fmt.Errorf("rgc.Mosaic %s: ComputeNonlinear requires ComputedTemporal state, have %s", mo.Nm, mo.State)
		log.Println(err)
		return err
	}
	if !mo.Gen.On {
		mo.Rate = etensor.Float32{}
		mo.State = ComputedNonlinear
		return nil
	}
	rate := etensor.NewFloat32([]int{mo.Rows, mo.Cols}, nil, []string{"Row", "Col"})
	n := mo.Rows * mo.Cols
	for ci := 0; ci < n; ci++ {
		lin := mo.LinResp.Values[ci*mo.NFrames : (ci+1)*mo.NFrames]
		rate.Values[ci] = mo.Gen.Rate(lin)
	}
	mo.Rate = *rate
	mo.State = ComputedNonlinear
	if mo.Progress != nil {
		mo.Progress(ComputedNonlinear, n, n)
	}
	return nil
}
