// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// ValueRange returns the min / max range of values in the given tensor.
// A degenerate range (min == max, e.g., a uniform illuminance frame) is
// widened by a fixed +/- 1 percent band so that downstream normalization
// stays well-defined -- this is a documented fallback, not an error.
func ValueRange(tsr *etensor.Float32) minmax.F32 {
	var rng minmax.F32
	rng.SetInfinity()
	for _, v := range tsr.Values {
		rng.FitValInRange(v)
	}
	if rng.Range() == 0 {
		v := rng.Min
		band := 0.01 * v
		if band < 0 {
			band = -band
		}
		if band == 0 {
			band = 0.01
		}
		rng.Min = v - band
		rng.Max = v + band
	}
	return rng
}

// UnitNorm rescales tensor values in place into [0,1] over the tensor's own
// value range, using the degenerate-range fallback of ValueRange.
func UnitNorm(tsr *etensor.Float32) minmax.F32 {
	rng := ValueRange(tsr)
	rg := rng.Range()
	for i, v := range tsr.Values {
		tsr.Values[i] = (v - rng.Min) / rg
	}
	return rng
}
