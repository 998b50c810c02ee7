// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestConvolveSameIdentity(t *testing.T) {
	sig := []float32{1, 2, 3, 4, 5, 4, 3, 2, 1}
	out := ConvolveSame(sig, []float32{1})
	for i := range sig {
		if math32.Abs(out[i]-sig[i]) > difTol {
			t.Errorf("delta kernel should be identity: idx: %v, out: %v\n", i, out[i])
		}
	}
	// centered delta in a length-3 kernel is also identity
	out = ConvolveSame(sig, []float32{0, 1, 0})
	for i := range sig {
		if math32.Abs(out[i]-sig[i]) > difTol {
			t.Errorf("centered delta kernel should be identity: idx: %v, out: %v\n", i, out[i])
		}
	}
	if len(out) != len(sig) {
		t.Errorf("same-mode output length: %v, want %v\n", len(out), len(sig))
	}
}

func TestConvolveSameLinearity(t *testing.T) {
	sig := []float32{0, 1, 0.5, -2, 3, 1, 0, 2, -1, 0.25}
	kern := GammaKernel(8, 4, 2)
	base := ConvolveSame(sig, kern)
	c := float32(3.5)
	scaled := make([]float32, len(sig))
	for i, v := range sig {
		scaled[i] = c * v
	}
	out := ConvolveSame(scaled, kern)
	for i := range base {
		if math32.Abs(out[i]-c*base[i]) > difTol {
			t.Errorf("linearity err: idx: %v, out: %v, cor: %v\n", i, out[i], c*base[i])
		}
	}
}

func TestConvolveFFTMatchesDirect(t *testing.T) {
	sig := make([]float32, 50)
	for i := range sig {
		sig[i] = math32.Sin(float32(i) * 0.37)
	}
	kern := GammaKernel(40, 4, 5) // above the FFT switch-over length
	fft := ConvolveSame(sig, kern)
	dir := convolveDirect(sig, kern)
	for i := range fft {
		if math32.Abs(fft[i]-dir[i]) > 1.0e-4 {
			t.Errorf("fft vs direct err: idx: %v, fft: %v, direct: %v\n", i, fft[i], dir[i])
		}
	}
}

func TestGammaKernel(t *testing.T) {
	kn := GammaKernel(24, 4, 2)
	sum := float32(0)
	pk := 0
	for i, v := range kn {
		if v < 0 {
			t.Errorf("gamma kernel should be non-negative: idx: %v, val: %v\n", i, v)
		}
		sum += v
		if v > kn[pk] {
			pk = i
		}
	}
	if math32.Abs(sum-1) > difTol {
		t.Errorf("gamma kernel sum: %v, want 1\n", sum)
	}
	if kn[0] != 0 {
		t.Errorf("order > 1 gamma kernel starts at 0, got %v\n", kn[0])
	}
	if pk == 0 || pk == len(kn)-1 {
		t.Errorf("gamma kernel peak should be interior, at %v\n", pk)
	}
}

func TestBiphasicKernel(t *testing.T) {
	tp := TempParams{}
	tp.Defaults()
	kn := tp.Kernel(tp.TauC)
	sum := float32(0)
	for _, v := range kn {
		sum += v
	}
	// main lobe sums to 1, rebound to BiAmp
	if math32.Abs(sum-(1-tp.BiAmp)) > difTol {
		t.Errorf("biphasic kernel sum: %v, want %v\n", sum, 1-tp.BiAmp)
	}
	// late samples are dominated by the slower rebound lobe
	if kn[len(kn)-1] >= 0 {
		t.Errorf("biphasic kernel tail should be negative, got %v\n", kn[len(kn)-1])
	}
	tc, ts := tp.Kernels(3)
	if len(tc) != 3 || len(ts) != 3 {
		t.Fatalf("per-channel kernel counts: %v / %v, want 3\n", len(tc), len(ts))
	}
}
