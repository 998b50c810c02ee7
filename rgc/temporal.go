// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"fmt"
	"log"
	"sync"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
	"gonum.org/v1/gonum/dsp/fourier"
)

// fftMinKernel is the kernel length above which ConvolveSame switches from
// the direct inner loop to the FFT path.
const fftMinKernel = 32

// ConvolveSame convolves a signal with a kernel, returning a series of the
// same length as the signal (the central portion of the full convolution,
// offset by half the kernel length).  Boundary effects at the start of the
// sequence are accepted as-is: the temporal kernels are assumed causal and
// short relative to the sequence.
func ConvolveSame(sig, kern []float32) []float32 {
	n := len(sig)
	k := len(kern)
	if n == 0 || k == 0 {
		out := make([]float32, n)
		copy(out, sig)
		return out
	}
	if k < fftMinKernel {
		return convolveDirect(sig, kern)
	}
	return convolveFFT(sig, kern)
}

func convolveDirect(sig, kern []float32) []float32 {
	n := len(sig)
	k := len(kern)
	off := k / 2
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		var sum float32
		for m := 0; m < k; m++ {
			j := i + off - m
			if j < 0 || j >= n {
				continue
			}
			sum += kern[m] * sig[j]
		}
		out[i] = sum
	}
	return out
}

// convolveFFT computes the same result as convolveDirect via zero-padded
// FFTs.  Gonum transforms are unnormalized: forward then inverse multiplies
// by the transform length, so the inverse is divided back out.
func convolveFFT(sig, kern []float32) []float32 {
	n := len(sig)
	k := len(kern)
	fn := nextPow2(n + k - 1)
	a := make([]complex128, fn)
	b := make([]complex128, fn)
	for i, v := range sig {
		a[i] = complex(float64(v), 0)
	}
	for i, v := range kern {
		b[i] = complex(float64(v), 0)
	}
	fft := fourier.NewCmplxFFT(fn)
	fft.Coefficients(a, a)
	fft.Coefficients(b, b)
	for i := range a {
		a[i] *= b[i]
	}
	fft.Sequence(a, a)
	scale := 1 / float64(fn)
	off := k / 2
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(real(a[i+off]) * scale)
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// TempParams configures the default temporal impulse-response kernels: a
// biphasic difference of gamma functions, with the surround kernel slower
// than the center.  Kernel time units are frames of the input sequence.
type TempParams struct {

	// kernel length in frames
	Length int `def:"24" min:"1"`

	// order (shape) of the gamma functions
	Order int `def:"4" min:"1"`

	// center gamma time constant, frames
	TauC float32 `def:"2" min:"0"`

	// surround gamma time constant, frames
	TauS float32 `def:"3" min:"0"`

	// amplitude of the delayed negative (rebound) lobe
	BiAmp float32 `def:"0.25" min:"0"`

	// time-constant scaling of the rebound lobe relative to the main lobe
	BiTauScale float32 `def:"1.6"`
}

func (tp *TempParams) Defaults() {
	tp.Length = 24
	tp.Order = 4
	tp.TauC = 2
	tp.TauS = 3
	tp.BiAmp = 0.25
	tp.BiTauScale = 1.6
}

func (tp *TempParams) Update() {
}

// GammaKernel returns a causal gamma-function impulse response of the given
// length (frames), order and time constant, normalized to unit sum.
func GammaKernel(length, order int, tau float32) []float32 {
	kn := make([]float32, length)
	sum := float32(0)
	for i := 0; i < length; i++ {
		t := float32(i)
		v := math32.Pow(t, float32(order-1)) * math32.Exp(-t/tau)
		kn[i] = v
		sum += v
	}
	if sum > 0 {
		for i := range kn {
			kn[i] /= sum
		}
	}
	return kn
}

// Kernel returns a biphasic impulse response: the unit-sum gamma main lobe
// minus a slower gamma rebound lobe scaled by BiAmp.
func (tp *TempParams) Kernel(tau float32) []float32 {
	main := GammaKernel(tp.Length, tp.Order, tau)
	reb := GammaKernel(tp.Length, tp.Order, tau*tp.BiTauScale)
	kn := make([]float32, tp.Length)
	for i := range kn {
		kn[i] = main[i] - tp.BiAmp*reb[i]
	}
	return kn
}

// Kernels returns default center and surround temporal kernels replicated
// across the given number of channels.
func (tp *TempParams) Kernels(nChans int) (tc, ts [][]float32) {
	tc = make([][]float32, nChans)
	ts = make([][]float32, nChans)
	for ch := 0; ch < nChans; ch++ {
		tc[ch] = tp.Kernel(tp.TauC)
		ts[ch] = tp.Kernel(tp.TauS)
	}
	return
}

// SetTemporalKernels installs explicit per-channel center and surround
// temporal impulse-response kernels, overriding the Temp defaults.  Channel
// counts are checked against the computed spatial response at
// ComputeTemporal time.  Installing nil, nil reverts to the Temp defaults,
// which track the channel count of each computed sequence.
func (mo *Mosaic) SetTemporalKernels(tCenter, tSurround [][]float32) {
	mo.TCenter = tCenter
	mo.TSurround = tSurround
	mo.tkExplicit = tCenter != nil || tSurround != nil
}

// ComputeTemporal convolves every cell's spatial response time series with
// the center and surround temporal kernels, takes center minus surround,
// and sums across channels, producing the (rows, cols, frames) linear
// response tensor.  The per-cell loop has no cross-cell dependencies and is
// sharded across NThreads goroutines with disjoint output slots.
func (mo *Mosaic) ComputeTemporal() error {
	if mo.State < ComputedSpatial {
		err := fmt.Errorf("rgc.Mosaic %s: ComputeTemporal requires ComputedSpatial state, have %s", mo.Nm, mo.State)
		log.Println(err)
		return err
	}
	// default kernels are regenerated whenever the channel count changes;
	// explicitly installed kernels are the caller's to keep in sync
	if !mo.tkExplicit && len(mo.TCenter) != mo.NChans {
		mo.TCenter, mo.TSurround = mo.Temp.Kernels(mo.NChans)
	}
	if len(mo.TCenter) != mo.NChans || len(mo.TSurround) != mo.NChans {
		err := fmt.Errorf("rgc.Mosaic %s: temporal kernel channels: %d center / %d surround, want %d", mo.Nm, len(mo.TCenter), len(mo.TSurround), mo.NChans)
		log.Println(err)
		return err
	}

	n := mo.Rows * mo.Cols
	lin := etensor.NewFloat32([]int{mo.Rows, mo.Cols, mo.NFrames}, nil, []string{"Row", "Col", "Frame"})

	nth := mo.NThreads
	if nth <= 1 {
		for ci := 0; ci < n; ci++ {
			mo.temporalCell(ci, lin)
			if mo.Progress != nil && (ci+1)%mo.Cols == 0 {
				mo.Progress(ComputedTemporal, ci+1, n)
			}
		}
	} else {
		var wg sync.WaitGroup
		for th := 0; th < nth; th++ {
			wg.Add(1)
			go func(th int) {
				defer wg.Done()
				for ci := th; ci < n; ci += nth {
					mo.temporalCell(ci, lin)
				}
			}(th)
		}
		wg.Wait()
		if mo.Progress != nil {
			mo.Progress(ComputedTemporal, n, n)
		}
	}

	mo.LinResp = *lin
	mo.Rate = etensor.Float32{}
	mo.State = ComputedTemporal
	return nil
}

// temporalCell computes the linear response series for cell index ci,
// writing only to that cell's slot in lin.
func (mo *Mosaic) temporalCell(ci int, lin *etensor.Float32) {
	nf := mo.NFrames
	nc := mo.NChans
	out := lin.Values[ci*nf : (ci+1)*nf]
	cser := make([]float32, nf)
	sser := make([]float32, nf)
	for ch := 0; ch < nc; ch++ {
		st := (ci*nf)*nc + ch
		for f := 0; f < nf; f++ {
			cser[f] = mo.SpCenter.Values[st+f*nc]
			sser[f] = mo.SpSurround.Values[st+f*nc]
		}
		cf := ConvolveSame(cser, mo.TCenter[ch])
		sf := ConvolveSame(sser, mo.TSurround[ch])
		// channels combine by summation
		for f := 0; f < nf; f++ {
			out[f] += cf[f] - sf[f]
		}
	}
}
