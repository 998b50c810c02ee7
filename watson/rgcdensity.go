// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watson

import "math"

// PeakRGCfDensityPerDeg2 is the foveal peak density of all RGC receptive
// fields in the Watson (2014) model, in receptive fields per deg^2
// (equation 1: twice the peak cone density times the midget fraction terms).
const PeakRGCfDensityPerDeg2 = 33163.2

// rgcMeridianParams are the per-meridian constants (a, r2, re) of the Watson
// (2014) equation 4 fit, Table 1, in visual-field meridian order
// [temporal, superior, nasal, inferior].
var rgcMeridianParams = [MeridianN][3]float64{
	{0.9851, 1.058, 22.14},
	{0.9935, 1.035, 16.35},
	{0.9729, 1.084, 7.633},
	{0.996, 0.9932, 12.13},
}

// Midget fraction decay constant (deg) and foveal value, Watson (2014) eq 7.
const (
	midgetFraction0  = 1.0 / 1.12
	midgetFractionRm = 41.03
)

// TotalRGCDensity returns the density of all RGC receptive fields (on and
// off, all classes) at the given eccentricity in visual degrees along the
// given visual-field meridian, in receptive fields per deg^2:
//
//	d(r) = d(0) * [a*(1 + r/r2)^-2 + (1-a)*exp(-r/re)]
func TotalRGCDensity(eccDegs float64, mer Meridian) (float64, error) {
	if err := mer.Valid(); err != nil {
		return 0, err
	}
	p := rgcMeridianParams[mer]
	a, r2, re := p[0], p[1], p[2]
	cen := 1 + eccDegs/r2
	return PeakRGCfDensityPerDeg2 * (a/(cen*cen) + (1-a)*math.Exp(-eccDegs/re)), nil
}

// MidgetFraction returns the fraction of all RGCs that are midget cells at
// the given eccentricity in visual degrees: f(r) = f(0) / (1 + r/rm),
// with f(0) = 1/1.12 and rm = 41.03 deg.
func MidgetFraction(eccDegs float64) float64 {
	return midgetFraction0 / (1 + eccDegs/midgetFractionRm)
}

// MidgetRGCDensity returns the density of midget RGC receptive fields at the
// given eccentricity in visual degrees along the given visual-field
// meridian, in receptive fields per deg^2.
func MidgetRGCDensity(eccDegs float64, mer Meridian) (float64, error) {
	tot, err := TotalRGCDensity(eccDegs, mer)
	if err != nil {
		return 0, err
	}
	return tot * MidgetFraction(eccDegs), nil
}

// TotalRGCDensities is the vector form of TotalRGCDensity over an
// eccentricity axis.
func TotalRGCDensities(eccDegs []float64, mer Meridian) ([]float64, error) {
	if err := mer.Valid(); err != nil {
		return nil, err
	}
	dns := make([]float64, len(eccDegs))
	for i, ec := range eccDegs {
		dns[i], _ = TotalRGCDensity(ec, mer)
	}
	return dns, nil
}
