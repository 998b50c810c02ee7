// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watson

import "math"

// PeakConeDensityPerDeg2 is the foveal peak cone density adopted by the
// Watson (2014) model (from Curcio et al., 1990), in cones per deg^2.
const PeakConeDensityPerDeg2 = 14804.6

// FovealCorrectionDegs is the eccentricity in visual degrees below which a
// linearly tapering correction offset is added to the queried density, to
// reconcile the density source's foveal peak with the model's documented
// peak.  The window and linear taper are empirically tuned constants from
// the original model calibration, preserved exactly.
const FovealCorrectionDegs = 0.18

// DensitySource supplies cone density values (cones per mm^2 of retina) at
// given retinal eccentricities (in mm) along a retinal meridian given by
// angle in degrees (0 = temporal retina, counter-clockwise, right eye).
// Tabulated anatomical datasets are loaded and fit externally and presented
// through this interface; FitSource provides a built-in analytic fallback.
type DensitySource interface {
	Density(eccMMs []float64, retinalAngleDeg float64) []float64
}

// FitSource is a smooth analytic fit of cone density vs. retinal
// eccentricity, usable when no tabulated dataset source is wired in.
// The radial profile follows the same double-exponential form as the
// Watson RGC density formula, scaled to a foveal cone peak.
type FitSource struct {

	// foveal peak cone density, cones per mm^2
	Peak float64 `def:"190000"`

	// weight of the power-law (central) term
	A float64 `def:"0.9729"`

	// scale (mm) of the power-law term
	R2 float64 `def:"0.18"`

	// scale (mm) of the exponential (peripheral) term
	Re float64 `def:"4.5"`
}

func (fs *FitSource) Defaults() {
	fs.Peak = 190000
	fs.A = 0.9729
	fs.R2 = 0.18
	fs.Re = 4.5
}

// NewFitSource returns a FitSource with default parameters.
func NewFitSource() *FitSource {
	fs := &FitSource{}
	fs.Defaults()
	return fs
}

// Density implements the DensitySource interface.  The radial profile is
// isotropic: the retinal angle is accepted for interface compatibility but
// does not alter the fit.
func (fs *FitSource) Density(eccMMs []float64, retinalAngleDeg float64) []float64 {
	dns := make([]float64, len(eccMMs))
	for i, mm := range eccMMs {
		cen := 1 + mm/fs.R2
		dns[i] = fs.Peak * (fs.A/(cen*cen) + (1-fs.A)*math.Exp(-mm/fs.Re))
	}
	return dns
}

// ConeSpacingDensity computes cone spacing and density at the given
// eccentricities along a visual-field meridian.  Input eccentricities are in
// eccUnit; returned spacing and density are in the linear / areal unit
// selected by densityUnit (visual degrees for PerDeg2, retinal mm for
// PerMM2).  The returned label describes the retinal meridian the
// visual-field meridian maps onto.
//
// The computation converts eccentricities to retinal mm, queries the density
// source at the mapped retinal angle, applies the foveal peak correction for
// eccentricities within FovealCorrectionDegs, derives spacing from density
// via the hexagonal packing relation, and finally converts units using the
// AlphaConversion area factor.  Density values are not validated against the
// tabulated support of the source: out-of-range eccentricities produce
// whatever the source extrapolates.
func ConeSpacingDensity(eccs []float64, mer Meridian, eccUnit EccUnit, densityUnit DensityUnit, src DensitySource) (spacing, density []float64, retinalLabel string, err error) {
	if err = mer.Valid(); err != nil {
		return
	}
	if err = eccUnit.Valid(); err != nil {
		return
	}
	if err = densityUnit.Valid(); err != nil {
		return
	}
	if src == nil {
		src = NewFitSource()
	}

	n := len(eccs)
	eccMMs := make([]float64, n)
	eccDegs := make([]float64, n)
	switch eccUnit {
	case DegsEcc:
		for i, ec := range eccs {
			eccDegs[i] = ec
			eccMMs[i] = RhoDegsToMMs(ec)
		}
	case MMsEcc:
		for i, ec := range eccs {
			eccMMs[i] = ec
			eccDegs[i] = RhoMMsToDegs(ec)
		}
	}

	angle, retinalLabel := mer.RetinalAngle()
	density = src.Density(eccMMs, angle)

	// the source's own foveal peak, for computing the correction offset
	peak := src.Density([]float64{0}, angle)[0]
	alpha0 := AlphaConversion(0)
	offset := PeakConeDensityPerDeg2/alpha0 - peak // in cones / mm^2
	for i := range density {
		if eccDegs[i] <= FovealCorrectionDegs {
			density[i] += offset * (1 - eccDegs[i]/FovealCorrectionDegs)
		}
	}

	spacing = make([]float64, n)
	for i, dn := range density {
		spacing[i] = SpacingFromDensity(dn)
	}

	if densityUnit == PerDeg2 {
		for i := range density {
			alpha := AlphaConversion(eccDegs[i])
			density[i] *= alpha
			spacing[i] /= math.Sqrt(alpha)
		}
	}
	return
}
