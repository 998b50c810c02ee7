// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package watson implements the analytic retinal anatomy model of Watson (2014),
"A formula for human retinal ganglion cell receptive field density as a
function of visual field location", J. Vision 14(7):15, together with the
cone spacing / density calculator that parameterizes receptive field sizes
in the rgc package.

All functions here are pure functions of published model constants: there is
no mutable state beyond the user-supplied eccentricity axis, so everything is
trivially reentrant.  Calculations are carried out in float64 in the native
retinal-millimeter unit, with visual-degree conversion applied via the
documented polynomial eccentricity and area conversion factors.
*/
package watson

import "math"

// Eccentricity unit conversion polynomials, fit by Watson (2014) to the
// model eye of Drasdo & Fowler (1974), appendix section A5-A7.  The two
// directions are independent published fits, so a round trip reproduces the
// input only approximately (within a few percent over 0-90 deg).

// RhoDegsToMMs converts an eccentricity in visual degrees to retinal
// millimeters, valid over 0-90 deg.
func RhoDegsToMMs(degs float64) float64 {
	return 0.268*degs + 0.0003427*degs*degs - 8.3309e-6*degs*degs*degs
}

// RhoMMsToDegs converts an eccentricity in retinal millimeters to visual
// degrees, valid over 0-25 mm.
func RhoMMsToDegs(mms float64) float64 {
	mm2 := mms * mms
	return 3.556*mms + 0.05993*mm2 - 0.007358*mm2*mms + 0.0003027*mm2*mm2
}

// AlphaConversion returns the eccentricity-dependent area conversion factor
// alpha(eccDegs) in mm^2 per deg^2: the retinal area corresponding to one
// square degree of visual field at the given eccentricity in degrees.
// Densities convert as perDeg2 = perMM2 * alpha; linear spacing converts by
// sqrt(alpha).
func AlphaConversion(eccDegs float64) float64 {
	return 0.0752 + 5.846e-5*eccDegs - 1.064e-5*eccDegs*eccDegs + 4.116e-8*eccDegs*eccDegs*eccDegs
}

// SpacingFromDensity converts a density (counts per unit area) to the
// center-to-center spacing of a perfect hexagonal packing at that density,
// in the corresponding linear unit: spacing = sqrt(2 / (sqrt(3) * density)).
func SpacingFromDensity(density float64) float64 {
	return math.Sqrt(2 / (math.Sqrt(3) * density))
}

// DensityFromSpacing is the inverse hexagonal packing relation:
// density = 2 / (sqrt(3) * spacing^2).
func DensityFromSpacing(spacing float64) float64 {
	return 2 / (math.Sqrt(3) * spacing * spacing)
}
