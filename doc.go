// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package retina is the overall repository for a computational model of the
early visual system implemented in the Go language (golang): cone-referenced
receptive fields, spatial and temporal filtering of optical image sequences,
and retinal ganglion cell (RGC) response generation, together with the
anatomical density calculators that parameterize them.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* rgc: the core signal-processing pipeline.  An rgc.Mosaic is a 2D grid of
model cells of one biological type, each with center / surround Gaussian
spatial receptive fields sized by eccentricity, temporal impulse-response
kernels, and a static generator nonlinearity producing the final
firing-rate-like signal.

* stim: time-varying input sequences of optical image frames, including the
blend / add composition rules for combining a fixed background frame with a
modulated stimulus frame, and conversion of standard Go images into frame
tensors.

* watson: analytic calculators for the Watson (2014) model of human retinal
anatomy: cone spacing and density as a function of eccentricity and visual
field meridian, total and midget RGC density, and the eccentricity unit
conversions between visual degrees and retinal millimeters.  These supply
the eccentricity-dependent scaling used by the rgc receptive field builder.
*/
package retina
