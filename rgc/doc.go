// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rgc implements the retinal ganglion cell signal-processing pipeline:
populations of model cells organized as 2D mosaics over a cone-mosaic
reference frame, each cell applying center / surround Gaussian spatial
receptive fields to an input image sequence, convolving the resulting time
series with temporal impulse-response kernels, and passing the linear
center-minus-surround response through a static generator nonlinearity to
produce a firing-rate-like output.

The Mosaic type coordinates the full computation as an explicit staged state
machine: SpatialBuilt (receptive fields and cell grid constructed) ->
ComputedSpatial -> ComputedTemporal -> ComputedNonlinear.  Each compute call
overwrites all downstream state; a failed call leaves the mosaic in its
prior valid state.

Receptive field support sizes scale with retinal eccentricity according to
per-cell-type profiles, with the default center spread derived from the cone
spacing model in the watson package.
*/
package rgc
