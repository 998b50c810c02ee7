// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/retina/stim"
	"github.com/emer/retina/watson"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// MosaicState tracks the staged computation of a mosaic.  States advance
// only through explicit compute calls; recomputation re-enters from an
// earlier state and overwrites everything downstream.
type MosaicState int

//go:generate stringer -type=MosaicState

var KiT_MosaicState = kit.Enums.AddEnum(MosaicStateN, kit.NotBitFlag, nil)

func (ev MosaicState) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *MosaicState) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Uninitialized: no receptive fields or cell grid yet
	Uninitialized MosaicState = iota

	// SpatialBuilt: receptive field kernels and cell grid constructed
	SpatialBuilt

	// ComputedSpatial: spatial response tensors computed over all frames
	ComputedSpatial

	// ComputedTemporal: linear (center - surround) response computed
	ComputedTemporal

	// ComputedNonlinear: generator function applied (terminal state)
	ComputedNonlinear

	MosaicStateN
)

// Mosaic is a 2D grid of model retinal ganglion cells of one biological
// type, built over a cone-mosaic reference frame.  All cells of a mosaic
// share the same receptive field kernels and temporal kernels; each cell
// has its own location and response time series.  Response tensors are
// owned exclusively by the mosaic for one compute pass and overwritten on
// recomputation.
type Mosaic struct {

	// name of the mosaic, used in reports and errors
	Nm string

	// biological cell type of this mosaic
	Type CellType

	// receptive-field construction profile for Type
	Prof *Profile

	// generator function configuration, adopted from the cell-type profile
	// at Init; switching On off afterwards makes this the linear-only
	// mosaic variant (no nonlinear stage output)
	Gen GenParams

	// default temporal kernel configuration, used when no explicit
	// kernels are installed via SetTemporalKernels
	Temp TempParams

	// retinal eccentricity of the mosaic center, mm
	EccMM float32

	// center Gaussian sigma in cone samples; derived from the watson
	// cone spacing model when not set explicitly before Init
	Spread float32

	// cell grid stride in cone samples; defaults to round(Spread)
	Stride int

	// number of goroutines for the temporal stage; <= 1 runs serially
	NThreads int

	// optional progress observer for long mosaic-wide passes;
	// best-effort and must be fast -- it never alters computed values
	Progress func(state MosaicState, done, total int) `view:"-" json:"-" xml:"-"`

	// cone-mosaic reference frame the cell grid was built over
	Ref ConeMosaicRef

	// cell grid dimensions
	Rows, Cols int

	// (Row, Col, XY) cell positions in cone samples, grid-mean centered
	CellLocs etensor.Float32 `view:"no-inline"`

	// center spatial receptive field kernel, shared by all cells
	SRFCenter etensor.Float32 `view:"no-inline"`

	// surround spatial receptive field kernel, shared by all cells
	SRFSurround etensor.Float32 `view:"no-inline"`

	// per-channel center temporal impulse-response kernels; regenerated
	// from Temp for the current channel count unless explicitly installed
	TCenter [][]float32 `view:"-"`

	// per-channel surround temporal impulse-response kernels
	TSurround [][]float32 `view:"-"`

	// kernels were installed via SetTemporalKernels, so they are not
	// regenerated when the channel count changes
	tkExplicit bool

	// frame and channel counts of the last computed sequence
	NFrames, NChans int

	// (Row, Col, Frame, Chan) center spatial response
	SpCenter etensor.Float32 `view:"no-inline"`

	// (Row, Col, Frame, Chan) surround spatial response
	SpSurround etensor.Float32 `view:"no-inline"`

	// (Row, Col, Frame) linear center-minus-surround response
	LinResp etensor.Float32 `view:"no-inline"`

	// (Row, Col) generator output rates; empty for the linear variant
	Rate etensor.Float32 `view:"no-inline"`

	// current computation state
	State MosaicState `inactive:"+"`
}

// NewMosaic returns a mosaic with receptive fields and cell grid built for
// the given cell type over the given cone-mosaic reference at the given
// retinal eccentricity in mm.  An unrecognized cell type is fatal: no
// partial mosaic is returned.
func NewMosaic(name string, ct CellType, ref ConeMosaicRef, eccMM float32) (*Mosaic, error) {
	mo := &Mosaic{Nm: name}
	if err := mo.Init(ct, ref, eccMM); err != nil {
		return nil, err
	}
	return mo, nil
}

// Defaults sets default parameters.  Init applies the same defaults to
// zero-valued fields individually, preserving caller settings.
func (mo *Mosaic) Defaults() {
	mo.Temp.Defaults()
	mo.NThreads = 1
}

// Init builds the receptive field kernels and cell location grid,
// transitioning to SpatialBuilt and discarding any prior responses.
// If Spread is zero it is derived from the watson cone spacing model at the
// mosaic eccentricity, in cone-sample units of the reference pitch.
// Stride defaults to round(Spread).  Failure leaves the mosaic in its prior
// state.
func (mo *Mosaic) Init(ct CellType, ref ConeMosaicRef, eccMM float32) error {
	pf, err := NewProfile(ct)
	if err != nil {
		return err
	}
	spread := mo.Spread
	if spread <= 0 {
		spread, err = defaultSpread(eccMM, ref.Pitch)
		if err != nil {
			return err
		}
	}
	stride := mo.Stride
	if stride <= 0 {
		stride = int(math32.Round(spread))
		if stride < 1 {
			stride = 1
		}
	}
	locs, rows, cols, err := BuildGrid(ref, stride)
	if err != nil {
		return err
	}
	// default only zero-valued fields: caller settings survive Init
	if mo.Temp.Length == 0 {
		mo.Temp.Defaults()
	}
	if mo.NThreads == 0 {
		mo.NThreads = 1
	}
	ctr, sur, err := pf.Kernels(eccMM, spread)
	if err != nil {
		return err
	}

	mo.Type = ct
	mo.Prof = pf
	mo.Gen = pf.Gen
	mo.Ref = ref
	mo.EccMM = eccMM
	mo.Spread = spread
	mo.Stride = stride
	mo.Rows = rows
	mo.Cols = cols
	mo.CellLocs = *locs
	mo.SRFCenter = *ctr
	mo.SRFSurround = *sur
	mo.TCenter = nil
	mo.TSurround = nil
	mo.tkExplicit = false
	mo.NFrames = 0
	mo.NChans = 0
	mo.SpCenter = etensor.Float32{}
	mo.SpSurround = etensor.Float32{}
	mo.LinResp = etensor.Float32{}
	mo.Rate = etensor.Float32{}
	mo.State = SpatialBuilt
	return nil
}

// defaultSpread derives the center Gaussian sigma (in cone samples) from
// the watson cone spacing model at the given eccentricity, with the
// temporal meridian as the reference direction.
func defaultSpread(eccMM, pitch float32) (float32, error) {
	if pitch <= 0 {
		err := fmt.Errorf("rgc.Mosaic: cone mosaic reference pitch must be positive, got %g", pitch)
		log.Println(err)
		return 0, err
	}
	sp, _, _, err := watson.ConeSpacingDensity([]float64{float64(eccMM)}, watson.Temporal, watson.MMsEcc, watson.PerMM2, nil)
	if err != nil {
		return 0, err
	}
	spread := float32(sp[0]) / pitch
	if spread < 1 {
		spread = 1
	}
	return spread, nil
}

// Linear returns true for the linear-only mosaic variant, which skips the
// generator stage.
func (mo *Mosaic) Linear() bool {
	return !mo.Gen.On
}

// ComputeAll runs the spatial, temporal and nonlinear stages in order over
// the given input sequence, stopping at the first error.
func (mo *Mosaic) ComputeAll(sq *stim.Sequence) error {
	if err := mo.ComputeSpatial(sq); err != nil {
		return err
	}
	if err := mo.ComputeTemporal(); err != nil {
		return err
	}
	return mo.ComputeNonlinear()
}

// Support returns the spatial support (kernel side length) of the mosaic's
// receptive fields.
func (mo *Mosaic) Support() int {
	if mo.SRFCenter.NumDims() < 2 {
		return 0
	}
	return mo.SRFCenter.Dim(0)
}

// NCells returns the number of cells in the mosaic.
func (mo *Mosaic) NCells() int {
	return mo.Rows * mo.Cols
}

// CellLoc returns the (x, y) position of the cell at (row, col) in
// cone-sample units, relative to the grid mean.
func (mo *Mosaic) CellLoc(row, col int) mat32.Vec2 {
	return mat32.Vec2{
		X: mo.CellLocs.Value([]int{row, col, 0}),
		Y: mo.CellLocs.Value([]int{row, col, 1}),
	}
}

// LinearResponse returns the linear response time series for the cell at
// (row, col), as a direct slice into the response tensor -- valid in
// ComputedTemporal state or later.
func (mo *Mosaic) LinearResponse(row, col int) []float32 {
	st := (row*mo.Cols + col) * mo.NFrames
	return mo.LinResp.Values[st : st+mo.NFrames]
}

// SpatialResponse returns the center and surround spatial responses for the
// cell at (row, col), frame f, channel ch -- valid in ComputedSpatial state
// or later.
func (mo *Mosaic) SpatialResponse(row, col, f, ch int) (center, surround float32) {
	oi := ((row*mo.Cols+col)*mo.NFrames+f)*mo.NChans + ch
	return mo.SpCenter.Values[oi], mo.SpSurround.Values[oi]
}

// RateAt returns the generator output rate for the cell at (row, col) --
// valid in ComputedNonlinear state for non-linear-variant mosaics.
func (mo *Mosaic) RateAt(row, col int) float32 {
	return mo.Rate.Value([]int{row, col})
}

// SizeReport returns a human-readable report of the memory taken by the
// mosaic's kernel and response tensors.
func (mo *Mosaic) SizeReport() string {
	var b strings.Builder
	fsz := int(unsafe.Sizeof(float32(0)))
	kmem := (len(mo.SRFCenter.Values) + len(mo.SRFSurround.Values) + len(mo.CellLocs.Values)) * fsz
	rmem := (len(mo.SpCenter.Values) + len(mo.SpSurround.Values) + len(mo.LinResp.Values) + len(mo.Rate.Values)) * fsz
	fmt.Fprintf(&b, "%14s:\t Cells: %d\t KernMem: %v\t RespMem: %v\n", mo.Nm, mo.NCells(),
		(datasize.ByteSize)(kmem).HumanReadable(), (datasize.ByteSize)(rmem).HumanReadable())
	return b.String()
}
