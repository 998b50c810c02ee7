// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgc

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
)

// CellType is the biological type of the cells in a mosaic, selecting the
// receptive-field construction profile and generator function.
type CellType int

//go:generate stringer -type=CellType

var KiT_CellType = kit.Enums.AddEnum(CellTypeN, kit.NotBitFlag, nil)

func (ev CellType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// OnDiffuse is the on-center parasol (diffuse) cell type
	OnDiffuse CellType = iota

	// OffDiffuse is the off-center parasol (diffuse) cell type
	OffDiffuse

	// OnMidget is the on-center midget cell type
	OnMidget

	// OffMidget is the off-center midget cell type
	OffMidget

	// SmallBistratified is the on-type small bistratified (blue-yellow) cell type
	SmallBistratified

	CellTypeN
)

// Profile holds the receptive-field construction parameters for one cell
// type: the eccentricity scaling of the spatial support, the center /
// surround Gaussian geometry, and the generator function configuration.
// The linear-only mosaic variant is simply a mosaic whose generator is
// switched off -- there is no separate cell-by-cell dispatch.
type Profile struct {

	// cell type this profile builds
	Type CellType

	// smallest spatial support (kernel side length, in cone samples)
	MinSupport int

	// constant term of the support growth formula
	SupportOff float32

	// growth of support per mm of eccentricity
	SupportSlope float32

	// ratio of surround to center Gaussian sigma
	SurroundRatio float32 `def:"1.3"`

	// amplitude scaling of the surround kernel
	SurroundAmp float32 `def:"1"`

	// generator function configuration
	Gen GenParams
}

// NewProfile returns the standard receptive-field profile for the given
// cell type.  An unrecognized cell type is a configuration error, fatal to
// mosaic construction.
func NewProfile(ct CellType) (*Profile, error) {
	pf := &Profile{Type: ct}
	pf.Gen.Defaults()
	switch ct {
	case OnDiffuse, OffDiffuse:
		pf.MinSupport = 12
		pf.SupportOff = 2
		pf.SupportSlope = 0.3
		pf.SurroundRatio = 1.3
		pf.SurroundAmp = 1
	case OnMidget, OffMidget:
		pf.MinSupport = 7
		pf.SupportOff = 1
		pf.SupportSlope = 0.2
		pf.SurroundRatio = 1.3
		pf.SurroundAmp = 1.3
	case SmallBistratified:
		// fixed support independent of eccentricity
		pf.MinSupport = 15
		pf.SupportOff = 0
		pf.SupportSlope = 0
		pf.SurroundRatio = 10
		pf.SurroundAmp = 1
	default:
		err := fmt.Errorf("rgc.NewProfile: unrecognized cell type: %d", ct)
		log.Println(err)
		return nil, err
	}
	return pf, nil
}

// Support returns the spatial support (kernel side length, in cone samples)
// at the given retinal eccentricity in mm:
// max(MinSupport, floor(SupportOff + SupportSlope * ecc)).
// Non-decreasing in eccentricity and never below MinSupport.
func (pf *Profile) Support(eccMM float32) int {
	sup := int(math32.Floor(pf.SupportOff + pf.SupportSlope*eccMM))
	if sup < pf.MinSupport {
		sup = pf.MinSupport
	}
	return sup
}
