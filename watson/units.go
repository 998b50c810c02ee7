// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watson

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Meridian is one of the four canonical visual-field directions used to
// parameterize anatomically measured density and spacing.  Note that these
// name directions in the visual field, not on the retina -- see RetinalAngle
// for the mapping between the two.
type Meridian int

//go:generate stringer -type=Meridian

var KiT_Meridian = kit.Enums.AddEnum(MeridianN, kit.NotBitFlag, nil)

func (ev Meridian) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Meridian) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Temporal is the horizontal visual-field meridian away from the nose
	Temporal Meridian = iota

	// Superior is the upper vertical visual-field meridian
	Superior

	// Nasal is the horizontal visual-field meridian toward the nose
	Nasal

	// Inferior is the lower vertical visual-field meridian
	Inferior

	MeridianN
)

// Valid returns an error if the meridian is not one of the defined values.
func (ev Meridian) Valid() error {
	if ev < 0 || ev >= MeridianN {
		return fmt.Errorf("watson.Meridian: %d is not a valid meridian", ev)
	}
	return nil
}

// RetinalAngle returns the retinal angle in degrees corresponding to this
// visual-field meridian, for the right eye, along with a descriptive label.
// The horizontal meridians are mirror-reversed through the optics (temporal
// visual field images on nasal retina and vice versa), and the vertical
// meridians are inverted.  Retinal angle 0 is temporal retina, proceeding
// counter-clockwise (90 superior, 180 nasal, 270 inferior).
func (ev Meridian) RetinalAngle() (float64, string) {
	switch ev {
	case Temporal:
		return 180, "nasal retina (180 deg)"
	case Superior:
		return 270, "inferior retina (270 deg)"
	case Nasal:
		return 0, "temporal retina (0 deg)"
	case Inferior:
		return 90, "superior retina (90 deg)"
	}
	return 0, "invalid meridian"
}

// EccUnit is the unit system for eccentricity values.
type EccUnit int

//go:generate stringer -type=EccUnit

var KiT_EccUnit = kit.Enums.AddEnum(EccUnitN, kit.NotBitFlag, nil)

func (ev EccUnit) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EccUnit) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// DegsEcc is eccentricity in visual degrees
	DegsEcc EccUnit = iota

	// MMsEcc is eccentricity in retinal millimeters
	MMsEcc

	EccUnitN
)

// Valid returns an error if the unit is not one of the defined values.
func (ev EccUnit) Valid() error {
	if ev < 0 || ev >= EccUnitN {
		return fmt.Errorf("watson.EccUnit: %d is not a valid eccentricity unit", ev)
	}
	return nil
}

// DensityUnit is the unit system for density (and the implied spacing) values.
type DensityUnit int

//go:generate stringer -type=DensityUnit

var KiT_DensityUnit = kit.Enums.AddEnum(DensityUnitN, kit.NotBitFlag, nil)

func (ev DensityUnit) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *DensityUnit) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// PerDeg2 is density in counts per square visual degree
	// (spacing correspondingly in visual degrees)
	PerDeg2 DensityUnit = iota

	// PerMM2 is density in counts per square retinal millimeter
	// (spacing correspondingly in retinal millimeters)
	PerMM2

	DensityUnitN
)

// Valid returns an error if the unit is not one of the defined values.
func (ev DensityUnit) Valid() error {
	if ev < 0 || ev >= DensityUnitN {
		return fmt.Errorf("watson.DensityUnit: %d is not a valid density unit", ev)
	}
	return nil
}
