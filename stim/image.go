// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// FrameFromImage converts a standard Go image into a stimulus frame of the
// given target size, rescaling with bilinear interpolation when the source
// size differs.  With grey = true a single 2D luminance channel is produced
// (equal-weight RGB average); otherwise a 3-channel (Y,X,Chan) RGB frame.
// Values are normalized to [0,1].
func FrameFromImage(img image.Image, name string, size image.Point, grey bool) *Frame {
	isz := img.Bounds().Size()
	if isz != size {
		img = transform.Resize(img, size.X, size.Y, transform.Linear)
	}
	chans := 3
	if grey {
		chans = 1
	}
	fr := NewFrame(name, size.Y, size.X, chans)
	bd := img.Bounds()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			r, g, b, _ := img.At(bd.Min.X+x, bd.Min.Y+y).RGBA()
			rv := float32(r) / 0xffff
			gv := float32(g) / 0xffff
			bv := float32(b) / 0xffff
			if grey {
				fr.Img.Set([]int{y, x}, (rv+gv+bv)/3)
			} else {
				fr.Img.Set([]int{y, x, 0}, rv)
				fr.Img.Set([]int{y, x, 1}, gv)
				fr.Img.Set([]int{y, x, 2}, bv)
			}
		}
	}
	return fr
}

// SequenceFromImages builds a pre-composed sequence from a list of images,
// all rescaled to the given size, with frame times at dt spacing.
func SequenceFromImages(imgs []image.Image, size image.Point, grey bool, dt float32) *Sequence {
	sq := &Sequence{}
	sq.Defaults()
	if dt > 0 {
		sq.DT = dt
	}
	sq.Frames = make([]*Frame, len(imgs))
	for i, img := range imgs {
		fr := FrameFromImage(img, "", size, grey)
		fr.Time = float32(i) * sq.DT
		sq.Frames[i] = fr
	}
	return sq
}
