// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"
)

// Viewport keeps the device viewport mapped 1:1 onto the framebuffer.
type Viewport struct {
	dev  Device
	size image.Point
}

// NewViewport returns a new Viewport set to the given framebuffer size.
func NewViewport(dev Device, size image.Point) *Viewport {
	vp := &Viewport{dev: dev}
	vp.Resize(size)
	return vp
}

// Resize sets the viewport to cover the framebuffer of the given size.
// It is intended to be registered with [Window.SetFramebufferSizeCallback].
func (vp *Viewport) Resize(size image.Point) {
	vp.size = size
	vp.dev.Viewport(0, 0, size.X, size.Y)
	slog.Debug("gpu: viewport resized", "width", size.X, "height", size.Y)
}

// Size returns the current viewport size.
func (vp *Viewport) Size() image.Point {
	return vp.size
}
