// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport(t *testing.T) {
	dev := newFakeDevice()
	vp := NewViewport(dev, image.Pt(1200, 1200))
	assert.Equal(t, image.Pt(1200, 1200), vp.Size())

	vp.Resize(image.Pt(800, 450))
	vp.Resize(image.Pt(2400, 2400))
	assert.Equal(t, image.Pt(2400, 2400), vp.Size())
	assert.Equal(t, []string{
		"viewport 0 0 1200 1200",
		"viewport 0 0 800 450",
		"viewport 0 0 2400 2400",
	}, dev.calls)
}
