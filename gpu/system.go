// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Keys are the keyboard keys that a [Window] can report.
type Keys int32

const (
	KeyEscape Keys = iota
)

// Window is an OS window with a current graphics context.
type Window interface {
	// ShouldClose returns whether the window has been asked to close,
	// either by the user or through SetShouldClose.
	ShouldClose() bool

	SetShouldClose(close bool)

	// KeyPressed returns whether the given key is currently pressed.
	KeyPressed(key Keys) bool

	// SwapBuffers presents the rendered frame. It may block until the
	// next vertical sync.
	SwapBuffers()

	// PollEvents processes pending window and input events, invoking
	// any registered callbacks.
	PollEvents()

	// FramebufferSize returns the current size of the framebuffer in pixels.
	FramebufferSize() image.Point

	// SetFramebufferSizeCallback registers the function to be called
	// whenever the framebuffer is resized.
	SetFramebufferSizeCallback(fun func(size image.Point))

	Destroy()
}

// Provider provides windows and the [Device] to render into them.
// Calls must happen on the main OS thread.
type Provider interface {
	Init() error

	// NewWindow creates a window with the size, title and context
	// settings of the given config, and makes its context current.
	NewWindow(cfg *Config) (Window, error)

	// NewDevice loads the graphics functions for the current context.
	NewDevice() (Device, error)

	Terminate()
}
