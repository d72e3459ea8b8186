// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "log/slog"

// FrameStates are the states of a [FrameLoop].
type FrameStates int32

const (
	// Running is rendering a frame on every step.
	Running FrameStates = iota

	// Closing is terminal: no further frames are rendered.
	Closing
)

func (fs FrameStates) String() string {
	if fs == Closing {
		return "Closing"
	}
	return "Running"
}

// FrameLoop renders the same picture every frame until its window
// is asked to close. Every frame is identical: there is no timing
// or animation state.
type FrameLoop struct {
	dev     Device
	win     Window
	program *Program
	buffer  *VertexBuffer
	clear   [4]float32
	state   FrameStates
	frames  int
}

// NewFrameLoop returns a new FrameLoop drawing the given buffer with
// the given program into the window, on the given clear color.
func NewFrameLoop(dev Device, win Window, pr *Program, vb *VertexBuffer, clear [4]float32) *FrameLoop {
	return &FrameLoop{dev: dev, win: win, program: pr, buffer: vb, clear: clear}
}

// State returns the current state of the loop.
func (fl *FrameLoop) State() FrameStates {
	return fl.state
}

// Frames returns the number of frames rendered so far.
func (fl *FrameLoop) Frames() int {
	return fl.frames
}

// Run activates the program and renders frames until the loop is Closing.
func (fl *FrameLoop) Run() {
	fl.program.Use()
	for fl.Step() {
	}
	slog.Info("gpu: frame loop closed", "frames", fl.frames)
}

// Step runs one iteration of the loop and returns whether a frame
// was rendered. A close request, from the escape key or the window
// system, is observed at the start of the next Step, which then moves
// the loop to Closing without drawing.
func (fl *FrameLoop) Step() bool {
	if fl.state == Closing {
		return false
	}
	if fl.win.ShouldClose() {
		fl.state = Closing
		return false
	}
	fl.processInput()
	fl.dev.ClearColor(fl.clear[0], fl.clear[1], fl.clear[2], fl.clear[3])
	fl.dev.Clear()
	fl.buffer.Draw()
	fl.win.SwapBuffers()
	fl.win.PollEvents()
	fl.frames++
	return true
}

func (fl *FrameLoop) processInput() {
	if fl.win.KeyPressed(KeyEscape) {
		fl.win.SetShouldClose(true)
	}
}
