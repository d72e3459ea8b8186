// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/glpicture/base/errors"
)

var (
	// ErrWindowCreate is returned when the window system cannot be
	// initialized or the window cannot be created.
	ErrWindowCreate = errors.New("gpu: window creation failed")

	// ErrLoaderInit is returned when the graphics functions cannot be loaded.
	ErrLoaderInit = errors.New("gpu: graphics loader initialization failed")
)

// Stdout is where the diagnostic line for a fatal setup failure is written.
var Stdout io.Writer = os.Stdout

// Scene is the fixed content that [Run] renders.
type Scene struct {
	Vertices       []Vertex
	VertexShader   string
	FragmentShader string
}

// Run opens a window with the given config and renders the scene every
// frame until the window is closed or escape is pressed, then releases
// everything in reverse order. It returns the process exit code: 0 on a
// normal close and -1 when the window or the graphics loader cannot be
// set up, in which case no shader or buffer setup is attempted.
// Shader compile and link failures are logged but not fatal.
// Run must be called on the main OS thread.
func Run(p Provider, cfg *Config, sc *Scene) int {
	if err := cfg.Validate(); err != nil {
		errors.Log(err)
		return -1
	}
	win, dev, err := setup(p, cfg)
	if err != nil {
		fmt.Fprintln(Stdout, fatalMessage(err))
		errors.Log(err)
		return -1
	}

	vp := NewViewport(dev, win.FramebufferSize())
	win.SetFramebufferSizeCallback(vp.Resize)

	pr, err := NewProgram(dev, sc.VertexShader, sc.FragmentShader)
	errors.Log(err)
	if !pr.Valid() {
		slog.Warn("gpu: rendering with a program that failed to build", "program", pr.Handle())
	}
	vb := NewVertexBuffer(dev, sc.Vertices)
	slog.Info("gpu: vertex buffer uploaded", "vertices", vb.Vertices(), "triangles", vb.Triangles())

	NewFrameLoop(dev, win, pr, vb, cfg.ClearColor).Run()

	vb.Release()
	pr.Release()
	win.Destroy()
	p.Terminate()
	return 0
}

// setup initializes the provider, creates the window and loads the device.
// On error everything acquired so far has been released.
func setup(p Provider, cfg *Config) (Window, Device, error) {
	if err := p.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	win, err := p.NewWindow(cfg)
	if err != nil {
		p.Terminate()
		return nil, nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	slog.Info("gpu: window created", "title", cfg.Title, "size", cfg.Size())
	dev, err := p.NewDevice()
	if err != nil {
		win.Destroy()
		p.Terminate()
		return nil, nil, fmt.Errorf("%w: %w", ErrLoaderInit, err)
	}
	return win, dev, nil
}

// fatalMessage returns the line printed for a fatal setup error.
func fatalMessage(err error) string {
	if errors.Is(err, ErrLoaderInit) {
		return "Failed to initialize OpenGL loader"
	}
	return "Failed to create GLFW window"
}
