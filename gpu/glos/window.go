// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glos provides the desktop OpenGL implementation of the
// gpu Provider, Window and Device, using glfw for windows and input.
package glos

import (
	"fmt"
	"image"
	"runtime"

	"cogentcore.org/glpicture/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Provider is a [gpu.Provider] based on glfw.
// IMPORTANT: all of its methods must be called on the main initial thread!
type Provider struct{}

// NewProvider returns a new glfw [Provider].
func NewProvider() *Provider {
	return &Provider{}
}

// Init initializes glfw.
func (p *Provider) Init() error {
	return glfw.Init()
}

// NewWindow creates a window with an OpenGL context per the config,
// and makes the context current.
func (p *Provider) NewWindow(cfg *gpu.Config) (gpu.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if cfg.ForwardCompatible && runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glos: glfw.CreateWindow failed: %w", err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)
	return &Window{glw: glw}, nil
}

// NewDevice loads the OpenGL functions for the current context.
func (p *Provider) NewDevice() (gpu.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glos: gl.Init failed: %w", err)
	}
	return &Device{}, nil
}

// Terminate shuts down glfw, destroying any remaining windows.
func (p *Provider) Terminate() {
	glfw.Terminate()
}

// Window is a [gpu.Window] wrapping a glfw window.
type Window struct {
	glw *glfw.Window
}

var glfwKeys = map[gpu.Keys]glfw.Key{
	gpu.KeyEscape: glfw.KeyEscape,
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

func (w *Window) KeyPressed(key gpu.Keys) bool {
	return w.glw.GetKey(glfwKeys[key]) == glfw.Press
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) FramebufferSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

func (w *Window) SetFramebufferSizeCallback(fun func(size image.Point)) {
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fun(image.Pt(width, height))
	})
}

func (w *Window) Destroy() {
	w.glw.Destroy()
}
