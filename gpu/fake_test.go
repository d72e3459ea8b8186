// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"
)

// fakeDevice is a [Device] that records every call in order.
type fakeDevice struct {
	calls      []string
	next       uint32
	sources    map[uint32]string
	compileLog map[string]string // source -> failure log
	linkLog    string            // non-empty: link fails
	uploads    [][]float32
	draws      [][2]int
	viewports  []image.Point
	live       map[uint32]bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{sources: map[uint32]string{}, compileLog: map[string]string{}, live: map[uint32]bool{}}
}

func (d *fakeDevice) call(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) create(kind string) uint32 {
	d.next++
	d.live[d.next] = true
	d.call("create %s %d", kind, d.next)
	return d.next
}

func (d *fakeDevice) delete(kind string, h uint32) {
	delete(d.live, h)
	d.call("delete %s %d", kind, h)
}

func (d *fakeDevice) CreateShader(typ ShaderTypes) uint32 { return d.create(typ.String()) }

func (d *fakeDevice) CompileShader(sh uint32, src string) {
	d.sources[sh] = src
	d.call("compile %d", sh)
}

func (d *fakeDevice) ShaderStatus(sh uint32) (bool, string) {
	lg, fail := d.compileLog[d.sources[sh]]
	return !fail, lg
}

func (d *fakeDevice) DeleteShader(sh uint32)     { d.delete("shader", sh) }
func (d *fakeDevice) CreateProgram() uint32      { return d.create("program") }
func (d *fakeDevice) AttachShader(pr, sh uint32) { d.call("attach %d %d", pr, sh) }
func (d *fakeDevice) LinkProgram(pr uint32)      { d.call("link %d", pr) }

func (d *fakeDevice) ProgramStatus(pr uint32) (bool, string) {
	return d.linkLog == "", d.linkLog
}

func (d *fakeDevice) UseProgram(pr uint32)          { d.call("use %d", pr) }
func (d *fakeDevice) DeleteProgram(pr uint32)       { d.delete("program", pr) }
func (d *fakeDevice) CreateVertexArray() uint32     { return d.create("vertexarray") }
func (d *fakeDevice) BindVertexArray(va uint32)     { d.call("bind vertexarray %d", va) }
func (d *fakeDevice) DeleteVertexArray(va uint32)   { d.delete("vertexarray", va) }
func (d *fakeDevice) CreateBuffer() uint32          { return d.create("buffer") }
func (d *fakeDevice) BindBuffer(buf uint32)         { d.call("bind buffer %d", buf) }
func (d *fakeDevice) DeleteBuffer(buf uint32)       { d.delete("buffer", buf) }
func (d *fakeDevice) ClearColor(r, g, b, a float32) { d.call("clearcolor %g %g %g %g", r, g, b, a) }
func (d *fakeDevice) Clear()                        { d.call("clear") }

func (d *fakeDevice) BufferData(data []float32, usage BufferUsages) {
	d.uploads = append(d.uploads, slices.Clone(data))
	d.call("bufferdata %d %d", len(data), usage)
}

func (d *fakeDevice) VertexAttrib(location uint32, size, stride, offset int) {
	d.call("attrib %d %d %d %d", location, size, stride, offset)
}

func (d *fakeDevice) DrawTriangles(first, count int) {
	d.draws = append(d.draws, [2]int{first, count})
	d.call("draw %d %d", first, count)
}

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.viewports = append(d.viewports, image.Pt(width, height))
	d.call("viewport %d %d %d %d", x, y, width, height)
}

// count returns the number of recorded calls with the given prefix.
func (d *fakeDevice) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// fakeWindow is a [Window] driven by a per-frame script. Frames are
// counted by SwapBuffers, so "at frame n" means during the n'th iteration
// (0-based) of the frame loop.
type fakeWindow struct {
	dev         *fakeDevice
	size        image.Point
	escapeAt    int                 // frame at which escape reads as pressed; -1 never
	closeAt     int                 // frame after whose events the window system requests close; -1 never
	resizeAt    map[int]image.Point // frame -> new size, delivered in PollEvents
	maxFrames   int                 // safety stop
	frame       int
	shouldClose bool
	resize      func(size image.Point)
	destroyed   bool
}

func newFakeWindow(dev *fakeDevice) *fakeWindow {
	return &fakeWindow{dev: dev, size: image.Pt(1200, 1200), escapeAt: -1, closeAt: -1, maxFrames: 1000}
}

func (w *fakeWindow) ShouldClose() bool            { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(close bool)    { w.shouldClose = close }
func (w *fakeWindow) KeyPressed(key Keys) bool     { return key == KeyEscape && w.frame == w.escapeAt }
func (w *fakeWindow) FramebufferSize() image.Point { return w.size }

func (w *fakeWindow) SetFramebufferSizeCallback(fun func(size image.Point)) {
	w.resize = fun
}

func (w *fakeWindow) SwapBuffers() {
	w.dev.call("swap")
}

func (w *fakeWindow) PollEvents() {
	if sz, ok := w.resizeAt[w.frame]; ok {
		w.size = sz
		if w.resize != nil {
			w.resize(sz)
		}
	}
	if w.frame == w.closeAt || w.frame+1 >= w.maxFrames {
		w.shouldClose = true
	}
	w.frame++
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	w.dev.call("destroy window")
}

// fakeProvider is a [Provider] for a fakeWindow and fakeDevice.
type fakeProvider struct {
	dev        *fakeDevice
	win        *fakeWindow
	initErr    error
	windowErr  error
	deviceErr  error
	terminated bool
}

func newFakeProvider() *fakeProvider {
	dev := newFakeDevice()
	return &fakeProvider{dev: dev, win: newFakeWindow(dev)}
}

func (p *fakeProvider) Init() error {
	p.dev.call("init")
	return p.initErr
}

func (p *fakeProvider) NewWindow(cfg *Config) (Window, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.win.size = cfg.Size()
	p.dev.call("window %s %v", cfg.Title, cfg.Size())
	return p.win, nil
}

func (p *fakeProvider) NewDevice() (Device, error) {
	if p.deviceErr != nil {
		return nil, p.deviceErr
	}
	return p.dev, nil
}

func (p *fakeProvider) Terminate() {
	p.terminated = true
	p.dev.call("terminate")
}

var errFake = errors.New("fake failure")
