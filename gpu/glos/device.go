// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glos

import (
	"strings"

	"cogentcore.org/glpicture/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Device is a [gpu.Device] that calls OpenGL 3.3 core functions on the
// current context. It is only valid after [Provider.NewDevice].
type Device struct{}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glUsages = map[gpu.BufferUsages]uint32{
	gpu.StaticDraw: gl.STATIC_DRAW,
}

func (d *Device) CreateShader(typ gpu.ShaderTypes) uint32 {
	return gl.CreateShader(glShaders[typ])
}

// CompileShader sets the source and compiles the shader.
// The source does not need to be null terminated.
func (d *Device) CompileShader(sh uint32, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)
}

func (d *Device) ShaderStatus(sh uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(msg))
	return false, goString(msg)
}

func (d *Device) DeleteShader(sh uint32) {
	gl.DeleteShader(sh)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(pr, sh uint32) {
	gl.AttachShader(pr, sh)
}

func (d *Device) LinkProgram(pr uint32) {
	gl.LinkProgram(pr)
}

func (d *Device) ProgramStatus(pr uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(pr, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var lgLength int32
	gl.GetProgramiv(pr, gl.INFO_LOG_LENGTH, &lgLength)
	lg := strings.Repeat("\x00", int(lgLength+1))
	gl.GetProgramInfoLog(pr, lgLength, nil, gl.Str(lg))
	return false, goString(lg)
}

func (d *Device) UseProgram(pr uint32) {
	gl.UseProgram(pr)
}

func (d *Device) DeleteProgram(pr uint32) {
	gl.DeleteProgram(pr)
}

func (d *Device) CreateVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (d *Device) BindVertexArray(va uint32) {
	gl.BindVertexArray(va)
}

func (d *Device) DeleteVertexArray(va uint32) {
	gl.DeleteVertexArrays(1, &va)
}

func (d *Device) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Device) BindBuffer(buf uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
}

func (d *Device) BufferData(data []float32, usage gpu.BufferUsages) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), glUsages[usage])
}

func (d *Device) VertexAttrib(location uint32, size, stride, offset int) {
	gl.VertexAttribPointerWithOffset(location, int32(size), gl.FLOAT, false, int32(stride), uintptr(offset))
	gl.EnableVertexAttribArray(location)
}

func (d *Device) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// cString returns a null-terminated string if not already
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString returns a non-null-terminated string if not already
func goString(s string) string {
	return strings.TrimRight(s, "\x00")
}
