// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Device is the rendering backend that all drawing goes through.
// Handles are opaque backend object names; zero is never a valid handle.
// All methods must be called on the thread that owns the graphics context.
type Device interface {
	// CreateShader creates an empty shader object of the given type.
	CreateShader(typ ShaderTypes) uint32

	// CompileShader sets the source of the shader and compiles it.
	CompileShader(sh uint32, src string)

	// ShaderStatus returns whether the last compile of the shader
	// succeeded, and the info log if it did not.
	ShaderStatus(sh uint32) (ok bool, log string)

	DeleteShader(sh uint32)

	// CreateProgram creates an empty program object.
	CreateProgram() uint32

	AttachShader(pr, sh uint32)

	LinkProgram(pr uint32)

	// ProgramStatus returns whether the last link of the program
	// succeeded, and the info log if it did not.
	ProgramStatus(pr uint32) (ok bool, log string)

	UseProgram(pr uint32)

	DeleteProgram(pr uint32)

	CreateVertexArray() uint32

	BindVertexArray(va uint32)

	DeleteVertexArray(va uint32)

	CreateBuffer() uint32

	// BindBuffer binds the buffer as the current vertex data buffer.
	BindBuffer(buf uint32)

	// BufferData uploads the data into the currently bound vertex buffer.
	BufferData(data []float32, usage BufferUsages)

	// VertexAttrib configures and enables the vertex attribute at the
	// given location to read float32 vectors of the given size from the
	// currently bound buffer, with the given byte stride and offset.
	VertexAttrib(location uint32, size, stride, offset int)

	DeleteBuffer(buf uint32)

	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer to the current clear color.
	Clear()

	// DrawTriangles draws count vertices as triangles, starting at first,
	// from the currently bound vertex array with the current program.
	DrawTriangles(first, count int)

	Viewport(x, y, width, height int)
}
