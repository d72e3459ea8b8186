// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types is a list of GPU data types that vertex attributes can have.
type Types int32

const (
	UndefinedType Types = iota
	Float32
)

// TypeBytes returns the number of bytes for given type.
func TypeBytes(tp Types) int {
	if tp == UndefinedType {
		return 0
	}
	return 4
}

// VectorType represents a fully-specified GPU vector type,
// e.g., for the inputs to a vertex shader.
type VectorType struct {

	// Type is the data type of each element.
	Type Types

	// Vec is the length of the vector (valid values are 2, 3, 4).
	Vec int
}

// Float32Vector3 is a 3-vector of float32.
var Float32Vector3 = VectorType{Type: Float32, Vec: 3}

// Bytes returns the number of bytes per vector.
func (ty *VectorType) Bytes() int {
	return TypeBytes(ty.Type) * ty.Vec
}

// ShaderTypes is a list of GPU shader types.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VERTEX"
	case FragmentShader:
		return "FRAGMENT"
	}
	return "UNKNOWN"
}

// BufferUsages tell the device how the contents of a buffer will be
// used, so that it can place the data optimally.
type BufferUsages int32

const (
	// StaticDraw is for data that is uploaded once and drawn many times.
	StaticDraw BufferUsages = iota
)
