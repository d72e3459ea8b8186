// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"cogentcore.org/glpicture/base/errors"
)

// Program is a linked shader program made of a vertex and a fragment stage.
// A Program whose build failed is still usable as a handle:
// it renders nothing useful, but drawing with it is not an error.
type Program struct {
	dev    Device
	handle uint32
	linked bool
}

// NewProgram compiles the given vertex and fragment shader sources and
// links them into a program. It makes exactly one attempt and always
// returns a non-nil Program; the error joins a [*ShaderError] for each
// stage that failed. The intermediate shaders are deleted after linking.
func NewProgram(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, verr := compileShader(dev, VertexShader, vertexSrc)
	fs, ferr := compileShader(dev, FragmentShader, fragmentSrc)

	pr := &Program{dev: dev, handle: dev.CreateProgram()}
	dev.AttachShader(pr.handle, vs)
	dev.AttachShader(pr.handle, fs)
	dev.LinkProgram(pr.handle)

	var lerr error
	ok, lg := dev.ProgramStatus(pr.handle)
	if ok {
		pr.linked = true
		slog.Debug("gpu: program linked", "handle", pr.handle)
	} else {
		lerr = &ShaderError{Stage: LinkStage, Log: truncateLog(lg)}
	}
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)
	return pr, errors.Join(verr, ferr, lerr)
}

// Handle returns the device handle of the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Valid returns whether the program linked successfully.
func (pr *Program) Valid() bool {
	return pr.linked
}

// Use makes this the active program, whether or not it is valid.
func (pr *Program) Use() {
	pr.dev.UseProgram(pr.handle)
}

// Release deletes the program on the device. It is safe to call more than once.
func (pr *Program) Release() {
	if pr.handle == 0 {
		return
	}
	pr.dev.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.linked = false
}
