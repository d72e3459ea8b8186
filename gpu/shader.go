// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// MaxInfoLog is the maximum number of bytes of a compile or link
// info log that is reported in a [ShaderError].
const MaxInfoLog = 512

// Stages are the steps of building a [Program] that can fail.
type Stages int32

const (
	VertexStage Stages = iota
	FragmentStage
	LinkStage
)

func (st Stages) String() string {
	switch st {
	case VertexStage:
		return "VERTEX"
	case FragmentStage:
		return "FRAGMENT"
	case LinkStage:
		return "PROGRAM"
	}
	return "UNKNOWN"
}

// stageOf returns the compile stage of the given shader type.
func stageOf(typ ShaderTypes) Stages {
	if typ == FragmentShader {
		return FragmentStage
	}
	return VertexStage
}

// ShaderError is a compile or link failure, with the info log
// reported by the device.
type ShaderError struct {
	Stage Stages
	Log   string
}

func (e *ShaderError) Error() string {
	op := "compilation"
	if e.Stage == LinkStage {
		op = "linking"
	}
	return fmt.Sprintf("gpu: %s %s failed: %s", e.Stage, op, e.Log)
}

// compileShader compiles one shader stage from the given source.
// The shader handle is returned even when compilation fails.
func compileShader(dev Device, typ ShaderTypes, src string) (uint32, error) {
	sh := dev.CreateShader(typ)
	dev.CompileShader(sh, src)
	ok, lg := dev.ShaderStatus(sh)
	if !ok {
		return sh, &ShaderError{Stage: stageOf(typ), Log: truncateLog(lg)}
	}
	slog.Debug("gpu: shader compiled", "stage", stageOf(typ), "handle", sh)
	return sh, nil
}

func truncateLog(lg string) string {
	if len(lg) > MaxInfoLog {
		return lg[:MaxInfoLog]
	}
	return lg
}
