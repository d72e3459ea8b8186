// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glpicture opens a window and draws a fixed picture
// made of colored triangles until the window is closed or
// escape is pressed.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/glpicture/base/logx"
	"cogentcore.org/glpicture/gpu"
	"cogentcore.org/glpicture/gpu/glos"
	"cogentcore.org/glpicture/picture"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	logx.SetDefaultLogger()
	os.Exit(gpu.Run(glos.NewProvider(), gpu.DefaultConfig(), picture.Scene()))
}
