// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picture

import "cogentcore.org/glpicture/gpu"

var tail = []gpu.Vertex{
	v(-0.95, -0.1, 1, 0.5, 0),
	v(-0.82, -0.09, 1, 0.5, 0),
	v(-0.77, 0.01, 1, 0.5, 0),

	v(-0.95, -0.1, 1, 1, 0),
	v(-0.82, -0.09, 1, 1, 0),
	v(-0.8, -0.14, 1, 1, 0),

	v(-0.8, -0.14, 1, 0.5, 0),
	v(-0.82, -0.09, 1, 0.5, 0),
	v(-0.68, -0.08, 1, 0.5, 0),

	v(-0.82, -0.09, 1, 1, 0),
	v(-0.75, 0.05, 1, 1, 0),
	v(-0.62, 0.05, 1, 1, 0),

	v(-0.82, -0.09, 1, 0.5, 0),
	v(-0.62, 0.05, 1, 0.5, 0),
	v(-0.58, -0.08, 1, 0.5, 0),

	v(-0.62, 0.05, 1, 0.5, 0),
	v(-0.58, -0.08, 1, 0.5, 0),
	v(-0.5, 0, 1, 0.5, 0),

	v(-0.62, 0.05, 1, 0.5, 0),
	v(-0.49, 0.09, 1, 0.5, 0),
	v(-0.46, -0.02, 1, 0.5, 0),

	v(-0.62, 0.05, 1, 1, 0),
	v(-0.58, 0.13, 1, 1, 0),
	v(-0.49, 0.09, 1, 1, 0),

	v(-0.58, 0.13, 1, 1, 0),
	v(-0.49, 0.09, 1, 1, 0),
	v(-0.46, 0.16, 1, 1, 0),

	v(-0.49, 0.09, 1, 0.5, 0),
	v(-0.46, -0.02, 1, 0.5, 0),
	v(-0.41, 0.08, 1, 0.5, 0),

	v(-0.49, 0.09, 1, 1, 0),
	v(-0.43, 0.22, 1, 1, 0),
	v(-0.35, 0.18, 1, 1, 0),

	v(-0.49, 0.09, 1, 0.5, 0),
	v(-0.35, 0.18, 1, 0.5, 0),
	v(-0.37, 0.07, 1, 0.5, 0),

	v(-0.43, 0.22, 1, 1, 0),
	v(-0.35, 0.18, 1, 1, 0),
	v(-0.25, 0.22, 1, 1, 0),

	v(-0.35, 0.18, 1, 0.5, 0),
	v(-0.25, 0.22, 1, 0.5, 0),
	v(-0.37, 0.07, 1, 0.5, 0),
}

var hair = []gpu.Vertex{
	v(0.12, 0.31, 1, 0, 0),
	v(0.2, 0.27, 1, 0, 0),
	v(0.37, 0.27, 1, 0, 0),

	v(0.12, 0.31, 1, 1, 0),
	v(0.37, 0.27, 1, 1, 0),
	v(0.4, 0.35, 1, 1, 0),

	v(0.28, 0.33, 1, 0, 0),
	v(0.19, 0.39, 1, 0, 0),
	v(0.4, 0.35, 1, 0, 0),

	v(0.19, 0.39, 1, 1, 0),
	v(0.44, 0.44, 1, 1, 0),
	v(0.4, 0.35, 1, 1, 0),

	v(0.3, 0.41, 1, 0, 0),
	v(0.25, 0.47, 1, 0, 0),
	v(0.44, 0.44, 1, 0, 0),

	v(0.44, 0.44, 1, 1, 0),
	v(0.25, 0.47, 1, 1, 0),
	v(0.5, 0.5, 1, 1, 0),

	v(0.42, 0.49, 1, 0, 0),
	v(0.33, 0.57, 1, 0, 0),
	v(0.5, 0.5, 1, 0, 0),

	v(0.5, 0.5, 1, 1, 0),
	v(0.33, 0.57, 1, 1, 0),
	v(0.57, 0.57, 1, 1, 0),

	v(0.51, 0.57, 1, 0, 0),
	v(0.42, 0.65, 1, 0, 0),
	v(0.57, 0.57, 1, 0, 0),

	v(0.57, 0.57, 1, 1, 0),
	v(0.42, 0.65, 1, 1, 0),
	v(0.66, 0.55, 1, 1, 0),
}

var body = []gpu.Vertex{
	v(-0.25, 0.22, 1, 1, 1),
	v(-0.32, 0.09, 1, 1, 1),
	v(-0.06, 0.27, 1, 1, 1),

	v(-0.32, 0.09, 0.5, 1, 1),
	v(-0.34, -0.03, 0.5, 1, 1),
	v(-0.25, -0.1, 0.5, 1, 1),

	v(-0.32, 0.09, 0, 1, 1),
	v(-0.25, -0.1, 0, 1, 1),
	v(-0.12, -0.03, 0, 1, 1),

	v(-0.25, -0.1, 0, 0.5, 1),
	v(-0.18, -0.12, 0, 0.5, 1),
	v(-0.12, -0.03, 0, 0.5, 1),

	v(-0.32, 0.09, 0.5, 1, 1),
	v(-0.12, 0.08, 0.5, 1, 1),
	v(-0.12, -0.03, 0.5, 1, 1),

	v(-0.32, 0.09, 0, 1, 1),
	v(-0.06, 0.27, 0, 1, 1),
	v(-0.12, 0.08, 0, 1, 1),

	v(-0.12, 0.08, 0, 1, 1),
	v(-0.06, 0.27, 0, 1, 1),
	v(0.07, 0.08, 0, 1, 1),

	v(-0.12, -0.03, 0, 1, 1),
	v(-0.12, 0.08, 0, 1, 1),
	v(0.07, 0.08, 0, 1, 1),

	v(-0.12, -0.03, 0, 1, 1),
	v(0.07, 0.08, 0, 1, 1),
	v(0.08, -0.04, 0, 1, 1),

	v(0.07, 0.08, 1, 1, 1),
	v(-0.06, 0.27, 1, 1, 1),
	v(0.09, 0.25, 1, 1, 1),

	v(0.07, 0.08, 1, 1, 1),
	v(0.09, 0.25, 1, 1, 1),
	v(0.2, 0.27, 1, 1, 1),

	v(0.08, -0.04, 0, 0.5, 0.5),
	v(0.07, 0.08, 0, 0.5, 0.5),
	v(0.23, -0.07, 0, 0.5, 0.5),

	v(0.07, 0.08, 0, 0.5, 1),
	v(0.24, 0.1, 0, 0.5, 1),
	v(0.23, -0.07, 0, 0.5, 1),

	v(0.07, 0.08, 0, 1, 1),
	v(0.2, 0.27, 0, 1, 1),
	v(0.24, 0.1, 0, 1, 1),

	v(0.2, 0.27, 0.5, 1, 1),
	v(0.24, 0.1, 0.5, 1, 1),
	v(0.43, 0.12, 0.5, 1, 1),

	v(0.23, -0.07, 0, 1, 1),
	v(0.24, 0.1, 0, 1, 1),
	v(0.43, 0.12, 0, 1, 1),

	v(0.23, -0.07, 0, 0.5, 1),
	v(0.43, 0.12, 0, 0.5, 1),
	v(0.41, -0.04, 0, 0.5, 1),

	v(0.41, -0.04, 0, 0.5, 0.5),
	v(0.43, 0.12, 0, 0.5, 0.5),
	v(0.54, -0.01, 0, 0.5, 0.5),

	v(0.2, 0.27, 1, 1, 1),
	v(0.37, 0.27, 1, 1, 1),
	v(0.43, 0.12, 1, 1, 1),

	v(0.37, 0.27, 0, 1, 1),
	v(0.51, 0.24, 0, 1, 1),
	v(0.43, 0.12, 0, 1, 1),

	v(0.43, 0.12, 0, 0.5, 1),
	v(0.51, 0.24, 0, 0.5, 1),
	v(0.58, 0.2, 0, 0.5, 1),

	v(0.43, 0.12, 0, 0.5, 0.5),
	v(0.58, 0.2, 0, 0.5, 0.5),
	v(0.63, 0.07, 0, 0.5, 0.5),

	v(0.63, 0.07, 0, 0.5, 0.5),
	v(0.58, 0.2, 0, 0.5, 0.5),
	v(0.62, 0.18, 0, 0.5, 0.5),

	v(0.63, 0.07, 0, 0.5, 0.5),
	v(0.62, 0.18, 0, 0.5, 0.5),
	v(0.69, 0.05, 0, 0.5, 0.5),

	v(0.63, 0.07, 0, 0.5, 0.5),
	v(0.69, 0.05, 0, 0.5, 0.5),
	v(0.66, 0.02, 0, 0.5, 0.5),

	v(0.43, 0.12, 0, 1, 1),
	v(0.63, 0.07, 0, 1, 1),
	v(0.66, 0.02, 0, 1, 1),

	v(0.43, 0.12, 0.5, 1, 1),
	v(0.66, 0.02, 0.5, 1, 1),
	v(0.58, -0.05, 0.5, 1, 1),
}

var backLeg1 = []gpu.Vertex{
	v(-0.31, -0.16, 0, 1, 1),
	v(-0.34, -0.03, 0, 1, 1),
	v(-0.25, -0.1, 0, 1, 1),

	v(-0.37, -0.22, 0, 1, 1),
	v(-0.25, -0.1, 0, 1, 1),
	v(-0.18, -0.12, 0, 1, 1),

	v(-0.43, -0.18, 0.5, 1, 1),
	v(-0.25, -0.1, 0.5, 1, 1),
	v(-0.37, -0.22, 0.5, 1, 1),

	v(-0.42, -0.23, 0, 0.5, 0.5),
	v(-0.43, -0.18, 0, 0.5, 0.5),
	v(-0.37, -0.22, 0, 0.5, 0.5),

	v(-0.44, -0.44, 0.5, 1, 1),
	v(-0.42, -0.23, 0.5, 1, 1),
	v(-0.37, -0.22, 0.5, 1, 1),

	v(-0.44, -0.44, 1, 0, 0),
	v(-0.37, -0.22, 1, 0, 0),
	v(-0.4, -0.44, 1, 0, 0),

	v(-0.44, -0.44, 1, 0.5, 0),
	v(-0.4, -0.44, 1, 0.5, 0),
	v(-0.39, -0.49, 1, 0.5, 0),

	v(-0.46, -0.52, 1, 1, 1),
	v(-0.43, -0.47, 1, 1, 1),
	v(-0.4, -0.52, 1, 1, 1),

	v(-0.43, -0.47, 1, 0, 0),
	v(-0.39, -0.49, 1, 0, 0),
	v(-0.4, -0.52, 1, 0, 0),

	v(-0.4, -0.52, 1, 0, 0),
	v(-0.39, -0.49, 1, 0, 0),
	v(-0.35, -0.52, 1, 0, 0),
}

var backLeg2 = []gpu.Vertex{
	v(-0.12, -0.03, 0, 1, 1),
	v(-0.01, -0.04, 0, 1, 1),
	v(-0.18, -0.23, 0, 1, 1),

	v(-0.25, -0.21, 0.5, 1, 1),
	v(-0.12, -0.03, 0.5, 1, 1),
	v(-0.18, -0.23, 0.5, 1, 1),

	v(-0.25, -0.21, 0, 0.5, 0.5),
	v(-0.18, -0.23, 0, 0.5, 0.5),
	v(-0.23, -0.26, 0, 0.5, 0.5),

	v(-0.23, -0.26, 1, 1, 1),
	v(-0.18, -0.23, 1, 1, 1),
	v(-0.15, -0.4, 1, 1, 1),

	v(-0.15, -0.4, 1, 0, 0),
	v(-0.18, -0.23, 1, 0, 0),
	v(-0.11, -0.4, 1, 0, 0),

	v(-0.15, -0.4, 1, 1, 0),
	v(-0.11, -0.4, 1, 1, 0),
	v(-0.11, -0.44, 1, 1, 0),

	v(-0.11, -0.44, 1, 0.5, 0),
	v(-0.11, -0.4, 1, 0.5, 0),
	v(-0.06, -0.45, 1, 0.5, 0),

	v(-0.13, -0.49, 1, 1, 1),
	v(-0.11, -0.44, 1, 1, 1),
	v(-0.08, -0.49, 1, 1, 1),

	v(-0.11, -0.44, 1, 0, 0),
	v(-0.06, -0.45, 1, 0, 0),
	v(-0.08, -0.49, 1, 0, 0),

	v(-0.08, -0.49, 1, 0, 0),
	v(-0.06, -0.45, 1, 0, 0),
	v(-0.03, -0.49, 1, 0, 0),
}

var frontLeg1 = []gpu.Vertex{
	v(0.58, -0.05, 0, 1, 1),
	v(0.66, 0.02, 0, 1, 1),
	v(0.73, -0.01, 0, 1, 1),

	v(0.58, -0.05, 0, 0.5, 1),
	v(0.73, -0.01, 0, 0.5, 1),
	v(0.75, -0.05, 0, 0.5, 1),

	v(0.66, 0.02, 0.5, 1, 1),
	v(0.69, 0.05, 0.5, 1, 1),
	v(0.73, -0.01, 0.5, 1, 1),

	v(0.73, -0.01, 1, 1, 1),
	v(0.75, -0.05, 1, 1, 1),
	v(0.83, -0.02, 1, 1, 1),

	v(0.75, -0.05, 0, 0.5, 0.5),
	v(0.83, -0.02, 0, 0.5, 0.5),
	v(0.81, -0.09, 0, 0.5, 0.5),

	v(0.83, -0.02, 1, 0.5, 0),
	v(0.81, -0.09, 1, 0.5, 0),
	v(0.87, -0.12, 1, 0.5, 0),

	v(0.81, -0.09, 1, 0.5, 0),
	v(0.87, -0.12, 1, 0.5, 0),
	v(0.84, -0.15, 1, 0.5, 0),

	v(0.87, -0.12, 1, 1, 0),
	v(0.82, -0.19, 1, 1, 0),
	v(0.89, -0.18, 1, 1, 0),

	v(0.8, -0.2, 1, 0, 0),
	v(0.87, -0.26, 1, 0, 0),
	v(0.89, -0.18, 1, 0, 0),
}

var frontLeg2 = []gpu.Vertex{
	v(0.69, 0.05, 0, 1, 1),
	v(0.73, -0.01, 0, 1, 1),
	v(0.82, 0.08, 0, 1, 1),

	v(0.73, -0.01, 0, 0.5, 0.5),
	v(0.82, 0.08, 0, 0.5, 0.5),
	v(0.82, 0.02, 0, 0.5, 0.5),

	v(0.82, 0.08, 1, 1, 1),
	v(0.82, 0.02, 1, 1, 1),
	v(0.86, 0.04, 1, 1, 1),

	v(0.82, 0.02, 1, 0, 0),
	v(0.86, 0.04, 1, 0, 0),
	v(0.88, -0.01, 1, 0, 0),

	v(0.86, 0.04, 1, 0.5, 0),
	v(0.91, 0, 1, 0.5, 0),
	v(0.9, -0.05, 1, 0.5, 0),

	v(0.89, -0.1, 1, 1, 0),
	v(0.91, 0, 1, 1, 0),
	v(0.97, -0.08, 1, 1, 0),

	v(0.89, -0.1, 1, 0, 0),
	v(0.97, -0.08, 1, 0, 0),
	v(0.97, -0.16, 1, 0, 0),
}

var face = []gpu.Vertex{
	v(0.44, 0.44, 0.5, 1, 1),
	v(0.57, 0.57, 0.5, 1, 1),
	v(0.6, 0.35, 0.5, 1, 1),

	v(0.44, 0.44, 0.5, 1, 1),
	v(0.37, 0.27, 0.5, 1, 1),
	v(0.6, 0.35, 0.5, 1, 1),

	v(0.37, 0.27, 0, 1, 1),
	v(0.51, 0.24, 0, 1, 1),
	v(0.6, 0.35, 0, 1, 1),

	v(0.51, 0.24, 0, 0.5, 1),
	v(0.6, 0.35, 0, 0.5, 1),
	v(0.58, 0.2, 0, 0.5, 1),

	v(0.58, 0.2, 0, 0.5, 0.5),
	v(0.6, 0.35, 0, 0.5, 0.5),
	v(0.62, 0.18, 0, 0.5, 0.5),

	v(0.57, 0.57, 0, 1, 1),
	v(0.66, 0.55, 0, 1, 1),
	v(0.66, 0.51, 0, 1, 1),

	v(0.57, 0.57, 0, 1, 1),
	v(0.6, 0.4, 0, 1, 1),
	v(0.66, 0.51, 0, 1, 1),

	v(0.66, 0.55, 1, 1, 1),
	v(0.66, 0.51, 1, 1, 1),
	v(0.74, 0.59, 1, 1, 1),

	v(0.66, 0.51, 0, 0.5, 0.5),
	v(0.74, 0.59, 0, 0.5, 0.5),
	v(0.72, 0.53, 0, 0.5, 0.5),

	v(0.6, 0.4, 0, 0.5, 1),
	v(0.66, 0.51, 0, 0.5, 1),
	v(0.71, 0.33, 0, 0.5, 1),

	v(0.66, 0.51, 0.5, 1, 1),
	v(0.72, 0.53, 0.5, 1, 1),
	v(0.75, 0.45, 0.5, 1, 1),

	v(0.66, 0.51, 0.5, 1, 1),
	v(0.75, 0.45, 0.5, 1, 1),
	v(0.71, 0.33, 0.5, 1, 1),

	v(0.68, 0.48, 1, 0, 0),
	v(0.72, 0.43, 1, 0, 0),
	v(0.73, 0.45, 1, 0, 0),

	v(0.71, 0.33, 0, 1, 1),
	v(0.75, 0.45, 0, 1, 1),
	v(0.83, 0.31, 0, 1, 1),

	v(0.6, 0.4, 0, 0.5, 0.5),
	v(0.6, 0.35, 0, 0.5, 0.5),
	v(0.7, 0.29, 0, 0.5, 0.5),

	v(0.6, 0.4, 0, 0.5, 0.5),
	v(0.71, 0.33, 0, 0.5, 0.5),
	v(0.7, 0.29, 0, 0.5, 0.5),

	v(0.7, 0.29, 0, 0.5, 0.5),
	v(0.71, 0.33, 0, 0.5, 0.5),
	v(0.79, 0.22, 0, 0.5, 0.5),

	v(0.79, 0.22, 0, 0.5, 1),
	v(0.71, 0.33, 0, 0.5, 1),
	v(0.82, 0.24, 0, 0.5, 1),

	v(0.82, 0.24, 0, 0.5, 1),
	v(0.71, 0.33, 0, 0.5, 1),
	v(0.83, 0.31, 0, 0.5, 1),
}
