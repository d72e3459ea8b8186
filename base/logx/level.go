// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by
// the render binaries, built on [log/slog].
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default is set by build tags:
// debug selects [slog.LevelDebug], release selects [slog.LevelWarn],
// and otherwise it is [slog.LevelInfo].
var UserLevel slog.Level = defaultUserLevel
