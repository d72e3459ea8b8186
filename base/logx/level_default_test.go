// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug && !release

package logx

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestUserLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, UserLevel)
	h := NewHandler(io.Discard, &slog.HandlerOptions{Level: UserLevel}, termenv.WithProfile(termenv.Ascii))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}
