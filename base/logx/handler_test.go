// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(b *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(b, &slog.HandlerOptions{Level: level}, termenv.WithProfile(termenv.Ascii)))
}

func TestHandlerLevels(t *testing.T) {
	b := &bytes.Buffer{}
	l := newTestLogger(b, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("window created", "width", 1200, "height", 1200)
	l.Warn("program not linked")
	assert.Equal(t, "INFO window created width=1200 height=1200\nWARN program not linked\n", b.String())
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	b := &bytes.Buffer{}
	l := newTestLogger(b, slog.LevelDebug).With("stage", "vertex").WithGroup("gl")
	l.Debug("compiled", "handle", 3, slog.Group("log", "len", 0))
	assert.Equal(t, "DEBUG compiled stage=vertex gl.handle=3 gl.log.len=0\n", b.String())
}

func TestHandlerColors(t *testing.T) {
	b := &bytes.Buffer{}
	l := slog.New(NewHandler(b, nil, termenv.WithProfile(termenv.ANSI)))
	l.Error("failed")
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "ERROR")
	assert.Contains(t, b.String(), " failed\n")
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	UserLevel = defaultUserLevel
}
