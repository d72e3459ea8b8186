// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	b := &bytes.Buffer{}
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(b, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return b
}

func TestLog(t *testing.T) {
	b := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := New("shader failed")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, b.String(), "shader failed")
	assert.Contains(t, b.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	b := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, b.String())
	assert.Equal(t, 0, Log1(0, fmt.Errorf("no value")))
	assert.Contains(t, b.String(), "no value")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "ok", Must1("ok", nil))
	assert.Panics(t, func() { Must1("", New("boom")) })
}

type stageError struct{ stage string }

func (e *stageError) Error() string { return e.stage }

func TestJoinAs(t *testing.T) {
	err := Join(&stageError{"vertex"}, &stageError{"link"})
	var se *stageError
	assert.True(t, As(err, &se))
	assert.Equal(t, "vertex", se.stage)
	assert.Nil(t, Join(nil, nil))
}
