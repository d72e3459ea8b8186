// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored according to the terminal profile
// of the output.
type Handler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  string
	prefix string
}

// NewHandler returns a new [Handler] writing to the given output.
// Options may be nil, in which case [slog.LevelInfo] is used.
func NewHandler(w io.Writer, opts *slog.HandlerOptions, tops ...termenv.OutputOption) *Handler {
	h := &Handler{out: termenv.NewOutput(w, tops...), mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	sb := &strings.Builder{}
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(sb, h.prefix, a)
	}
	nh.attrs = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// levelString returns the colored name of the given level.
func (h *Handler) levelString(level slog.Level) string {
	c := levelColors[0]
	switch {
	case level >= slog.LevelError:
		c = levelColors[3]
	case level >= slog.LevelWarn:
		c = levelColors[2]
	case level >= slog.LevelInfo:
		c = levelColors[1]
	}
	return h.out.String(level.String()).Foreground(h.out.Color(c)).Bold().String()
}

// levelColors are the ANSI colors for debug, info, warn and error,
// which [termenv.Output.Color] degrades to the output profile.
var levelColors = [4]string{
	strconv.Itoa(int(termenv.ANSIBlue)),
	strconv.Itoa(int(termenv.ANSIGreen)),
	strconv.Itoa(int(termenv.ANSIYellow)),
	strconv.Itoa(int(termenv.ANSIRed)),
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, gp, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
