// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// go/src/log/logger.go
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package logger wraps go.uber.org/zap behind the same small,
// printf-style surface the rest of the engine calls through
// (Debugf/Infof/Warnf/Errorf/Fatalf), so callers of those functions
// need not import zap directly (SetLevel and L do expose zap types). level is shared by every logger this package builds, so
// SetLevel takes effect without rebuilding anything.
var (
	mu    sync.Mutex
	base  *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	base = build()
}

func build() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	l, err := cfg.Build()
	if err != nil {
		// zap's production config does not fail to build in practice;
		// degrade to a no-op sink rather than panic from init().
		return zap.NewNop()
	}
	return l
}

// Init (re)installs the process-wide logger, picking up any config
// changes made via SetLevel. Safe to call more than once.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	base = build()
}

// SetLevel adjusts the minimum level every logger built by this
// package emits.
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}

// L returns the process-wide *zap.Logger for callers that want
// structured fields directly, e.g. logger.L().Info("signed", zap.Uint32("leaf", i)).
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

func Debugf(format string, args ...any) { L().Sugar().Debugf(format, args...) }
func Infof(format string, args ...any)  { L().Sugar().Infof(format, args...) }
func Warnf(format string, args ...any)  { L().Sugar().Warnf(format, args...) }
func Errorf(format string, args ...any) { L().Sugar().Errorf(format, args...) }
func Fatalf(format string, args ...any) { L().Sugar().Fatalf(format, args...) }
