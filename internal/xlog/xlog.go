//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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
//

// Package xlog is the single place the engine configures its logging
// backend. Every package that wants a logger calls Get(name) instead of
// wiring up go-logging itself, so format and level stay consistent across
// the whole binary.
package xlog

import (
	"os"
	"sync"

	logging "github.com/op/go-logging"
)

var (
	once    sync.Once
	leveled logging.LeveledBackend
)

func setup() {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled = logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// Get returns a named logger. The first call wires up the shared backend;
// later calls reuse it, so all loggers share level and format state.
func Get(name string) *logging.Logger {
	once.Do(setup)
	return logging.MustGetLogger(name)
}

// SetLevel sets the log level for a module, or all modules when module is "".
// level follows go-logging's scale: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG.
func SetLevel(level logging.Level, module string) {
	once.Do(setup)
	leveled.SetLevel(level, module)
}

// SetLevelFromInt maps the engine's config-file integer log levels (0-5,
// 5 being most verbose) onto go-logging's named levels, matching the scale
// used historically in this codebase's config file.
func SetLevelFromInt(n int, module string) {
	levels := []logging.Level{
		logging.CRITICAL,
		logging.ERROR,
		logging.WARNING,
		logging.NOTICE,
		logging.INFO,
		logging.DEBUG,
	}
	if n < 0 {
		n = 0
	}
	if n >= len(levels) {
		n = len(levels) - 1
	}
	SetLevel(levels[n], module)
}
