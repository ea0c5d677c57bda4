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

package util

import (
	"os"
	"path/filepath"
)

// ResolveFile resolves path to an absolute, cleaned path. A relative path
// is resolved against the current working directory, matching how config
// file paths given on the command line (e.g. "./config.toml") are expected
// to behave regardless of which directory the binary was launched from.
func ResolveFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Clean(filepath.Join(wd, path)), nil
}

// ResolveFolder resolves path the same way ResolveFile does and returns
// an error if nothing exists at the resolved path.
func ResolveFolder(path string) (string, error) {
	resolved, err := ResolveFile(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// ResolveCreateFolder resolves path the same way ResolveFile does and
// additionally ensures the folder exists, creating it (and any missing
// parents) if necessary. The folder is the resolved path itself, or its
// parent directory when the path has a file extension.
func ResolveCreateFolder(path string) (string, error) {
	resolved, err := ResolveFile(path)
	if err != nil {
		return "", err
	}
	dir := resolved
	if ext := filepath.Ext(resolved); ext != "" {
		dir = filepath.Dir(resolved)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return resolved, nil
}
