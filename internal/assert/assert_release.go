// +build !debug

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

// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear this is an assertion used in
// a non-production setting. Engine-invariant violations (spec.md §7) are
// fatal bugs, never user errors - they panic, but only in debug builds.
package assert

// DEBUG if set to true asserts are evaluated. Release builds pay nothing
// for assertions beyond the (elided) boolean check at each call site.
const DEBUG = false

// Assert is a no-op in release builds. Callers still guard calls with
// "if assert.DEBUG { ... }" so the compiler can drop the whole statement,
// including evaluation of any expensive arguments, when DEBUG is false.
func Assert(test bool, msg string, a ...interface{}) {}
