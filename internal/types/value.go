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

package types

import (
	"strconv"
	"strings"
)

// Value represents the positional or search value of a chess position,
// measured in centipawns from the perspective of the side to move.
type Value int32

// MaxDepth is the maximum ply depth the search and its per-ply tables
// (PV lines, killer slots) are sized for.
const MaxDepth = 128

// Constants for values. MATE and the mate threshold follow spec.md §4.8:
// a score with |v| >= MateThreshold is a forced mate, rebased by the
// number of plies from root before leaving the search.
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 15_000
	ValueNA    Value = -ValueInf - 1
	ValueMax   Value = 10_000
	ValueMin   Value = -ValueMax
	ValueMate  Value = ValueMax
	// MateThreshold is MATE - MaxDepth - 1; any value at or beyond this
	// magnitude denotes a forced mate in at most MaxDepth plies.
	MateThreshold Value = ValueMate - MaxDepth - 1
	// ValueCheckMate and ValueCheckMateThreshold are the names the search
	// package uses for ValueMate and MateThreshold.
	ValueCheckMate          Value = ValueMate
	ValueCheckMateThreshold Value = MateThreshold
)

func absValue(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// IsValid checks if value is within the valid centipawn range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue returns true if v denotes a forced mate (in either direction).
func (v Value) IsMateValue() bool {
	a := absValue(int32(v))
	return a >= int32(MateThreshold) && a <= int32(ValueMate)
}

// String renders the value the way a UCI "info score" field would:
// "cp <n>" for centipawn scores, "mate <n>" for forced mates.
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v.IsMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		pliesToMate := int32(ValueMate) - absValue(int32(v))
		sb.WriteString(strconv.Itoa(int((pliesToMate + 1) / 2)))
	case v == ValueNA:
		sb.WriteString("N/A")
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}
