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

// Package types contains the primitive data types and precomputed global
// tables (bitboard masks, magic attack tables, piece-square tables) shared
// by the whole engine. Many of these would be perfect enum candidates but
// Go does not provide enums.
package types

import (
	"github.com/Der-Penz/chess-engine-sub000/internal/xlog"
)

var log = xlog.Get("types")

var initialized = false

// init initializes all precomputed data structures (magic bitboards,
// direction/ray/connection masks, piece-square tables) exactly once.
func init() {
	Init()
}

// Init initializes the package's precomputed tables. Safe to call
// more than once - only the first call does any work; later calls
// return at once and do not rebuild the tables.
func Init() {
	if initialized {
		return
	}
	log.Debug("Initializing chess primitive tables")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxMoves is the maximum number of half-moves tracked in a game's
	// history stack (bounds Position's fixed preallocated history array).
	MaxMoves = 512

	// KB = 1,024 bytes.
	KB uint64 = 1024
	// MB = KB * KB.
	MB uint64 = KB * KB
	// GB = KB * MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game-phase value, reached at the start
	// of the game when all officers are on the board; it tapers to 0 as
	// material is traded off, blending mid-game and end-game piece-square
	// tables.
	GamePhaseMax = 24
)
