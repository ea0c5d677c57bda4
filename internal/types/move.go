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
	"fmt"
	"strings"
)

// MoveFlag tags what a Move does beyond the plain source/dest squares.
// Must fit in 4 bits - it does, with room to spare (9 of 16 values used).
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	KingCastle
	QueenCastle
	DoublePawnPush
	EnPassant
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
	moveFlagLength
)

// IsValid reports whether f is one of the defined MoveFlag values.
func (f MoveFlag) IsValid() bool {
	return f < moveFlagLength
}

// IsPromotion reports whether f denotes any of the four promotion flags.
func (f MoveFlag) IsPromotion() bool {
	return f >= PromotionKnight && f <= PromotionQueen
}

// PromotionPieceType returns the PieceType a promotion flag produces.
// Must only be called when IsPromotion() is true.
func (f MoveFlag) PromotionPieceType() PieceType {
	switch f {
	case PromotionKnight:
		return Knight
	case PromotionBishop:
		return Bishop
	case PromotionRook:
		return Rook
	case PromotionQueen:
		return Queen
	default:
		return PtNone
	}
}

// PromotionFlag returns the MoveFlag that promotes to the given piece type.
func PromotionFlag(pt PieceType) MoveFlag {
	switch pt {
	case Knight:
		return PromotionKnight
	case Bishop:
		return PromotionBishop
	case Rook:
		return PromotionRook
	case Queen:
		return PromotionQueen
	default:
		return Normal
	}
}

func (f MoveFlag) String() string {
	switch f {
	case Normal:
		return "normal"
	case KingCastle:
		return "O-O"
	case QueenCastle:
		return "O-O-O"
	case DoublePawnPush:
		return "double-push"
	case EnPassant:
		return "ep"
	case PromotionKnight:
		return "=N"
	case PromotionBishop:
		return "=B"
	case PromotionRook:
		return "=R"
	case PromotionQueen:
		return "=Q"
	default:
		return "invalid"
	}
}

// Move is a 16-bit encoding of a chess move: source square (6 bits),
// destination square (6 bits), flag (4 bits). Moves carry no piece or
// capture information - that is recovered from the board at make/unmake
// time. MoveNone, the all-zero value, is the null move.
//
//	BITMAP 16-bit
//	1 1 1 1 0 0 0 0 0 0 0 0 0 0 0 0
//	5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	--------------------------------
//	                    1 1 1 1 1 1    to
//	        1 1 1 1 1 1                from
//	1 1 1 1                            flag
type Move uint16

const (
	// MoveNone is the null move - the zero value, also a1a1 plain.
	MoveNone Move = 0

	moveToShift   uint = 0
	moveFromShift uint = 6
	moveFlagShift uint = 12

	moveSquareMask Move = 0x3F
	moveToMask     Move = moveSquareMask << moveToShift
	moveFromMask   Move = moveSquareMask << moveFromShift
	moveFlagMask   Move = 0xF << moveFlagShift
)

// NewMove encodes a Move from its three fields.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to)<<moveToShift | Move(from)<<moveFromShift | Move(flag)<<moveFlagShift
}

// From returns the source square.
func (m Move) From() Square {
	return Square((m & moveFromMask) >> moveFromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// Flag returns the move's MoveFlag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & moveFlagMask) >> moveFlagShift)
}

// IsPromotion reports whether the move is one of the four promotion moves.
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	return m.Flag() == KingCastle || m.Flag() == QueenCastle
}

// IsValid reports whether the move has valid squares and a valid flag, and
// is not the null move.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Flag().IsValid()
}

// String is a debug representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{ none }"
	}
	return fmt.Sprintf("Move{ %s %s->%s }", m.Flag(), m.From(), m.To())
}

// StringUci renders the move the way the UCI protocol expects:
// <from><to>[promotion-letter]. Null move renders as "0000".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(strings.ToLower(m.Flag().PromotionPieceType().Char()))
	}
	return sb.String()
}
