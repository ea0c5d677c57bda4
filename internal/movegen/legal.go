/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"github.com/Der-Penz/chess-engine-sub000/internal/attacks"
	"github.com/Der-Penz/chess-engine-sub000/internal/position"
	. "github.com/Der-Penz/chess-engine-sub000/internal/types"
)

// checkInfo is computed once per generate call and makes every move it
// touches legal by construction - no per-move make/unmake/IsAttacked probe
// is needed afterwards, except for castling (the king's transit squares
// are checked directly since they aren't covered by the king's own
// destination-square filter).
type checkInfo struct {
	kingSquare Square

	// checkers are the enemy pieces giving check right now.
	checkers Bitboard

	// checkMask is the set of squares a non-king move must land on to
	// resolve the current check: the checker's square (to capture it) plus,
	// for a slider, the squares between it and the king (to block it). All
	// squares are legal landings when not in check; none are when in a
	// double check - only a king move can answer that.
	checkMask Bitboard

	// pinned holds the own pieces pinned to the king by an enemy slider.
	pinned Bitboard

	// pinRay[sq], for a pinned piece standing on sq, is the full ray
	// (king square exclusive, sniper square inclusive) the piece may still
	// move along without exposing its king. Undefined for unpinned squares.
	pinRay [SqLength]Bitboard

	// kingDanger is the set of squares the king may not step to: everything
	// attacked by the opponent once the king itself is removed from the
	// board, so that a slider checking through the king's current square
	// does not appear to be blocked by the very king that is moving away.
	kingDanger Bitboard
}

// computeCheckInfo builds the king-danger/pin/checker pipeline for the
// position's side to move.
func computeCheckInfo(p *position.Position) checkInfo {
	us := p.NextPlayer()
	them := us.Flip()
	kingSq := p.KingSquare(us)

	ci := checkInfo{kingSquare: kingSq, checkMask: BbAll}

	ci.checkers = attacks.AttacksTo(p, kingSq, them)
	switch ci.checkers.PopCount() {
	case 0:
		ci.checkMask = BbAll
	case 1:
		checkerSq := ci.checkers.Lsb()
		ci.checkMask = Intermediate(kingSq, checkerSq) | checkerSq.Bb()
	default:
		// double check - no non-king move can resolve it
		ci.checkMask = BbZero
	}

	occupied := p.OccupiedAll()
	ownPieces := p.OccupiedBb(us)
	enemyRooksQueens := p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen)
	enemyBishopsQueens := p.PiecesBb(them, Bishop) | p.PiecesBb(them, Queen)

	// Candidate sniper squares: enemy rook/bishop/queen squares that would
	// attack the king on an empty board along their own line of movement.
	// For each, if exactly one piece sits between it and the king and that
	// piece is ours, it is pinned and may only move along that ray.
	snipers := (GetPseudoAttacks(Rook, kingSq) & enemyRooksQueens) |
		(GetPseudoAttacks(Bishop, kingSq) & enemyBishopsQueens)
	for s := snipers; s != BbZero; {
		sniperSq := s.PopLsb()
		between := Intermediate(kingSq, sniperSq)
		blockers := between & occupied
		if blockers.PopCount() == 1 && blockers&ownPieces == blockers {
			pinnedSq := blockers.Lsb()
			ci.pinned |= blockers
			ci.pinRay[pinnedSq] = between | sniperSq.Bb()
		}
	}

	// King danger squares, computed with the king removed from the
	// occupancy so that a check along a line through the king's current
	// square is not masked by the king itself.
	occupiedNoKing := occupied &^ kingSq.Bb()
	var danger Bitboard
	for pt := Knight; pt <= Queen; pt++ {
		for pcs := p.PiecesBb(them, pt); pcs != BbZero; {
			sq := pcs.PopLsb()
			danger |= GetAttacksBb(pt, sq, occupiedNoKing)
		}
	}
	danger |= GetPseudoAttacks(King, p.KingSquare(them))
	for pcs := p.PiecesBb(them, Pawn); pcs != BbZero; {
		sq := pcs.PopLsb()
		danger |= GetPawnAttacks(them, sq)
	}
	ci.kingDanger = danger

	return ci
}

// inCheck reports whether the side to move's king is currently attacked.
func (ci *checkInfo) inCheck() bool {
	return ci.checkers != BbZero
}

// inDoubleCheck reports whether two or more pieces check the king at once -
// only a king move can be legal in this position.
func (ci *checkInfo) inDoubleCheck() bool {
	return ci.checkers.PopCount() > 1
}

// destinationMask returns the set of squares a piece standing on from may
// legally move to, given the current check/pin state. It does not validate
// that from itself can reach any of those squares - callers still AND this
// against the piece's own attack/move bitboard.
func (ci *checkInfo) destinationMask(from Square) Bitboard {
	mask := ci.checkMask
	if ci.pinned.Has(from) {
		mask &= ci.pinRay[from]
	}
	return mask
}

// kingDestinationMask returns the squares the king may step to: anything
// not occupied by its own pieces and not in kingDanger.
func (ci *checkInfo) kingDestinationMask(ownPieces Bitboard) Bitboard {
	return ^ownPieces &^ ci.kingDanger
}

// legalEnPassant additionally verifies the rare case where an en passant
// capture exposes the king to a horizontal (rank) pin through the two
// pawns involved - a configuration the pin mask above cannot see since it
// only looks at the capturing pawn's own square, not the captured pawn's.
func legalEnPassant(p *position.Position, ci *checkInfo, from, to Square) bool {
	us := p.NextPlayer()
	them := us.Flip()
	capturedSq := to.To(them.MoveDirection())
	occupied := (p.OccupiedAll() &^ from.Bb() &^ capturedSq.Bb()) | to.Bb()
	rank := ci.kingSquare.RankOf().Bb()
	if rank&from.Bb() == 0 {
		return true
	}
	enemyRooksQueens := p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen)
	return GetAttacksBb(Rook, ci.kingSquare, occupied)&enemyRooksQueens == BbZero
}
