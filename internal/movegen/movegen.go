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

// Package movegen contains functionality to create moves on a
// chess position. Moves are generated already legal - a king-danger
// /pin/checker mask pipeline is computed once per generate call (see
// legal.go) and used to restrict every piece's destination squares, so
// no per-move make/IsAttacked/unmake probe is needed afterwards. It
// implements several variants like generating all legal moves at once
// or on demand, staged generation of them.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	"github.com/Der-Penz/chess-engine-sub000/internal/moveslice"
	"github.com/Der-Penz/chess-engine-sub000/internal/position"
	. "github.com/Der-Penz/chess-engine-sub000/internal/types"
	"github.com/Der-Penz/chess-engine-sub000/internal/xlog"
)

var log *logging.Logger

// Movegen data structure. Create new move generator via
//  movegen.NewMoveGen()
// Creating this directly will not work.
type Movegen struct {
	pseudoLegalMoves  *moveslice.MoveSlice
	pseudoLegalScores []int16
	legalMoves        *moveslice.MoveSlice

	onDemandMoves      *moveslice.MoveSlice
	onDemandScores     []int16
	currentCheckInfo   checkInfo
	killerMoves        [2]Move
	currentIteratorKey position.Key
	takeIndex          int
	pvMove             Move
	currentODStage     int8
	pvMovePushed       bool
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// GenMode generation modes for on demand move generation
type GenMode int

// GenMode generation modes for on demand move generation
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = xlog.Get("movegen")
	}
	tmpMg := &Movegen{
		pseudoLegalMoves:   moveslice.NewMoveSlice(MaxMoves),
		pseudoLegalScores:  make([]int16, 0, MaxMoves),
		legalMoves:         moveslice.NewMoveSlice(MaxMoves),
		onDemandMoves:      moveslice.NewMoveSlice(MaxMoves),
		onDemandScores:     make([]int16, 0, MaxMoves),
		killerMoves:        [2]Move{MoveNone, MoveNone},
		pvMove:             MoveNone,
		currentODStage:     odNew,
		currentIteratorKey: 0,
		pvMovePushed:       false,
		takeIndex:          0,
	}
	return tmpMg
}

// GenerateLegalMoves generates all legal moves for the next player in one
// pass. Every move it returns is already fully legal - it computes the
// king-danger/pin/checker masks once (see legal.go) and applies them while
// generating, rather than generating pseudo-legal moves and filtering them
// afterwards with a make/IsAttacked/unmake probe per candidate.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	mg.pseudoLegalScores = mg.pseudoLegalScores[:0]
	ci := computeCheckInfo(p)

	if mode&GenCap != 0 {
		mg.generatePawnMoves(p, &ci, GenCap, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		mg.generateKingMoves(p, &ci, GenCap, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		if !ci.inDoubleCheck() {
			mg.generateMoves(p, &ci, GenCap, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		}
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(p, &ci, GenNonCap, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		mg.generateCastling(p, &ci, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		mg.generateKingMoves(p, &ci, GenNonCap, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		if !ci.inDoubleCheck() {
			mg.generateMoves(p, &ci, GenNonCap, mg.pseudoLegalMoves, &mg.pseudoLegalScores)
		}
	}

	// PV and Killer handling - the PV move gets a score above everything else
	// so it sorts to the front; killers get a score above the other quiet
	// moves but below captures.
	for i := 0; i < mg.pseudoLegalMoves.Len(); i++ {
		m := mg.pseudoLegalMoves.At(i)
		switch {
		case m == mg.pvMove:
			mg.pseudoLegalScores[i] = 32000
		case m == mg.killerMoves[0]:
			mg.pseudoLegalScores[i] = -4000
		case m == mg.killerMoves[1]:
			mg.pseudoLegalScores[i] = -4001
		}
	}
	mg.pseudoLegalMoves.SortByScore(mg.pseudoLegalScores)

	mg.legalMoves.Clear()
	*mg.legalMoves = append(*mg.legalMoves, (*mg.pseudoLegalMoves)...)
	return mg.legalMoves
}

// GetNextMove returns the next move for the given position. Usually this would be used in a loop
// during search.
//
// If a PV move is set with SetPvMove(m) this will be returned first
// and will not be returned at its normal place.
// Killer moves will be played as soon as possible. As Killer moves are stored for
// the whole ply a Killer move might not be valid for the current position. Therefore
// we need to wait until they are generated by the phased move generation. Killers will
// then be pushed to the top of the list of the generation stage.
//
// To reuse this on the sames position a call to ResetOnDemand() is necessary. This
// is not necessary when a different position is called as this func will reset it self
// in this case.
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode) Move {

	// if the position changes during iteration the iteration
	// will be reset and generation will be restart with the
	// new position.
	if p.ZobristKey() != mg.currentIteratorKey {
		mg.onDemandMoves.Clear()
		mg.onDemandScores = mg.onDemandScores[:0]
		mg.currentODStage = odNew
		mg.pvMovePushed = false
		mg.takeIndex = 0
		mg.currentIteratorKey = p.ZobristKey()
		mg.currentCheckInfo = computeCheckInfo(p)
	}

	// ad takeIndex
	// With the takeIndex we can take from the front of the vector
	// without removing the element from the vector which would
	// be expensive as all elements would have to be shifted.
	// (although our Moveslice class can handle this efficiently
	// through a similar mechanism)

	// If the list is currently empty and we have not generated all moves yet
	// generate the next batch until we have new moves or there are no more
	// moves to generate
	if mg.onDemandMoves.Len() == 0 {
		mg.fillOnDemandMoveList(p, mode)
	}

	// If we have generated moves we will return the first move and
	// increase the takeIndex to the next move. If the list is empty
	// even after all stages of generating we have no more moves
	// and return MOVE_NONE
	// If we have pushed a pvMove into the list we will need to
	// skip this pvMove for each subsequent phases.
	if mg.onDemandMoves.Len() != 0 {

		// Handle PvMove
		// if we pushed a pv move and the list is not empty we
		// check if the pv is the next move in list and skip it.
		if mg.currentODStage != od1 &&
			mg.pvMovePushed &&
			(*mg.onDemandMoves)[mg.takeIndex] == mg.pvMove {

			// skip pv move
			mg.takeIndex++

			// We found the pv move and skipped it.
			// No need to check this for this generation cycle
			mg.pvMovePushed = false

			// PV move last in move list
			if mg.takeIndex >= mg.onDemandMoves.Len() {
				// The pv move was the last move in this iterations list.
				// We will try to generate more moves. If no more moves
				// can be generated we will return MOVE_NONE.
				// Otherwise we return the move below.
				mg.takeIndex = 0
				mg.onDemandMoves.Clear()
				mg.onDemandScores = mg.onDemandScores[:0]
				mg.fillOnDemandMoveList(p, mode)
				// no more moves - return MOVE_NONE
				if mg.onDemandMoves.Len() == 0 {
					return MoveNone
				}
			}
		}

		// we have at least one move in the list and
		// it is not the pvMove. Increase the takeIndex
		// and return the move
		move := (*mg.onDemandMoves)[mg.takeIndex]
		mg.takeIndex++
		if mg.takeIndex >= mg.onDemandMoves.Len() {
			mg.takeIndex = 0
			mg.onDemandMoves.Clear()
			mg.onDemandScores = mg.onDemandScores[:0]
		}
		return move
	}

	// no more moves to be generated
	mg.takeIndex = 0
	mg.pvMovePushed = false
	return MoveNone
}

// ResetOnDemand resets the move on demand generator to start fresh.
// Also deletes Killer and PV moves
func (mg *Movegen) ResetOnDemand() {
	mg.onDemandMoves.Clear()
	mg.onDemandScores = mg.onDemandScores[:0]
	mg.currentODStage = odNew
	mg.currentIteratorKey = 0
	mg.pvMove = MoveNone
	mg.pvMovePushed = false
	mg.takeIndex = 0
}

// SetPvMove sets a PV move which should be returned first by
// the OnDemand MoveGenerator.
func (mg *Movegen) SetPvMove(move Move) {
	mg.pvMove = move
}

// StoreKiller provides the on demand move generator with a new killer move
// which should be returned as soon as possible when generating moves with
// the on demand generator.
func (mg *Movegen) StoreKiller(move Move) {
	// check if already stored in first slot - if so return
	if mg.killerMoves[0] == move {
		return
	} else if mg.killerMoves[1] == move { // if in second slot move it to first
		mg.killerMoves[1] = mg.killerMoves[0]
		mg.killerMoves[0] = move
	} else {
		// add it to first slot und move first to second
		mg.killerMoves[1] = mg.killerMoves[0]
		mg.killerMoves[0] = move
	}
}

// HasLegalMove determines if we have at least one legal move. It relies on
// the same checker/pin masks as GenerateLegalMoves (computed once) instead
// of probing each pseudo-legal candidate with make/IsAttacked/unmake, and
// returns as soon as it finds one.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	ci := computeCheckInfo(p)
	us := p.NextPlayer()
	ownPieces := p.OccupiedBb(us)

	// KING - always checked first, it is the only piece that can move in a
	// double check, and the cheapest to test.
	kingSq := p.KingSquare(us)
	kingMoves := GetPseudoAttacks(King, kingSq) & ci.kingDestinationMask(ownPieces)
	if kingMoves != BbZero {
		return true
	}
	if ci.inDoubleCheck() {
		return false
	}

	// OFFICERS
	occupied := p.OccupiedAll()
	for pt := Knight; pt <= Queen; pt++ {
		for pieces := p.PiecesBb(us, pt); pieces != BbZero; {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupied) &^ ownPieces & ci.destinationMask(fromSquare)
			if moves != BbZero {
				return true
			}
		}
	}

	// PAWNS
	myPawns := p.PiecesBb(us, Pawn)
	oppPieces := p.OccupiedBb(us.Flip())
	for _, dir := range []Direction{West, East} {
		captures := ShiftBitboard(myPawns, us.MoveDirection()+dir) & oppPieces
		for captures != BbZero {
			toSquare := captures.PopLsb()
			fromSquare := toSquare.To(us.Flip().MoveDirection() - dir)
			if ci.destinationMask(fromSquare).Has(toSquare) {
				return true
			}
		}
	}
	pushes := ShiftBitboard(myPawns, us.MoveDirection()) &^ occupied
	for pushes != BbZero {
		toSquare := pushes.PopLsb()
		fromSquare := toSquare.To(us.Flip().MoveDirection())
		if ci.destinationMask(fromSquare).Has(toSquare) {
			return true
		}
	}
	doublePushes := ShiftBitboard(ShiftBitboard(myPawns, us.MoveDirection())&^occupied&us.PawnDoubleRank(), us.MoveDirection()) &^ occupied
	for doublePushes != BbZero {
		toSquare := doublePushes.PopLsb()
		fromSquare := toSquare.To(us.Flip().MoveDirection()).To(us.Flip().MoveDirection())
		if ci.destinationMask(fromSquare).Has(toSquare) {
			return true
		}
	}

	// EN PASSANT
	enPassantSquare := p.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		for _, dir := range []Direction{West, East} {
			candidates := ShiftBitboard(enPassantSquare.Bb(), us.Flip().MoveDirection()+dir) & myPawns
			for candidates != BbZero {
				fromSquare := candidates.PopLsb()
				toSquare := enPassantSquare
				capturedSq := toSquare.To(us.Flip().MoveDirection())
				if ci.pinned.Has(fromSquare) && ci.pinRay[fromSquare]&toSquare.Bb() == 0 {
					continue
				}
				if ci.inCheck() && ci.checkMask&toSquare.Bb() == 0 && ci.checkMask&capturedSq.Bb() == 0 {
					continue
				}
				if legalEnPassant(p, &ci, fromSquare, toSquare) {
					return true
				}
			}
		}
	}

	// no move found
	return false
}

// Regex for UCI notation (UCI)
var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci Generates all legal moves and matches the given UCI
// move string against them. If there is a match the actual move is returned.
// Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(posPtr *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	// get the parts from the pattern match
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		// UCI promotion letters are lower case; we also allow upper
		// case as many input files have this wrong
		promotionPart = strings.ToLower(matches[2])
	}

	// check against all legal moves on position
	mg.GenerateLegalMoves(posPtr, GenAll)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == movePart+promotionPart {
			// move found
			return m
		}
	}
	// move not found
	return MoveNone
}

var regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")

// GetMoveFromSan Generates all legal moves and matches the given SAN
// move string against them. If there is a match the actual move is returned.
// Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromSan(posPtr *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(sanMove)
	if matches == nil {
		return MoveNone
	}

	// get parts
	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]
	// checkSign := matches[7]

	movesFound := 0
	moveFromSAN := MoveNone

	// check against all legal moves on position
	mg.GenerateLegalMoves(posPtr, GenAll)
	for _, genMove := range *mg.legalMoves {

		// castling moves
		if genMove.IsCastle() {
			kingToSquare := genMove.To()
			var castlingString string
			switch kingToSquare {
			case SqG1, SqG8:
				castlingString = "O-O"
			case SqC1, SqC8:
				castlingString = "O-O-O"
			default:
				log.Errorf("castle move with unexpected to square: %s", kingToSquare.String())
				continue
			}
			if castlingString == toSquare {
				moveFromSAN = genMove
				movesFound++
				continue
			}
		}

		// normal moves
		moveTarget := genMove.To().String()
		if moveTarget == toSquare {

			// determine if piece types match - if not skip
			legalPt := posPtr.GetPiece(genMove.From()).TypeOf()
			legalPtChar := legalPt.Char()
			if (len(pieceType) == 0 || legalPtChar != pieceType) &&
				(len(pieceType) != 0 || legalPt != Pawn) {
				continue
			}

			// Disambiguation File
			if len(disambFile) != 0 && genMove.From().FileOf().String() != disambFile {
				continue
			}

			// Disambiguation Rank
			if len(disambRank) != 0 && genMove.From().RankOf().String() != disambRank {
				continue
			}

			// promotion
			if (len(promotion) != 0 && (!genMove.IsPromotion() || genMove.Flag().PromotionPieceType().Char() != promotion)) ||
				(len(promotion) == 0 && genMove.IsPromotion()) {
				continue
			}

			// we should have our move if we end up here
			moveFromSAN = genMove
			movesFound++
		}
	}

	// we should only have one move here
	if movesFound > 1 {
		log.Warningf("SAN move %s is ambiguous (%d matches) on %s!", sanMove, movesFound, posPtr.StringFen())
	} else if movesFound == 0 || !moveFromSAN.IsValid() {
		log.Warningf("SAN move not valid! SAN move %s not found on position: %s", sanMove, posPtr.StringFen())
	} else {
		return moveFromSAN
	}
	// no move found
	return MoveNone
}

// ValidateMove validates if a move is a valid move on the given position
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *ml {
		if move == m {
			return true
		}
	}
	return false
}

// PvMove returns the current PV move
func (mg *Movegen) PvMove() Move {
	return mg.pvMove
}

// KillerMoves returns a pointer to the killer moves array
func (mg *Movegen) KillerMoves() *[2]Move {
	return &mg.killerMoves
}

// String returns a string representation of a MoveGen instance
func (mg *Movegen) String() string {
	return fmt.Sprintf("MoveGen: { OnDemand Stage: { %d }, PV Move: %s Killer Move 1: %s Killer Move 2: %s }",
		mg.currentODStage, mg.pvMove.String(), mg.killerMoves[0].String(), mg.killerMoves[1].String())
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// States for the on demand move generator
const (
	odNew = iota
	odPv  = iota
	od1   = iota
	od2   = iota
	od3   = iota
	od4   = iota
	od5   = iota
	od6   = iota
	od7   = iota
	od8   = iota
	odEnd = iota
)

// This calls the actual generation of moves in phases. The phases match roughly
// the order of most promising moves first.
func (mg *Movegen) fillOnDemandMoveList(p *position.Position, mode GenMode) {
	ci := &mg.currentCheckInfo
	for mg.onDemandMoves.Len() == 0 && mg.currentODStage < odEnd {
		switch mg.currentODStage {
		case odNew:
			mg.currentODStage = odPv
			fallthrough
		case odPv:
			// If a pvMove is set we return it first and filter it out before
			// returning a move
			if mg.pvMove != MoveNone {
				switch mode {
				case GenAll:
					mg.pvMovePushed = true
					mg.onDemandMoves.PushBack(mg.pvMove)
					mg.onDemandScores = append(mg.onDemandScores, 32000)
				case GenCap:
					if p.IsCapturingMove(mg.pvMove) {
						mg.pvMovePushed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
						mg.onDemandScores = append(mg.onDemandScores, 32000)
					}
				case GenNonCap:
					if !p.IsCapturingMove(mg.pvMove) {
						mg.pvMovePushed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
						mg.onDemandScores = append(mg.onDemandScores, 32000)
					}
				}
			}
			// decide which state we should continue with
			// captures or non captures or both
			if mode&GenCap != 0 {
				mg.currentODStage = od1
			} else {
				mg.currentODStage = od4
			}
		case od1: // capture
			mg.generatePawnMoves(p, ci, GenCap, mg.onDemandMoves, &mg.onDemandScores)
			mg.currentODStage = od2
		case od2:
			if !ci.inDoubleCheck() {
				mg.generateMoves(p, ci, GenCap, mg.onDemandMoves, &mg.onDemandScores)
			}
			mg.currentODStage = od3
		case od3:
			mg.generateKingMoves(p, ci, GenCap, mg.onDemandMoves, &mg.onDemandScores)
			mg.currentODStage = od4
		case od4:
			if mode&GenNonCap != 0 {
				mg.currentODStage = od5
			} else {
				mg.currentODStage = odEnd
			}
		case od5: // non capture
			mg.generatePawnMoves(p, ci, GenNonCap, mg.onDemandMoves, &mg.onDemandScores)
			mg.pushKiller(mg.onDemandMoves, mg.onDemandScores)
			mg.currentODStage = od6
		case od6:
			mg.generateCastling(p, ci, mg.onDemandMoves, &mg.onDemandScores)
			mg.pushKiller(mg.onDemandMoves, mg.onDemandScores)
			mg.currentODStage = od7
		case od7:
			if !ci.inDoubleCheck() {
				mg.generateMoves(p, ci, GenNonCap, mg.onDemandMoves, &mg.onDemandScores)
			}
			mg.pushKiller(mg.onDemandMoves, mg.onDemandScores)
			mg.currentODStage = od8
		case od8:
			mg.generateKingMoves(p, ci, GenNonCap, mg.onDemandMoves, &mg.onDemandScores)
			mg.pushKiller(mg.onDemandMoves, mg.onDemandScores)
			mg.currentODStage = odEnd
		case odEnd:
			break
		}
		// sort the stage according to the scores collected alongside it
		if mg.onDemandMoves.Len() > 0 {
			mg.onDemandMoves.SortByScore(mg.onDemandScores)
		}
	} // while onDemandMoves.empty()
}

func (mg *Movegen) pushKiller(m *moveslice.MoveSlice, scores []int16) {
	// Killer may only be returned if they actually are valid moves
	// in this position which we can't know as Killers are stored
	// for the whole ply. Obviously checking if the killer move is valid
	// is expensive (part of a whole move generation) so we only re-sort
	// them to the top once they are actually generated

	// Find the move in the list. If move not found ignore killer.
	// Otherwise bump its score so the next sort moves it to the front.
	for i := 0; i < m.Len(); i++ {
		move := m.At(i)
		if mg.killerMoves[1] == move {
			scores[i] = -4001
		}
		if mg.killerMoves[0] == move {
			scores[i] = -4000
		}
	}
}

func (mg *Movegen) generatePawnMoves(p *position.Position, ci *checkInfo, mode GenMode, ml *moveslice.MoveSlice, scores *[]int16) {

	nextPlayer := p.NextPlayer()
	myPawns := p.PiecesBb(nextPlayer, Pawn)
	oppPieces := p.OccupiedBb(nextPlayer.Flip())
	gamePhase := p.GamePhase()
	piece := MakePiece(nextPlayer, Pawn)

	push := func(from, to Square, flag MoveFlag, score int16) {
		*ml = append(*ml, NewMove(from, to, flag))
		*scores = append(*scores, score)
	}

	// captures
	if mode&GenCap != 0 {

		// This algorithm shifts the own pawn bitboard in the direction of pawn captures
		// and ANDs it with the opponents pieces. With this we get all possible captures
		// and can easily create the moves by using a loop over all captures and using
		// the backward shift for the from-Square.
		// All moves get sort values so that sort order should be:
		//   captures: most value victim least value attacker - promotion piece value
		//   non captures: killer (TBD), promotions, castling, normal moves (position value)
		// Values for sorting are descending - the most valuable move has the highest value.
		// Values are not compatible to position evaluation values outside of the move
		// generator.

		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			// normal pawn captures - promotions first
			tmpCaptures = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & oppPieces & ci.checkMask
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			// promotion captures
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				if !ci.destinationMask(fromSquare).Has(toSquare) {
					continue
				}
				// value is the delta of values from the two pieces involved plus the positional value
				value := int16(p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase))
				// add the possible promotion moves to the move list and also add value of the promoted piece type
				push(fromSquare, toSquare, PromotionQueen, value+int16(Queen.ValueOf()))
				push(fromSquare, toSquare, PromotionKnight, value+int16(Knight.ValueOf()))
				// rook and bishops are usually redundant to queen promotion (except in stale mate situations)
				// therefore we give them lower sort order
				push(fromSquare, toSquare, PromotionRook, value+int16(Rook.ValueOf())-2000)
				push(fromSquare, toSquare, PromotionBishop, value+int16(Bishop.ValueOf())-2000)
			}
			// non promotion pawn captures
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				if !ci.destinationMask(fromSquare).Has(toSquare) {
					continue
				}
				// value is the delta of values from the two pieces involved plus the positional value
				value := int16(p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase))
				push(fromSquare, toSquare, Normal, value)
			}
		}

		// en passant captures - the capturing pawn always lands on
		// enPassantSquare itself; the pawn it removes sits one rank behind
		// that, so neither square individually carries both the pin-ray
		// and check-resolution meaning a normal capture's destination does.
		enPassantSquare := p.GetEnPassantSquare()
		if enPassantSquare != SqNone {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(),
					nextPlayer.Flip().MoveDirection()+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := enPassantSquare
					capturedSq := toSquare.To(nextPlayer.Flip().MoveDirection())
					if ci.pinned.Has(fromSquare) && ci.pinRay[fromSquare]&toSquare.Bb() == 0 {
						continue
					}
					if ci.inCheck() && ci.checkMask&toSquare.Bb() == 0 && ci.checkMask&capturedSq.Bb() == 0 {
						continue
					}
					if !legalEnPassant(p, ci, fromSquare, toSquare) {
						continue
					}
					// value is the positional value of the piece at this game phase
					value := int16(PosValue(piece, toSquare, gamePhase))
					push(fromSquare, toSquare, EnPassant, value)
				}
			}
		}
	}

	// non captures
	if mode&GenNonCap != 0 {

		//  Move my pawns forward one step and keep all on not occupied squares
		//  Move pawns now on rank 3 (rank 6) another square forward to check for pawn doubles.
		//  Loop over pawns remaining on unoccupied squares and add moves.

		// pawns - check step one to unoccupied squares
		tmpMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()) & ^p.OccupiedAll()
		// pawns double - check step two to unoccupied squares
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), nextPlayer.MoveDirection()) & ^p.OccupiedAll()

		// single pawn steps - promotions first
		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			if !ci.destinationMask(fromSquare).Has(toSquare) {
				continue
			}
			// value for non captures is lowered by 10k
			value := int16(-10_000)
			// add the possible promotion moves to the move list and also add value of the promoted piece type
			push(fromSquare, toSquare, PromotionQueen, value+int16(Queen.ValueOf()))
			push(fromSquare, toSquare, PromotionKnight, value+int16(Knight.ValueOf()))
			// rook and bishops are usually redundant to queen promotion (except in stale mate situations)
			// therefore we give them lower sort order
			push(fromSquare, toSquare, PromotionRook, value+int16(Rook.ValueOf())-2000)
			push(fromSquare, toSquare, PromotionBishop, value+int16(Bishop.ValueOf())-2000)
		}
		// double pawn steps
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()).
				To(nextPlayer.Flip().MoveDirection())
			if !ci.destinationMask(fromSquare).Has(toSquare) {
				continue
			}
			value := int16(-10_000) + int16(PosValue(piece, toSquare, gamePhase))
			push(fromSquare, toSquare, DoublePawnPush, value)
		}
		// normal single pawn steps
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			if !ci.destinationMask(fromSquare).Has(toSquare) {
				continue
			}
			value := int16(-10_000) + int16(PosValue(piece, toSquare, gamePhase))
			push(fromSquare, toSquare, Normal, value)
		}
	}
}

func (mg *Movegen) generateCastling(p *position.Position, ci *checkInfo, ml *moveslice.MoveSlice, scores *[]int16) {
	nextPlayer := p.NextPlayer()
	occupiedBB := p.OccupiedAll()

	// can't castle out of check, and the squares the king passes through
	// (including its destination) must not be attacked - both transit
	// squares are covered by kingDanger, which already accounts for
	// sliders that would otherwise appear blocked by the king itself.
	if ci.inCheck() || p.CastlingRights() == CastlingNone {
		return
	}
	cr := p.CastlingRights()
	push := func(from, to Square, flag MoveFlag) {
		*ml = append(*ml, NewMove(from, to, flag))
		*scores = append(*scores, -5000)
	}
	if nextPlayer == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupiedBB == 0 &&
			(SqF1.Bb()|SqG1.Bb())&ci.kingDanger == 0 {
			push(SqE1, SqG1, KingCastle)
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupiedBB == 0 &&
			(SqD1.Bb()|SqC1.Bb())&ci.kingDanger == 0 {
			push(SqE1, SqC1, QueenCastle)
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupiedBB == 0 &&
			(SqF8.Bb()|SqG8.Bb())&ci.kingDanger == 0 {
			push(SqE8, SqG8, KingCastle)
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupiedBB == 0 &&
			(SqD8.Bb()|SqC8.Bb())&ci.kingDanger == 0 {
			push(SqE8, SqC8, QueenCastle)
		}
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, ci *checkInfo, mode GenMode, ml *moveslice.MoveSlice, scores *[]int16) {
	nextPlayer := p.NextPlayer()
	piece := MakePiece(nextPlayer, King)
	gamePhase := p.GamePhase()
	kingSquareBb := p.PiecesBb(nextPlayer, King)
	fromSquare := kingSquareBb.Lsb()

	pseudoMoves := GetPseudoAttacks(King, fromSquare) & ci.kingDestinationMask(p.OccupiedBb(nextPlayer))

	// captures
	if mode&GenCap != 0 {
		captures := pseudoMoves & p.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			value := int16(p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() +
				PosValue(piece, toSquare, gamePhase))
			*ml = append(*ml, NewMove(fromSquare, toSquare, Normal))
			*scores = append(*scores, value)
		}
	}

	// non captures
	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ p.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			value := int16(-10_000) + int16(PosValue(piece, toSquare, gamePhase))
			*ml = append(*ml, NewMove(fromSquare, toSquare, Normal))
			*scores = append(*scores, value)
		}
	}
}

// generates officer (knight/bishop/rook/queen) moves using the attacks
// pre-computed with magic bitboards, restricted to the destination mask
// the checker/pin pipeline allows for each piece's square.
func (mg *Movegen) generateMoves(p *position.Position, ci *checkInfo, mode GenMode, ml *moveslice.MoveSlice, scores *[]int16) {
	nextPlayer := p.NextPlayer()
	gamePhase := p.GamePhase()
	occupiedBb := p.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt)
		piece := MakePiece(nextPlayer, pt)

		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb) & ci.destinationMask(fromSquare)

			// captures
			if mode&GenCap != 0 {
				captures := moves & p.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					value := int16(p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase))
					*ml = append(*ml, NewMove(fromSquare, toSquare, Normal))
					*scores = append(*scores, value)
				}
			}

			// non captures
			if mode&GenNonCap != 0 {
				nonCaptures := moves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					value := int16(-10_000) + int16(PosValue(piece, toSquare, gamePhase))
					*ml = append(*ml, NewMove(fromSquare, toSquare, Normal))
					*scores = append(*scores, value)
				}
			}
		}
	}
}
