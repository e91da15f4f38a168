package chess

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCaptureVictim is returned when a move flagged as a capture
	// or en passant finds no piece on the capture square.
	ErrNoCaptureVictim = errors.New("chess: no capture victim on capture square")
	// ErrInvalidPieceColor is returned when the source square is
	// empty or holds a piece that doesn't belong to the side to move.
	ErrInvalidPieceColor = errors.New("chess: source square has no piece of the side to move")
)

// An UnhandledMoveFlagError is returned for a flag encoding MakeMove
// doesn't know how to apply.
type UnhandledMoveFlagError MoveFlag

func (e UnhandledMoveFlagError) Error() string {
	return fmt.Sprintf("chess: unhandled move flag %d", MoveFlag(e))
}

// A MissingFlagError reports a move that was expected to carry a flag
// but didn't.  MakeMove never returns it; it exists for callers that
// validate flags before applying.
type MissingFlagError MoveFlag

func (e MissingFlagError) Error() string {
	return fmt.Sprintf("chess: move is missing expected flag %d", MoveFlag(e))
}

// MakeMove applies the move to the position, updating the bitboards,
// the mailbox, the castling rights, the en passant target, the clocks
// and the side to move.  The move is trusted to be pseudo-legal; only
// the preconditions below are checked.
//
// MakeMove fails fast: on error the position is left in an
// unspecified partially updated state, so callers that need to
// recover must apply moves to a Copy.
func (pos *Position) MakeMove(m Move) error {
	src := m.S1()
	dst := m.S2()
	flag := m.Flag()

	mover := pos.mailbox[src]
	if mover == NoPiece || mover.Color() != pos.turn {
		return ErrInvalidPieceColor
	}
	us := mover.Color()

	pos.removePiece(src)

	// a king move forfeits both rights, a rook leaving its corner the
	// matching one
	switch mover.Type() {
	case King:
		pos.castleRights &^= castleRightsOf(us)
	case Rook:
		pos.castleRights &^= cornerCastleRight(src)
	}

	resetClock := mover.Type() == Pawn

	switch flag {
	case MoveCapture:
		victim := pos.mailbox[dst]
		if victim == NoPiece {
			return ErrNoCaptureVictim
		}
		pos.removePiece(dst)
		if victim.Type() == Rook {
			pos.castleRights &^= cornerCastleRight(dst)
		}
		pos.enPassantSquare = NoSquare
		resetClock = true

	case MoveEnPassant:
		capSq := dst.Step(South)
		if us == Black {
			capSq = dst.Step(North)
		}
		if pos.mailbox[capSq] == NoPiece {
			return ErrNoCaptureVictim
		}
		pos.removePiece(capSq)
		pos.enPassantSquare = NoSquare
		resetClock = true

	case MoveCastling:
		var rookSrc, rookDst Square
		switch dst {
		case G1:
			rookSrc, rookDst = H1, F1
		case C1:
			rookSrc, rookDst = A1, D1
		case G8:
			rookSrc, rookDst = H8, F8
		case C8:
			rookSrc, rookDst = A8, D8
		default:
			panic(fmt.Sprintf("chess: castling move with destination %s", dst))
		}
		rook := pos.mailbox[rookSrc]
		pos.removePiece(rookSrc)
		pos.placePiece(rookDst, rook)
		pos.castleRights &^= castleRightsOf(us)
		pos.enPassantSquare = NoSquare

	case MovePromoKnight, MovePromoBishop, MovePromoRook, MovePromoQueen:
		if victim := pos.mailbox[dst]; victim != NoPiece {
			pos.removePiece(dst)
			if victim.Type() == Rook {
				pos.castleRights &^= cornerCastleRight(dst)
			}
			resetClock = true
		}
		// the pawn is gone; the promoted piece lands instead
		mover = GetPiece(m.Promo(), us)
		pos.enPassantSquare = NoSquare

	case MoveNone:
		pos.enPassantSquare = NoSquare
		if mover.Type() == Pawn {
			if us == White && src.Rank() == Rank2 && dst == src.Step(North).Step(North) {
				pos.enPassantSquare = src.Step(North)
			} else if us == Black && src.Rank() == Rank7 && dst == src.Step(South).Step(South) {
				pos.enPassantSquare = src.Step(South)
			}
		}

	default:
		return UnhandledMoveFlagError(flag)
	}

	pos.placePiece(dst, mover)

	if resetClock {
		pos.halfMoveClock = 0
	} else {
		pos.halfMoveClock++
	}
	if pos.turn == Black {
		pos.moveCount++
	}
	pos.turn = pos.turn.Other()
	return nil
}

// cornerCastleRight maps a rook home corner to the castling right it
// anchors, and any other square to the empty set.
func cornerCastleRight(sq Square) CastleRights {
	switch sq {
	case H1:
		return CastleWhiteKingSide
	case A1:
		return CastleWhiteQueenSide
	case H8:
		return CastleBlackKingSide
	case A8:
		return CastleBlackQueenSide
	}
	return CastleNone
}
