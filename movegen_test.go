package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// perft values from the canonical tables; a mismatch anywhere in move
// generation or the transition shows up as a wrong count.
func TestPerftStartingPosition(t *testing.T) {
	expected := []uint64{1, 20, 400, 8902, 197281, 4865609, 119060324}
	pos := StartingPosition()
	maxDepth := 5
	if !testing.Short() {
		maxDepth = 6
	}
	for depth := 0; depth <= maxDepth; depth++ {
		assert.Equal(t, expected[depth], pos.Perft(depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := unsafeFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	expected := []uint64{1, 48, 2039, 97862}
	for depth := 0; depth < len(expected); depth++ {
		assert.Equal(t, expected[depth], pos.Perft(depth), "depth %d", depth)
	}
	if !testing.Short() {
		assert.Equal(t, uint64(4085603), pos.Perft(4))
	}
}

func TestPerftEnPassantHeavy(t *testing.T) {
	pos := unsafeFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	expected := []uint64{1, 14, 191, 2812, 43238}
	for depth := 0; depth < len(expected); depth++ {
		assert.Equal(t, expected[depth], pos.Perft(depth), "depth %d", depth)
	}
	if !testing.Short() {
		assert.Equal(t, uint64(674624), pos.Perft(5))
	}
}

func TestStartingMoves(t *testing.T) {
	pos := StartingPosition()
	moves := pos.LegalMoves()
	assert.Len(t, moves, 20)

	pawnMoves, knightMoves := 0, 0
	for _, m := range moves {
		switch pos.Piece(m.S1()).Type() {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		}
	}
	assert.Equal(t, 16, pawnMoves)
	assert.Equal(t, 4, knightMoves)

	// pseudo-legal equals legal in the starting position
	assert.Len(t, pos.PseudoLegalMoves(), 20)
}

func TestEnPassantLifecycle(t *testing.T) {
	pos := StartingPosition()

	assert.NoError(t, pos.MakeMove(NewMove(MoveNone, E2, E4)))
	assert.Equal(t, E3, pos.EnPassantSquare())
	assert.Equal(t, Black, pos.Turn())

	assert.NoError(t, pos.MakeMove(NewMove(MoveNone, D7, D5)))
	assert.Equal(t, D6, pos.EnPassantSquare())
	assert.Equal(t, White, pos.Turn())

	// a quiet non-pawn move clears the target
	assert.NoError(t, pos.MakeMove(NewMove(MoveNone, G1, F3)))
	assert.Equal(t, NoSquare, pos.EnPassantSquare())
}

func TestEnPassantGeneration(t *testing.T) {
	pos := unsafeFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	found := false
	for _, m := range pos.LegalMoves() {
		if m.Flag() == MoveEnPassant {
			found = true
			assert.Equal(t, D4, m.S1())
			assert.Equal(t, E3, m.S2())
		}
	}
	assert.True(t, found, "expected an en passant capture from d4 to e3")
}

func TestCastlingGeneration(t *testing.T) {
	hasMove := func(moves []Move, want Move) bool {
		for _, m := range moves {
			if m == want {
				return true
			}
		}
		return false
	}

	// both sides clear
	pos := unsafeFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := pos.LegalMoves()
	assert.True(t, hasMove(moves, NewMove(MoveCastling, E1, G1)))
	assert.True(t, hasMove(moves, NewMove(MoveCastling, E1, C1)))

	// the B file square alone blocks the queen side
	pos = unsafeFEN("r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	moves = pos.LegalMoves()
	assert.True(t, hasMove(moves, NewMove(MoveCastling, E1, G1)))
	assert.False(t, hasMove(moves, NewMove(MoveCastling, E1, C1)))

	// a queen eyeing f1 blocks the king side but not the queen side
	pos = unsafeFEN("r3k2r/8/5q2/8/8/8/8/R3K2R w KQkq - 0 1")
	moves = pos.LegalMoves()
	assert.False(t, hasMove(moves, NewMove(MoveCastling, E1, G1)))
	assert.True(t, hasMove(moves, NewMove(MoveCastling, E1, C1)))

	// no rights, no castles
	pos = unsafeFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	moves = pos.LegalMoves()
	assert.False(t, hasMove(moves, NewMove(MoveCastling, E1, G1)))
	assert.False(t, hasMove(moves, NewMove(MoveCastling, E1, C1)))

	// black mirrors
	pos = unsafeFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	moves = pos.LegalMoves()
	assert.True(t, hasMove(moves, NewMove(MoveCastling, E8, G8)))
	assert.True(t, hasMove(moves, NewMove(MoveCastling, E8, C8)))
}

func TestPromotionGeneration(t *testing.T) {
	pos := unsafeFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	flags := map[MoveFlag]bool{}
	for _, m := range pos.LegalMoves() {
		if m.S1() == A7 && m.S2() == A8 {
			flags[m.Flag()] = true
		}
	}
	assert.Len(t, flags, 4)
	for _, f := range []MoveFlag{MovePromoKnight, MovePromoBishop, MovePromoRook, MovePromoQueen} {
		assert.True(t, flags[f], "missing promotion flag %d", f)
	}
}

func TestPinnedPieceFiltered(t *testing.T) {
	// the e2 rook is pinned to the king and may only slide on the e file
	pos := unsafeFEN("4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	rookMoves := 0
	for _, m := range pos.LegalMoves() {
		if m.S1() == E2 {
			rookMoves++
			assert.Equal(t, FileE, m.S2().File())
		}
	}
	assert.Equal(t, 5, rookMoves)
}

func TestIsSquareAttacked(t *testing.T) {
	pos := StartingPosition()
	assert.True(t, pos.IsSquareAttacked(F3, White))
	assert.True(t, pos.IsSquareAttacked(E2, White))
	assert.False(t, pos.IsSquareAttacked(E4, White))
	assert.True(t, pos.IsSquareAttacked(F6, Black))
	assert.False(t, pos.IsSquareAttacked(F3, Black))
}

func TestInCheck(t *testing.T) {
	pos := unsafeFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, pos.InCheck(White))
	assert.False(t, pos.InCheck(Black))
	assert.False(t, StartingPosition().InCheck(White))
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := StartingPosition()
	entries := pos.Divide(3)
	assert.Len(t, entries, 20)
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	assert.Equal(t, pos.Perft(3), total)
}
