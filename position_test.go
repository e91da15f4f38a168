package chess

import "testing"

func TestPlaceAndRemovePiece(t *testing.T) {
	pos := NewPosition()
	pos.placePiece(E4, WhiteQueen)
	if pos.Piece(E4) != WhiteQueen {
		t.Errorf("expected white queen on e4")
	}
	if !pos.pieceBB(Queen).Occupied(E4) || !pos.colorBB(White).Occupied(E4) {
		t.Errorf("bitboards missing the placed piece")
	}
	if err := pos.validate(); err != nil {
		t.Error(err)
	}
	pos.removePiece(E4)
	if pos.Piece(E4) != NoPiece {
		t.Errorf("expected e4 empty after removal")
	}
	if pos.occupied() != bbEmpty {
		t.Errorf("expected empty board after removal")
	}
	if err := pos.validate(); err != nil {
		t.Error(err)
	}
	// removing an empty square is a no-op
	pos.removePiece(E4)
	if err := pos.validate(); err != nil {
		t.Error(err)
	}
}

func TestPositionCopyDoesNotAlias(t *testing.T) {
	pos := StartingPosition()
	want := pos.String()
	next := pos.Copy()
	if err := next.MakeMove(NewMove(MoveNone, E2, E4)); err != nil {
		t.Fatal(err)
	}
	if pos.String() != want {
		t.Errorf("applying a move to a copy mutated the original: %s", pos)
	}
	if next.String() == want {
		t.Errorf("copy did not change after the move")
	}
}

func TestPositionCrossIndexCounts(t *testing.T) {
	pos := StartingPosition()
	pieceUnion := bbEmpty
	for _, pt := range allPieceTypes {
		pieceUnion |= pos.pieceBB(pt)
	}
	colorUnion := pos.colorBB(White) | pos.colorBB(Black)
	if pieceUnion != colorUnion {
		t.Errorf("piece and color unions differ")
	}
	occupied := 0
	for sq := 0; sq < numOfSquaresInBoard; sq++ {
		if pos.mailbox[sq] != NoPiece {
			occupied++
		}
	}
	if pieceUnion.popcount() != occupied {
		t.Errorf("expected %d occupied squares got %d", occupied, pieceUnion.popcount())
	}
	if occupied != 32 {
		t.Errorf("starting position should have 32 pieces, got %d", occupied)
	}
}

func TestPositionKingSquare(t *testing.T) {
	pos := StartingPosition()
	if pos.kingSquare(White) != E1 {
		t.Errorf("expected white king on e1 got %s", pos.kingSquare(White))
	}
	if pos.kingSquare(Black) != E8 {
		t.Errorf("expected black king on e8 got %s", pos.kingSquare(Black))
	}
	if NewPosition().kingSquare(White) != NoSquare {
		t.Errorf("expected no king on an empty board")
	}
}

func TestPositionBinaryRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	}
	for _, fen := range fens {
		pos := unsafeFEN(fen)
		data, err := pos.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != positionBinaryLen {
			t.Fatalf("expected %d bytes got %d", positionBinaryLen, len(data))
		}
		got := &Position{}
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatal(err)
		}
		if got.String() != fen {
			t.Errorf("expected %s got %s", fen, got)
		}
	}
}

func TestPositionHash(t *testing.T) {
	a := StartingPosition()
	b := StartingPosition()
	if a.Hash() != b.Hash() {
		t.Errorf("equal positions should hash equal")
	}
	if err := b.MakeMove(NewMove(MoveNone, E2, E4)); err != nil {
		t.Fatal(err)
	}
	if a.Hash() == b.Hash() {
		t.Errorf("different positions should hash differently")
	}
}

func TestPositionTextRoundTrip(t *testing.T) {
	pos := StartingPosition()
	text, err := pos.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	got := &Position{}
	if err := got.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if !got.Eq(pos) {
		t.Errorf("expected %s got %s", pos, got)
	}
}
