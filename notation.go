package chess

import "fmt"

// EncodeUCI returns the move in UCI notation, ex. "e2e4" or "e7e8q".
func (pos *Position) EncodeUCI(m Move) string {
	s := m.S1().String() + m.S2().String()
	if m.IsPromotion() {
		s += m.Promo().String()
	}
	return s
}

// DecodeUCI parses a move in UCI notation against the position and
// reconstructs its flag: castles are recognized from a king moving
// two files, en passant from a pawn landing on the en passant target,
// captures from the destination square's occupant.
func (pos *Position) DecodeUCI(s string) (Move, error) {
	err := fmt.Errorf(`chess: failed to decode UCI notation text "%s" for position %s`, s, pos)
	if len(s) < 4 || len(s) > 5 {
		return 0, err
	}
	s1, ok := strToSquareMap[s[0:2]]
	if !ok {
		return 0, err
	}
	s2, ok := strToSquareMap[s[2:4]]
	if !ok {
		return 0, err
	}
	p := pos.Piece(s1)
	if p == NoPiece {
		return 0, err
	}
	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return 0, err
		}
		return NewMove(promoFlag(promo), s1, s2), nil
	}
	flag := MoveNone
	switch {
	case p.Type() == King && ((s1 == E1 && (s2 == G1 || s2 == C1)) || (s1 == E8 && (s2 == G8 || s2 == C8))):
		flag = MoveCastling
	case p.Type() == Pawn && s2 == pos.enPassantSquare && s1.File() != s2.File():
		flag = MoveEnPassant
	case pos.Piece(s2) != NoPiece && pos.Piece(s2).Color() == p.Color().Other():
		flag = MoveCapture
	}
	return NewMove(flag, s1, s2), nil
}
