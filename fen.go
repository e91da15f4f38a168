package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionFromFEN parses a position record in Forsyth-Edwards
// notation.  All six fields are required.
func PositionFromFEN(fen string) (*Position, error) {
	return decodeFEN(fen)
}

func decodeFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("chess: fen invalid notation %s must have 6 sections", fen)
	}
	pos := NewPosition()
	if err := decodeFENBoard(pos, parts[0]); err != nil {
		return nil, err
	}
	switch parts[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return nil, fmt.Errorf("chess: fen invalid turn %s", parts[1])
	}
	rights, err := decodeFENCastleRights(parts[2])
	if err != nil {
		return nil, err
	}
	pos.castleRights = rights
	ep, err := decodeFENEnPassant(parts[3], pos.turn)
	if err != nil {
		return nil, err
	}
	pos.enPassantSquare = ep
	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, fmt.Errorf("chess: fen invalid half move clock %s", parts[4])
	}
	pos.halfMoveClock = halfMove
	moveCount, err := strconv.Atoi(parts[5])
	if err != nil || moveCount < 1 {
		return nil, fmt.Errorf("chess: fen invalid move count %s", parts[5])
	}
	pos.moveCount = moveCount
	return pos, nil
}

func decodeFENBoard(pos *Position, boardStr string) error {
	rankStrs := strings.Split(boardStr, "/")
	if len(rankStrs) != 8 {
		return fmt.Errorf("chess: fen invalid board %s must have 8 ranks", boardStr)
	}
	for i, rankStr := range rankStrs {
		r := Rank(7 - i)
		f := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			p, ok := fenPieceMap[c]
			if !ok {
				return fmt.Errorf("chess: fen invalid piece character %q in board %s", c, boardStr)
			}
			if f >= numOfSquaresInRow {
				return fmt.Errorf("chess: fen rank %s overruns the board in %s", rankStr, boardStr)
			}
			pos.placePiece(NewSquare(File(f), r), p)
			f++
		}
		if f != numOfSquaresInRow {
			return fmt.Errorf("chess: fen rank %s doesn't cover 8 files in %s", rankStr, boardStr)
		}
	}
	return nil
}

func decodeFENCastleRights(s string) (CastleRights, error) {
	if s == "-" {
		return CastleNone, nil
	}
	var cr CastleRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= CastleWhiteKingSide
		case 'Q':
			cr |= CastleWhiteQueenSide
		case 'k':
			cr |= CastleBlackKingSide
		case 'q':
			cr |= CastleBlackQueenSide
		default:
			return CastleNone, fmt.Errorf("chess: fen invalid castle rights %s", s)
		}
	}
	return cr, nil
}

func decodeFENEnPassant(s string, turn Color) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	sq, ok := strToSquareMap[s]
	if !ok {
		return NoSquare, fmt.Errorf("chess: fen invalid en passant square %s", s)
	}
	// the en passant target must be capturable by the side to move
	want := Rank3
	if turn == White {
		want = Rank6
	}
	if sq.Rank() != want {
		return NoSquare, fmt.Errorf("chess: fen en passant square %s on wrong rank for %s to move", s, turn.Name())
	}
	return sq, nil
}

// boardFEN returns the piece placement field of the position's FEN:
// rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
func (pos *Position) boardFEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < numOfSquaresInRow; f++ {
			p := pos.Piece(NewSquare(File(f), Rank(r)))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.getFENChar())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

var fenPieceMap = map[rune]Piece{
	'K': WhiteKing,
	'Q': WhiteQueen,
	'R': WhiteRook,
	'B': WhiteBishop,
	'N': WhiteKnight,
	'P': WhitePawn,
	'k': BlackKing,
	'q': BlackQueen,
	'r': BlackRook,
	'b': BlackBishop,
	'n': BlackKnight,
	'p': BlackPawn,
}

var fenReverseMap = map[Piece]byte{
	WhiteKing:   'K',
	WhiteQueen:  'Q',
	WhiteRook:   'R',
	WhiteBishop: 'B',
	WhiteKnight: 'N',
	WhitePawn:   'P',
	BlackKing:   'k',
	BlackQueen:  'q',
	BlackRook:   'r',
	BlackBishop: 'b',
	BlackKnight: 'n',
	BlackPawn:   'p',
}
