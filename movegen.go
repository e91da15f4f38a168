package chess

// PseudoLegalMoves returns every move that obeys piece movement rules
// for the side to move.  A pseudo-legal move may leave the mover's
// own king in check; use LegalMoves for the filtered set.  No
// ordering is guaranteed.
func (pos *Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 64)
	us := pos.turn
	own := pos.colorBB(us)
	occupied := pos.occupied()
	enemy := occupied ^ own

	pos.genPawnMoves(&moves, occupied, enemy, us)

	knights := pos.pieceBB(Knight) & own
	for sq := knights.popLSB(); sq != NoSquare; sq = knights.popLSB() {
		appendMoves(&moves, sq, bbKnightAttacks[sq]&^own, enemy)
	}

	kings := pos.pieceBB(King) & own
	for sq := kings.popLSB(); sq != NoSquare; sq = kings.popLSB() {
		appendMoves(&moves, sq, bbKingAttacks[sq]&^own, enemy)
	}

	bishops := pos.pieceBB(Bishop) & own
	for sq := bishops.popLSB(); sq != NoSquare; sq = bishops.popLSB() {
		appendMoves(&moves, sq, diaAttack(occupied, sq)&^own, enemy)
	}

	rooks := pos.pieceBB(Rook) & own
	for sq := rooks.popLSB(); sq != NoSquare; sq = rooks.popLSB() {
		appendMoves(&moves, sq, hvAttack(occupied, sq)&^own, enemy)
	}

	queens := pos.pieceBB(Queen) & own
	for sq := queens.popLSB(); sq != NoSquare; sq = queens.popLSB() {
		appendMoves(&moves, sq, queenAttack(occupied, sq)&^own, enemy)
	}

	pos.genCastleMoves(&moves, us)
	return moves
}

// LegalMoves returns the pseudo-legal moves that don't leave the
// moving side's king in check.  Each candidate is applied to a copy
// and the copy is tested for check.
func (pos *Position) LegalMoves() []Move {
	candidates := pos.PseudoLegalMoves()
	moves := make([]Move, 0, len(candidates))
	us := pos.turn
	for _, m := range candidates {
		next := pos.Copy()
		if next.MakeMove(m) != nil {
			continue
		}
		if !next.InCheck(us) {
			moves = append(moves, m)
		}
	}
	return moves
}

// InCheck returns whether the given color's king is attacked by the
// opposing side.
func (pos *Position) InCheck(c Color) bool {
	kingSq := pos.kingSquare(c)
	// king should only be missing in tests / examples
	if kingSq == NoSquare {
		return false
	}
	return pos.IsSquareAttacked(kingSq, c.Other())
}

// IsSquareAttacked returns whether any piece of the attacker color
// attacks the given square.
func (pos *Position) IsSquareAttacked(sq Square, attacker Color) bool {
	attackers := pos.colorBB(attacker)
	occupied := pos.occupied()

	// a pawn of ours on sq would capture exactly where an enemy pawn
	// attacking sq must stand
	if bbPawnAttacks[attacker.Other()][sq]&pos.pieceBB(Pawn)&attackers != 0 {
		return true
	}
	if bbKnightAttacks[sq]&pos.pieceBB(Knight)&attackers != 0 {
		return true
	}
	if bbKingAttacks[sq]&pos.pieceBB(King)&attackers != 0 {
		return true
	}
	rookLike := pos.pieceBB(Rook) | pos.pieceBB(Queen)
	if hvAttack(occupied, sq)&rookLike&attackers != 0 {
		return true
	}
	bishopLike := pos.pieceBB(Bishop) | pos.pieceBB(Queen)
	if diaAttack(occupied, sq)&bishopLike&attackers != 0 {
		return true
	}
	return false
}

// Perft returns the number of leaf nodes of the legal move tree at
// the given depth.
func (pos *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := pos.Copy()
		if next.MakeMove(m) == nil {
			nodes += next.Perft(depth - 1)
		}
	}
	return nodes
}

// A DivideEntry is a legal root move with the leaf node count of its
// subtree.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns the perft count broken down by root move, the
// classic debugging view for mismatched perft totals.
func (pos *Position) Divide(depth int) []DivideEntry {
	moves := pos.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next := pos.Copy()
		if next.MakeMove(m) != nil {
			continue
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: next.Perft(depth - 1)})
	}
	return entries
}

func appendMoves(moves *[]Move, src Square, attacks, enemy bitboard) {
	for dst := attacks.popLSB(); dst != NoSquare; dst = attacks.popLSB() {
		flag := MoveNone
		if enemy.Occupied(dst) {
			flag = MoveCapture
		}
		*moves = append(*moves, NewMove(flag, src, dst))
	}
}

func appendPromotions(moves *[]Move, src, dst Square) {
	*moves = append(*moves,
		NewMove(MovePromoQueen, src, dst),
		NewMove(MovePromoRook, src, dst),
		NewMove(MovePromoBishop, src, dst),
		NewMove(MovePromoKnight, src, dst),
	)
}

func (pos *Position) genPawnMoves(moves *[]Move, occupied, enemy bitboard, us Color) {
	pawns := pos.pieceBB(Pawn) & pos.colorBB(us)
	if pawns == 0 {
		return
	}
	empty := ^occupied
	var epMask bitboard
	if pos.enPassantSquare != NoSquare {
		epMask = bbForSquare(pos.enPassantSquare)
	}

	for src := pawns.popLSB(); src != NoSquare; src = pawns.popLSB() {
		srcMask := bbForSquare(src)
		if us == White {
			if one := srcMask.northOne() & empty; one != 0 {
				dst := one.lsb()
				if dst.Rank() == Rank8 {
					appendPromotions(moves, src, dst)
				} else {
					*moves = append(*moves, NewMove(MoveNone, src, dst))
					if srcMask&bbRank2 != 0 {
						if two := one.northOne() & empty; two != 0 {
							*moves = append(*moves, NewMove(MoveNone, src, two.lsb()))
						}
					}
				}
			}
			caps := (srcMask.northEastOne() | srcMask.northWestOne()) & enemy
			for dst := caps.popLSB(); dst != NoSquare; dst = caps.popLSB() {
				if dst.Rank() == Rank8 {
					appendPromotions(moves, src, dst)
				} else {
					*moves = append(*moves, NewMove(MoveCapture, src, dst))
				}
			}
			if epMask != 0 && (srcMask.northEastOne()|srcMask.northWestOne())&epMask != 0 {
				capSq := pos.enPassantSquare.Step(South)
				if bbForSquare(capSq)&pos.pieceBB(Pawn)&enemy != 0 {
					*moves = append(*moves, NewMove(MoveEnPassant, src, pos.enPassantSquare))
				}
			}
		} else {
			if one := srcMask.southOne() & empty; one != 0 {
				dst := one.lsb()
				if dst.Rank() == Rank1 {
					appendPromotions(moves, src, dst)
				} else {
					*moves = append(*moves, NewMove(MoveNone, src, dst))
					if srcMask&bbRank7 != 0 {
						if two := one.southOne() & empty; two != 0 {
							*moves = append(*moves, NewMove(MoveNone, src, two.lsb()))
						}
					}
				}
			}
			caps := (srcMask.southEastOne() | srcMask.southWestOne()) & enemy
			for dst := caps.popLSB(); dst != NoSquare; dst = caps.popLSB() {
				if dst.Rank() == Rank1 {
					appendPromotions(moves, src, dst)
				} else {
					*moves = append(*moves, NewMove(MoveCapture, src, dst))
				}
			}
			if epMask != 0 && (srcMask.southEastOne()|srcMask.southWestOne())&epMask != 0 {
				capSq := pos.enPassantSquare.Step(North)
				if bbForSquare(capSq)&pos.pieceBB(Pawn)&enemy != 0 {
					*moves = append(*moves, NewMove(MoveEnPassant, src, pos.enPassantSquare))
				}
			}
		}
	}
}

// genCastleMoves emits castling moves.  The squares strictly between
// king and rook must be empty (queen side includes the B file square)
// and no square the king traverses may be attacked; the rook's path
// need not be safe.
func (pos *Position) genCastleMoves(moves *[]Move, us Color) {
	if us == White {
		if pos.castleRights.CanCastle(White, KingSide) &&
			!pos.isOccupied(F1) && !pos.isOccupied(G1) &&
			!pos.IsSquareAttacked(E1, Black) &&
			!pos.IsSquareAttacked(F1, Black) &&
			!pos.IsSquareAttacked(G1, Black) {
			*moves = append(*moves, NewMove(MoveCastling, E1, G1))
		}
		if pos.castleRights.CanCastle(White, QueenSide) &&
			!pos.isOccupied(D1) && !pos.isOccupied(C1) && !pos.isOccupied(B1) &&
			!pos.IsSquareAttacked(E1, Black) &&
			!pos.IsSquareAttacked(D1, Black) &&
			!pos.IsSquareAttacked(C1, Black) {
			*moves = append(*moves, NewMove(MoveCastling, E1, C1))
		}
		return
	}
	if pos.castleRights.CanCastle(Black, KingSide) &&
		!pos.isOccupied(F8) && !pos.isOccupied(G8) &&
		!pos.IsSquareAttacked(E8, White) &&
		!pos.IsSquareAttacked(F8, White) &&
		!pos.IsSquareAttacked(G8, White) {
		*moves = append(*moves, NewMove(MoveCastling, E8, G8))
	}
	if pos.castleRights.CanCastle(Black, QueenSide) &&
		!pos.isOccupied(D8) && !pos.isOccupied(C8) && !pos.isOccupied(B8) &&
		!pos.IsSquareAttacked(E8, White) &&
		!pos.IsSquareAttacked(D8, White) &&
		!pos.IsSquareAttacked(C8, White) {
		*moves = append(*moves, NewMove(MoveCastling, E8, C8))
	}
}
