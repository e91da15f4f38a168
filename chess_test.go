package chess

func unsafeFEN(s string) *Position {
	pos, err := decodeFEN(s)
	if err != nil {
		panic(err)
	}
	return pos
}
