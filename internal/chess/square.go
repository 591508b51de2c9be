package chess

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coord is a board vector: File and Rank run 0-7 from the bottom-left
// square (a1) when used as a position, and may be any value when used as a
// displacement.
type Coord struct {
	File int
	Rank int
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{File: c.File + o.File, Rank: c.Rank + o.Rank}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{File: c.File - o.File, Rank: c.Rank - o.Rank}
}

// Scale returns c multiplied by k.
func (c Coord) Scale(k int) Coord {
	return Coord{File: c.File * k, Rank: c.Rank * k}
}

// Magnitude returns the number of single steps needed to cover c along a
// straight line. It is only defined for horizontal, vertical and diagonal
// vectors; ok is false otherwise (and for the zero vector).
func (c Coord) Magnitude() (int, bool) {
	f, r := abs(c.File), abs(c.Rank)
	switch {
	case f == 0 && r == 0:
		return 0, false
	case f == 0:
		return r, true
	case r == 0:
		return f, true
	case f == r:
		return f, true
	}
	return 0, false
}

// Unit returns the single-step direction of c, each component in {-1,0,1}.
func (c Coord) Unit() Coord {
	return Coord{File: sign(c.File), Rank: sign(c.Rank)}
}

// OnBoard reports whether c names one of the 64 squares.
func (c Coord) OnBoard() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// String returns "(file,rank)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
}

// Square names one of the 64 squares. The value is rank*8 + file.
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare marks an absent square, such as no en passant target.
	NoSquare Square = -1
)

// NewSquare converts a file and rank index to a square.
// ok is false for anything off the board.
func NewSquare(file, rank int) (Square, bool) {
	return SquareFromCoord(Coord{File: file, Rank: rank})
}

// SquareFromCoord converts a coordinate to a square.
// ok is false for anything off the board; the result is never clamped.
func SquareFromCoord(c Coord) (Square, bool) {
	if !c.OnBoard() {
		return NoSquare, false
	}
	return Square(c.Rank*BoardSize + c.File), true
}

// ParseSquare converts a name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, ok := FileFromLetter(name[0])
	if !ok {
		return NoSquare, false
	}
	rank, ok := RankFromDigit(name[1])
	if !ok {
		return NoSquare, false
	}
	return NewSquare(file, rank)
}

// Valid reports whether s is one of the 64 squares.
func (s Square) Valid() bool {
	return s >= A1 && s <= H8
}

// File returns the file index 0-7.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index 0-7.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Coord returns the square as a coordinate.
func (s Square) Coord() Coord {
	return Coord{File: s.File(), Rank: s.Rank()}
}

// String returns the square name, or "-" for an invalid square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{FileLetter(s.File()), RankDigit(s.Rank())})
}

// FileLetter converts a file index to 'a'-'h'.
func FileLetter(file int) byte {
	return byte('a' + file)
}

// RankDigit converts a rank index to '1'-'8'.
func RankDigit(rank int) byte {
	return byte('1' + rank)
}

// FileFromLetter converts 'a'-'h' to a file index.
func FileFromLetter(c byte) (int, bool) {
	if c < 'a' || c > 'h' {
		return 0, false
	}
	return int(c - 'a'), true
}

// RankFromDigit converts '1'-'8' to a rank index.
func RankFromDigit(c byte) (int, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return int(c - '1'), true
}

// AllSquares returns a1..h8 in index order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for s := A1; s <= H8; s++ {
		squares = append(squares, s)
	}
	return squares
}
