package parser

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Parse reads move text in short algebraic notation and returns every
// candidate reading, in the order they should be tried. Whitespace is
// ignored. The error is CantParse or NoDestination when no reading exists.
//
// The notation is ambiguous in one place: a lowercase "b" may be the b-file
// of a pawn capture or a bishop, so "bc4" yields both readings.
func Parse(text string) ([]Candidate, error) {
	input := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if input == "" {
		return nil, CantParse
	}

	if c, ok := parseCastle(input); ok {
		return []Candidate{c}, nil
	}

	var candidates []Candidate
	if c, ok := parsePawnCapture(input); ok {
		candidates = append(candidates, c)
		if !isPieceLetter(input[0]) {
			return candidates, nil
		}
	}

	c, err := parsePieceMove(input)
	if err != nil {
		if len(candidates) > 0 {
			return candidates, nil
		}
		return nil, err
	}
	return append(candidates, c), nil
}

// scanner walks a move string one byte at a time.
type scanner struct {
	input string
	pos   int
}

// peek returns the byte offset positions ahead, or 0 past the end.
func (s *scanner) peek(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.input) {
		return 0
	}
	return s.input[i]
}

func (s *scanner) accept(c byte) bool {
	if s.peek(0) == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) acceptString(str string) bool {
	if strings.HasPrefix(s.input[s.pos:], str) {
		s.pos += len(str)
		return true
	}
	return false
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

// parseCastle recognises O-O and O-O-O, also written with o or 0.
func parseCastle(input string) (Candidate, bool) {
	body := strings.TrimRight(input, "+#")
	if len(input)-len(body) > 1 {
		return Candidate{}, false
	}

	normalized := strings.Map(func(r rune) rune {
		if r == 'o' || r == '0' {
			return 'O'
		}
		return r
	}, body)

	var c Candidate
	switch normalized {
	case "O-O":
		c = newCandidate(ShapeCastleKingside, chess.King)
	case "O-O-O":
		c = newCandidate(ShapeCastleQueenside, chess.King)
	default:
		return Candidate{}, false
	}
	c.Check = strings.HasSuffix(input, "+")
	c.Checkmate = strings.HasSuffix(input, "#")
	return c, true
}

// parsePawnCapture reads file, optional x, destination file, optional
// destination rank and suffixes. It refuses when a further square appears
// later in the text, since then the leading letter was not a pawn file.
func parsePawnCapture(input string) (Candidate, bool) {
	s := &scanner{input: input}

	fromFile, ok := chess.FileFromLetter(s.peek(0))
	if !ok {
		return Candidate{}, false
	}
	s.pos++

	c := newCandidate(ShapePawnCapture, chess.Pawn)
	c.FromFile = fromFile
	c.Capture = s.accept('x')

	toFile, ok := chess.FileFromLetter(s.peek(0))
	if !ok {
		return Candidate{}, false
	}
	s.pos++
	c.ToFile = toFile

	if rank, ok := chess.RankFromDigit(s.peek(0)); ok {
		c.ToRank = rank
		s.pos++
	}

	if squareAhead(input, s.pos) {
		return Candidate{}, false
	}

	if !parseSuffix(s, &c) {
		return Candidate{}, false
	}
	return c, true
}

// parsePieceMove reads an optional piece letter with its disambiguation,
// optional x, the destination square and suffixes. Without a piece letter
// the result is a pawn push.
func parsePieceMove(input string) (Candidate, error) {
	s := &scanner{input: input}

	c := newCandidate(ShapePawnPush, chess.Pawn)
	parsePieceLetter(s, &c)
	c.Capture = s.accept('x')

	toFile, fileOK := chess.FileFromLetter(s.peek(0))
	toRank, rankOK := chess.RankFromDigit(s.peek(1))
	if !fileOK || !rankOK {
		if fileOK || c.Shape == ShapePiece || isPieceLetter(input[0]) {
			return Candidate{}, NoDestination
		}
		return Candidate{}, CantParse
	}
	s.pos += 2
	c.ToFile, c.ToRank = toFile, toRank

	if !parseSuffix(s, &c) {
		return Candidate{}, CantParse
	}
	return c, nil
}

// parsePieceLetter consumes a piece letter and any origin file and rank.
// Whether a following file and rank are the origin or the destination is
// decided by looking for another square later in the text.
func parsePieceLetter(s *scanner, c *Candidate) bool {
	first := s.peek(0)
	if !isPieceLetter(first) {
		return false
	}
	kind, _ := chess.PieceKindFromLetter(first)
	next := s.peek(1)

	if rank, ok := chess.RankFromDigit(next); ok {
		// "N2d4" names an origin rank; "b4" is a pawn push.
		if !squareAhead(s.input, s.pos+2) {
			return false
		}
		c.FromRank = rank
		s.pos += 2
	} else if file, ok := chess.FileFromLetter(next); ok {
		if rank, ok := chess.RankFromDigit(s.peek(2)); ok {
			if squareAhead(s.input, s.pos+3) {
				c.FromFile, c.FromRank = file, rank
				s.pos += 3
			} else {
				s.pos++
			}
		} else {
			c.FromFile = file
			s.pos += 2
		}
	} else {
		s.pos++
	}

	c.Shape = ShapePiece
	c.Piece = kind
	return true
}

// parseSuffix reads an optional promotion, "e.p." and check marker, and
// requires the input to end there.
func parseSuffix(s *scanner, c *Candidate) bool {
	hasEquals := s.accept('=')
	if kind, ok := chess.PieceKindFromLetter(s.peek(0)); ok {
		c.Promotion = kind
		s.pos++
	} else if hasEquals {
		return false
	}

	c.EnPassant = s.acceptString("e.p.")

	switch {
	case s.accept('+'):
		c.Check = true
	case s.accept('#'):
		c.Checkmate = true
	}

	return s.done()
}

// squareAhead reports whether a file letter followed by a rank digit
// appears anywhere in input from position from.
func squareAhead(input string, from int) bool {
	for i := from; i+1 < len(input); i++ {
		if _, ok := chess.FileFromLetter(input[i]); !ok {
			continue
		}
		if _, ok := chess.RankFromDigit(input[i+1]); ok {
			return true
		}
	}
	return false
}

// isPieceLetter reports whether c names a non-pawn piece. Lowercase letters
// are accepted, so "b" collides with the b-file.
func isPieceLetter(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K', 'n', 'b', 'r', 'q', 'k':
		return true
	}
	return false
}
