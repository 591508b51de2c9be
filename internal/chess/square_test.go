package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSquareCoordBijection(t *testing.T) {
	seen := make(map[string]bool)
	for _, sq := range AllSquares() {
		back, ok := SquareFromCoord(sq.Coord())
		if !ok || back != sq {
			t.Errorf("SquareFromCoord(%v.Coord()) = %v, %v; want %v, true", sq, back, ok, sq)
		}
		parsed, ok := ParseSquare(sq.String())
		if !ok || parsed != sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v, true", sq.String(), parsed, ok, sq)
		}
		if seen[sq.String()] {
			t.Errorf("duplicate square name %q", sq.String())
		}
		seen[sq.String()] = true
	}
	if len(seen) != 64 {
		t.Errorf("got %d square names; want 64", len(seen))
	}
}

func TestSquareFromCoordOffBoard(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
	}{
		{"negative file", Coord{-1, 0}},
		{"negative rank", Coord{0, -1}},
		{"file past h", Coord{8, 3}},
		{"rank past 8", Coord{3, 8}},
		{"far away", Coord{100, -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, ok := SquareFromCoord(tt.coord)
			if ok {
				t.Errorf("SquareFromCoord(%v) = %v, true; want failure", tt.coord, sq)
			}
			if sq != NoSquare {
				t.Errorf("SquareFromCoord(%v) = %v; want NoSquare", tt.coord, sq)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in     string
		want   Square
		wantOK bool
	}{
		{"a1", A1, true},
		{"e4", E4, true},
		{"h8", H8, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"E4", NoSquare, false},
		{"e", NoSquare, false},
		{"e44", NoSquare, false},
		{"", NoSquare, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSquare(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSquareAccessors(t *testing.T) {
	if E4.File() != 4 || E4.Rank() != 3 {
		t.Errorf("E4 = file %d rank %d; want 4, 3", E4.File(), E4.Rank())
	}
	if diff := cmp.Diff(Coord{File: 6, Rank: 7}, G8.Coord()); diff != "" {
		t.Errorf("G8.Coord() mismatch (-want +got):\n%s", diff)
	}
	if NoSquare.Valid() {
		t.Error("NoSquare.Valid() = true; want false")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", NoSquare.String())
	}
}

func TestCoordMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		vec    Coord
		want   int
		wantOK bool
	}{
		{"vertical", Coord{0, 5}, 5, true},
		{"horizontal", Coord{-3, 0}, 3, true},
		{"diagonal", Coord{2, -2}, 2, true},
		{"single step", Coord{1, 1}, 1, true},
		{"knight jump", Coord{1, 2}, 0, false},
		{"irregular", Coord{3, 5}, 0, false},
		{"zero", Coord{0, 0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.vec.Magnitude()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("%v.Magnitude() = %d, %v; want %d, %v", tt.vec, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCoordArithmetic(t *testing.T) {
	a := Coord{File: 2, Rank: 3}
	b := Coord{File: -1, Rank: 4}

	if diff := cmp.Diff(Coord{1, 7}, a.Add(b)); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Coord{3, -1}, a.Sub(b)); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Coord{-3, 12}, b.Scale(3)); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Coord{-1, 1}, Coord{-4, 4}.Unit()); diff != "" {
		t.Errorf("Unit mismatch (-want +got):\n%s", diff)
	}
}
