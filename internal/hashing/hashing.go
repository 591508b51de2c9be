// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristKeys holds one random key per feature of a position.
type zobristKeys struct {
	pieces    [2][7][64]uint64 // [side][kind][square]
	blackMove uint64
	castling  [4]uint64
	epFile    [8]uint64
}

var keys = newZobristKeys(0x9E3779B97F4A7C15)

// newZobristKeys fills the key table from a splitmix64 sequence so that
// hashes are stable between runs.
func newZobristKeys(seed uint64) *zobristKeys {
	state := seed
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	k := &zobristKeys{}
	for side := range k.pieces {
		for kind := range k.pieces[side] {
			for sq := range k.pieces[side][kind] {
				k.pieces[side][kind][sq] = next()
			}
		}
	}
	k.blackMove = next()
	for i := range k.castling {
		k.castling[i] = next()
	}
	for i := range k.epFile {
		k.epFile[i] = next()
	}
	return k
}

// PositionHash returns the Zobrist hash of b with en passant target ep.
// Two positions that FEN would print identically, ignoring the move
// counters, hash the same.
func PositionHash(b *chess.Board, ep chess.Square) uint64 {
	var hash uint64
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, loc := range b.PiecesOf(side) {
			hash ^= keys.pieces[side][loc.Piece.Kind][loc.Square]
		}
	}
	if b.ToMove == chess.Black {
		hash ^= keys.blackMove
	}

	rights := []bool{
		b.Castling.WhiteKingside, b.Castling.WhiteQueenside,
		b.Castling.BlackKingside, b.Castling.BlackQueenside,
	}
	for i, has := range rights {
		if has {
			hash ^= keys.castling[i]
		}
	}

	if ep.Valid() {
		hash ^= keys.epFile[ep.File()]
	}
	return hash
}

// WeakHash is a cheap placement-only checksum used to confirm a Zobrist
// match.
func WeakHash(b *chess.Board) uint32 {
	var sum uint32
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, loc := range b.PiecesOf(side) {
			sum += uint32(loc.Square+1) * uint32(int(loc.Piece.Kind)*2+int(side)+1)
		}
	}
	return sum
}

// Signature identifies the final position of a replayed game.
type Signature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash confirms a Hash match
	WeakHash uint32
	// MoveCount is the number of half-moves played
	MoveCount int
}

// NewSignature builds the signature of a game that ended on b.
func NewSignature(b *chess.Board, ep chess.Square, moveCount int) Signature {
	return Signature{
		Hash:      PositionHash(b, ep),
		WeakHash:  WeakHash(b),
		MoveCount: moveCount,
	}
}

// DuplicateDetector remembers the final positions seen so far.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// exactMatch also requires the same number of half-moves
	exactMatch     bool
	maxCapacity    int
	duplicateCount int
	size           int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means
// unlimited; once full, new positions are no longer remembered.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether sig duplicates an earlier signature, and
// remembers it if not.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.size++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.exactMatch || a.MoveCount == b.MoveCount
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of positions remembered.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the detector has reached its capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset forgets every position.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.size = 0
}
