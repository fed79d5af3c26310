package tables

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// Set is the complete family of generated tables. It is filled once by
// Build and must not be modified afterwards.
type Set struct {
	NumBit16    *board.PopCount16
	Geometry    *board.Geometry
	Attack      [board.NumSquares][NumPatterns][rotation.NumAxes]board.Bitboard
	PinBack     [board.NumSquares][NumPatterns][rotation.NumAxes]board.Bitboard
	PawnMovable [board.NumSides][board.NumSquares][NumPatterns]board.Bitboard
}

// Options controls how the tables are built. The output never depends on it.
type Options struct {
	// Workers is the number of squares generated concurrently.
	// Zero means GOMAXPROCS; one builds serially.
	Workers int

	// SkipVerify disables the consistency check. Tests use it to inspect
	// deliberately corrupted sets.
	SkipVerify bool
}

// Build generates every table and verifies the result.
func Build(ctx context.Context, opts Options) (*Set, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s := &Set{
		NumBit16: board.NewPopCount16(),
		Geometry: board.NewGeometry(),
	}

	// Shards write disjoint per-square slots and read only constants.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for sq := board.A1; sq <= board.H8; sq++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.fillSquare(sq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build tables: %w", err)
	}

	if !opts.SkipVerify {
		if err := Verify(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) fillSquare(sq board.Square) {
	for p := 0; p < NumPatterns; p++ {
		pattern := uint8(p)
		s.Attack[sq][p] = SlidingAttack(sq, pattern)
		s.PinBack[sq][p] = PinBack(sq, pattern)
		for side := board.NoSide; side < board.NumSides; side++ {
			s.PawnMovable[side][sq][p] = PawnMovable(side, sq, pattern)
		}
	}
}
