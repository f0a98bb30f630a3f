package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/Fabricio-devs/Sudoku/internal/board"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
	ErrTimeout       = errors.New("solver timeout exceeded")
)

// Solver implements backtracking search for Sudoku puzzles.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
}

// New creates a solver for the given board.
// The board is cloned; the caller's copy is never mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		Board:   b.Clone(),
		options: options,
	}

	if options.Randomize {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	return s
}

// Solve attempts to solve the puzzle.
// Returns the solved board, or an error if the puzzle is contradictory,
// unsolvable, or the timeout expires first.
func (s *Solver) Solve() (*board.Board, error) {
	if !s.Board.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	// Backtracking with the MRV heuristic.
	// MRV = Minimum Remaining Values, guess on the most constrained cells first
	// to reduce total search space.
	ctx, cancel := s.makeContext()
	defer cancel()

	if !s.backtrack(ctx) {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// backtrack implements recursive backtracking with MRV cell selection.
// Candidate order is shuffled when the solver is randomized, which turns
// the same search into a uniform generator of full boards.
func (s *Solver) backtrack(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	// Check if we've already solved it
	if s.Board.EmptyCount() == 0 {
		return true
	}

	// Find the cell with the minimum remaining values
	pos, candidates := s.findMRVCell()
	if len(candidates) == 0 {
		return false
	}

	if s.options.Randomize && s.rng != nil {
		s.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	for _, val := range candidates {
		s.Board.SetForce(pos, val)
		if s.backtrack(ctx) {
			return true
		}
		s.Board.Clear(pos)
	}

	return false
}

// findMRVCell finds the empty cell with fewest candidates.
func (s *Solver) findMRVCell() (int, []int) {
	mrvPos := -1
	mrvCount := 10
	var mrvCandidates []int

	for pos := 0; pos < board.CellCount; pos++ {
		if s.Board.Get(pos) == board.EmptyCell {
			candidates := s.Board.Candidates(pos)
			count := len(candidates)

			if count < mrvCount {
				mrvCount = count
				mrvPos = pos
				mrvCandidates = candidates

				if count <= 1 {
					break
				}
			}
		}
	}

	return mrvPos, mrvCandidates
}
