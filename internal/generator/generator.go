package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Fabricio-devs/Sudoku/internal/board"
	"github.com/Fabricio-devs/Sudoku/internal/solver"
)

const (
	MinRemovalCount     = 0
	MaxRemovalCount     = board.CellCount
	DefaultRemovalCount = 46 // 35 clues, the original game's default
)

var (
	ErrGenerationFailed    = errors.New("failed to generate valid puzzle")
	ErrInvalidRemovalCount = errors.New("removal count must be between 0 and 81")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultRemovalCount)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and its solution, or an error if generation fails.
// The puzzle always has exactly 81 - RemovalCount filled cells. No
// uniqueness check is performed on the result: removal is purely random,
// so puzzles with few clues may admit more than one solution.
func (g *Generator) Generate() (puzzle *board.Board, solution *board.Board, err error) {
	if g.options.RemovalCount < MinRemovalCount || g.options.RemovalCount > MaxRemovalCount {
		return nil, nil, ErrInvalidRemovalCount
	}

	// Generate a complete valid board
	solution, err = g.generateSolution()
	if err != nil {
		return nil, nil, ErrGenerationFailed
	}

	// Remove cells to create the puzzle
	puzzle = g.removeCells(solution)

	return puzzle, solution, nil
}

// generateSolution creates a complete valid Sudoku board.
func (g *Generator) generateSolution() (*board.Board, error) {
	// Use a randomized solver on an empty board to generate a complete board
	s := solver.New(board.New(), &solver.Options{
		Randomize: true,
		Timeout:   g.options.Timeout,
		Seed:      g.rng.Int63(),
	})

	return s.Solve()
}

// removeCells clears RemovalCount cells of a complete board to create a puzzle.
// Positions are drawn without replacement from a shuffled permutation, so the
// removed set is uniform over all cell subsets of that size.
func (g *Generator) removeCells(solution *board.Board) *board.Board {
	puzzle := solution.Clone()

	for _, pos := range g.rng.Perm(board.CellCount)[:g.options.RemovalCount] {
		puzzle.Clear(pos)
	}

	return puzzle
}

// GenerateWithRemovalCount is a convenience function to generate a puzzle
// with a specific number of removed cells.
func GenerateWithRemovalCount(removalCount int) (*board.Board, *board.Board, error) {
	gen := New(DefaultOptions(removalCount))
	return gen.Generate()
}
