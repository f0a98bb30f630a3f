package generator

import (
	"errors"
	"testing"

	"github.com/Fabricio-devs/Sudoku/internal/board"
	"github.com/Fabricio-devs/Sudoku/internal/solver"
)

func testOptions(removalCount int) *Options {
	opts := DefaultOptions(removalCount)
	opts.Seed = 12345
	return opts
}

func TestGenerateSolutionIsSolvedBoard(t *testing.T) {
	puzzle, solution, err := New(testOptions(DefaultRemovalCount)).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !solution.IsSolved() {
		t.Error("solution is not a complete valid board")
	}
	if !puzzle.IsValid() {
		t.Error("puzzle violates Sudoku constraints")
	}
}

func TestGenerateRemovalCounts(t *testing.T) {
	for _, n := range []int{0, 17, 46, 64, 81} {
		puzzle, _, err := New(testOptions(n)).Generate()
		if err != nil {
			t.Fatalf("Generate(remove %d) failed: %v", n, err)
		}
		if got := puzzle.ClueCount(); got != board.CellCount-n {
			t.Errorf("remove %d: ClueCount = %d, want %d", n, got, board.CellCount-n)
		}
	}
}

func TestGeneratePuzzleMatchesSolution(t *testing.T) {
	puzzle, solution, err := New(testOptions(DefaultRemovalCount)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	for pos := 0; pos < board.CellCount; pos++ {
		if v := puzzle.Get(pos); v != board.EmptyCell && v != solution.Get(pos) {
			t.Fatalf("clue at position %d is %d, solution has %d", pos, v, solution.Get(pos))
		}
	}
}

func TestGenerateRemoveNothing(t *testing.T) {
	puzzle, solution, err := New(testOptions(0)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if puzzle.String() != solution.String() {
		t.Error("removal count 0 should leave the puzzle identical to the solution")
	}
}

func TestGenerateRemoveEverything(t *testing.T) {
	puzzle, _, err := New(testOptions(board.CellCount)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if puzzle.EmptyCount() != board.CellCount {
		t.Errorf("EmptyCount = %d, want %d", puzzle.EmptyCount(), board.CellCount)
	}

	// A fully empty puzzle must still be solvable.
	solved, err := solver.New(puzzle, nil).Solve()
	if err != nil {
		t.Fatalf("solving the empty puzzle failed: %v", err)
	}
	if !solved.IsSolved() {
		t.Error("solution of empty puzzle is not a solved board")
	}
}

func TestGenerateRejectsBadRemovalCount(t *testing.T) {
	for _, n := range []int{-1, 82, 1000} {
		_, _, err := New(testOptions(n)).Generate()
		if !errors.Is(err, ErrInvalidRemovalCount) {
			t.Errorf("Generate(remove %d) = %v, want ErrInvalidRemovalCount", n, err)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	first, _, err := New(testOptions(DefaultRemovalCount)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := New(testOptions(DefaultRemovalCount)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("same seed produced different puzzles")
	}
}

func TestGenerateWithRemovalCount(t *testing.T) {
	puzzle, solution, err := GenerateWithRemovalCount(30)
	if err != nil {
		t.Fatalf("GenerateWithRemovalCount failed: %v", err)
	}
	if puzzle.ClueCount() != board.CellCount-30 {
		t.Errorf("ClueCount = %d, want %d", puzzle.ClueCount(), board.CellCount-30)
	}
	if !solution.IsSolved() {
		t.Error("solution is not a complete valid board")
	}
}
