package game

import (
	"errors"
	"testing"

	"github.com/Fabricio-devs/Sudoku/internal/board"
	"github.com/Fabricio-devs/Sudoku/internal/generator"
	"github.com/Fabricio-devs/Sudoku/internal/solver"
)

func newTestGame(t *testing.T, removalCount int) *Game {
	t.Helper()
	opts := generator.DefaultOptions(removalCount)
	opts.Seed = 12345
	g, err := NewWithOptions(opts)
	if err != nil {
		t.Fatalf("NewWithOptions failed: %v", err)
	}
	return g
}

// emptyGame returns a game with no fixed cells at all.
func emptyGame(t *testing.T) *Game {
	return newTestGame(t, board.CellCount)
}

func TestFixedMaskMatchesPuzzle(t *testing.T) {
	g := newTestGame(t, 46)

	fixedCount := 0
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			filled := g.Cell(row, col) != board.EmptyCell
			if g.Fixed(row, col) != filled {
				t.Fatalf("fixed mask mismatch at (%d, %d)", row, col)
			}
			if filled {
				fixedCount++
			}
		}
	}
	if fixedCount != board.CellCount-46 {
		t.Errorf("fixed cell count = %d, want %d", fixedCount, board.CellCount-46)
	}
}

func TestSetCellRejectsFixedCells(t *testing.T) {
	g := newTestGame(t, 46)

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if !g.Fixed(row, col) {
				continue
			}
			before := g.Cell(row, col)
			if err := g.SetCell(row, col, 1); !errors.Is(err, ErrFixedCell) {
				t.Fatalf("SetCell on fixed (%d, %d) = %v, want ErrFixedCell", row, col, err)
			}
			if g.Cell(row, col) != before {
				t.Fatalf("fixed cell (%d, %d) changed", row, col)
			}
			return
		}
	}
	t.Fatal("no fixed cell found")
}

func TestSetCellRejectsBadInput(t *testing.T) {
	g := emptyGame(t)

	cases := []struct {
		name          string
		row, col, val int
		want          error
	}{
		{"digit too large", 0, 0, 10, board.ErrInvalidValue},
		{"digit negative", 0, 0, -1, board.ErrInvalidValue},
		{"row out of range", 9, 0, 5, board.ErrInvalidPosition},
		{"col out of range", 0, -1, 5, board.ErrInvalidPosition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.SetCell(tc.row, tc.col, tc.val); !errors.Is(err, tc.want) {
				t.Errorf("SetCell(%d, %d, %d) = %v, want %v", tc.row, tc.col, tc.val, err, tc.want)
			}
		})
	}

	if g.Cell(0, 0) != board.EmptyCell {
		t.Error("rejected input changed the grid")
	}
}

func TestSetCellAcceptsWrongDigits(t *testing.T) {
	g := emptyGame(t)

	// Two fives in one row are accepted; Check is what catches them.
	if err := g.SetCell(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCell(0, 1, 5); err != nil {
		t.Fatal(err)
	}
	if g.CheckRow(0) {
		t.Error("CheckRow missed a duplicate")
	}
}

func TestCheckRow(t *testing.T) {
	g := emptyGame(t)

	for col, val := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9} {
		if err := g.SetCell(0, col, val); err != nil {
			t.Fatal(err)
		}
	}
	if !g.RowFilled(0) {
		t.Error("RowFilled = false for a full row")
	}
	if !g.CheckRow(0) {
		t.Error("CheckRow = false for a valid row")
	}

	// Introduce a duplicate: [1,1,3,...].
	if err := g.SetCell(0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if g.CheckRow(0) {
		t.Error("CheckRow = true for a row with a duplicate")
	}

	// A partial row without duplicates is fine.
	if err := g.ClearCell(0, 1); err != nil {
		t.Fatal(err)
	}
	if g.RowFilled(0) {
		t.Error("RowFilled = true for a row with an empty cell")
	}
	if !g.CheckRow(0) {
		t.Error("CheckRow = false for a partial duplicate-free row")
	}
}

func TestCheckRequiresCompleteness(t *testing.T) {
	g := newTestGame(t, 46)
	if g.Check() {
		t.Error("Check = true for an incomplete grid")
	}
}

func TestCheckAcceptsTheSolution(t *testing.T) {
	g := newTestGame(t, 46)
	solution := g.Solution()

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g.Fixed(row, col) {
				continue
			}
			if err := g.SetCell(row, col, solution.Get(board.MakePos(row, col))); err != nil {
				t.Fatal(err)
			}
		}
	}

	if !g.Check() {
		t.Error("Check = false for the generator's own solution")
	}
	// Idempotence: no intervening edits, same verdict.
	if !g.Check() {
		t.Error("second Check disagreed with the first")
	}
}

func TestCheckCatchesSwappedCells(t *testing.T) {
	g := emptyGame(t)
	solution := g.Solution()

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if err := g.SetCell(row, col, solution.Get(board.MakePos(row, col))); err != nil {
				t.Fatal(err)
			}
		}
	}
	if !g.Check() {
		t.Fatal("Check = false for a correct grid")
	}

	// Swap two cells of one column: both affected rows now hold a duplicate.
	a, b := g.Cell(0, 0), g.Cell(1, 0)
	if err := g.SetCell(0, 0, b); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCell(1, 0, a); err != nil {
		t.Fatal(err)
	}
	if g.Check() {
		t.Error("Check = true after swapping two cells")
	}
}

func TestSolveFillsEditableCells(t *testing.T) {
	g := newTestGame(t, 46)
	if err := g.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !g.Check() {
		t.Error("Solve left an invalid grid")
	}
}

func TestSolvePreservesFixedCells(t *testing.T) {
	g := newTestGame(t, 46)
	solution := g.Solution()

	if err := g.Solve(); err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if !g.Fixed(row, col) {
				continue
			}
			if g.Cell(row, col) != solution.Get(board.MakePos(row, col)) {
				t.Fatalf("fixed cell (%d, %d) no longer matches the solution", row, col)
			}
		}
	}
}

func TestSolveRejectsContradictoryEntries(t *testing.T) {
	g := emptyGame(t)
	if err := g.SetCell(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCell(0, 8, 5); err != nil {
		t.Fatal(err)
	}

	err := g.Solve()
	if !errors.Is(err, solver.ErrInvalidPuzzle) {
		t.Fatalf("Solve = %v, want ErrInvalidPuzzle", err)
	}

	// The grid must be untouched on failure.
	if g.Cell(0, 0) != 5 || g.Cell(0, 8) != 5 || g.EmptyCount() != board.CellCount-2 {
		t.Error("failed Solve modified the grid")
	}
}

func TestResetPreservesFixedCells(t *testing.T) {
	g := newTestGame(t, 46)
	solution := g.Solution()

	// Fill a few editable cells, then reset.
	filled := 0
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g.Fixed(row, col) || filled >= 5 {
				continue
			}
			if err := g.SetCell(row, col, solution.Get(board.MakePos(row, col))); err != nil {
				t.Fatal(err)
			}
			filled++
		}
	}

	g.Reset()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			val := g.Cell(row, col)
			if g.Fixed(row, col) && val == board.EmptyCell {
				t.Fatalf("Reset cleared fixed cell (%d, %d)", row, col)
			}
			if !g.Fixed(row, col) && val != board.EmptyCell {
				t.Fatalf("Reset left editable cell (%d, %d) filled", row, col)
			}
		}
	}
}

func TestNewRejectsBadRemovalCount(t *testing.T) {
	if _, err := New(-1); !errors.Is(err, generator.ErrInvalidRemovalCount) {
		t.Errorf("New(-1) = %v, want ErrInvalidRemovalCount", err)
	}
	if _, err := New(82); !errors.Is(err, generator.ErrInvalidRemovalCount) {
		t.Errorf("New(82) = %v, want ErrInvalidRemovalCount", err)
	}
}

func TestAllCellsFixedAtRemovalZero(t *testing.T) {
	g := newTestGame(t, 0)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if !g.Fixed(row, col) {
				t.Fatalf("cell (%d, %d) editable with removal count 0", row, col)
			}
		}
	}
	if !g.Check() {
		t.Error("untouched full board failed Check")
	}
}
