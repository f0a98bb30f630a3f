// Package game holds the state of one Sudoku game: the puzzle grid as the
// player sees it, the fixed-given mask, and the generator's solution.
//
// The grid deliberately accepts rule-violating player entries — a wrong
// digit is still a digit. Validation is a separate, read-only inspection
// (CheckRow, Check), mirroring how the game is actually played.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Fabricio-devs/Sudoku/internal/board"
	"github.com/Fabricio-devs/Sudoku/internal/generator"
	"github.com/Fabricio-devs/Sudoku/internal/solver"
)

var (
	ErrFixedCell = errors.New("cell is a fixed given")
)

// Game is the state of a single Sudoku game.
// A Game is created by New and discarded when a new game starts; it is not
// safe for concurrent use, matching the single-threaded play loop.
type Game struct {
	// values is the grid as the player sees it, including any wrong
	// entries. 0 is an empty cell.
	values [board.CellCount]int

	// fixed marks the puzzle's pre-filled givens; set at construction
	// and never mutated afterwards.
	fixed [board.CellCount]bool

	// solution is the solved board the puzzle was carved from.
	solution *board.Board
}

// New starts a game with removalCount cells cleared from a fresh solved board.
func New(removalCount int) (*Game, error) {
	return NewWithOptions(generator.DefaultOptions(removalCount))
}

// NewWithOptions starts a game using explicit generator options.
func NewWithOptions(opts *generator.Options) (*Game, error) {
	puzzle, solution, err := generator.New(opts).Generate()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{solution: solution}
	for pos := 0; pos < board.CellCount; pos++ {
		g.values[pos] = puzzle.Get(pos)
		g.fixed[pos] = puzzle.Get(pos) != board.EmptyCell
	}
	return g, nil
}

// SetCell writes a digit 1-9 (or 0 to clear) into an editable cell.
// Fixed cells and out-of-range input are rejected and the grid is unchanged.
// The digit is not checked against Sudoku rules; Check catches wrong entries.
func (g *Game) SetCell(row, col, val int) error {
	pos := board.MakePos(row, col)
	if pos == board.InvalidCell {
		return fmt.Errorf("%w: row %d, col %d", board.ErrInvalidPosition, row, col)
	}
	if val < 0 || val > 9 {
		return fmt.Errorf("%w: got %d", board.ErrInvalidValue, val)
	}
	if g.fixed[pos] {
		return fmt.Errorf("%w: row %d, col %d", ErrFixedCell, row, col)
	}

	g.values[pos] = val
	return nil
}

// ClearCell empties an editable cell.
func (g *Game) ClearCell(row, col int) error {
	return g.SetCell(row, col, board.EmptyCell)
}

// Cell returns the value at (row, col), or InvalidCell for bad coordinates.
func (g *Game) Cell(row, col int) int {
	pos := board.MakePos(row, col)
	if pos == board.InvalidCell {
		return board.InvalidCell
	}
	return g.values[pos]
}

// Fixed reports whether (row, col) is a pre-filled given.
func (g *Game) Fixed(row, col int) bool {
	pos := board.MakePos(row, col)
	return pos != board.InvalidCell && g.fixed[pos]
}

// RowFilled reports whether every cell of a row holds a digit.
func (g *Game) RowFilled(row int) bool {
	for col := 0; col < 9; col++ {
		if g.values[board.MakePos(row, col)] == board.EmptyCell {
			return false
		}
	}
	return true
}

// Filled reports whether the whole grid holds a digit in every cell.
func (g *Game) Filled() bool {
	for pos := 0; pos < board.CellCount; pos++ {
		if g.values[pos] == board.EmptyCell {
			return false
		}
	}
	return true
}

// CheckRow reports whether a row is free of duplicate digits.
// Empty cells are ignored; an out-of-range row is invalid.
func (g *Game) CheckRow(row int) bool {
	if row < 0 || row >= 9 {
		return false
	}

	var seen uint
	for col := 0; col < 9; col++ {
		val := g.values[board.MakePos(row, col)]
		if val == board.EmptyCell {
			continue
		}
		mask := uint(1 << (val - 1))
		if seen&mask != 0 {
			return false
		}
		seen |= mask
	}
	return true
}

// Check reports whether the grid is a complete, correct solution: no empty
// cells and every row, column, and box a permutation of 1-9.
func (g *Game) Check() bool {
	if !g.Filled() {
		return false
	}

	var rowCheck, colCheck, boxCheck [9]uint
	for pos := 0; pos < board.CellCount; pos++ {
		row, col := board.RowCol(pos)
		box := 3*(row/3) + col/3
		mask := uint(1 << (g.values[pos] - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}
	return true
}

// Solve runs the solver over the current grid, player entries included, and
// writes the solution into the editable cells. If the player's entries make
// the grid contradictory or unsolvable, the grid is left untouched and the
// solver's error is returned.
func (g *Game) Solve() error {
	b := board.New()
	for pos := 0; pos < board.CellCount; pos++ {
		if g.values[pos] == board.EmptyCell {
			continue
		}
		if err := b.Set(pos, g.values[pos]); err != nil {
			// A duplicate within a unit cannot even be represented on a
			// strict board; report it the same way the solver would.
			return fmt.Errorf("%w: %v", solver.ErrInvalidPuzzle, err)
		}
	}

	solved, err := solver.New(b, nil).Solve()
	if err != nil {
		return err
	}

	for pos := 0; pos < board.CellCount; pos++ {
		if !g.fixed[pos] {
			g.values[pos] = solved.Get(pos)
		}
	}
	return nil
}

// Reset clears every editable cell, preserving the fixed givens.
func (g *Game) Reset() {
	for pos := 0; pos < board.CellCount; pos++ {
		if !g.fixed[pos] {
			g.values[pos] = board.EmptyCell
		}
	}
}

// Solution returns a copy of the solved board the puzzle was carved from.
func (g *Game) Solution() *board.Board {
	return g.solution.Clone()
}

// EmptyCount returns the number of empty cells on the grid.
func (g *Game) EmptyCount() int {
	n := 0
	for pos := 0; pos < board.CellCount; pos++ {
		if g.values[pos] == board.EmptyCell {
			n++
		}
	}
	return n
}

// Format renders the grid with box lines. Fixed givens print as digits,
// player entries are wrapped in parentheses so the two read differently
// on a terminal.
func (g *Game) Format() string {
	var sb strings.Builder
	line := "+---------+---------+---------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("|")
		for col := 0; col < 9; col++ {
			val := g.values[board.MakePos(row, col)]
			switch {
			case val == board.EmptyCell:
				sb.WriteString(" . ")
			case g.fixed[board.MakePos(row, col)]:
				fmt.Fprintf(&sb, " %d ", val)
			default:
				fmt.Fprintf(&sb, "(%d)", val)
			}

			if (col+1)%3 == 0 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
