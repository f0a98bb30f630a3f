package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Fabricio-devs/Sudoku/internal/board"
	"github.com/Fabricio-devs/Sudoku/internal/solver"
	"github.com/spf13/cobra"
)

var (
	solveFile    string
	solveTimeout time.Duration
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a Sudoku grid",
		Long: `Solve a Sudoku grid given as an 81-character string, row by row.
Use '.' or '0' for empty cells.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku solve --file puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the grid from a file instead of an argument")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "Solver timeout")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	grid, err := readGrid(args)
	if err != nil {
		return err
	}

	b, err := board.NewFromString(grid)
	if err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}
	log.WithField("clues", b.ClueCount()).Debug("grid parsed")

	start := time.Now()
	solved, err := solver.New(b, &solver.Options{Timeout: solveTimeout}).Solve()
	switch {
	case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrInvalidPuzzle):
		return fmt.Errorf("no solution: %w", err)
	case err != nil:
		return err
	}
	log.WithField("duration", time.Since(start)).Debug("grid solved")

	fmt.Println(solved.Format())
	fmt.Println(solved.String())
	return nil
}

// readGrid returns the 81-character grid from the argument or --file.
func readGrid(args []string) (string, error) {
	if solveFile != "" {
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	return "", fmt.Errorf("provide a grid argument or --file")
}
