package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Fabricio-devs/Sudoku/internal/game"
	"github.com/Fabricio-devs/Sudoku/internal/generator"
	"github.com/spf13/cobra"
)

var playRemove int

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play Sudoku in the terminal",
		Long: `Play an interactive Sudoku game. Rows and columns are 1-9,
counted from the top-left corner. Fixed givens print as plain digits,
your entries in parentheses.

Commands:
  set R C V    place digit V at row R, column C
  clear R C    empty the cell at row R, column C
  clear        empty every cell you filled in
  check        verify the completed grid
  solve        fill in a valid solution
  new [N]      start a new game, optionally removing N cells
  show         reprint the grid
  quit         leave the game`,
		RunE: runPlay,
	}

	playCmd.Flags().IntVarP(&playRemove, "remove", "r", generator.DefaultRemovalCount, "Cells to remove from the solved board (0-81)")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	g, err := game.New(playRemove)
	if err != nil {
		return err
	}
	log.WithField("removed", playRemove).Debug("game started")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "New puzzle generated. Good luck!")
	fmt.Fprint(out, g.Format())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return nil

		case "help", "h":
			fmt.Fprintln(out, cmd.Long)

		case "show":
			fmt.Fprint(out, g.Format())

		case "new":
			n := playRemove
			if len(fields) == 2 {
				v, err := strconv.Atoi(fields[1])
				if err != nil {
					fmt.Fprintf(out, "not a number: %s\n", fields[1])
					continue
				}
				n = v
			}
			next, err := game.New(n)
			if err != nil {
				fmt.Fprintf(out, "cannot start game: %v\n", err)
				continue
			}
			g = next
			fmt.Fprintln(out, "New puzzle generated. Good luck!")
			fmt.Fprint(out, g.Format())

		case "set":
			row, col, val, err := parseMove(fields[1:], 3)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := g.SetCell(row, col, val); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprint(out, g.Format())
			reportProgress(out, g, row)

		case "clear":
			if len(fields) == 1 {
				g.Reset()
				fmt.Fprintln(out, "Cleared your entries.")
				fmt.Fprint(out, g.Format())
				continue
			}
			row, col, _, err := parseMove(fields[1:], 2)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := g.ClearCell(row, col); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprint(out, g.Format())

		case "check":
			if !g.Filled() {
				fmt.Fprintln(out, "The grid is not completely filled.")
				continue
			}
			if g.Check() {
				fmt.Fprintln(out, "Congratulations! The solution is valid.")
			} else {
				fmt.Fprintln(out, "The solution is not valid. Check your entries.")
			}

		case "solve":
			if err := g.Solve(); err != nil {
				fmt.Fprintf(out, "no solution found: %v\n", err)
				continue
			}
			fmt.Fprint(out, g.Format())
			fmt.Fprintln(out, "Puzzle solved.")

		default:
			fmt.Fprintf(out, "unknown command %q (try 'help')\n", fields[0])
		}
	}
}

// parseMove parses "R C [V]" with 1-based rows and columns.
// want is the number of expected arguments (2 or 3).
func parseMove(fields []string, want int) (row, col, val int, err error) {
	if len(fields) != want {
		return 0, 0, 0, fmt.Errorf("expected %d numbers, got %d", want, len(fields))
	}

	nums := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("not a number: %s", f)
		}
		nums[i] = v
	}

	row, col = nums[0]-1, nums[1]-1
	if want == 3 {
		val = nums[2]
	}
	return row, col, val, nil
}

// reportProgress mirrors the original game's auto-checks: a freshly filled
// row is verified on its own, and a full grid triggers the whole-board check.
func reportProgress(out io.Writer, g *game.Game, row int) {
	if g.RowFilled(row) {
		if g.CheckRow(row) {
			fmt.Fprintf(out, "Row %d looks good.\n", row+1)
		} else {
			fmt.Fprintf(out, "Row %d has a duplicate.\n", row+1)
		}
	}

	if g.Filled() {
		if g.Check() {
			fmt.Fprintln(out, "Congratulations! The solution is valid.")
		} else {
			fmt.Fprintln(out, "The solution is not valid. Check your entries.")
		}
	}
}
