package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Fabricio-devs/Sudoku/internal/board"
	"github.com/Fabricio-devs/Sudoku/internal/generator"
	"github.com/Fabricio-devs/Sudoku/internal/solver"
	"github.com/spf13/cobra"
)

var (
	numPuzzles   int
	removalCount string
	genSeed      int64
	outputFile   string
	genTimeout   time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles by clearing cells from a
fresh solved board.

Examples:
  sudoku gen --remove 46
  sudoku gen -n 5 --remove 40:50
  sudoku gen -n 10 -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&removalCount, "remove", "r", fmt.Sprintf("%d", generator.DefaultRemovalCount), "Cells to remove 0-81 or range like 40:50")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// parseRemovalRange parses a removal count string which can be:
// - A single number: "46"
// - A range: "40:50"
// Returns min, max, and an error
func parseRemovalRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		// Single number
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid removal count: %w", err)
		}
		return val, val, nil
	} else if len(parts) == 2 {
		// Range
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid removal count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid removal count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("removal count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid removal count format: %s (use format like '46' or '40:50')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	minRemove, maxRemove, err := parseRemovalRange(removalCount)
	if err != nil {
		return err
	}

	if minRemove < generator.MinRemovalCount || maxRemove > generator.MaxRemovalCount {
		return fmt.Errorf("removal count must be between %d and %d",
			generator.MinRemovalCount, generator.MaxRemovalCount)
	}

	// Collected for HTML output if an output file is specified
	var puzzles []*board.Board
	var solutions []*board.Board
	outputHTML := outputFile != ""

	rng := rand.New(rand.NewSource(seedOrNow(genSeed)))
	for i := 0; i < numPuzzles; i++ {
		selectedRemove := minRemove
		if maxRemove > minRemove {
			selectedRemove = minRemove + rng.Intn(maxRemove-minRemove+1)
		}

		opts := generator.DefaultOptions(selectedRemove)
		opts.Timeout = genTimeout
		opts.Seed = rng.Int63()
		gen := generator.New(opts)

		start := time.Now()
		puzzle, solution, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		log.WithField("duration", time.Since(start)).Debug("puzzle generated")

		if outputHTML {
			puzzles = append(puzzles, puzzle)
			solutions = append(solutions, solution)
		} else {
			fmt.Printf("Puzzle #%d (Removed: %d, Difficulty: %d):\n", i+1, selectedRemove, solver.Difficulty(puzzle))
			fmt.Println(puzzle.Format())
			fmt.Println("\nSolution:")
			fmt.Println(solution.Format())
			fmt.Println()
		}
	}

	if outputHTML {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename = filename + ".html"
		}

		if err := generateHTML(filename, puzzles, solutions); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", numPuzzles, filename)
	}

	return nil
}

// seedOrNow substitutes the wall clock for an unset seed.
func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// generateHTML creates an HTML file with puzzles, one per page
func generateHTML(filename string, puzzles []*board.Board, solutions []*board.Board) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	// Write HTML header
	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sudoku Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .sudoku-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .sudoku-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .sudoku-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .sudoku-grid td.empty {
            color: #ccc;
        }
        .sudoku-grid tr:nth-child(3n) td {
            border-bottom: 2px solid #000;
        }
        .sudoku-grid td:nth-child(3n) {
            border-right: 2px solid #000;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	// Write each puzzle on its own page
	for i := 0; i < len(puzzles); i++ {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Sudoku Puzzle #%d</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, boardToHTML(puzzles[i]), boardToHTML(solutions[i]))
		if err != nil {
			return err
		}
	}

	// Write HTML footer
	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}

// boardToHTML converts a board to an HTML table representation
func boardToHTML(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"sudoku-grid\"><table>")

	for row := 0; row < 9; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < 9; col++ {
			pos := board.MakePos(row, col)
			val := b.Get(pos)
			cellClass := ""
			cellContent := ""

			if val == board.EmptyCell {
				cellClass = "empty"
				cellContent = "·"
			} else {
				cellContent = fmt.Sprintf("%d", val)
			}

			sb.WriteString(fmt.Sprintf("<td class=\"%s\">%s</td>", cellClass, cellContent))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
