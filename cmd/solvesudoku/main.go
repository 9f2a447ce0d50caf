// Command solvesudoku solves a 9x9 Sudoku grid given as a file of known
// cells, matching the original solveSudoku front-end.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/dpllsat/dpllsat"
	"github.com/dpllsat/dpllsat/sudoku"
)

type args struct {
	GridFile string `arg:"positional,required" help:"a grid file listing known cells as line*100+column*10+value triplets"`
	Verbose  bool   `arg:"-v,--verbose" help:"enable debug logging"`
}

func (args) Description() string {
	return "solvesudoku solves a 9x9 sudoku grid and prints the filled-in result."
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	arg.MustParse(&a)

	logger := dpllsat.NewStdLogger()
	logger.SetDebug(a.Verbose)

	f := dpllsat.NewFormula(logger)
	nextID := sudoku.Generate(f)

	gridFile, err := os.Open(a.GridFile)
	if err != nil {
		logger.Errorf("opening %s: %s", a.GridFile, err)
		return 1
	}
	defer gridFile.Close()

	if _, err := sudoku.LoadGrid(gridFile, f, nextID); err != nil {
		logger.Errorf("loading %s: %s", a.GridFile, err)
		return 1
	}

	selector := dpllsat.ComposedSelector{
		Variables: dpllsat.MostUsedVariableSelector{},
		Polarity:  dpllsat.MostUsedPolaritySelector{},
	}
	solver := dpllsat.NewIterativeSolver(f, selector)

	stats := &dpllsat.StatisticsListener{}
	chrono := &dpllsat.ChronoListener{}
	solver.AddListener(stats)
	solver.AddListener(chrono)
	solver.AddListener(dpllsat.NewLoggingListener(logger))

	valuation, err := solver.Solve(nil)
	if err != nil {
		logger.Errorf("solving %s: %s", a.GridFile, err)
		return 1
	}

	if !valuation.Satisfiable() {
		fmt.Println("There is no solution to this grid.")
		return 0
	}

	grid := [sudoku.Size + 1][sudoku.Size + 1]int{}
	for _, lit := range valuation.Literals() {
		if !lit.IsPositive() {
			continue
		}
		cell := sudoku.DecodeCell(lit.ID())
		if cell.Line < 1 || cell.Line > sudoku.Size || cell.Column < 1 || cell.Column > sudoku.Size {
			continue
		}
		grid[cell.Line][cell.Column] = cell.Value
	}

	fmt.Println("Solution found:")
	for line := 1; line <= sudoku.Size; line++ {
		fmt.Print("  | ")
		for column := 1; column <= sudoku.Size; column++ {
			fmt.Printf("%d ", grid[line][column])
		}
		fmt.Println("|")
	}

	logger.Infof("%d decisions, %d propagations, %d conflicts, %d backtracks, %s",
		stats.Decisions, stats.Propagations, stats.Conflicts, stats.Backtracks, chrono.Elapsed)
	return 0
}
