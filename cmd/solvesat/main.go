// Command solvesat solves a CNF problem and prints a satisfying assignment
// if one exists, matching the original solveSat front-end.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/dpllsat/dpllsat"
)

type args struct {
	CNFFile string `arg:"positional,required" help:"a CNF problem in DIMACS format"`
	Verbose bool   `arg:"-v,--verbose" help:"enable debug logging"`
}

func (args) Description() string {
	return "solvesat solves a CNF problem and prints a satisfying assignment if one exists."
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	arg.MustParse(&a)

	logger := dpllsat.NewStdLogger()
	logger.SetDebug(a.Verbose)

	file, err := os.Open(a.CNFFile)
	if err != nil {
		logger.Errorf("opening %s: %s", a.CNFFile, err)
		return 1
	}
	defer file.Close()

	f := dpllsat.NewFormula(logger)
	if _, err := dpllsat.ParseDIMACS(file, f); err != nil {
		logger.Errorf("parsing %s: %s", a.CNFFile, err)
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
		logger.Errorf("solving %s: %s", a.CNFFile, err)
		return 1
	}

	if !valuation.Satisfiable() {
		fmt.Println("s UNSATISFIABLE")
		return 0
	}

	fmt.Println("s SATISFIABLE")
	fmt.Print("v ")
	for _, lit := range valuation.Ints() {
		fmt.Printf("%d ", lit)
	}
	fmt.Println("0")
	logger.Infof("%d decisions, %d propagations, %d conflicts, %d backtracks, %s",
		stats.Decisions, stats.Propagations, stats.Conflicts, stats.Backtracks, chrono.Elapsed)
	return 0
}
