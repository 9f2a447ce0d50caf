// Command checksat verifies a candidate SAT solution against a CNF
// problem, matching the original checkSat front-end.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/dpllsat/dpllsat"
)

type args struct {
	CNFFile string `arg:"positional,required" help:"a CNF problem in DIMACS format"`
	SATFile string `arg:"positional,required" help:"a candidate solution, one 'v ...0' line"`
	Verbose bool   `arg:"-v,--verbose" help:"enable debug logging"`
}

func (args) Description() string {
	return "checksat verifies a candidate solution against a CNF problem."
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	arg.MustParse(&a)

	logger := dpllsat.NewStdLogger()
	logger.SetDebug(a.Verbose)

	cnfFile, err := os.Open(a.CNFFile)
	if err != nil {
		logger.Errorf("opening %s: %s", a.CNFFile, err)
		return 2
	}
	defer cnfFile.Close()

	f := dpllsat.NewFormula(logger)
	if _, err := dpllsat.ParseDIMACS(cnfFile, f); err != nil {
		logger.Errorf("parsing %s: %s", a.CNFFile, err)
		return 2
	}

	satBytes, err := os.ReadFile(a.SATFile)
	if err != nil {
		logger.Errorf("opening %s: %s", a.SATFile, err)
		return 2
	}

	var assignment []dpllsat.RawLiteral
	for _, line := range strings.Split(string(satBytes), "\n") {
		lits, err := dpllsat.ParseSolution(line)
		if err != nil {
			logger.Errorf("parsing %s: %s", a.SATFile, err)
			return 2
		}
		assignment = append(assignment, lits...)
	}

	if dpllsat.Check(f, assignment) {
		fmt.Println("The solution is valid.")
		return 0
	}
	fmt.Println("The solution is not valid.")
	return 1
}
