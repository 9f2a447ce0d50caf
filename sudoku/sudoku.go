// Package sudoku encodes standard 9x9 Sudoku puzzles as CNF formulas
// consumable by the dpllsat core, and reads known-cell grid files. It is
// an external collaborator, not part of the core: it only ever calls
// Formula.CreateClause, the same entry point any other loader uses.
package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dpllsat/dpllsat"
)

// Size is the Sudoku grid's side length and value range.
const Size = 9

// squareSize is the side length of one of the 3x3 boxes.
const squareSize = 3

// cellID is the variable id for "cell (line, column) holds value", encoded
// as line*100 + column*10 + value, each digit in 1..9.
func cellID(line, column, value int) int {
	return line*100 + column*10 + value
}

// Generate emits the standard 9x9 Sudoku constraint clauses into f,
// starting at clause id 1, and returns the next unused clause id (so a
// caller loading a grid afterward knows where to continue numbering).
// Mirrors SudokuLoader::generateSudokuConstraints and its four helpers.
func Generate(f *dpllsat.Formula) int {
	id := 1

	for value := 1; value <= Size; value++ {
		for line := 1; line <= Size; line++ {
			id = generateLineConstraints(f, id, value, line)
			id = generateColumnConstraints(f, id, value, line)
		}
		for squareLine := 1; squareLine <= squareSize; squareLine++ {
			for squareColumn := 1; squareColumn <= squareSize; squareColumn++ {
				id = generateSquareConstraints(f, id, value, squareLine, squareColumn)
			}
		}
	}

	id = generateValuesPerCell(f, id)
	id = generateUniqueValuePerCell(f, id)
	return id
}

func mustCreate(f *dpllsat.Formula, id int, raw []dpllsat.RawLiteral) int {
	if _, err := f.CreateClause(id, raw); err != nil {
		// Every clause this package generates is built from distinct
		// cell/value combinations; a tautology or empty clause here
		// would mean the encoding itself is wrong, not bad input.
		panic(fmt.Sprintf("sudoku: generated clause %d is invalid: %s", id, err))
	}
	return id + 1
}

// generateLineConstraints forbids two different columns of the same line
// from both holding value.
func generateLineConstraints(f *dpllsat.Formula, id, value, line int) int {
	for startCol := 1; startCol <= Size; startCol++ {
		for targetCol := startCol + 1; targetCol <= Size; targetCol++ {
			id = mustCreate(f, id, []dpllsat.RawLiteral{
				dpllsat.NewRawLiteral(-cellID(line, startCol, value)),
				dpllsat.NewRawLiteral(-cellID(line, targetCol, value)),
			})
		}
	}
	return id
}

// generateColumnConstraints forbids two different lines of the same column
// from both holding value.
func generateColumnConstraints(f *dpllsat.Formula, id, value, column int) int {
	for startLine := 1; startLine <= Size; startLine++ {
		for targetLine := startLine + 1; targetLine <= Size; targetLine++ {
			id = mustCreate(f, id, []dpllsat.RawLiteral{
				dpllsat.NewRawLiteral(-cellID(startLine, column, value)),
				dpllsat.NewRawLiteral(-cellID(targetLine, column, value)),
			})
		}
	}
	return id
}

// generateSquareConstraints forbids two different cells of the same 3x3
// box from both holding value.
func generateSquareConstraints(f *dpllsat.Formula, id, value, squareLine, squareColumn int) int {
	lineOffset := squareSize * (squareLine - 1)
	columnOffset := squareSize * (squareColumn - 1)

	for lineInSquare := 1; lineInSquare <= squareSize; lineInSquare++ {
		for columnInSquare := 1; columnInSquare <= squareSize; columnInSquare++ {
			for targetLineInSquare := 1; targetLineInSquare <= squareSize; targetLineInSquare++ {
				if lineInSquare == targetLineInSquare {
					continue
				}
				for targetColumnInSquare := 1; targetColumnInSquare <= squareSize; targetColumnInSquare++ {
					if columnInSquare == targetColumnInSquare {
						continue
					}
					line := lineInSquare + lineOffset
					targetLine := targetLineInSquare + lineOffset
					column := columnInSquare + columnOffset
					targetColumn := targetColumnInSquare + columnOffset

					id = mustCreate(f, id, []dpllsat.RawLiteral{
						dpllsat.NewRawLiteral(-cellID(line, column, value)),
						dpllsat.NewRawLiteral(-cellID(targetLine, targetColumn, value)),
					})
				}
			}
		}
	}
	return id
}

// generateValuesPerCell requires every cell to hold at least one value.
func generateValuesPerCell(f *dpllsat.Formula, id int) int {
	for line := 1; line <= Size; line++ {
		for column := 1; column <= Size; column++ {
			raw := make([]dpllsat.RawLiteral, 0, Size)
			for value := 1; value <= Size; value++ {
				raw = append(raw, dpllsat.NewRawLiteral(cellID(line, column, value)))
			}
			id = mustCreate(f, id, raw)
		}
	}
	return id
}

// generateUniqueValuePerCell forbids a cell from holding two values at
// once.
func generateUniqueValuePerCell(f *dpllsat.Formula, id int) int {
	for value := 1; value <= Size; value++ {
		for targetValue := value + 1; targetValue <= Size; targetValue++ {
			for line := 1; line <= Size; line++ {
				for column := 1; column <= Size; column++ {
					id = mustCreate(f, id, []dpllsat.RawLiteral{
						dpllsat.NewRawLiteral(-cellID(line, column, value)),
						dpllsat.NewRawLiteral(-cellID(line, column, targetValue)),
					})
				}
			}
		}
	}
	return id
}

// LoadGrid reads a grid file — one known cell per line, each a bare
// integer already in line*100+column*10+value form — and adds each as a
// unit clause, starting numbering at startClauseID. It returns the next
// unused clause id. Blank lines are skipped; anything else that fails to
// parse as an integer is an error.
func LoadGrid(r io.Reader, f *dpllsat.Formula, startClauseID int) (int, error) {
	id := startClauseID
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("sudoku: invalid grid line %q: %s", line, err)
		}
		if _, err := f.CreateClause(id, []dpllsat.RawLiteral{dpllsat.NewRawLiteral(n)}); err != nil {
			return 0, fmt.Errorf("sudoku: grid clause %d: %s", id, err)
		}
		id++
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	return id, nil
}

// Cell identifies value at line line, column column, recovered from a
// positive literal's variable id.
type Cell struct {
	Line, Column, Value int
}

// DecodeCell splits a cellID back into its (line, column, value) parts,
// the inverse of the encoding Generate and LoadGrid use — used to render
// a solved valuation back into a grid.
func DecodeCell(id int) Cell {
	value := id % 10
	rest := id / 10
	column := rest % 10
	line := rest / 10
	return Cell{Line: line, Column: column, Value: value}
}
