package dpllsat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format and loads every clause
// into f, returning the number of clauses actually added. Clause ids are
// assigned sequentially starting at 1, in file order; a tautological or
// empty clause still consumes an id but is not added (see tryCreateClause),
// so the count checked against the problem line's declared clause count is
// the number of clauses present in the file, not the (possibly smaller)
// number returned.
//
// A few non-standard variations are accepted, matching what CNF files
// found in the wild actually contain:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line ("p cnf <vars> <clauses>") may be missing.
//   - A trailer after a line containing a single '%' is ignored.
func ParseDIMACS(r io.Reader, f *Formula) (int, error) {
	var problem struct {
		vars    int
		clauses int
	}
	nextID := 1
	added := 0
	var current []RawLiteral

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if nextID > 1 {
				return 0, errors.New("dpllsat: problem line appears after clauses")
			}
			if problem.vars > 0 {
				return 0, errors.New("dpllsat: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return 0, fmt.Errorf("dpllsat: malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return 0, fmt.Errorf("dpllsat: problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return 0, fmt.Errorf("dpllsat: only cnf supported, got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, fmt.Errorf("dpllsat: malformed #vars in problem line: %s", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return 0, fmt.Errorf("dpllsat: malformed #clauses in problem line: %s", err)
			}
			if problem.vars < 0 || problem.clauses < 0 {
				return 0, fmt.Errorf("dpllsat: malformed problem line %q", line)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return 0, fmt.Errorf("dpllsat: invalid literal %q: %s", field, err)
			}
			if n == 0 {
				if len(current) > 0 {
					ok, err := tryCreateClause(f, nextID, current)
					if err != nil {
						return 0, fmt.Errorf("dpllsat: clause %d: %s", nextID, err)
					}
					if ok {
						added++
					}
					nextID++
				}
				current = nil
				continue
			}
			current = append(current, NewRawLiteral(n))
		}
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	if len(current) > 0 {
		ok, err := tryCreateClause(f, nextID, current)
		if err != nil {
			return 0, fmt.Errorf("dpllsat: clause %d: %s", nextID, err)
		}
		if ok {
			added++
		}
		nextID++
	}

	seen := nextID - 1
	if problem.clauses > 0 && seen != problem.clauses {
		return 0, fmt.Errorf("dpllsat: problem line specifies %d clauses, but there are %d", problem.clauses, seen)
	}
	return added, nil
}

// tryCreateClause attempts to add one clause at id, reporting whether it
// was actually added. A tautological or empty clause is not a parse
// error: it is silently dropped, logged at debug level, the same as any
// other load-time tautology/empty-clause drop in this package. Any other
// error from CreateClause (malformed input, not a load-time shape issue)
// is propagated.
func tryCreateClause(f *Formula, id int, raw []RawLiteral) (added bool, err error) {
	if _, err := f.CreateClause(id, raw); err != nil {
		if err == ErrTautology || err == ErrEmptyClause {
			f.log.Debugf("dropping clause %d: %s", id, err)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ParseSolution parses a SAT solution line of the form accepted by this
// package's CLI front-ends and most SAT competition tooling: a sequence of
// signed integers, optionally prefixed by a leading "v", terminated by a
// literal 0 (the terminator may be omitted on the final line).
func ParseSolution(line string) ([]RawLiteral, error) {
	fields := strings.Fields(line)
	var lits []RawLiteral
	for _, field := range fields {
		if field == "v" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("dpllsat: invalid literal %q: %s", field, err)
		}
		if n == 0 {
			break
		}
		lits = append(lits, NewRawLiteral(n))
	}
	return lits, nil
}
