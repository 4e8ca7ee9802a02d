// Package mip - plain-text solution files.
//
// Format: one "# objective <value>" header line, then one "<name> <value>"
// line per variable. Variable names must not contain whitespace; unnamed
// variables are written with an index-derived fallback ("x<i>").
package mip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// varName returns the variable name used in solution files.
func varName(p *Problem, i int) string {
	if p.Vars[i].Name != "" {
		return p.Vars[i].Name
	}

	return "x" + strconv.Itoa(i)
}

// WriteSolution writes a complete assignment and its objective to w.
//
// Errors: ErrNilProblem, ErrDimensionMismatch, plus write errors from w.
func WriteSolution(w io.Writer, p *Problem, values []float64, objective float64) error {
	if p == nil {
		return ErrNilProblem
	}
	if len(values) != p.NumVars() {
		return ErrDimensionMismatch
	}

	if _, err := fmt.Fprintf(w, "# objective %.9g\n", objective); err != nil {
		return err
	}

	var i int
	for i = 0; i < p.NumVars(); i++ {
		if _, err := fmt.Fprintf(w, "%s %.9g\n", varName(p, i), values[i]); err != nil {
			return err
		}
	}

	return nil
}

// ReadSolution parses a solution file written by WriteSolution back into a
// value vector aligned with p. Every variable of p must appear exactly once;
// the objective is taken from the header when present, otherwise recomputed.
//
// Errors: ErrNilProblem, ErrBadSolutionFile, plus read errors from r.
func ReadSolution(r io.Reader, p *Problem) (values []float64, objective float64, err error) {
	if p == nil {
		return nil, 0, ErrNilProblem
	}

	// Name -> index map with the same fallback naming as WriteSolution.
	index := make(map[string]int, p.NumVars())
	var i int
	for i = 0; i < p.NumVars(); i++ {
		index[varName(p, i)] = i
	}

	values = make([]float64, p.NumVars())
	seen := make([]bool, p.NumVars())

	var (
		haveObjective bool
		matched       int
		sc            = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// Header line: "# objective <value>". Other comments are skipped.
		if strings.HasPrefix(line, "#") {
			fields := strings.Fields(line)
			if len(fields) == 3 && fields[1] == "objective" {
				objective, err = strconv.ParseFloat(fields[2], 64)
				if err != nil {
					return nil, 0, ErrBadSolutionFile
				}
				haveObjective = true
			}

			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, 0, ErrBadSolutionFile
		}
		idx, ok := index[fields[0]]
		if !ok || seen[idx] {
			return nil, 0, ErrBadSolutionFile
		}
		x, perr := strconv.ParseFloat(fields[1], 64)
		if perr != nil {
			return nil, 0, ErrBadSolutionFile
		}
		values[idx] = x
		seen[idx] = true
		matched++
	}
	if err = sc.Err(); err != nil {
		return nil, 0, err
	}
	if matched != p.NumVars() {
		return nil, 0, ErrBadSolutionFile
	}

	if !haveObjective {
		objective = p.ObjectiveValue(values)
	}

	return values, objective, nil
}
