// Package qdimacs reads and writes the QDIMACS prenex-CNF exchange format
// (spec.md §6): a "p cnf" header, alternating quantifier blocks, comment
// lines that may carry embedded "--name[=value]" options, and a clause
// matrix terminated one clause per line by a literal 0.
package qdimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/qbfprep/internal/qbf"
)

// Parse reads a QDIMACS-formatted PCNF from r into a fresh Engine.
func Parse(r io.Reader) (*qbf.Engine, error) {
	return parse(r, "<input>")
}

// ParseFile opens path (transparently gunzipping a ".gz" suffix, matching
// the teacher's LoadDIMACS) and parses it.
func ParseFile(path string) (*qbf.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &qbf.ParseError{File: path, Msg: err.Error()}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, &qbf.ParseError{File: path, Msg: err.Error()}
		}
		defer gz.Close()
		r = gz
	}
	return parse(r, path)
}

func parse(r io.Reader, file string) (*qbf.Engine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var pendingComments []string
	var nVars int
	lineNo := 0
	headerFound := false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == 'c' {
			pendingComments = append(pendingComments, line)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "p" || fields[1] != "cnf" {
			return nil, &qbf.ParseError{File: file, Line: lineNo, Msg: "expected header \"p cnf nvars nclauses\""}
		}
		var err error
		if nVars, err = strconv.Atoi(fields[2]); err != nil {
			return nil, &qbf.ParseError{File: file, Line: lineNo, Msg: "bad variable count"}
		}
		if _, err = strconv.Atoi(fields[3]); err != nil {
			return nil, &qbf.ParseError{File: file, Line: lineNo, Msg: "bad clause count"}
		}
		headerFound = true
		break
	}
	if !headerFound {
		return nil, &qbf.ParseError{File: file, Line: lineNo, Msg: "missing header line"}
	}

	e := qbf.NewEngine(nVars)
	for _, c := range pendingComments {
		for _, oerr := range e.Opts.ParseEmbedded(c) {
			_ = oerr // option errors are warnings, never fatal (spec.md §7)
		}
	}

	declared := make(map[int]int, nVars)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == 'c' {
			e.Opts.ParseEmbedded(line)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "a", "e":
			if err := parseQuantifierBlock(e, fields, declared, file, lineNo); err != nil {
				return nil, err
			}
		default:
			lits, err := parseClauseLine(e, fields, declared, file, lineNo)
			if err != nil {
				return nil, err
			}
			e.AddClause(lits, "input")
		}
	}

	return e, nil
}

func parseQuantifierBlock(e *qbf.Engine, fields []string, declared map[int]int, file string, lineNo int) error {
	pol := qbf.Existential
	if fields[0] == "a" {
		pol = qbf.Universal
	}
	scope := e.AppendScope(pol)

	for _, tok := range fields[1:] {
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return &qbf.ParseError{File: file, Line: lineNo, Msg: fmt.Sprintf("bad variable index %q", tok)}
		}
		if idx == 0 {
			continue
		}
		if idx < 0 {
			return &qbf.ParseError{File: file, Line: lineNo, Msg: "negative variable index in quantifier block"}
		}
		if _, ok := declared[idx]; ok {
			return &qbf.ParseError{File: file, Line: lineNo, Msg: fmt.Sprintf("variable %d declared twice", idx)}
		}
		declared[idx] = e.DeclVar(scope)
	}
	return nil
}

func parseClauseLine(e *qbf.Engine, fields []string, declared map[int]int, file string, lineNo int) ([]qbf.Literal, error) {
	lits := make([]qbf.Literal, 0, len(fields))
	for _, tok := range fields {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &qbf.ParseError{File: file, Line: lineNo, Msg: fmt.Sprintf("bad literal %q", tok)}
		}
		if n == 0 {
			break
		}
		idx := n
		if idx < 0 {
			idx = -idx
		}
		id, ok := declared[idx]
		if !ok {
			id = e.DeclVar(e.ImplicitScope())
			declared[idx] = id
		}
		if n < 0 {
			lits = append(lits, qbf.NegativeLiteral(id))
		} else {
			lits = append(lits, qbf.PositiveLiteral(id))
		}
	}
	return lits, nil
}
