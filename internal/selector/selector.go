package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptySelection     = errors.New("empty selection")
	ErrUnrecognizedClause = errors.New("unrecognized clause")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

// ClauseKind identifies the form of a selection clause
type ClauseKind int

const (
	All ClauseKind = iota
	Single
	Range
	PrefixCount
	SuffixCount
)

func (k ClauseKind) String() string {
	switch k {
	case All:
		return "all"
	case Single:
		return "single"
	case Range:
		return "range"
	case PrefixCount:
		return "prefix"
	case SuffixCount:
		return "suffix"
	default:
		return "unknown"
	}
}

// Clause is one parsed element of a selection expression.
// Start and End are 1-based positions as typed by the user; Count is used by
// PrefixCount and SuffixCount.
type Clause struct {
	Kind  ClauseKind
	Start int
	End   int
	Count int
}

// String renders the clause back in selection syntax
func (c Clause) String() string {
	switch c.Kind {
	case All:
		return "*"
	case Single:
		return strconv.Itoa(c.Start)
	case Range:
		return fmt.Sprintf("%d-%d", c.Start, c.End)
	case PrefixCount:
		return "+" + strconv.Itoa(c.Count)
	case SuffixCount:
		return "-" + strconv.Itoa(c.Count)
	default:
		return "?"
	}
}

// ClauseError reports a clause that matches none of the selection forms.
type ClauseError struct {
	Clause string
}

func (e *ClauseError) Error() string {
	if e.Clause == "" {
		return "Empty clause in selection."
	}
	return fmt.Sprintf("Unrecognized selection %q.", e.Clause)
}

func (e *ClauseError) Unwrap() error { return ErrUnrecognizedClause }

// IndexError reports a position outside the candidate list.
type IndexError struct {
	Clause string
	Len    int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("Index out of range in %q.", e.Clause)
	}
	return fmt.Sprintf("Index out of range in %q (files 1-%d).", e.Clause, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Parse splits a selection expression into clauses. A '*' anywhere in the
// expression selects everything and short-circuits clause parsing.
func Parse(expr string) ([]Clause, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptySelection
	}
	if strings.Contains(expr, "*") {
		return []Clause{{Kind: All}}, nil
	}

	var clauses []Clause
	for _, part := range strings.Split(expr, ",") {
		c, err := parseClause(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

func parseClause(part string) (Clause, error) {
	// Single
	if isDigits(part) {
		n, err := atoi(part)
		if err != nil {
			return Clause{}, err
		}
		return Clause{Kind: Single, Start: n, End: n}, nil
	}

	// Range: a-b
	if i := strings.Index(part, "-"); i > 0 {
		left := strings.TrimSpace(part[:i])
		right := strings.TrimSpace(part[i+1:])
		if isDigits(left) && isDigits(right) {
			start, err := atoi(left)
			if err != nil {
				return Clause{}, err
			}
			end, err := atoi(right)
			if err != nil {
				return Clause{}, err
			}
			return Clause{Kind: Range, Start: start, End: end}, nil
		}
	}

	// Prefix / suffix counts
	if len(part) > 1 && isDigits(part[1:]) {
		n, err := atoi(part[1:])
		if err != nil {
			return Clause{}, err
		}
		switch part[0] {
		case '+':
			return Clause{Kind: PrefixCount, Count: n}, nil
		case '-':
			return Clause{Kind: SuffixCount, Count: n}, nil
		}
	}

	return Clause{}, &ClauseError{Clause: part}
}

// Indices resolves the clause to 0-based positions in a list of n candidates.
func (c Clause) Indices(n int) ([]int, error) {
	var from, to int
	switch c.Kind {
	case All:
		from, to = 0, n-1
	case Single:
		from, to = c.Start-1, c.Start-1
	case Range:
		from, to = c.Start-1, c.End-1
		if from > to {
			from, to = to, from
		}
	case PrefixCount:
		from, to = 0, c.Count-1
	case SuffixCount:
		from, to = n-c.Count, n-1
	}

	// Empty prefix/suffix selects nothing
	if (c.Kind == PrefixCount || c.Kind == SuffixCount || c.Kind == All) && from > to {
		return nil, nil
	}
	if from < 0 || to >= n {
		return nil, &IndexError{Clause: c.String(), Len: n}
	}

	indices := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		indices = append(indices, i)
	}
	return indices, nil
}

// Resolve applies a selection expression to candidates. The result keeps the
// order in which positions were first selected and contains each position at
// most once. Any error discards the whole selection.
func Resolve[T any](candidates []T, expr string) ([]T, error) {
	clauses, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(candidates))
	var selected []T
	for _, c := range clauses {
		indices, err := c.Indices(len(candidates))
		if err != nil {
			return nil, err
		}
		for _, i := range indices {
			if seen[i] {
				continue
			}
			seen[i] = true
			selected = append(selected, candidates[i])
		}
	}
	return selected, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// atoi parses a run of digits; values too large for int are out of range
// for any candidate list.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &IndexError{Clause: s}
	}
	return n, nil
}
