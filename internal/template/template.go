package template

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrEmptyFormat         = errors.New("empty format")
	ErrMissingCounterValue = errors.New("missing counter value")
	ErrInvalidCounterValue = errors.New("invalid counter value")
	ErrInvalidCharacters   = errors.New("invalid characters")
)

// ValidationError ties a validation failure to the marker that caused it.
type ValidationError struct {
	Marker string
	Err    error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingCounterValue):
		return fmt.Sprintf("Marker %s must contain an integer value.", e.Marker)
	case errors.Is(e.Err, ErrInvalidCounterValue):
		return fmt.Sprintf("Marker %s must contain only an integer.", e.Marker)
	case errors.Is(e.Err, ErrInvalidCharacters):
		return "Format contains invalid symbols."
	case errors.Is(e.Err, ErrEmptyFormat):
		return "Format can't be empty."
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Template is a validated format ready for expansion.
type Template struct {
	raw    string
	tokens []Token
}

// Parse tokenizes and validates a format. Validation stops at the first
// failing check: empty format, empty counter body, non-integer counter body,
// then illegal characters in the literal text between markers.
func Parse(format string) (*Template, error) {
	if format == "" {
		return nil, &ValidationError{Err: ErrEmptyFormat}
	}

	tokens := Tokenize(format)

	for _, kind := range []Kind{Increment, Decrement} {
		for _, tok := range tokens {
			if tok.Kind == kind && tok.Body == "" {
				return nil, &ValidationError{Marker: tok.Marker(), Err: ErrMissingCounterValue}
			}
		}
	}

	for i, tok := range tokens {
		if tok.Kind != Increment && tok.Kind != Decrement {
			continue
		}
		n, err := parseCounter(tok.Body)
		if err != nil {
			return nil, &ValidationError{Marker: counterPlaceholder(tok.Kind), Err: ErrInvalidCounterValue}
		}
		tokens[i].Value = n
	}

	for _, tok := range tokens {
		if tok.Kind != Literal {
			continue
		}
		if strings.IndexFunc(tok.Body, isIllegal) >= 0 {
			return nil, &ValidationError{Err: ErrInvalidCharacters}
		}
	}

	return &Template{raw: format, tokens: tokens}, nil
}

// MustParse is like Parse but panics on an invalid format.
func MustParse(format string) *Template {
	t, err := Parse(format)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the format the template was parsed from
func (t *Template) String() string {
	return t.raw
}

// Tokens returns a copy of the parsed token sequence
func (t *Template) Tokens() []Token {
	return append([]Token(nil), t.tokens...)
}

// Expand builds the new name for a file at the given 0-based position in the
// selection. Only the base name of path is used.
func (t *Template) Expand(path string, position int) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	var sb strings.Builder
	for _, tok := range t.tokens {
		switch tok.Kind {
		case Literal:
			sb.WriteString(tok.Body)
		case OriginalName:
			sb.WriteString(stem)
		case OriginalExtension:
			sb.WriteString(ext)
		case CustomExtension:
			if tok.Body != "" && !strings.HasPrefix(tok.Body, ".") {
				sb.WriteByte('.')
			}
			sb.WriteString(tok.Body)
		case Increment:
			sb.WriteString(counter(tok.Value, position))
		case Decrement:
			sb.WriteString(counter(tok.Value, -position))
		}
	}
	return sb.String()
}

// ExpandAll expands the template for each file, using its index as position
func (t *Template) ExpandAll(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = t.Expand(p, i)
	}
	return names
}

// Expand validates format and expands it for every file.
func Expand(format string, paths []string) ([]string, error) {
	t, err := Parse(format)
	if err != nil {
		return nil, err
	}
	return t.ExpandAll(paths), nil
}

// parseCounter accepts an optional leading minus followed by digits
func parseCounter(body string) (int, error) {
	digits := strings.TrimPrefix(body, "-")
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCounterValue, body)
	}
	return strconv.Atoi(body)
}

// counter renders base+delta in decimal. Sums past the int range are
// computed exactly instead of wrapping.
func counter(base, delta int) string {
	sum := base + delta
	if (delta > 0 && sum < base) || (delta < 0 && sum > base) {
		return new(big.Int).Add(big.NewInt(int64(base)), big.NewInt(int64(delta))).String()
	}
	return strconv.Itoa(sum)
}

func counterPlaceholder(k Kind) string {
	if k == Decrement {
		return "*D{N}*"
	}
	return "*I{N}*"
}
