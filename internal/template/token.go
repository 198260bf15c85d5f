package template

import "strings"

// Kind identifies a format token
type Kind int

const (
	Literal Kind = iota
	OriginalName
	OriginalExtension
	CustomExtension
	Increment
	Decrement
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case OriginalName:
		return "original-name"
	case OriginalExtension:
		return "original-extension"
	case CustomExtension:
		return "custom-extension"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// Token is one element of a format. Body holds the literal text or the raw
// marker body between braces; Value is the parsed counter base.
type Token struct {
	Kind  Kind
	Body  string
	Value int
}

// Marker renders the token as it appears in a format
func (t Token) Marker() string {
	switch t.Kind {
	case OriginalName:
		return "*O*"
	case OriginalExtension:
		return "*E*"
	case CustomExtension:
		return "*E{" + t.Body + "}*"
	case Increment:
		return "*I{" + t.Body + "}*"
	case Decrement:
		return "*D{" + t.Body + "}*"
	default:
		return t.Body
	}
}

var bodyKinds = map[byte]Kind{
	'E': CustomExtension,
	'I': Increment,
	'D': Decrement,
}

// Tokenize splits a format into markers and literal runs in a single
// left-to-right pass. Text that only looks like the start of a marker is
// kept as literal.
func Tokenize(format string) []Token {
	var tokens []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Body: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		tok, n := matchMarker(format[i:])
		if n == 0 {
			lit.WriteByte(format[i])
			i++
			continue
		}
		flush()
		tokens = append(tokens, tok)
		i += n
	}
	flush()

	return tokens
}

// matchMarker returns the marker at the start of s and its length, or a zero
// length when s does not start with a marker.
func matchMarker(s string) (Token, int) {
	if len(s) < 3 || s[0] != '*' {
		return Token{}, 0
	}

	switch {
	case s[1] == 'O' && s[2] == '*':
		return Token{Kind: OriginalName}, 3
	case s[1] == 'E' && s[2] == '*':
		return Token{Kind: OriginalExtension}, 3
	}

	kind, ok := bodyKinds[s[1]]
	if !ok || s[2] != '{' {
		return Token{}, 0
	}
	end := strings.IndexByte(s[3:], '}')
	if end < 0 {
		return Token{}, 0
	}
	closing := 3 + end
	if closing+1 >= len(s) || s[closing+1] != '*' {
		return Token{}, 0
	}
	return Token{Kind: kind, Body: s[3:closing]}, closing + 2
}
