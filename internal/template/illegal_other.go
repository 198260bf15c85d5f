//go:build !windows

package template

// isIllegal reports characters that cannot appear in a single path element.
func isIllegal(r rune) bool {
	return r == 0 || r == '/'
}
