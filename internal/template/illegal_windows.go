//go:build windows

package template

// isIllegal reports characters Windows rejects in file names and paths.
func isIllegal(r rune) bool {
	if r < 32 {
		return true
	}
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return true
	}
	return false
}
