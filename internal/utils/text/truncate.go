// Package text provides rune-aware display truncation. Press-release
// titles are Indonesian prose and occasionally carry non-ASCII
// punctuation, so length math here is in runes, not bytes.
package text

// Ellipsis is appended to truncated display strings.
const Ellipsis = "..."

// Truncate shortens s to at most max runes, appending an ellipsis marker when
// anything was cut. Strings at or under the limit come back unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}
