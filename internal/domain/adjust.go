// Package domain contains the core import-rewriting workflow and logic.
package domain

import (
	"strings"

	m "github.com/mouse-blink/reindex/internal/model"
)

const (
	currentPrefix = "./"
	parentPrefix  = "../"
)

// IsRelative reports whether path is an in-scope relative specifier, one
// starting with "./" or "../". Bare package names and absolute paths are
// never rewritten.
func IsRelative(path string) bool {
	return strings.HasPrefix(path, currentPrefix) || strings.HasPrefix(path, parentPrefix)
}

// Depth counts the leading "../" segments of a relative specifier before
// the first non-".." segment.
func Depth(path string) int {
	count := 0

	for strings.HasPrefix(path, parentPrefix) {
		count++
		path = path[len(parentPrefix):]
	}

	return count
}

// AdjustDepth applies a signed depth delta to the leading segments of a
// relative import specifier. The adjustment is purely syntactic: it never
// resolves the remainder of the path or checks that the result exists.
//
// A positive delta prepends parent-traversal segments ("./x" becomes
// "../x", "../x" becomes "../../x"). A negative delta removes one leading
// "../" segment per level, collapsing the last one to the "./" form, and
// is a no-op once none remain. Paths without a relative prefix are
// returned unchanged.
func AdjustDepth(path string, delta m.Delta) string {
	switch {
	case delta > 0:
		for range int(delta) {
			path = deeper(path)
		}
	case delta < 0:
		for range int(-delta) {
			path = shallower(path)
		}
	}

	return path
}

func deeper(path string) string {
	switch {
	case strings.HasPrefix(path, currentPrefix):
		return parentPrefix + strings.TrimPrefix(path, currentPrefix)
	case strings.HasPrefix(path, parentPrefix):
		return parentPrefix + path
	default:
		return path
	}
}

func shallower(path string) string {
	switch Depth(path) {
	case 0:
		return path
	case 1:
		// The last parent segment collapses to the current-dir form so
		// the result is still a relative specifier and a +1 adjustment
		// round-trips exactly.
		return currentPrefix + strings.TrimPrefix(path, parentPrefix)
	default:
		return strings.TrimPrefix(path, parentPrefix)
	}
}
