package domain

import (
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/reindex/internal/model"
)

const styleExt = ".css"

var indexNames = map[string]struct{}{
	"index.ts":  {},
	"index.tsx": {},
}

// IsNestedIndex reports whether path is an index.ts or index.tsx file
// nested more than one directory level below root. Top-level index files
// (src/types/index.ts) were never moved and are excluded; only nested
// ones (src/types/core/index.ts) qualify.
func IsNestedIndex(root, path m.Path) bool {
	if _, ok := indexNames[filepath.Base(string(path))]; !ok {
		return false
	}

	rel, err := filepath.Rel(filepath.Clean(string(root)), string(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}

	// rel is dir/.../index.ts; require at least one directory between the
	// root and the index file's own directory.
	return strings.Count(rel, string(filepath.Separator)) >= 2
}

// IsMoveCandidate reports whether path is a TypeScript file eligible for
// relocation into a nested index directory: .ts or .tsx, not already an
// index file, and not a test file.
func IsMoveCandidate(path m.Path) bool {
	base := filepath.Base(string(path))

	ext := filepath.Ext(base)
	if ext != ".ts" && ext != ".tsx" {
		return false
	}

	if _, ok := indexNames[base]; ok {
		return false
	}

	return !strings.HasSuffix(base, ".test.ts") && !strings.HasSuffix(base, ".test.tsx")
}

// MoveTarget computes the nested location for a move candidate:
// dir/Widget.tsx becomes dir/Widget/index.tsx.
func MoveTarget(path m.Path) m.Path {
	dir := filepath.Dir(string(path))
	base := filepath.Base(string(path))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return m.Path(filepath.Join(dir, stem, "index"+ext))
}

// StyleSibling returns the path of the stylesheet that accompanies a move
// candidate (dir/Widget.css for dir/Widget.tsx). The file may not exist;
// callers check before moving it.
func StyleSibling(path m.Path) m.Path {
	dir := filepath.Dir(string(path))
	base := filepath.Base(string(path))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return m.Path(filepath.Join(dir, stem+styleExt))
}

// MovedStyleTarget returns where a stylesheet sibling lands after its
// component moves: the nested directory, keeping its own name.
func MovedStyleTarget(style, target m.Path) m.Path {
	return m.Path(filepath.Join(filepath.Dir(string(target)), filepath.Base(string(style))))
}
