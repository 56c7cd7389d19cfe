package domain

import (
	"regexp"
	"sort"

	m "github.com/mouse-blink/reindex/internal/model"
)

// The two surface forms an import specifier takes in TypeScript source:
// a module binding (import or re-export) and a dynamic import() reference.
// Both single and double quotes are recognized. The path itself is captured
// loosely; scope filtering happens against the captured path so that bare
// package names and absolute paths pass through untouched.
var (
	fromSpecifier   = regexp.MustCompile(`(from\s+['"])([^'"]+)(['"])`)
	importSpecifier = regexp.MustCompile(`(import\(['"])([^'"]+)(['"]\))`)
)

var specifierPatterns = []*regexp.Regexp{fromSpecifier, importSpecifier}

// FindSpecifiers returns every in-scope relative import specifier in
// content, in order of appearance. Each match carries the literal prefix
// and suffix syntax so callers can reconstruct the surrounding text
// byte-for-byte. Multiple specifiers on one line are all reported.
func FindSpecifiers(content []byte) []m.SpecifierMatch {
	type located struct {
		offset int
		match  m.SpecifierMatch
	}

	var found []located

	for _, re := range specifierPatterns {
		for _, idx := range re.FindAllSubmatchIndex(content, -1) {
			path := string(content[idx[4]:idx[5]])
			if !IsRelative(path) {
				continue
			}

			found = append(found, located{
				offset: idx[0],
				match: m.SpecifierMatch{
					Prefix: string(content[idx[2]:idx[3]]),
					Path:   path,
					Suffix: string(content[idx[6]:idx[7]]),
				},
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	matches := make([]m.SpecifierMatch, 0, len(found))
	for _, f := range found {
		matches = append(matches, f.match)
	}

	return matches
}
