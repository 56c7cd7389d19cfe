package domain

import (
	"bytes"
	"regexp"

	m "github.com/mouse-blink/reindex/internal/model"
)

// Rewrite applies the depth delta to every in-scope relative specifier in
// content. It returns the rewritten content and whether at least one
// specifier changed. Every byte outside matched specifier paths is left
// identical; quote and parenthesis characters are preserved verbatim.
//
// Persisting the result is the caller's responsibility and should happen
// only when changed is true, so untouched files keep their timestamps.
func Rewrite(content []byte, delta m.Delta) ([]byte, bool) {
	out := rewriteSpecifiers(content, fromSpecifier, delta)
	out = rewriteSpecifiers(out, importSpecifier, delta)

	return out, !bytes.Equal(out, content)
}

func rewriteSpecifiers(content []byte, re *regexp.Regexp, delta m.Delta) []byte {
	return re.ReplaceAllFunc(content, func(match []byte) []byte {
		sub := re.FindSubmatch(match)

		path := string(sub[2])
		if !IsRelative(path) {
			return match
		}

		adjusted := AdjustDepth(path, delta)
		if adjusted == path {
			return match
		}

		out := make([]byte, 0, len(sub[1])+len(adjusted)+len(sub[3]))
		out = append(out, sub[1]...)
		out = append(out, adjusted...)
		out = append(out, sub[3]...)

		return out
	})
}
