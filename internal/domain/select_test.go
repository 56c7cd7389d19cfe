package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/reindex/internal/model"
)

func TestIsNestedIndex(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		path     string
		expected bool
	}{
		{"nested ts index", "src", "src/types/core/index.ts", true},
		{"nested tsx index", "src", "src/components/Button/index.tsx", true},
		{"deeply nested index", "src", "src/a/b/c/index.ts", true},
		{"top-level index excluded", "src", "src/types/index.ts", false},
		{"root index excluded", "src", "src/index.ts", false},
		{"non-index file", "src", "src/types/core/types.ts", false},
		{"wrong extension", "src", "src/types/core/index.js", false},
		{"outside root", "src", "lib/types/core/index.ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNestedIndex(m.Path(filepath.FromSlash(tt.root)), m.Path(filepath.FromSlash(tt.path)))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsMoveCandidate(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"src/components/Button.tsx", true},
		{"src/utils/format.ts", true},
		{"src/components/index.tsx", false},
		{"src/utils/index.ts", false},
		{"src/components/Button.test.tsx", false},
		{"src/utils/format.test.ts", false},
		{"src/styles/app.css", false},
		{"src/README.md", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsMoveCandidate(m.Path(filepath.FromSlash(tt.path))), tt.path)
	}
}

func TestMoveTarget(t *testing.T) {
	assert.Equal(t,
		m.Path(filepath.FromSlash("src/components/Button/index.tsx")),
		MoveTarget(m.Path(filepath.FromSlash("src/components/Button.tsx"))))

	assert.Equal(t,
		m.Path(filepath.FromSlash("src/utils/format/index.ts")),
		MoveTarget(m.Path(filepath.FromSlash("src/utils/format.ts"))))
}

func TestStyleSibling(t *testing.T) {
	assert.Equal(t,
		m.Path(filepath.FromSlash("src/components/Button.css")),
		StyleSibling(m.Path(filepath.FromSlash("src/components/Button.tsx"))))
}

func TestMovedStyleTarget(t *testing.T) {
	style := m.Path(filepath.FromSlash("src/components/Button.css"))
	target := m.Path(filepath.FromSlash("src/components/Button/index.tsx"))

	assert.Equal(t,
		m.Path(filepath.FromSlash("src/components/Button/Button.css")),
		MovedStyleTarget(style, target))
}
