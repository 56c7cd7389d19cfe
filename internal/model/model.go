// Package model defines the data structures shared by the reindex workflow.
package model

import "time"

// Path represents a file system path.
type Path string

// Delta is the signed depth adjustment applied to relative import specifiers.
type Delta int

// Available Delta values.
const (
	// DeltaFix adds one parent-traversal level, compensating for a file
	// that moved one directory deeper.
	DeltaFix Delta = 1

	// DeltaRepair removes one parent-traversal level from imports that
	// were adjusted twice.
	DeltaRepair Delta = -1
)

// SpecifierMatch is a single relative import specifier located in source
// text. Prefix and Suffix hold the literal syntax surrounding the path
// (keyword, quote and parenthesis characters) and are preserved verbatim
// when the path is rewritten.
type SpecifierMatch struct {
	Prefix string
	Path   string
	Suffix string
}

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	File Path `yaml:"file"`
	// Target is the new location when the file was relocated, empty for
	// in-place rewrites.
	Target Path `yaml:"target,omitempty"`
	// Styles is the relocated stylesheet sibling, if one was moved.
	Styles Path `yaml:"styles,omitempty"`
	// Changed reports whether at least one specifier was adjusted.
	Changed bool `yaml:"changed"`
	// Specifiers counts the in-scope relative specifiers found.
	Specifiers int `yaml:"specifiers"`
	// Diff is a preview of the rewrite, populated only for dry runs.
	Diff string `yaml:"-"`
	// Error records a per-file failure (git command failures during a
	// move). Empty on success.
	Error string `yaml:"error,omitempty"`
}

// RunReport summarizes one invocation of a rewrite or move pass.
type RunReport struct {
	Command   string       `yaml:"command"`
	Root      Path         `yaml:"root"`
	Delta     Delta        `yaml:"delta"`
	StartedAt time.Time    `yaml:"started_at"`
	Files     []FileResult `yaml:"files"`
	Changed   int          `yaml:"changed"`
	Errors    int          `yaml:"errors"`
}
