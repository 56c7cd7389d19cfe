package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mouse-blink/reindex/internal/adapter"
	"github.com/mouse-blink/reindex/internal/controller"
	m "github.com/mouse-blink/reindex/internal/model"
)

// PassArgs configures a rewrite pass over the tree.
type PassArgs struct {
	// Root is the directory to scan for nested index files.
	Root m.Path
	// Files, when non-empty, is an explicit list of files to process,
	// bypassing the nested-index scan entirely.
	Files []m.Path
	// DryRun computes rewrites and shows diffs without writing anything.
	DryRun bool
	// Reports is the directory where the run report is stored.
	Reports m.Path
}

// MoveArgs configures a full move-and-rewrite pass.
type MoveArgs struct {
	PassArgs
}

// ListArgs configures a candidate listing.
type ListArgs struct {
	Root  m.Path
	Files []m.Path
}

// Workflow defines the refactoring operations exposed by the CLI.
type Workflow interface {
	// Fix adds one parent-traversal level to every relative specifier in
	// files that were moved one directory deeper.
	Fix(args PassArgs) error
	// Repair removes one parent-traversal level from files whose imports
	// were adjusted twice.
	Repair(args PassArgs) error
	// Move relocates non-index TypeScript files into nested index
	// directories, rewriting their imports and staging the rename in git.
	Move(args MoveArgs) error
	// List prints the fix candidates with their specifier counts without
	// touching anything.
	List(args ListArgs) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	git     adapter.GitAdapter
	reports adapter.ReportStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, git adapter.GitAdapter, reports adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		fs:      fs,
		git:     git,
		reports: reports,
		ui:      ui,
	}
}

func (w *workflow) Fix(args PassArgs) error {
	return w.rewritePass("fix", "Fixing import paths after refactoring", m.DeltaFix, args)
}

func (w *workflow) Repair(args PassArgs) error {
	return w.rewritePass("repair", "Fixing over-corrected import paths", m.DeltaRepair, args)
}

// rewritePass runs one sequential read-transform-write pass over the
// selected files. I/O errors abort the whole run; files are only written
// back when at least one specifier actually changed.
func (w *workflow) rewritePass(command, title string, delta m.Delta, args PassArgs) error {
	files, err := w.fixCandidates(args.Root, args.Files)
	if err != nil {
		return err
	}

	if err := w.ui.Start(title, len(files)); err != nil {
		return err
	}
	defer w.ui.Close()

	report := m.RunReport{
		Command:   command,
		Root:      args.Root,
		Delta:     delta,
		StartedAt: time.Now(),
	}

	for _, file := range files {
		result, err := w.rewriteFile(file, delta, args.DryRun)
		if err != nil {
			return err
		}

		if result.Changed {
			report.Changed++
		}

		report.Files = append(report.Files, result)
		w.ui.FileDone(result)
	}

	if err := w.ui.Summary(report); err != nil {
		return err
	}

	if args.DryRun {
		return nil
	}

	return w.reports.Save(args.Reports, report)
}

func (w *workflow) rewriteFile(file m.Path, delta m.Delta, dryRun bool) (m.FileResult, error) {
	content, err := w.fs.ReadFile(file)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", file, err)
	}

	rewritten, changed := Rewrite(content, delta)

	result := m.FileResult{
		File:       file,
		Changed:    changed,
		Specifiers: len(FindSpecifiers(content)),
	}

	if !changed {
		return result, nil
	}

	if dryRun {
		result.Diff = UnifiedDiff(string(content), string(rewritten))

		return result, nil
	}

	if err := w.fs.WriteFile(file, rewritten, 0o644); err != nil {
		return m.FileResult{}, fmt.Errorf("write %s: %w", file, err)
	}

	return result, nil
}

func (w *workflow) Move(args MoveArgs) error {
	files, err := w.moveCandidates(args.Root, args.Files)
	if err != nil {
		return err
	}

	if err := w.ui.Start("Complete index-only refactoring", len(files)); err != nil {
		return err
	}
	defer w.ui.Close()

	report := m.RunReport{
		Command:   "move",
		Root:      args.Root,
		Delta:     m.DeltaFix,
		StartedAt: time.Now(),
	}

	for _, file := range files {
		result, err := w.moveFile(file, args.DryRun)
		if err != nil {
			return err
		}

		if result.Error == "" {
			report.Changed++
		} else {
			report.Errors++
		}

		report.Files = append(report.Files, result)
		w.ui.FileDone(result)
	}

	if err := w.ui.Summary(report); err != nil {
		return err
	}

	if args.DryRun {
		return nil
	}

	return w.reports.Save(args.Reports, report)
}

// moveFile relocates one file into its nested index directory. Filesystem
// errors abort the run; git failures are recorded per file so the rest of
// the batch still gets processed.
func (w *workflow) moveFile(file m.Path, dryRun bool) (m.FileResult, error) {
	content, err := w.fs.ReadFile(file)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", file, err)
	}

	rewritten, changed := Rewrite(content, m.DeltaFix)
	target := MoveTarget(file)

	result := m.FileResult{
		File:       file,
		Target:     target,
		Changed:    changed,
		Specifiers: len(FindSpecifiers(content)),
	}

	if dryRun {
		if changed {
			result.Diff = UnifiedDiff(string(content), string(rewritten))
		}

		return result, nil
	}

	if err := w.fs.MkdirAll(m.Path(filepath.Dir(string(target))), 0o755); err != nil {
		return m.FileResult{}, fmt.Errorf("mkdir for %s: %w", target, err)
	}

	if err := w.fs.WriteFile(target, rewritten, 0o644); err != nil {
		return m.FileResult{}, fmt.Errorf("write %s: %w", target, err)
	}

	if err := w.git.Add(target); err != nil {
		result.Error = err.Error()

		return result, nil
	}

	if err := w.git.Remove(file); err != nil {
		result.Error = err.Error()

		return result, nil
	}

	style := StyleSibling(file)
	if w.fs.Exists(style) {
		styleTarget := MovedStyleTarget(style, target)

		if err := w.git.Move(style, styleTarget); err != nil {
			result.Error = err.Error()
		} else {
			result.Styles = styleTarget
		}
	}

	return result, nil
}

func (w *workflow) List(args ListArgs) error {
	files, err := w.fixCandidates(args.Root, args.Files)
	if err != nil {
		return err
	}

	results := make([]m.FileResult, 0, len(files))

	for _, file := range files {
		content, err := w.fs.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		_, changed := Rewrite(content, m.DeltaFix)

		results = append(results, m.FileResult{
			File:       file,
			Changed:    changed,
			Specifiers: len(FindSpecifiers(content)),
		})
	}

	return w.ui.Candidates(results)
}

// fixCandidates returns the explicit file list when one was given,
// otherwise scans the tree for nested index files.
func (w *workflow) fixCandidates(root m.Path, explicit []m.Path) ([]m.Path, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	return w.scan(root, func(path m.Path) bool { return IsNestedIndex(root, path) })
}

func (w *workflow) moveCandidates(root m.Path, explicit []m.Path) ([]m.Path, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	return w.scan(root, IsMoveCandidate)
}

func (w *workflow) scan(root m.Path, qualifies func(m.Path) bool) ([]m.Path, error) {
	var files []m.Path

	err := w.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			base := filepath.Base(path)
			if base == ".git" || base == "node_modules" {
				return filepath.SkipDir
			}

			return nil
		}

		if qualifies(m.Path(path)) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}
