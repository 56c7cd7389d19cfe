package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/reindex/internal/model"
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	// Save writes the report into dir as a timestamped YAML file. A saved
	// report is the record of what a pass touched, kept for
	// review after the run.
	Save(dir m.Path, report m.RunReport) error

	// Load reads a previously saved report file.
	Load(path m.Path) (m.RunReport, error)
}

// LocalReportStore stores reports as YAML files on disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// Save writes the report into dir as a timestamped YAML file.
func (rs *LocalReportStore) Save(dir m.Path, report m.RunReport) error {
	if dir == "" {
		return nil
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	name := fmt.Sprintf("%s-%s.yaml", report.Command, report.StartedAt.Format("20060102-150405"))

	return os.WriteFile(filepath.Join(string(dir), name), data, 0o600)
}

// Load reads a previously saved report file.
func (rs *LocalReportStore) Load(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, err
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
