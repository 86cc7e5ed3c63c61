// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package validate

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/wkcheung/cubereport/pkg/types"
)

// Report bundles the findings and summary statistics for one record
// sequence. It is what the check command prints and what the process
// command writes next to its output when validation is requested.
type Report struct {
	Problems []Problem `json:"problems" yaml:"problems"`
	Stats    Stats     `json:"stats" yaml:"stats"`
}

// NewReport checks and summarizes a record sequence.
func NewReport(records []types.Record, cfg types.ValidationConfig) Report {
	return Report{
		Problems: Check(records, cfg),
		Stats:    Summarize(records),
	}
}

// WriteYAML marshals the report to w.
func (r Report) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling validation report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the report as YAML to path.
func (r Report) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling validation report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
