// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes an analysis result together with the analyzed
// text into a portable document. The engine itself only guarantees a
// serializable view; the file format here is a presentation concern.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/originality/pkg/types"
)

// Format selects the report serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the exported view of one analysis.
type Document struct {
	AnalyzedAt time.Time            `json:"analyzed_at" yaml:"analyzed_at"`
	Text       string               `json:"text" yaml:"text"`
	Analysis   types.AnalysisResult `json:"analysis" yaml:"analysis"`

	// Quality is included only when the quality assessor was run
	// explicitly; the default analysis path leaves it nil.
	Quality *types.WritingQuality `json:"quality,omitempty" yaml:"quality,omitempty"`
}

// Write serializes doc to path in the given format.
func Write(path string, format Format, doc Document) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case FormatJSON, "":
		data, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	return os.WriteFile(path, data, 0o644)
}
