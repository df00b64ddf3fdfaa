// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// BatchFile is the on-disk representation of a batch run: the event list
// and options going in, the per-event results and summary coming out. A
// saved batch can be re-run later without retyping the event list.
type BatchFile struct {
	Events     []string     `yaml:"events"`
	OutputType string       `yaml:"output_type,omitempty"`
	Language   string       `yaml:"language,omitempty"`
	Style      string       `yaml:"style,omitempty"`
	Context    string       `yaml:"context,omitempty"`
	Results    []BatchItem  `yaml:"results,omitempty"`
	Summary    BatchOutcome `yaml:"summary,omitempty"`
}

// BatchOutcome stores result statistics and a timestamp.
type BatchOutcome struct {
	Succeeded int       `yaml:"succeeded"`
	Failed    int       `yaml:"failed"`
	Model     string    `yaml:"model,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReadBatchFile loads a batch event list from a YAML file.
func ReadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if len(bf.Events) == 0 {
		return nil, fmt.Errorf("batch file %s lists no events", path)
	}
	return &bf, nil
}

// WriteBatchFile saves the batch inputs, results, and summary to a YAML file.
func WriteBatchFile(path string, bf *BatchFile, items []BatchItem, summary BatchSummary, model string) error {
	bf.Results = items
	bf.Summary = BatchOutcome{
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
		Model:     model,
		Timestamp: time.Now(),
	}

	data, err := yaml.Marshal(bf)
	if err != nil {
		return fmt.Errorf("marshaling batch file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ToRequest converts the stored options into a base GenerationRequest,
// validating the enums.
func (bf *BatchFile) ToRequest() (types.GenerationRequest, types.ContentKind, error) {
	req := types.GenerationRequest{Context: bf.Context}

	lang := bf.Language
	if lang == "" {
		lang = string(types.LangEnglish)
	}
	language, err := types.ParseLanguage(lang)
	if err != nil {
		return req, "", err
	}
	req.Language = language

	styleStr := bf.Style
	if styleStr == "" {
		styleStr = string(types.StyleFormal)
	}
	style, err := types.ParseStyle(styleStr)
	if err != nil {
		return req, "", err
	}
	req.Style = style

	kindStr := bf.OutputType
	if kindStr == "" {
		kindStr = string(types.KindArticle)
	}
	kind, err := types.ParseContentKind(kindStr)
	if err != nil {
		return req, "", err
	}

	return req, kind, nil
}
