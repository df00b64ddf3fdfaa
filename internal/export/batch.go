// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// BatchResult holds the outcome of a batch export run.
type BatchResult struct {
	Exported int
	Failed   int
}

// Total returns the total number of articles processed.
func (r BatchResult) Total() int {
	return r.Exported + r.Failed
}

// HasFailures reports whether any articles failed to export.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Extension returns the file extension for an export format, without the dot.
func Extension(format types.ExportFormat) string {
	switch format {
	case types.FormatMarkdown:
		return "md"
	case types.FormatHTML:
		return "html"
	case types.FormatPDF:
		return "pdf"
	}
	return string(format)
}

// TitleFromStem turns a file stem like "muscat-festival" into "Muscat
// Festival". The first rune of each word is uppercased; non-ASCII stems
// (Arabic file names) pass through unchanged.
func TitleFromStem(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// ExportFile exports a single Markdown article file into outDir in the given
// format. The document title is derived from the file name.
func ExportFile(r Renderer, path, outDir string, format types.ExportFormat, theme types.Theme) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	article := string(data)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := TitleFromStem(stem)
	out := filepath.Join(outDir, stem+"."+Extension(format))

	switch format {
	case types.FormatMarkdown:
		return writeArtifact(out, ToMarkdown(article))
	case types.FormatHTML:
		doc, err := ToHTML(article, title, theme, "", "")
		if err != nil {
			return err
		}
		return writeArtifact(out, doc)
	case types.FormatPDF:
		if r == nil {
			return &types.ExportUnavailableError{Renderer: defaultRendererBin}
		}
		return ToPDF(r, article, title, out, theme, "", "")
	}
	return &types.InvalidArgumentError{Field: "format", Value: string(format)}
}

func writeArtifact(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExportBatch exports every Markdown article in dir into outDir, printing
// per-file status to w and returning a summary. A failed article is recorded
// and skipped; the remaining articles still export. The renderer is only
// needed for PDF output.
func ExportBatch(r Renderer, dir, outDir string, format types.ExportFormat, theme types.Theme, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading article directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating %s: %w", outDir, err)
	}

	var result BatchResult
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		if err := ExportFile(r, filepath.Join(dir, entry.Name()), outDir, format, theme); err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", entry.Name(), err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "exported: %s\n", entry.Name())
		result.Exported++
	}

	fmt.Fprintf(w, "\nBatch summary: %d exported, %d failed (total: %d)\n",
		result.Exported, result.Failed, result.Total())
	return result, nil
}
