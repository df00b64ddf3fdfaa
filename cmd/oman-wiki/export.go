// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moodi112/oman-wiki-engine/internal/export"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <article-file-or-dir>",
	Short: "Export articles to Markdown, HTML, or PDF",
	Long: `Export converts a Markdown article into the requested format. Markdown
output is canonicalized and safe to re-export. HTML output embeds one of
three themes: wikipedia, modern, or minimal. PDF output requires the
wkhtmltopdf binary on PATH; Markdown and HTML exports work without it.

Given a directory, export processes every Markdown article in it. A failed
article is recorded and skipped; the remaining articles still export.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatStr, _ := cmd.Flags().GetString("format")
		format, err := types.ParseExportFormat(formatStr)
		if err != nil {
			return err
		}

		themeStr, _ := cmd.Flags().GetString("theme")
		if themeStr == "" {
			themeStr = viper.GetString("export.theme")
		}
		theme, err := types.ParseTheme(themeStr)
		if err != nil {
			return err
		}

		var renderer export.Renderer
		if format == types.FormatPDF {
			bin, _ := cmd.Flags().GetString("renderer")
			if renderer, err = export.NewPDFRenderer(bin); err != nil {
				return err
			}
		}

		info, err := os.Stat(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		if info.IsDir() {
			return exportDir(cmd, args[0], renderer, format, theme)
		}
		return exportOne(cmd, args[0], renderer, format, theme)
	},
}

// exportDir batch-exports every Markdown article in dir.
func exportDir(cmd *cobra.Command, dir string, renderer export.Renderer, format types.ExportFormat, theme types.Theme) error {
	outDir, _ := cmd.Flags().GetString("output")
	if outDir == "" {
		outDir = viper.GetString("export.output_dir")
	}

	result, err := export.ExportBatch(renderer, dir, outDir, format, theme, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d articles failed", result.Failed, result.Total())
	}
	return nil
}

// exportOne exports a single article file.
func exportOne(cmd *cobra.Command, path string, renderer export.Renderer, format types.ExportFormat, theme types.Theme) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	article := string(data)

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		title = export.TitleFromStem(stem)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		dir := viper.GetString("export.output_dir")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
		output = filepath.Join(dir, slugify(title)+"."+export.Extension(format))
	}

	switch format {
	case types.FormatMarkdown:
		if err := os.WriteFile(output, []byte(export.ToMarkdown(article)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
	case types.FormatHTML:
		doc, err := export.ToHTML(article, title, theme, "", "")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
	case types.FormatPDF:
		if err := export.ToPDF(renderer, article, title, output, theme, "", ""); err != nil {
			return err
		}
	}

	fmt.Printf("Exported to: %s\n", output)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "html", "export format: markdown, html, or pdf")
	exportCmd.Flags().String("theme", "", "HTML theme: wikipedia, modern, or minimal")
	exportCmd.Flags().String("title", "", "document title (default: derived from the file name)")
	exportCmd.Flags().String("output", "", "output file path (or directory for batch export)")
	exportCmd.Flags().String("renderer", "", "PDF renderer binary (default: wkhtmltopdf)")

	rootCmd.AddCommand(exportCmd)
}
