// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodi112/oman-wiki-engine/internal/export"
)

var fullCmd = &cobra.Command{
	Use:   "full <event-name>",
	Short: "Generate a complete article package: infobox, summary, and article",
	Long: `Full generates the complete content package for an event: the infobox,
the summary, and the article, in that order. The three pieces are composed
into a single Markdown document. The first generation failure aborts the
package.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		req, err := requestFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Generating full package for '%s'...\n", req.EventName)
		full, err := gen.Full(cmd.Context(), req)
		if err != nil {
			return err
		}

		doc := export.ComposeMarkdown(full.Article.Text, req.EventName, full.Infobox.Text, full.Summary.Text)

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			dir, _ := cmd.Flags().GetString("output-dir")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			output = filepath.Join(dir, slugify(req.EventName)+".md")
		}

		return writeOrPrint(output, doc)
	},
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns an event name into a safe lowercase file stem.
func slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "event"
	}
	return s
}

func init() {
	fullCmd.Flags().String("language", "en", "output language: en or ar")
	fullCmd.Flags().String("style", "formal", "writing style: formal, casual, or detailed")
	fullCmd.Flags().String("context", "", "additional context to ground the package")
	fullCmd.Flags().String("output", "", "write the composed document to this file")
	fullCmd.Flags().String("output-dir", "output/articles", "directory for the composed document when --output is not set")

	rootCmd.AddCommand(fullCmd)
}
