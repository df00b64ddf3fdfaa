// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var articleCmd = &cobra.Command{
	Use:   "article <event-name>",
	Short: "Generate a full Wikipedia-style article for an event",
	Long: `Article generates a complete Wikipedia-style article about an Oman event,
with an introduction, history, activities, significance, and a references
section. Output language, writing style, and extra context are configurable.`,
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

		fmt.Printf("Generating article for '%s'...\n", req.EventName)
		content, err := gen.Article(cmd.Context(), req)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		return writeOrPrint(output, content.Text)
	},
}

func init() {
	articleCmd.Flags().String("language", "en", "output language: en or ar")
	articleCmd.Flags().String("style", "formal", "writing style: formal, casual, or detailed")
	articleCmd.Flags().String("context", "", "additional context to ground the article")
	articleCmd.Flags().String("output", "", "write the article to this file instead of stdout")

	rootCmd.AddCommand(articleCmd)
}
