// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <event-name>",
	Short: "Generate a short encyclopedic summary for an event",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		req, err := requestFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Generating summary for '%s'...\n", req.EventName)
		content, err := gen.Summary(cmd.Context(), req)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		return writeOrPrint(output, content.Text)
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	summaryCmd.Flags().String("language", "en", "output language: en or ar")
	summaryCmd.Flags().String("style", "formal", "writing style: formal, casual, or detailed")
	summaryCmd.Flags().String("context", "", "additional context to ground the summary")
	summaryCmd.Flags().Int("max-length", 0, "maximum summary length in words (default 200)")
	summaryCmd.Flags().String("output", "", "write the summary to this file instead of stdout")

	rootCmd.AddCommand(summaryCmd)
}
