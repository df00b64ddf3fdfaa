// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodi112/oman-wiki-engine/internal/generate"
)

var batchCmd = &cobra.Command{
	Use:   "batch <batch-file>",
	Short: "Generate content for a list of events from a YAML batch file",
	Long: `Batch reads a YAML file listing events and generation options, generates
content for each event in order, and writes the per-event results and a
summary back into the file. A failed event is recorded and skipped; the
remaining events still run.

Batch file format:

  events:
    - Muscat Festival
    - Khareef Season
  output_type: article   # article, summary, infobox, or image_prompt
  language: en
  style: formal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bf, err := generate.ReadBatchFile(args[0])
		if err != nil {
			return err
		}

		base, kind, err := bf.ToRequest()
		if err != nil {
			return err
		}

		gen, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Batch generating %s for %d events...\n", kind, len(bf.Events))
		items, summary := gen.Batch(cmd.Context(), bf.Events, kind, base, os.Stdout)

		resultPath, _ := cmd.Flags().GetString("results")
		if resultPath == "" {
			resultPath = args[0]
		}
		if err := generate.WriteBatchFile(resultPath, bf, items, summary, gen.Model()); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", resultPath)

		if summary.HasFailures() {
			return fmt.Errorf("%d of %d events failed", summary.Failed, summary.Total())
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().String("results", "", "write results to this file instead of updating the batch file in place")

	rootCmd.AddCommand(batchCmd)
}
