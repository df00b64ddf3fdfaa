// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoboxCmd = &cobra.Command{
	Use:   "infobox <event-name>",
	Short: "Generate Wikipedia-style infobox data for an event",
	Long: `Infobox generates structured key-value data for a Wikipedia-style infobox:
name, type, location, frequency, duration, first occurrence, organizer, and
attendance. Unknown fields are reported as "Unknown" rather than invented.`,
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

		fmt.Printf("Generating infobox for '%s'...\n", req.EventName)
		content, err := gen.Infobox(cmd.Context(), req)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		return writeOrPrint(output, content.Text)
	},
}

func init() {
	infoboxCmd.Flags().String("language", "en", "output language: en or ar")
	infoboxCmd.Flags().String("context", "", "additional context to ground the infobox")
	infoboxCmd.Flags().String("output", "", "write the infobox to this file instead of stdout")

	rootCmd.AddCommand(infoboxCmd)
}
