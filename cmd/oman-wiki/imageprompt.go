// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var imagePromptCmd = &cobra.Command{
	Use:   "image-prompt <event-name>",
	Short: "Generate a text-to-image prompt depicting an event",
	Long: `Image-prompt produces a detailed prompt suitable for a text-to-image model,
describing a representative scene from the event with setting, atmosphere,
and cultural detail.`,
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

		fmt.Printf("Generating image prompt for '%s'...\n", req.EventName)
		content, err := gen.ImagePrompt(cmd.Context(), req)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		return writeOrPrint(output, content.Text)
	},
}

func init() {
	imagePromptCmd.Flags().String("context", "", "additional context to ground the prompt")
	imagePromptCmd.Flags().String("output", "", "write the prompt to this file instead of stdout")

	rootCmd.AddCommand(imagePromptCmd)
}
