// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodi112/oman-wiki-engine/internal/cite"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <article-file>",
	Short: "Extract and validate citations from an article",
	Long: `Citations scans an article's references section, extracts the individual
citation entries, and checks each against three heuristics: contains a year,
ends with terminal punctuation, and meets the minimum length. English and
Arabic reference headings are recognized.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		annotated := cite.AnnotateAll(cite.Extract(string(data)))

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(annotated)
		}

		if len(annotated) == 0 {
			fmt.Println("No citations found.")
			return nil
		}

		valid := 0
		for i, c := range annotated {
			mark := "INVALID"
			if c.Valid() {
				mark = "ok"
				valid++
			}
			fmt.Printf("%2d. [%s] %s\n", i+1, mark, c.RawText)
			if !c.Valid() {
				if !c.HasYear {
					fmt.Println("      missing year")
				}
				if !c.WellPunctuated {
					fmt.Println("      missing terminal punctuation")
				}
				if !c.LengthOK {
					fmt.Printf("      shorter than %d characters\n", cite.MinCitationLength)
				}
			}
		}
		fmt.Printf("\n%d citations, %d valid, %d invalid\n", len(annotated), valid, len(annotated)-valid)
		return nil
	},
}

func init() {
	citationsCmd.Flags().Bool("json", false, "output the annotated citations as JSON")

	rootCmd.AddCommand(citationsCmd)
}
