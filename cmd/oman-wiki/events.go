// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moodi112/oman-wiki-engine/internal/events"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the known Oman events",
	Long: `Events lists the events in the local catalog. The catalog is a SQLite
database seeded with well-known Oman events on first use; new events can be
added with --add.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := events.Open(viper.GetString("events.db_path"))
		if err != nil {
			return err
		}
		defer store.Close()

		if name, _ := cmd.Flags().GetString("add"); name != "" {
			e := types.Event{Name: name}
			e.Date, _ = cmd.Flags().GetString("date")
			e.Location, _ = cmd.Flags().GetString("location")
			e.Summary, _ = cmd.Flags().GetString("summary")
			if err := store.Add(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Printf("Added event: %s\n", name)
		}

		list, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%d events:\n", len(list))
		for _, e := range list {
			fmt.Println("  " + e.String())
			if e.Summary != "" {
				fmt.Println("      " + e.Summary)
			}
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().String("add", "", "add an event with this name before listing")
	eventsCmd.Flags().String("date", "", "date or season of the added event")
	eventsCmd.Flags().String("location", "", "location of the added event")
	eventsCmd.Flags().String("summary", "", "one-line summary of the added event")

	rootCmd.AddCommand(eventsCmd)
}
