// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moodi112/oman-wiki-engine/internal/events"
	"github.com/moodi112/oman-wiki-engine/internal/server"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve starts the HTTP API that exposes generation, citation checking, and
export over REST. The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		catalog, err := events.Open(viper.GetString("events.db_path"))
		if err != nil {
			// Generation and export still work without the catalog; the
			// events route reports it unavailable.
			fmt.Fprintf(os.Stderr, "warning: event catalog unavailable: %v\n", err)
			catalog = nil
		}
		if catalog != nil {
			defer catalog.Close()
		}

		exportCfg := types.ExportConfig{
			Theme:       types.Theme(viper.GetString("export.theme")),
			OutputDir:   viper.GetString("export.output_dir"),
			RendererBin: viper.GetString("export.renderer_bin"),
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = viper.GetInt("server.port")
		}

		return server.New(gen, catalog, exportCfg).Start(cmd.Context(), port)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (default 8000)")

	rootCmd.AddCommand(serveCmd)
}
