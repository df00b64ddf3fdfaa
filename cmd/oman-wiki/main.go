// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the oman-wiki CLI. It generates
// Wikipedia-style articles, summaries, and infoboxes about Oman events
// via an upstream model API, extracts and validates citations, and
// exports articles to Markdown, HTML, and PDF.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moodi112/oman-wiki-engine/internal/generate"
	"github.com/moodi112/oman-wiki-engine/internal/secrets"
	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the oman-wiki CLI.
var rootCmd = &cobra.Command{
	Use:   "oman-wiki",
	Short: "AI-assisted Wikipedia-style content for Oman events",
	Long: `oman-wiki generates Wikipedia-style articles, summaries, infoboxes, and
image prompts about Oman events using an upstream model API, in English or
Arabic. Generated articles can be checked for citation quality and exported
to Markdown, themed HTML, or PDF.

Each operation is a subcommand: article, summary, infobox, image-prompt,
full, batch, citations, export, events, and serve.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so OPENAI_API_KEY set there is visible as environment.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./oman-wiki.yaml or ~/.config/oman-wiki/config.yaml)")
	rootCmd.PersistentFlags().String("model", "", "upstream model identifier (default: gpt-4)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("oman-wiki")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "oman-wiki"))
		}
	}

	viper.SetEnvPrefix("OMAN_WIKI")
	viper.AutomaticEnv()

	// Well-known variables outside the OMAN_WIKI prefix.
	_ = viper.BindEnv("ai.api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("ai.model", "OPENAI_MODEL")
	_ = viper.BindEnv("ai.base_url", "OPENAI_BASE_URL")
	_ = viper.BindEnv("server.port", "PORT")

	viper.SetDefault("ai.model", types.DefaultModel)
	viper.SetDefault("ai.max_retries", 0)
	viper.SetDefault("ai.timeout", types.DefaultTimeout)
	viper.SetDefault("export.theme", string(types.ThemeWikipedia))
	viper.SetDefault("export.output_dir", "output/exports")
	viper.SetDefault("events.db_path", "data/events.db")
	viper.SetDefault("server.port", 8000)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// aiConfig assembles the upstream API configuration from flags, config
// file, environment, and the .secrets/ directory, in that precedence.
func aiConfig(cmd *cobra.Command) types.AIConfig {
	modelFlag, _ := cmd.Flags().GetString("model")
	if modelFlag == "" {
		modelFlag, _ = rootCmd.PersistentFlags().GetString("model")
	}

	return types.AIConfig{
		Model:      secrets.Resolve(modelFlag, "OPENAI_MODEL", secrets.KeyOpenAIModel, loadedSecrets),
		APIKey:     secrets.Resolve(viper.GetString("ai.api_key"), "OPENAI_API_KEY", secrets.KeyOpenAIAPIKey, loadedSecrets),
		BaseURL:    secrets.Resolve(viper.GetString("ai.base_url"), "OPENAI_BASE_URL", secrets.KeyOpenAIBaseURL, loadedSecrets),
		MaxRetries: viper.GetInt("ai.max_retries"),
		Timeout:    viper.GetDuration("ai.timeout"),
	}
}

// newGenerator builds the generation façade, failing fast on missing
// credentials before any upstream call.
func newGenerator(cmd *cobra.Command) (*generate.Generator, error) {
	cfg := aiConfig(cmd)
	if cfg.Model == "" {
		cfg.Model = viper.GetString("ai.model")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = types.DefaultTimeout
	}
	return generate.New(cfg)
}

// requestFromFlags builds a GenerationRequest from the shared generation
// flags and the positional event name.
func requestFromFlags(cmd *cobra.Command, eventName string) (types.GenerationRequest, error) {
	req := types.GenerationRequest{EventName: eventName}

	contextStr, _ := cmd.Flags().GetString("context")
	req.Context = contextStr

	styleStr, _ := cmd.Flags().GetString("style")
	if styleStr != "" {
		style, err := types.ParseStyle(styleStr)
		if err != nil {
			return req, err
		}
		req.Style = style
	}

	langStr, _ := cmd.Flags().GetString("language")
	if langStr != "" {
		lang, err := types.ParseLanguage(langStr)
		if err != nil {
			return req, err
		}
		req.Language = lang
	}

	if cmd.Flags().Lookup("max-length") != nil {
		req.MaxLength, _ = cmd.Flags().GetInt("max-length")
	}

	return req, nil
}

// writeOrPrint writes text to the output path, or prints it framed to
// stdout when no path is given.
func writeOrPrint(output, text string) error {
	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Printf("Saved to: %s\n", output)
		return nil
	}

	rule := "================================================================================"
	fmt.Println(rule)
	fmt.Println(text)
	fmt.Println(rule)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
