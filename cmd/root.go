package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/faturaquick/fatura-cli/internal/ai"
	cfgpkg "github.com/faturaquick/fatura-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fatura",
	Short: "FaturaQuick CLI: edit, AI-fill and print invoice proposals",
	Long:  `FaturaQuick is a proposal/invoice generator: it keeps an editable document, fills it from a free-text scenario via Gemini, and prints it as a PDF with pt-BR formatting.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.fatura/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	_ = godotenv.Load()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// newAIClient builds the generation client from the effective config.
func newAIClient() *ai.Client {
	apiKey, model, temp := "", "", 0.0
	timeout := 60 * time.Second
	if cfg != nil {
		apiKey = cfg.APIKey
		model = cfg.Model
		temp = cfg.Temperature
		if cfg.HTTPTimeoutSec > 0 {
			timeout = time.Duration(cfg.HTTPTimeoutSec) * time.Second
		}
	}
	return ai.NewClient(apiKey, model, timeout, temp)
}
