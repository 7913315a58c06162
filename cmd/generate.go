package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faturaquick/fatura-cli/internal/ai"
	"github.com/faturaquick/fatura-cli/internal/invoice"
	"github.com/faturaquick/fatura-cli/internal/render"
	"github.com/faturaquick/fatura-cli/internal/session"
)

var (
	genOutputPath string
	genTimeoutSec int
	genDryRun     bool
	genQuiet      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <scenario>",
	Short: "Fill a proposal from a free-text scenario and export it as PDF",
	Example: `  fatura generate "fatura para um serviço de fotografia freelance incluindo casamento e edição"
  fatura generate "consultoria de marketing digital" --output proposta.pdf
  fatura generate "estúdio musical" --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario := strings.TrimSpace(strings.Join(args, " "))

		if genDryRun {
			fmt.Println("--dry-run: no API call will be made. Prompt below --")
			fmt.Println(ai.BuildInvoicePrompt(scenario))
			return nil
		}

		sess := session.New(newAIClient(), logger)

		timeoutSec := genTimeoutSec
		if timeoutSec <= 0 {
			timeoutSec = 180
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
		defer cancel()

		if !genQuiet {
			fmt.Println("⚙ Gerando proposta...")
		}
		if err := sess.Generate(ctx, scenario); err != nil {
			return describeGenerationError(err)
		}

		doc := sess.Document()
		out := genOutputPath
		if out == "" {
			out = sess.SuggestedFilename() + ".pdf"
		}
		pdf, err := render.PDF(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		if !genQuiet {
			printSummary(doc)
			fmt.Printf("✓ Proposta salva em %s\n", out)
		}
		return nil
	},
}

// describeGenerationError adds a user-friendly hint for common error
// classes; the detail stays in the wrapped error.
func describeGenerationError(err error) error {
	var (
		authErr *ai.AuthError
		rlErr   *ai.RateLimitError
		qErr    *ai.QuotaExceededError
		sErr    *ai.ServerError
	)
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey):
		return fmt.Errorf("API key not configured: set FATURA_API_KEY or run 'fatura config set api_key <key>': %w", err)
	case errors.As(err, &authErr):
		return fmt.Errorf("authentication failed, check your API key: %w", err)
	case errors.As(err, &rlErr):
		if rlErr.RetryAfter > 0 {
			return fmt.Errorf("rate limited, try again in ~%ds: %w", int(rlErr.RetryAfter.Seconds()), err)
		}
		return fmt.Errorf("rate limited by provider, please retry: %w", err)
	case errors.As(err, &qErr):
		return fmt.Errorf("quota/billing issue, check your provider account: %w", err)
	case errors.As(err, &sErr):
		return fmt.Errorf("provider appears unavailable, please retry later: %w", err)
	default:
		return fmt.Errorf("generation failed: %w", err)
	}
}

func printSummary(doc invoice.Document) {
	sum := doc.Totals()
	fmt.Printf("%s → %s\n", doc.Sender.Name, doc.Client.Name)
	for _, it := range doc.Items {
		fmt.Printf("  %-40s %s x%d\n", it.Name, render.Currency(it.Price), it.Quantity)
	}
	fmt.Printf("Subtotal: %s  Total: %s\n", render.Currency(sum.Subtotal), render.Currency(sum.Total))
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOutputPath, "output", "o", "", "output PDF path (default Proposta-<número>.pdf)")
	generateCmd.Flags().IntVar(&genTimeoutSec, "timeout-sec", 180, "request timeout in seconds")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print the prompt without calling the API")
	generateCmd.Flags().BoolVar(&genQuiet, "quiet", false, "suppress non-essential output")
}
