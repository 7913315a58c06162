package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faturaquick/fatura-cli/internal/invoice"
	"github.com/faturaquick/fatura-cli/internal/render"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the default proposal as PDF (no API call)",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := invoice.DefaultDocument(time.Now())
		out := exportOutputPath
		if out == "" {
			out = render.Title(doc) + ".pdf"
		}
		pdf, err := render.PDF(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Printf("✓ Proposta salva em %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output PDF path")
}
