// Package cmd provides the CLI commands for the e-Laporan application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	sheetURLFlag string
	exportDir    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "elaporan",
	Short: "e-Laporan Kokurikulum - weekly co-curricular activity reports",
	Long: `e-Laporan Kokurikulum is a terminal form for Malaysian school weekly
co-curricular activity reports. Fill the form, let AI draft the narrative
sections, then submit to Google Sheets, export a PDF, or copy a
WhatsApp-ready summary.

Run "elaporan" with no arguments to open the interactive form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runForm,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sheetURLFlag, "sheet-url", "", "Google Apps Script endpoint (default: configured sheet_url)")
	rootCmd.Flags().StringVar(&exportDir, "export-dir", "", "Directory for exported PDF files (default: current directory)")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("e-Laporan Kokurikulum\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(mcpCmd)
}

// runForm launches the interactive form TUI.
func runForm(cmd *cobra.Command, args []string) error {
	clip := app.clipboard
	deps := tui.Deps{
		Service:   app.service,
		Clipboard: clip,
		Printer:   app.printer,
		Notifier:  app.notifier,
		SheetURL:  effectiveSheetURL(),
		ShareLink: clip.ShareAppLink,
		ExportDir: exportDir,
	}

	if err := tui.Run(deps); err != nil {
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}
