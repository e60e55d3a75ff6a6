package cmd

import (
	"context"
	"fmt"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/ai"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/notification"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/share"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/adapters/sheet"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/config"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/ports"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config    *config.Config
	notifier  *notification.Notifier
	clipboard *share.Clipboard
	printer   *share.Printer
	service   *services.ReportService
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	// Initialize the AI generator only when a key is available; the form
	// reports a clear error on [g] otherwise. The genai client holds no
	// resources that need an explicit close.
	var generator ports.ContentGenerator
	if app.config.Gemini.APIKey != "" {
		gen, err := ai.NewGeminiGenerator(context.Background(), app.config.Gemini.APIKey, app.config.Gemini.Model)
		if err != nil {
			return fmt.Errorf("failed to initialize AI generator: %w", err)
		}
		generator = gen
	}

	app.clipboard = share.NewClipboard()
	app.printer = share.NewPrinter()
	app.service = services.NewReportService(generator, sheet.NewDispatcher())

	return nil
}

// effectiveSheetURL resolves the submission endpoint: --sheet-url flag >
// configured sheet_url.
func effectiveSheetURL() string {
	if sheetURLFlag != "" {
		return sheetURLFlag
	}
	if app.config != nil {
		return app.config.SheetURL
	}
	return ""
}
