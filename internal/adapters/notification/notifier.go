// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}

	return beeep.Notify(title, message, "")
}

// NotifySubmitted displays a notification when a report reaches the sheet.
func (n *Notifier) NotifySubmitted(unitName string) error {
	return n.Notify("📄 Laporan Dihantar", "Laporan "+unitName+" berjaya dihantar ke Google Sheet.")
}

// NotifySubmissionFailed displays a notification when submission fails.
func (n *Notifier) NotifySubmissionFailed() error {
	return n.Notify("⚠️ Hantaran Gagal", "Sila semak sambungan internet atau URL Script anda.")
}

// NotifyGenerated displays a notification when AI content generation
// completes.
func (n *Notifier) NotifyGenerated(topic string) error {
	return n.Notify("✨ Kandungan Dijana", "Kandungan laporan untuk \""+topic+"\" sedia disemak.")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
