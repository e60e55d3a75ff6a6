// Package share covers the export surfaces that leave the app: clipboard,
// printing, and the app link.
package share

import (
	"github.com/atotto/clipboard"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// AppURL is the public address of the application, shared via the app-link
// action.
const AppURL = "https://e-laporan-kokurikulum.vercel.app"

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Clipboard implements ports.Clipboard on the system clipboard.
type Clipboard struct{}

// NewClipboard creates the clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Write copies text to the system clipboard.
func (c *Clipboard) Write(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return &domain.ExportError{
			Op:   "clipboard copy",
			Hint: "Salin teks secara manual.",
			Err:  err,
		}
	}
	return nil
}

// ShareAppLink places the application URL on the clipboard. A terminal has
// no native share sheet, so the clipboard fallback is the share action.
func (c *Clipboard) ShareAppLink() error {
	return c.Write(AppURL)
}
