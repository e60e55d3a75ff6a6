package share

import (
	"fmt"
	"os/exec"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// lookPath is a package-level variable to allow mocking in tests.
var lookPath = exec.LookPath

// runCommand is a package-level variable to allow mocking in tests.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Printer submits files to the host print spooler via lp, falling back
// to lpr.
type Printer struct{}

// NewPrinter creates the printer adapter.
func NewPrinter() *Printer {
	return &Printer{}
}

// Print sends the file at path to the default printer.
func (p *Printer) Print(path string) error {
	cmd := ""
	for _, candidate := range []string{"lp", "lpr"} {
		if _, err := lookPath(candidate); err == nil {
			cmd = candidate
			break
		}
	}
	if cmd == "" {
		return &domain.ExportError{
			Op:   "print",
			Hint: "Tiada perintah cetak (lp/lpr) ditemui. Jana PDF dan cetak secara manual.",
			Err:  fmt.Errorf("no print spooler command found"),
		}
	}

	if err := runCommand(cmd, path); err != nil {
		return &domain.ExportError{
			Op:   "print",
			Hint: "Jana PDF dan cetak secara manual.",
			Err:  err,
		}
	}
	return nil
}
