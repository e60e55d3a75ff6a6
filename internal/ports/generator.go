// Package ports defines the interfaces (driven and driving ports)
// for the e-Laporan application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// ContentGenerator produces the five AI-fillable narrative fields for a
// topic. This is a driven port (implemented by the Gemini adapter).
type ContentGenerator interface {
	// Generate requests report content for the given activity topic and
	// unit. It returns the complete set of generated fields or an error;
	// a structurally incomplete response is an error, never a partial
	// result.
	Generate(ctx context.Context, topic, unitName string) (domain.GeneratedContent, error)
}
