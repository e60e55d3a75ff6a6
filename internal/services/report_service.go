// Package services contains the application logic that coordinates the
// domain model with the driven ports.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/ports"
)

// ErrNoEndpoint signals that no sheet URL is configured. The caller should
// steer the user to settings instead of attempting a submission.
var ErrNoEndpoint = errors.New("sheet endpoint URL is not configured")

// ReportService coordinates AI content generation and report submission.
type ReportService struct {
	generator ports.ContentGenerator
	submitter ports.Submitter
	now       func() time.Time
}

// NewReportService creates a report service over the given ports.
func NewReportService(generator ports.ContentGenerator, submitter ports.Submitter) *ReportService {
	return &ReportService{
		generator: generator,
		submitter: submitter,
		now:       time.Now,
	}
}

// GenerateContent produces the five AI-fillable fields for the report's
// topic. An empty topic fails before any network call.
func (s *ReportService) GenerateContent(ctx context.Context, report domain.ReportData) (domain.GeneratedContent, error) {
	if report.ActivityTopic == "" {
		return domain.GeneratedContent{}, domain.ErrEmptyTopic
	}
	if s.generator == nil {
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "no generator configured (set gemini.api_key)"}
	}
	return s.generator.Generate(ctx, report.ActivityTopic, report.UnitName)
}

// FillReport generates content and merges it into the report. On any
// failure the input report is returned unchanged.
func (s *ReportService) FillReport(ctx context.Context, report domain.ReportData) (domain.ReportData, error) {
	gen, err := s.GenerateContent(ctx, report)
	if err != nil {
		return report, err
	}
	return report.ApplyGenerated(gen), nil
}

// Submit validates the report and POSTs it to the endpoint. Validation
// failures happen locally before any network call.
func (s *ReportService) Submit(ctx context.Context, endpointURL string, report domain.ReportData) error {
	if endpointURL == "" {
		return ErrNoEndpoint
	}
	if report.UnitName == "" {
		return &domain.ValidationError{Field: "unitName"}
	}
	if report.ActivityTopic == "" {
		return &domain.ValidationError{Field: "activityTopic"}
	}

	payload := BuildPayload(report, s.now())
	return s.submitter.Submit(ctx, endpointURL, payload)
}
