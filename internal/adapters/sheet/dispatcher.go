// Package sheet delivers report payloads to a Google Apps Script web app
// backed by a spreadsheet.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// Dispatcher POSTs submission payloads. The Apps Script deployment cannot be
// read back (its redirects strip CORS headers for browser clients and its
// body carries no stable contract), so the dispatcher treats any completed
// request as success and surfaces only transport failures.
type Dispatcher struct {
	httpClient *http.Client
}

// NewDispatcher creates a dispatcher with a default transport timeout.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Submit POSTs the payload as a JSON body with a text/plain content type
// (the Apps Script contract: text/plain avoids the preflight the deployment
// cannot answer). The response body is drained and discarded.
func (d *Dispatcher) Submit(ctx context.Context, endpointURL string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return &domain.SubmissionError{Err: err}
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &domain.SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	// Success cannot be verified: the deployment answers through redirects
	// whose final body is not part of any contract. Reaching the server
	// without a transport error is the only observable success signal.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
