package ports

import "context"

// Submitter delivers a prepared submission payload to the spreadsheet
// endpoint. This is a driven port (implemented by the sheet adapter).
type Submitter interface {
	// Submit POSTs the payload to the endpoint URL. The endpoint's
	// response body is not readable, so a nil error means only that the
	// request did not fail at the transport level.
	Submit(ctx context.Context, endpointURL string, payload map[string]any) error
}
