package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics records request and engine spans on the active Sentry transaction
type SentryMetrics struct{}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{}
}

// enabled is checked per call since sentry.Init may run after construction
func (m *SentryMetrics) enabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled() {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// StartEngineOperation opens a child span for one harmony computation.
// Call the returned func with the outcome once the computation returns.
func (m *SentryMetrics) StartEngineOperation(ctx context.Context, operation, key string) func(err error) {
	if !m.enabled() {
		return func(error) {}
	}

	span := sentry.StartSpan(ctx, "harmony."+operation)
	span.Description = fmt.Sprintf("Harmony: %s in %s", operation, key)
	span.SetTag("operation", operation)
	span.SetData("key", key)

	return func(err error) {
		if err != nil {
			span.Status = sentry.SpanStatusInvalidArgument
			span.SetData("error", err.Error())
		} else {
			span.Status = sentry.SpanStatusOK
		}
		span.Finish()
	}
}
