// Package observe reports internal failures to an out-of-band error sink.
// Best-effort pipeline steps (persistence, notification) surface their
// failures here instead of in the user-facing response.
package observe

import (
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

// Sink receives exception and message reports with contextual tags
type Sink interface {
	CaptureException(err error, tags map[string]string)
	CaptureMessage(msg string, tags map[string]string)
}

// SentrySink reports to Sentry
type SentrySink struct{}

// NewSentrySink initializes the Sentry SDK and returns a sink backed by it
func NewSentrySink(dsn string) (*SentrySink, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn: dsn,
	})
	if err != nil {
		return nil, err
	}
	return &SentrySink{}, nil
}

// CaptureException reports an error with tags
func (s *SentrySink) CaptureException(err error, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// CaptureMessage reports an informational message with tags
func (s *SentrySink) CaptureMessage(msg string, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureMessage(msg)
	})
}

// Close flushes buffered events before shutdown
func (s *SentrySink) Close() {
	sentry.Flush(2 * time.Second)
}

// NopSink discards all reports. Used when no DSN is configured.
type NopSink struct{}

func (NopSink) CaptureException(error, map[string]string) {}
func (NopSink) CaptureMessage(string, map[string]string)  {}

// Recorder captures reports in memory for tests
type Recorder struct {
	mu         sync.Mutex
	Exceptions []error
	Messages   []string
}

// CaptureException records the error
func (r *Recorder) CaptureException(err error, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Exceptions = append(r.Exceptions, err)
}

// CaptureMessage records the message
func (r *Recorder) CaptureMessage(msg string, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, msg)
}

// ExceptionCount returns the number of recorded exceptions
func (r *Recorder) ExceptionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Exceptions)
}
