// Package ratelimit bounds the number of accepted submissions per client
// identity within a fixed time window. Each form endpoint configures its own
// limit and window.
package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config is a per-endpoint limit: at most Limit requests per Window.
type Config struct {
	Limit  int
	Window time.Duration
}

// Result reports the outcome of a limit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Store decides whether a request from the given identity is allowed under
// the supplied config. Implementations keep the counters.
type Store interface {
	Check(ctx context.Context, identity string, cfg Config) (Result, error)
}

// ClientIdentifier derives the rate-limit identity for a request: the first
// X-Forwarded-For hop, then X-Real-IP, then the RemoteAddr host. Requests
// with no usable address share the "unknown" identity, which pools all
// unidentifiable clients into one conservative budget.
func ClientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return "unknown"
}

// MemoryStore is a process-local fixed-window counter store. Counters for a
// given identity never advance past the limit, so Remaining stays at zero
// for rejected requests instead of going negative.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
	}
}

// Check implements Store. It never returns an error.
func (s *MemoryStore) Check(_ context.Context, identity string, cfg Config) (Result, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	win, ok := s.windows[identity]
	if !ok || now.Sub(win.start) >= cfg.Window {
		win = &window{start: now}
		s.windows[identity] = win
	}

	resetAt := win.start.Add(cfg.Window)

	if win.count >= cfg.Limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}

	win.count++
	return Result{
		Allowed:   true,
		Remaining: cfg.Limit - win.count,
		ResetAt:   resetAt,
	}, nil
}

// Cleanup drops windows whose start is older than maxAge
func (s *MemoryStore) Cleanup(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	for identity, win := range s.windows {
		if win.start.Before(cutoff) {
			delete(s.windows, identity)
		}
	}
}

// StartJanitor periodically expires stale windows until ctx is done.
// maxAge should be at least as long as the largest configured window.
func (s *MemoryStore) StartJanitor(ctx context.Context, every, maxAge time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup(maxAge)
			}
		}
	}()
}
