package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
	"github.com/Anderson413366/anderson-cleaning-sub001/observe"
	"github.com/Anderson413366/anderson-cleaning-sub001/ratelimit"
	"github.com/Anderson413366/anderson-cleaning-sub001/sanitize"
	"github.com/Anderson413366/anderson-cleaning-sub001/validation"
)

// Pipeline describes one form endpoint: its rate limit, how to build its
// payload, and what to do with an accepted submission. Store and Notify are
// best-effort; their failures are reported out of band and never change the
// user-facing outcome.
type Pipeline struct {
	Name           string
	RateLimit      ratelimit.Config
	SuccessMessage string
	NewForm        func() models.Form
	Store          func(ctx context.Context, form models.Form, meta models.RequestMeta) error
	Notify         func(ctx context.Context, form models.Form, meta models.RequestMeta) error
}

// Outcome is the HTTP-shaped result of running a pipeline
type Outcome struct {
	Status    int
	Response  models.APIResponse
	RateLimit *ratelimit.Result
}

// PipelineEngine runs submission pipelines against shared collaborators
type PipelineEngine struct {
	limits ratelimit.Store
	sink   observe.Sink
	logger *zap.Logger
}

// NewPipelineEngine creates a pipeline engine
func NewPipelineEngine(limits ratelimit.Store, sink observe.Sink, logger *zap.Logger) *PipelineEngine {
	return &PipelineEngine{
		limits: limits,
		sink:   sink,
		logger: logger,
	}
}

// Run executes the fixed submission pipeline: rate limit, parse, sanitize,
// honeypot, validate, persist, notify. It short-circuits on the first
// user-visible failure; persistence and notification failures are caught
// independently and reported to the sink without altering the outcome.
func (e *PipelineEngine) Run(ctx context.Context, p *Pipeline, identity string, body io.Reader, meta models.RequestMeta) Outcome {
	limit, err := e.limits.Check(ctx, identity, p.RateLimit)
	if err != nil {
		// A broken limiter store must not take lead capture down with
		// it: report and fail open.
		e.logger.Error("rate limit check failed", zap.String("form", p.Name), zap.Error(err))
		e.sink.CaptureException(err, map[string]string{"form": p.Name, "step": "ratelimit"})
		limit = ratelimit.Result{Allowed: true, Remaining: p.RateLimit.Limit}
	}

	if !limit.Allowed {
		e.logger.Warn("submission rate limited",
			zap.String("form", p.Name),
			zap.String("identity", identity),
		)
		return Outcome{
			Status:    http.StatusTooManyRequests,
			Response:  models.APIResponse{Success: false, Error: "Too many requests"},
			RateLimit: &limit,
		}
	}

	form := p.NewForm()
	if err := json.NewDecoder(body).Decode(form); err != nil {
		return Outcome{
			Status:    http.StatusBadRequest,
			Response:  models.APIResponse{Success: false, Error: "Invalid JSON payload"},
			RateLimit: &limit,
		}
	}

	form.Sanitize()

	if sanitize.HoneypotTriggered(form.Honeypot()) {
		// Bots get the normal success body so they cannot tell they
		// were caught; the submission itself is silently dropped.
		e.logger.Info("honeypot triggered, dropping submission",
			zap.String("form", p.Name),
			zap.String("identity", identity),
		)
		return Outcome{
			Status:    http.StatusOK,
			Response:  models.APIResponse{Success: true, Message: p.SuccessMessage},
			RateLimit: &limit,
		}
	}

	if errs := validation.Check(form); errs.HasErrors() {
		return Outcome{
			Status: http.StatusBadRequest,
			Response: models.APIResponse{
				Success: false,
				Error:   "Validation failed",
				Errors:  errs,
			},
			RateLimit: &limit,
		}
	}

	if err := p.Store(ctx, form, meta); err != nil {
		e.logger.Error("failed to persist submission", zap.String("form", p.Name), zap.Error(err))
		e.sink.CaptureException(err, map[string]string{"form": p.Name, "step": "persist"})
	}

	if err := p.Notify(ctx, form, meta); err != nil {
		e.logger.Error("failed to send notification", zap.String("form", p.Name), zap.Error(err))
		e.sink.CaptureException(err, map[string]string{"form": p.Name, "step": "notify"})
	}

	return Outcome{
		Status:    http.StatusOK,
		Response:  models.APIResponse{Success: true, Message: p.SuccessMessage},
		RateLimit: &limit,
	}
}
