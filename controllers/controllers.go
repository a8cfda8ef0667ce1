package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
	"github.com/Anderson413366/anderson-cleaning-sub001/ratelimit"
	"github.com/Anderson413366/anderson-cleaning-sub001/repositories"
	"github.com/Anderson413366/anderson-cleaning-sub001/sanitize"
	"github.com/Anderson413366/anderson-cleaning-sub001/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Forms *FormsController
	Admin *AdminController
}

// NewControllers creates and initializes all controller instances
func NewControllers(srvs *services.Services, repos *repositories.Repositories) *Controllers {
	return &Controllers{
		Forms: NewFormsController(srvs, repos),
		Admin: NewAdminController(srvs),
	}
}

// writeJSON serializes a payload with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// setRateLimitHeaders exposes the limiter state to clients
func setRateLimitHeaders(w http.ResponseWriter, cfg ratelimit.Config, result *ratelimit.Result) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

// requestMeta captures submission metadata from the request. Header values
// are attacker-controlled and get the same escaping as form fields.
func requestMeta(r *http.Request, fallbackSource string) models.RequestMeta {
	source := r.Referer()
	if source == "" {
		source = fallbackSource
	}
	return models.RequestMeta{
		SourcePage: sanitize.Clean(source),
		IPAddress:  ratelimit.ClientIdentifier(r),
		UserAgent:  sanitize.Clean(r.UserAgent()),
	}
}
