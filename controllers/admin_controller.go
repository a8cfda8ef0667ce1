package controllers

import (
	"net/http"
	"strconv"

	"github.com/Anderson413366/anderson-cleaning-sub001/services"
)

// AdminController serves the operator read API for captured submissions
type AdminController struct {
	admin services.AdminService
}

// NewAdminController creates a new admin controller
func NewAdminController(srvs *services.Services) *AdminController {
	return &AdminController{admin: srvs.Admin}
}

// Submissions handles GET /api/admin/submissions
func (c *AdminController) Submissions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	contacts, err := c.admin.GetRecentContacts(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false, "error": "Failed to load submissions",
		})
		return
	}

	quotes, err := c.admin.GetRecentQuotes(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false, "error": "Failed to load submissions",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"contacts": contacts,
		"quotes":   quotes,
	})
}

// Stats handles GET /api/admin/submissions/stats
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.admin.GetStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false, "error": "Failed to load stats",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}
