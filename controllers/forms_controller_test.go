package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Anderson413366/anderson-cleaning-sub001/clients/resend"
	"github.com/Anderson413366/anderson-cleaning-sub001/database"
	appmw "github.com/Anderson413366/anderson-cleaning-sub001/middleware"
	"github.com/Anderson413366/anderson-cleaning-sub001/models"
	"github.com/Anderson413366/anderson-cleaning-sub001/observe"
	"github.com/Anderson413366/anderson-cleaning-sub001/ratelimit"
	"github.com/Anderson413366/anderson-cleaning-sub001/repositories"
	"github.com/Anderson413366/anderson-cleaning-sub001/services"
)

const testAdminSecret = "test-secret"

// fakeEmailClient records sends instead of calling the provider
type fakeEmailClient struct {
	mu     sync.Mutex
	emails []resend.Email
}

func (f *fakeEmailClient) Send(_ context.Context, email resend.Email) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, email)
	return "email_test", nil
}

func (f *fakeEmailClient) sent() []resend.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]resend.Email(nil), f.emails...)
}

type testServer struct {
	router *chi.Mux
	repos  *repositories.Repositories
	email  *fakeEmailClient
}

func setupTestServer(t *testing.T) *testServer {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := repositories.NewRepositories(db)
	email := &fakeEmailClient{}
	srvs := services.NewServices(
		repos,
		email,
		"leads@andersoncleaning.com",
		"info@andersoncleaning.com",
		ratelimit.NewMemoryStore(),
		&observe.Recorder{},
		zap.NewNop(),
	)
	ctrl := NewControllers(srvs, repos)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(appmw.CORS("https://andersoncleaning.com"))

		r.Post("/quick-quote", ctrl.Forms.QuickQuote)
		r.Post("/contact", ctrl.Forms.Contact)
		r.Post("/quote", ctrl.Forms.Quote)
		r.Post("/feedback", ctrl.Forms.Feedback)
		r.Post("/newsletter", ctrl.Forms.Newsletter)

		r.Route("/admin", func(r chi.Router) {
			r.Use(appmw.RequireAdmin(testAdminSecret))
			r.Get("/submissions", ctrl.Admin.Submissions)
			r.Get("/submissions/stats", ctrl.Admin.Stats)
		})
	})

	return &testServer{router: r, repos: repos, email: email}
}

func (ts *testServer) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const janeDoePayload = `{"name":"Jane Doe","email":"jane@co.com","phone":"4135551234","facilityType":"office","website":""}`

func TestQuickQuoteEndToEnd(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/quick-quote", janeDoePayload)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you! A specialist will reach out within 24 hours (Mon–Fri, 9 AM – 5 PM EST).", resp.Message)

	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))

	count, err := ts.repos.Contacts.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	emails := ts.email.sent()
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Subject, "Jane Doe")
	assert.Equal(t, "info@andersoncleaning.com", emails[0].To)
	assert.Equal(t, "jane@co.com", emails[0].ReplyTo)
}

func TestQuickQuoteHoneypotEndToEnd(t *testing.T) {
	ts := setupTestServer(t)

	clean := ts.post("/api/quick-quote", janeDoePayload)
	cleanResp := decodeResponse(t, clean)

	bot := ts.post("/api/quick-quote",
		`{"name":"Jane Doe","email":"jane@co.com","phone":"4135551234","facilityType":"office","website":"http://spam.example"}`)

	// The bot gets a response indistinguishable from a real success
	assert.Equal(t, http.StatusOK, bot.Code)
	botResp := decodeResponse(t, bot)
	assert.Equal(t, cleanResp, botResp)

	count, err := ts.repos.Contacts.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count, "honeypot submission must not be persisted")
	assert.Len(t, ts.email.sent(), 1, "honeypot submission must not be notified")
}

func TestQuickQuoteMissingFieldNamesField(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/quick-quote", `{"name":"Jane Doe","phone":"4135551234","facilityType":"office"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors.Fields(), "email")
}

func TestQuickQuoteMalformedJSON(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/quick-quote", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid JSON payload", resp.Error)
}

func TestQuickQuoteRateLimit(t *testing.T) {
	ts := setupTestServer(t)

	for i := 0; i < 5; i++ {
		w := ts.post("/api/quick-quote", janeDoePayload)
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := ts.post("/api/quick-quote", janeDoePayload)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	count, err := ts.repos.Contacts.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count, "rejected request must not be persisted")
}

func TestContactEndToEnd(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/contact",
		`{"name":"John Smith","email":"john@example.com","phone":"(413) 555-6789","message":"We need nightly cleaning.","website":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	emails := ts.email.sent()
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Subject, "John Smith")
}

func TestQuoteEndToEnd(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/quote", `{
		"fullName":"Jane Doe","company":"Acme Co","email":"jane@co.com",
		"phone":"4135551234","address":"123 Main Street","city":"Springfield",
		"zipCode":"01089","facilityType":"office","squareFootage":12000,
		"cleaningFrequency":"weekly","consent":true,"website":""
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	count, err := ts.repos.Quotes.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFeedbackEndToEndSendsNoEmail(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/feedback",
		`{"pageId":"services/office-cleaning","vote":"yes","feedback":"Helpful","timestamp":"2026-08-29T12:00:00Z","website":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you for your feedback!", resp.Message)

	count, err := ts.repos.Feedback.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, ts.email.sent())
}

func TestNewsletterEndToEnd(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.post("/api/newsletter", `{"email":"jane@co.com","source":"footer","website":""}`)

	assert.Equal(t, http.StatusOK, w.Code)

	count, err := ts.repos.Newsletter.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPreflightCORS(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/quick-quote", nil)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://andersoncleaning.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func adminToken(t *testing.T, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops@andersoncleaning.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminSubmissionsRequiresToken(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSubmissionsRejectsBadToken(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "wrong-secret"))
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSubmissionsListsCapturedLeads(t *testing.T) {
	ts := setupTestServer(t)

	require.Equal(t, http.StatusOK, ts.post("/api/quick-quote", janeDoePayload).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, testAdminSecret))
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool                       `json:"success"`
		Contacts []models.ContactSubmission `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "Jane Doe", resp.Contacts[0].Name)
}

func TestAdminStats(t *testing.T) {
	ts := setupTestServer(t)

	require.Equal(t, http.StatusOK, ts.post("/api/quick-quote", janeDoePayload).Code)
	require.Equal(t, http.StatusOK, ts.post("/api/newsletter", `{"email":"jane@co.com"}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, testAdminSecret))
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Stats   models.SubmissionStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Stats.Contacts)
	assert.Equal(t, 1, resp.Stats.Newsletters)
}
