package services

import (
	"context"
	"fmt"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
	"github.com/Anderson413366/anderson-cleaning-sub001/repositories"
)

// AdminService exposes read access to captured submissions for operators
type AdminService interface {
	GetRecentContacts(ctx context.Context, limit int) ([]models.ContactSubmission, error)
	GetRecentQuotes(ctx context.Context, limit int) ([]models.QuoteRequest, error)
	GetStats(ctx context.Context) (*models.SubmissionStats, error)
}

// adminService implements AdminService interface
type adminService struct {
	repos *repositories.Repositories
}

// NewAdminService creates a new admin service
func NewAdminService(repos *repositories.Repositories) AdminService {
	return &adminService{repos: repos}
}

// GetRecentContacts retrieves the most recent contact submissions
func (s *adminService) GetRecentContacts(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repos.Contacts.GetRecent(ctx, limit)
}

// GetRecentQuotes retrieves the most recent quote requests
func (s *adminService) GetRecentQuotes(ctx context.Context, limit int) ([]models.QuoteRequest, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repos.Quotes.GetRecent(ctx, limit)
}

// GetStats counts stored submissions across all tables
func (s *adminService) GetStats(ctx context.Context) (*models.SubmissionStats, error) {
	contacts, err := s.repos.Contacts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	quotes, err := s.repos.Quotes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}

	feedback, err := s.repos.Feedback.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	newsletters, err := s.repos.Newsletter.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count newsletters: %w", err)
	}

	return &models.SubmissionStats{
		Contacts:    contacts,
		Quotes:      quotes,
		Feedback:    feedback,
		Newsletters: newsletters,
	}, nil
}
