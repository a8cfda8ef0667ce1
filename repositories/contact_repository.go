package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
)

// ContactRepository defines contact submission database operations
type ContactRepository interface {
	Insert(ctx context.Context, submission *models.ContactSubmission) error
	GetRecent(ctx context.Context, limit int) ([]models.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
}

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Insert stores one contact submission row
func (r *contactRepository) Insert(ctx context.Context, submission *models.ContactSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO contact_submissions
			(id, name, email, phone, company, message, source_page, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Phone,
		nullable(submission.Company),
		submission.Message,
		nullable(submission.SourcePage),
		nullable(submission.IPAddress),
		nullable(submission.UserAgent),
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}

	return nil
}

// GetRecent retrieves the most recent contact submissions
func (r *contactRepository) GetRecent(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, company, message, source_page, ip_address, user_agent, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.ContactSubmission
	for rows.Next() {
		var s models.ContactSubmission
		var company, sourcePage, ipAddress, userAgent sql.NullString

		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&company,
			&s.Message,
			&sourcePage,
			&ipAddress,
			&userAgent,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}

		s.Company = company.String
		s.SourcePage = sourcePage.String
		s.IPAddress = ipAddress.String
		s.UserAgent = userAgent.String

		submissions = append(submissions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact submissions: %w", err)
	}

	return submissions, nil
}

// Count returns the number of stored contact submissions
func (r *contactRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_submissions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}
	return count, nil
}
