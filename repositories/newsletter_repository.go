package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
)

// NewsletterRepository defines newsletter subscription database operations
type NewsletterRepository interface {
	Insert(ctx context.Context, subscription *models.NewsletterSubscription) error
	Count(ctx context.Context) (int, error)
}

// newsletterRepository implements NewsletterRepository interface
type newsletterRepository struct {
	db *sql.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *sql.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

// Insert stores one newsletter subscription row
func (r *newsletterRepository) Insert(ctx context.Context, subscription *models.NewsletterSubscription) error {
	if subscription.ID == "" {
		subscription.ID = uuid.NewString()
	}
	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO newsletter_subscriptions (id, email, source, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		subscription.ID,
		subscription.Email,
		nullable(subscription.Source),
		nullable(subscription.IPAddress),
		subscription.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert newsletter subscription: %w", err)
	}

	return nil
}

// Count returns the number of stored subscriptions
func (r *newsletterRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM newsletter_subscriptions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count newsletter subscriptions: %w", err)
	}
	return count, nil
}
