package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
)

// FeedbackRepository defines page feedback database operations
type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *models.PageFeedback) error
	Count(ctx context.Context) (int, error)
}

// feedbackRepository implements FeedbackRepository interface
type feedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Insert stores one page feedback row
func (r *feedbackRepository) Insert(ctx context.Context, feedback *models.PageFeedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO page_feedback
			(id, page_id, vote, feedback, submitted_at, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		feedback.ID,
		feedback.PageID,
		feedback.Vote,
		nullable(feedback.Feedback),
		feedback.SubmittedAt,
		nullable(feedback.UserAgent),
		feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert page feedback: %w", err)
	}

	return nil
}

// Count returns the number of stored feedback rows
func (r *feedbackRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM page_feedback").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count page feedback: %w", err)
	}
	return count, nil
}
