package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
)

// QuoteRepository defines quote request database operations
type QuoteRepository interface {
	Insert(ctx context.Context, quote *models.QuoteRequest) error
	GetRecent(ctx context.Context, limit int) ([]models.QuoteRequest, error)
	Count(ctx context.Context) (int, error)
}

// quoteRepository implements QuoteRepository interface
type quoteRepository struct {
	db *sql.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *sql.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

// Insert stores one quote request row
func (r *quoteRepository) Insert(ctx context.Context, quote *models.QuoteRequest) error {
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO quote_requests
			(id, full_name, company, email, phone, address, city, zip_code,
			 facility_type, square_footage, cleaning_frequency, special_requests,
			 source_page, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var squareFootage sql.NullInt64
	if quote.SquareFootage > 0 {
		squareFootage = sql.NullInt64{Int64: int64(quote.SquareFootage), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		quote.ID,
		quote.FullName,
		quote.Company,
		quote.Email,
		quote.Phone,
		quote.Address,
		quote.City,
		quote.ZipCode,
		quote.FacilityType,
		squareFootage,
		quote.CleaningFrequency,
		nullable(quote.SpecialRequests),
		nullable(quote.SourcePage),
		nullable(quote.IPAddress),
		nullable(quote.UserAgent),
		quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quote request: %w", err)
	}

	return nil
}

// GetRecent retrieves the most recent quote requests
func (r *quoteRepository) GetRecent(ctx context.Context, limit int) ([]models.QuoteRequest, error) {
	query := `
		SELECT id, full_name, company, email, phone, address, city, zip_code,
		       facility_type, square_footage, cleaning_frequency, special_requests,
		       source_page, ip_address, user_agent, created_at
		FROM quote_requests
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote requests: %w", err)
	}
	defer rows.Close()

	var quotes []models.QuoteRequest
	for rows.Next() {
		var q models.QuoteRequest
		var squareFootage sql.NullInt64
		var specialRequests, sourcePage, ipAddress, userAgent sql.NullString

		err := rows.Scan(
			&q.ID,
			&q.FullName,
			&q.Company,
			&q.Email,
			&q.Phone,
			&q.Address,
			&q.City,
			&q.ZipCode,
			&q.FacilityType,
			&squareFootage,
			&q.CleaningFrequency,
			&specialRequests,
			&sourcePage,
			&ipAddress,
			&userAgent,
			&q.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote request: %w", err)
		}

		q.SquareFootage = int(squareFootage.Int64)
		q.SpecialRequests = specialRequests.String
		q.SourcePage = sourcePage.String
		q.IPAddress = ipAddress.String
		q.UserAgent = userAgent.String

		quotes = append(quotes, q)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote requests: %w", err)
	}

	return quotes, nil
}

// Count returns the number of stored quote requests
func (r *quoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quote_requests").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quote requests: %w", err)
	}
	return count, nil
}
