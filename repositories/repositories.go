package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Contacts   ContactRepository
	Quotes     QuoteRepository
	Feedback   FeedbackRepository
	Newsletter NewsletterRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Contacts:   NewContactRepository(db),
		Quotes:     NewQuoteRepository(db),
		Feedback:   NewFeedbackRepository(db),
		Newsletter: NewNewsletterRepository(db),
	}
}

// nullable converts an empty string to NULL for optional columns
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
