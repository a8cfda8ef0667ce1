package models

import (
	"time"
)

// ContactSubmission is a stored lead from the contact or quick-quote forms
type ContactSubmission struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Company    string    `json:"company,omitempty" db:"company"`
	Message    string    `json:"message" db:"message"`
	SourcePage string    `json:"source_page,omitempty" db:"source_page"`
	IPAddress  string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// QuoteRequest is a stored full quote-request submission
type QuoteRequest struct {
	ID                string    `json:"id" db:"id"`
	FullName          string    `json:"full_name" db:"full_name"`
	Company           string    `json:"company" db:"company"`
	Email             string    `json:"email" db:"email"`
	Phone             string    `json:"phone" db:"phone"`
	Address           string    `json:"address" db:"address"`
	City              string    `json:"city" db:"city"`
	ZipCode           string    `json:"zip_code" db:"zip_code"`
	FacilityType      string    `json:"facility_type" db:"facility_type"`
	SquareFootage     int       `json:"square_footage,omitempty" db:"square_footage"`
	CleaningFrequency string    `json:"cleaning_frequency" db:"cleaning_frequency"`
	SpecialRequests   string    `json:"special_requests,omitempty" db:"special_requests"`
	SourcePage        string    `json:"source_page,omitempty" db:"source_page"`
	IPAddress         string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent         string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// PageFeedback is a stored "was this helpful?" vote
type PageFeedback struct {
	ID          string    `json:"id" db:"id"`
	PageID      string    `json:"page_id" db:"page_id"`
	Vote        string    `json:"vote" db:"vote"`
	Feedback    string    `json:"feedback,omitempty" db:"feedback"`
	SubmittedAt string    `json:"submitted_at" db:"submitted_at"`
	UserAgent   string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewsletterSubscription is a stored newsletter signup
type NewsletterSubscription struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Source    string    `json:"source,omitempty" db:"source"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubmissionStats summarizes stored submissions for the admin API
type SubmissionStats struct {
	Contacts    int `json:"contacts"`
	Quotes      int `json:"quotes"`
	Feedback    int `json:"feedback"`
	Newsletters int `json:"newsletters"`
}
