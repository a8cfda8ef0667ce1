package models

import (
	"fmt"

	"github.com/Anderson413366/anderson-cleaning-sub001/sanitize"
)

// Form is implemented by every inbound form payload. Sanitize is called
// after JSON decoding and before validation; Honeypot exposes the hidden
// bot-trap field.
type Form interface {
	Sanitize()
	Honeypot() string
}

// QuickQuoteForm is the hero quick-quote payload
type QuickQuoteForm struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,phone"`
	FacilityType string `json:"facilityType" validate:"required,oneof=office medical educational retail manufacturing warehouse other"`
	Company      string `json:"company" validate:"omitempty,max=200"`
	Source       string `json:"source" validate:"omitempty,max=100"`
	Website      string `json:"website"`
}

// Sanitize cleans all string fields in place
func (f *QuickQuoteForm) Sanitize() {
	f.Name = sanitize.Clean(f.Name)
	f.Email = sanitize.Clean(f.Email)
	f.Phone = sanitize.Clean(f.Phone)
	f.FacilityType = sanitize.Clean(f.FacilityType)
	f.Company = sanitize.Clean(f.Company)
	f.Source = sanitize.Clean(f.Source)
	f.Website = sanitize.Clean(f.Website)
}

// Honeypot returns the hidden bot-trap field
func (f *QuickQuoteForm) Honeypot() string { return f.Website }

// Message synthesizes the stored message body for a quick-quote lead
func (f *QuickQuoteForm) Message() string {
	source := f.Source
	if source == "" {
		source = "inline"
	}
	msg := fmt.Sprintf("Quick quote request via %s form. Facility type: %s.", source, f.FacilityType)
	if f.Company != "" {
		msg += fmt.Sprintf(" Company: %s.", f.Company)
	}
	return msg
}

// ContactForm is the general contact form payload
type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Company string `json:"company" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
	Website string `json:"website"`
}

// Sanitize cleans all string fields in place
func (f *ContactForm) Sanitize() {
	f.Name = sanitize.Clean(f.Name)
	f.Email = sanitize.Clean(f.Email)
	f.Phone = sanitize.Clean(f.Phone)
	f.Company = sanitize.Clean(f.Company)
	f.Message = sanitize.Clean(f.Message)
	f.Website = sanitize.Clean(f.Website)
}

// Honeypot returns the hidden bot-trap field
func (f *ContactForm) Honeypot() string { return f.Website }

// QuoteForm is the full quote-request payload
type QuoteForm struct {
	FullName          string `json:"fullName" validate:"required,min=2,max=100"`
	Company           string `json:"company" validate:"required,min=2,max=200"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,phone"`
	Address           string `json:"address" validate:"required,min=5,max=300"`
	City              string `json:"city" validate:"required,min=2,max=100"`
	ZipCode           string `json:"zipCode" validate:"required,len=5,numeric"`
	FacilityType      string `json:"facilityType" validate:"required,oneof=office medical educational retail manufacturing warehouse other"`
	SquareFootage     int    `json:"squareFootage" validate:"omitempty,gte=1000"`
	CleaningFrequency string `json:"cleaningFrequency" validate:"required,oneof=daily weekly biweekly monthly one-time"`
	SpecialRequests   string `json:"specialRequests" validate:"omitempty,max=500"`
	Consent           bool   `json:"consent" validate:"eq=true"`
	Website           string `json:"website"`
}

// Sanitize cleans all string fields in place
func (f *QuoteForm) Sanitize() {
	f.FullName = sanitize.Clean(f.FullName)
	f.Company = sanitize.Clean(f.Company)
	f.Email = sanitize.Clean(f.Email)
	f.Phone = sanitize.Clean(f.Phone)
	f.Address = sanitize.Clean(f.Address)
	f.City = sanitize.Clean(f.City)
	f.ZipCode = sanitize.Clean(f.ZipCode)
	f.FacilityType = sanitize.Clean(f.FacilityType)
	f.CleaningFrequency = sanitize.Clean(f.CleaningFrequency)
	f.SpecialRequests = sanitize.Clean(f.SpecialRequests)
	f.Website = sanitize.Clean(f.Website)
}

// Honeypot returns the hidden bot-trap field
func (f *QuoteForm) Honeypot() string { return f.Website }

// FeedbackForm is the "was this helpful?" payload
type FeedbackForm struct {
	PageID    string `json:"pageId" validate:"required,min=1,max=200"`
	Vote      string `json:"vote" validate:"required,oneof=yes no"`
	Feedback  string `json:"feedback" validate:"omitempty,max=500"`
	Timestamp string `json:"timestamp" validate:"required"`
	UserAgent string `json:"userAgent" validate:"omitempty,max=500"`
	Website   string `json:"website"`
}

// Sanitize cleans all string fields in place
func (f *FeedbackForm) Sanitize() {
	f.PageID = sanitize.Clean(f.PageID)
	f.Vote = sanitize.Clean(f.Vote)
	f.Feedback = sanitize.Clean(f.Feedback)
	f.Timestamp = sanitize.Clean(f.Timestamp)
	f.UserAgent = sanitize.Clean(f.UserAgent)
	f.Website = sanitize.Clean(f.Website)
}

// Honeypot returns the hidden bot-trap field
func (f *FeedbackForm) Honeypot() string { return f.Website }

// NewsletterForm is the newsletter signup payload
type NewsletterForm struct {
	Email   string `json:"email" validate:"required,email"`
	Source  string `json:"source" validate:"omitempty,max=100"`
	Website string `json:"website"`
}

// Sanitize cleans all string fields in place
func (f *NewsletterForm) Sanitize() {
	f.Email = sanitize.Clean(f.Email)
	f.Source = sanitize.Clean(f.Source)
	f.Website = sanitize.Clean(f.Website)
}

// Honeypot returns the hidden bot-trap field
func (f *NewsletterForm) Honeypot() string { return f.Website }
