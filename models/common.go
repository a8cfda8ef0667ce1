package models

// FieldError represents a validation error on a single form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors represents multiple field-level validation errors
type FieldErrors []FieldError

// HasErrors returns true if there are validation errors
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// Fields returns the names of all failing fields
func (fe FieldErrors) Fields() []string {
	fields := make([]string, len(fe))
	for i, err := range fe {
		fields[i] = err.Field
	}
	return fields
}

// APIResponse is the uniform response body for all form endpoints
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// RequestMeta carries request metadata captured alongside every submission
type RequestMeta struct {
	SourcePage string
	IPAddress  string
	UserAgent  string
}
