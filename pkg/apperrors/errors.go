package apperrors

import "fmt"

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError signals malformed or semantically invalid input.
// Delivery maps it to HTTP 400.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with a single message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidation creates a ValidationError from field-level violations.
func NewFieldValidation(fields []FieldError) *ValidationError {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	return &ValidationError{Message: msg, Fields: fields}
}

// NotFoundError signals that a referenced entity does not exist.
// Delivery maps it to HTTP 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFound creates a NotFoundError for the given resource and id.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
