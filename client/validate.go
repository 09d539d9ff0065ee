package client

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateUserID checks the identity value sent in the X-User-ID header.
func ValidateUserID(userID string) error {
	if userID == "" {
		return &ValidationError{Message: "user id is required"}
	}
	return nil
}

// ValidateDate checks that a field holds a YYYY-MM-DD date.
func ValidateDate(value, fieldName string) error {
	if value == "" {
		return &ValidationError{Message: fmt.Sprintf("%s is required", fieldName)}
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return &ValidationError{Message: fmt.Sprintf("%s must use YYYY-MM-DD format", fieldName)}
	}
	return nil
}

// ValidateGenerateRequest checks a GenerateRequest before it goes on the wire.
// Travelers defaults to 1 when unset rather than failing.
func ValidateGenerateRequest(req *GenerateRequest) error {
	if req.Destination == "" {
		return &ValidationError{Message: "destination is required"}
	}
	if err := ValidateDate(req.StartDate, "start_date"); err != nil {
		return err
	}
	if err := ValidateDate(req.EndDate, "end_date"); err != nil {
		return err
	}
	if req.Duration < 1 {
		return &ValidationError{Message: "duration must be at least 1 day"}
	}
	if req.Budget < 1 {
		return &ValidationError{Message: "budget must be a positive number"}
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}
	if req.Travelers < 1 {
		return &ValidationError{Message: "travelers must be at least 1"}
	}
	return ValidateUserID(req.UserID)
}
