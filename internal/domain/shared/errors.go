package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
)

// NewInvalidReferenceError reports product ids that do not exist. The ids are
// part of the client-facing message so callers can fix their request without
// consulting server logs.
func NewInvalidReferenceError(missingIDs []int64) *DomainError {
	ids := make([]string, len(missingIDs))
	for i, id := range missingIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return NewDomainError(
		"INVALID_REFERENCE",
		fmt.Sprintf("One or more product IDs are invalid: %s", strings.Join(ids, ", ")),
	)
}
