package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue is a single field-level failure.
type Issue struct {
	// Path segments are strings (field / map key) or ints (slice index).
	Path    []any  `json:"path"`
	Message string `json:"message"`
}

// Key joins the path segments with "." ("" for a root issue).
func (i Issue) Key() string {
	parts := make([]string, len(i.Path))
	for n, seg := range i.Path {
		parts[n] = fmt.Sprint(seg)
	}
	return strings.Join(parts, ".")
}

// ValidationError carries the ordered issues of one failed validation.
type ValidationError struct {
	Issues []Issue
}

// NewError builds a ValidationError from issues.
func NewError(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Issues))
	for n, is := range e.Issues {
		if k := is.Key(); k != "" {
			msgs[n] = k + ": " + is.Message
		} else {
			msgs[n] = is.Message
		}
	}
	return strings.Join(msgs, "; ")
}

// As reports whether err is a validation failure and returns it as a *ValidationError.
// Raw validator.ValidationErrors (from handlers calling go-playground directly) are converted.
func As(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) && ve != nil {
		return ve, true
	}
	var raw validator.ValidationErrors
	if errors.As(err, &raw) {
		return fromFieldErrors(raw), true
	}
	return nil, false
}
