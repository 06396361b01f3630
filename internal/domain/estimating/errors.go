package estimating

import (
	"errors"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNoValidWorkItem = errors.New("no valid work items")
)

// Reason classifies a validation failure.
type Reason string

const (
	ReasonStructural Reason = "structural"
	ReasonTaxonomy   Reason = "taxonomy"
)

// ValidationError is the structured failure returned by the sanitizer and the enforcer.
//
// Errors and Fields are parallel: Fields[i] is the JSON path Errors[i] refers to.
type ValidationError struct {
	Reason  Reason
	Message string
	Errors  []string
	Fields  []string
	cause   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Errors) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

func (e *ValidationError) Unwrap() error { return e.cause }

// violations accumulates field-level failures before they are turned into one error.
type violations struct {
	structural int
	errs       []string
	fields     []string
}

func (v *violations) add(field, msg string) {
	v.structural++
	v.record(field, msg)
}

func (v *violations) addTaxonomy(field, msg string) {
	v.record(field, msg)
}

func (v *violations) record(field, msg string) {
	v.errs = append(v.errs, msg)
	v.fields = append(v.fields, field)
}

func (v *violations) empty() bool { return len(v.errs) == 0 }

// err returns nil when nothing was recorded. A tree with any structural violation is reported
// as structural even if it also carries taxonomy mismatches.
func (v *violations) err() error {
	if v.empty() {
		return nil
	}
	reason := ReasonStructural
	msg := "project validation failed"
	if v.structural == 0 {
		reason = ReasonTaxonomy
		msg = "work item type not allowed for category"
	}
	return &ValidationError{Reason: reason, Message: msg, Errors: v.errs, Fields: v.fields}
}

func structuralError(field, msg string, cause error) *ValidationError {
	return &ValidationError{
		Reason:  ReasonStructural,
		Message: msg,
		Errors:  []string{msg},
		Fields:  []string{field},
		cause:   cause,
	}
}
