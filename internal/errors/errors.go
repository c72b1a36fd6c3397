package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this mother"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidTemplateError is returned at template load time when a schedule
// template fails validation (duplicate milestone id, negative offset, unknown
// domain). Fatal to that domain's schedule feature.
type InvalidTemplateError struct {
	Domain string
	Reason string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalid schedule template for domain %q: %s", e.Domain, e.Reason)
}

// Is enables errors.Is() comparison for InvalidTemplateError
func (e *InvalidTemplateError) Is(target error) bool {
	_, ok := target.(*InvalidTemplateError)
	return ok
}

// TemplateNotFoundError is returned when a schedule domain has no registered
// template. This indicates a programming error, not bad user input.
type TemplateNotFoundError struct {
	Domain string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no schedule template registered for domain %q", e.Domain)
}

// Is enables errors.Is() comparison for TemplateNotFoundError
func (e *TemplateNotFoundError) Is(target error) bool {
	_, ok := target.(*TemplateNotFoundError)
	return ok
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrChildNotFound            = &NotFoundError{Entity: "child"}
	ErrPregnancyNotFound        = &NotFoundError{Entity: "pregnancy"}
	ErrSubjectNotFound          = &NotFoundError{Entity: "subject"}
	ErrCompletionRecordNotFound = &NotFoundError{Entity: "completion record"}
	ErrMilestoneNotFound        = &NotFoundError{Entity: "milestone"}
)

// Already Exists Errors
var (
	ErrChildExists     = &AlreadyExistsError{Entity: "child", Context: "with this medical record number"}
	ErrPregnancyExists = &AlreadyExistsError{Entity: "active pregnancy", Context: "for this mother"}
)

// Business Logic Errors
var (
	ErrInvalidDomain        = errors.New("invalid schedule domain")
	ErrRecordNotFailed      = errors.New("completion record is not in failed state")
	ErrPregnancyNotActive   = errors.New("pregnancy is not active")
	ErrCompletedInFuture    = errors.New("completion date cannot be in the future")
	ErrMilestoneNotInDomain = errors.New("milestone does not belong to the requested schedule domain")
)

// IsNotFound returns true if err is any NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAlreadyExists returns true if err is any AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// IsInvalidTemplate returns true if err is an InvalidTemplateError
func IsInvalidTemplate(err error) bool {
	var it *InvalidTemplateError
	return errors.As(err, &it)
}

// IsTemplateNotFound returns true if err is a TemplateNotFoundError
func IsTemplateNotFound(err error) bool {
	var tn *TemplateNotFoundError
	return errors.As(err, &tn)
}
