package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Each concrete error type below unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidItem       = errors.New("invalid item")
	ErrAlreadyReviewed   = errors.New("already reviewed")
	ErrAlreadyAssigned   = errors.New("already assigned")
)

// sanitize removes newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value that falls outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ForbiddenError reports that an actor attempted an operation on a resource
// they have no rights over.
type ForbiddenError struct {
	Actor    string
	Action   string
	Resource string
}

// NewForbiddenError creates a ForbiddenError describing actor, action and resource.
func NewForbiddenError(actor, action, resource string) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Action: action, Resource: resource}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s may not %s %s", ErrForbidden, e.Actor, e.Action, sanitize(e.Resource))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError reports a status change that the lifecycle state
// machine does not permit.
type InvalidTransitionError struct {
	From   string
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError for an action
// attempted from the given status.
func NewInvalidTransitionError(from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from status %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidItemError reports an order line that references an unavailable or
// foreign menu item, or carries a bad quantity.
type InvalidItemError struct {
	ItemID string
	Reason string
}

// NewInvalidItemError creates an InvalidItemError for the given menu item.
func NewInvalidItemError(itemID, reason string) *InvalidItemError {
	return &InvalidItemError{ItemID: itemID, Reason: reason}
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidItem, sanitize(e.ItemID), e.Reason)
}

func (e *InvalidItemError) Unwrap() error {
	return ErrInvalidItem
}

// AlreadyReviewedError reports a second review attempt by the same reviewer
// for the same job and target type.
type AlreadyReviewedError struct {
	ReviewerID string
	JobID      string
}

// NewAlreadyReviewedError creates an AlreadyReviewedError for the reviewer/job pair.
func NewAlreadyReviewedError(reviewerID, jobID string) *AlreadyReviewedError {
	return &AlreadyReviewedError{ReviewerID: reviewerID, JobID: jobID}
}

func (e *AlreadyReviewedError) Error() string {
	return fmt.Sprintf("%s: reviewer %s already reviewed job %s", ErrAlreadyReviewed, e.ReviewerID, e.JobID)
}

func (e *AlreadyReviewedError) Unwrap() error {
	return ErrAlreadyReviewed
}

// AlreadyAssignedError reports a claim attempt on a job that another driver
// has already claimed.
type AlreadyAssignedError struct {
	JobID string
}

// NewAlreadyAssignedError creates an AlreadyAssignedError for the given job.
func NewAlreadyAssignedError(jobID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{JobID: jobID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: job %s already has a driver", ErrAlreadyAssigned, e.JobID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}
