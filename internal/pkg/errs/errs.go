package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as unwrap targets for errors.Is classification.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrInvalidFormat        = errors.New("invalid format")
	ErrCurrencyMismatch     = errors.New("currency mismatch")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// sanitize collapses newlines so attacker-controlled input cannot
// forge extra log lines inside error messages.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return value
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a named parameter holds an invalid value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidFormatError indicates that a value object was constructed from
// malformed input. It carries the offending field name and the raw input
// so callers can report exactly what was rejected.
type InvalidFormatError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewInvalidFormatError creates an InvalidFormatError without a cause.
func NewInvalidFormatError(paramName, value string) *InvalidFormatError {
	return &InvalidFormatError{ParamName: paramName, Value: value}
}

// NewInvalidFormatErrorWithCause creates an InvalidFormatError wrapping an underlying cause.
func NewInvalidFormatErrorWithCause(paramName, value string, cause error) *InvalidFormatError {
	return &InvalidFormatError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *InvalidFormatError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (value: %q, cause: %s)",
			ErrInvalidFormat, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s (value: %q)", ErrInvalidFormat, e.ParamName, e.Value))
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// CurrencyMismatchError indicates a binary money operation across two currencies.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

// NewCurrencyMismatchError creates a CurrencyMismatchError for the two currency codes involved.
func NewCurrencyMismatchError(left, right string) *CurrencyMismatchError {
	return &CurrencyMismatchError{Left: left, Right: right}
}

func (e *CurrencyMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s vs %s", ErrCurrencyMismatch, e.Left, e.Right))
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// InsufficientQuantityError indicates that a subtraction would leave a
// quantity negative. The mutation it guards must not be applied.
type InsufficientQuantityError struct {
	ParamName string
	Available int
	Requested int
}

// NewInsufficientQuantityError creates an InsufficientQuantityError with the amounts involved.
func NewInsufficientQuantityError(paramName string, available, requested int) *InsufficientQuantityError {
	return &InsufficientQuantityError{ParamName: paramName, Available: available, Requested: requested}
}

func (e *InsufficientQuantityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s, available is %d, requested is %d",
		ErrInsufficientQuantity, e.ParamName, e.Available, e.Requested))
}

func (e *InsufficientQuantityError) Unwrap() error {
	return ErrInsufficientQuantity
}
