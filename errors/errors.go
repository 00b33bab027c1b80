package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or identifiers;
	// the caller may retry with corrected input
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents unrecoverable errors for the current operation
	ErrorFatal
	// ErrorTransient represents temporary errors that may be retried as-is
	ErrorTransient
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	case ErrorTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Standard error variables for the named failure conditions
var (
	// Identifier and structure errors
	ErrInvalidOperation   = errors.New("attempted execution of an invalid operation")
	ErrInvalidDataType    = errors.New("attempted use of an invalid data type")
	ErrInvalidMessageType = errors.New("invalid message type")

	// Environment and resolution errors
	ErrPackageNotFound       = errors.New("package not found")
	ErrDefinitionUnreadable  = errors.New("definition resource unreadable")
	ErrDefinitionParseFailed = errors.New("definition parse failed")

	// Type-system errors
	ErrUnknownDataType     = errors.New("data type does not exist")
	ErrAmbiguousIdentifier = errors.New("data type identifier is used ambiguously")
	ErrDataTypeMismatch    = errors.New("provided data type mismatches expected data type")
	ErrImmutableDataType   = errors.New("attempted modification of an immutable data type")

	// Signature errors
	ErrSignatureMismatch = errors.New("provided signature mismatches expected signature")

	// Member access errors
	ErrNoSuchMember = errors.New("message member does not exist")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input or identifiers
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidDataType) ||
		errors.Is(err, ErrInvalidMessageType) ||
		errors.Is(err, ErrDataTypeMismatch) ||
		errors.Is(err, ErrSignatureMismatch) ||
		errors.Is(err, ErrDefinitionParseFailed)
}

// IsFatal checks if an error is fatal for the current operation
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrPackageNotFound) ||
		errors.Is(err, ErrDefinitionUnreadable) ||
		errors.Is(err, ErrImmutableDataType) ||
		errors.Is(err, ErrInvalidOperation)
}

// IsNotFound checks if an error reports genuine absence rather than
// misconfiguration, letting callers give up instead of retrying
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownDataType) ||
		errors.Is(err, ErrPackageNotFound) ||
		errors.Is(err, ErrNoSuchMember)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorTransient
	}

	if IsInvalid(err) {
		return ErrorInvalid
	}
	if IsFatal(err) {
		return ErrorFatal
	}

	return ErrorTransient
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need not import both this package and stdlib errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
