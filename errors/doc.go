// Package errors provides standardized error handling patterns for the
// variant library. It includes error classification, standard error
// variables for every named failure condition of the type system, and
// helper functions for consistent error wrapping across the module.
//
// # Error Classification
//
// Errors carry one of three classes that tells callers how to react:
//
//   - Invalid: bad input or identifiers; retry with corrected input
//   - Fatal: unrecoverable for the current operation; do not retry
//   - Transient: temporary condition; retry may succeed
//
// The classification integrates with Go's standard error handling,
// supporting errors.Is, errors.As and wrapping chains. The package
// re-exports Is, As and New so callers need only one errors import.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if _, ok := packages[name]; !ok {
//	    return errors.ErrPackageNotFound
//	}
//
// Wrap them with component context at the failure site:
//
//	return errors.WrapInvalid(errors.ErrUnknownDataType,
//	    "Registry", "Lookup", fmt.Sprintf("looking up [%s]", identifier))
//
// And branch on class or sentinel at the call site:
//
//	if errors.Is(err, errors.ErrUnknownDataType) { ... }
//	if errors.IsFatal(err) { ... }
package errors
