// Package errs provides the error taxonomy shared by the sales application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: an object cannot be found
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ValueIsRequiredError: a required value is missing
//   - VersionIsInvalidError: an aggregate was modified concurrently
//   - DomainError: a business rule of the order aggregate was violated
//
// Each error type follows the same pattern: a sentinel variable (e.g. ErrValueIsRequired),
// a struct with the error details, constructors with and without cause, an Error method
// and an Unwrap method so that errors.Is matches the sentinel.
package errs
