// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldErrors for forms, HTTPError for API responses, DataAccessError
// for failed store calls) so the client receives meaningful, actionable,
// and consistent error messages.
package errs
