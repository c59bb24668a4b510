// Package model holds the records read from and written to the store, and
// the display shapes handed to the dashboard views.
//
// Stored amounts are always integer minor units (cents). Display records
// carry amounts already formatted as currency strings.
package model

// DateLayout is the ISO calendar date format used for invoice dates.
const DateLayout = "2006-01-02"
