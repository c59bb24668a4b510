package errs

import (
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// DataAccessError reports that an underlying store call failed.
//
// Message is the operation-specific text shown to clients
// (e.g. "Failed to fetch revenue data."). Err keeps the driver error for
// logs and errors.Is/As; it is never serialized.
type DataAccessError struct {
	Op      string
	Message string
	Err     error
}

// NewDataAccessError wraps err for the named operation, recording the
// stack of the failed call for the error log.
func NewDataAccessError(op, message string, err error) *DataAccessError {
	if err != nil {
		err = pkgerrors.WithStack(err)
	}
	return &DataAccessError{Op: op, Message: message, Err: err}
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// HTTPError converts the failure into the generic 500 response shape,
// keeping the operation message but none of the driver details.
func (e *DataAccessError) HTTPError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  e.Message,
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// IsDataAccess reports whether err carries a DataAccessError.
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
