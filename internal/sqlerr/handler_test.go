package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError(t *testing.T) {
	t.Run("Should map an unknown customer to a 400 with a field error", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.ForeignKeyViolation,
			Severity:       "ERROR",
			Message:        `insert or update on table "invoices" violates foreign key constraint "invoices_customer_id_fkey"`,
			TableName:      "invoices",
			ConstraintName: "invoices_customer_id_fkey",
		}

		httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert invoice: %w", pgErr)))

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "CUSTOMER_NOT_FOUND", httpErr.Code)
		assert.Equal(t, "The referenced customer does not exist", httpErr.Message)
		msg, ok := httpErr.Field("customer_id")
		assert.True(t, ok)
		assert.Equal(t, "does not exist", msg)
	})

	t.Run("Should name the column of a check violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.CheckViolation,
			TableName:      "invoices",
			ConstraintName: "invoices_amount_check",
		}

		httpErr := asHTTPError(t, HandleError(pgErr))

		assert.Equal(t, "INVOICE_INVALID", httpErr.Code)
		assert.Equal(t, "The Amount value does not meet required conditions", httpErr.Message)
	})

	t.Run("Should name the column of a unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			TableName:      "customers",
			ConstraintName: "customers_email_key",
		}

		httpErr := asHTTPError(t, HandleError(pgErr))

		assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A customer with this Email already exists", httpErr.Message)
	})

	t.Run("Should hide unexpected driver errors behind a 500", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.DiskFull}
		assert.Equal(t, http.StatusInternalServerError, asHTTPError(t, HandleError(pgErr)).Status)

		assert.Equal(t, http.StatusInternalServerError, asHTTPError(t, HandleError(errors.New("boom"))).Status)
	})

	t.Run("Should map no rows to a 404", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(fmt.Errorf("get invoice: %w", pgx.ErrNoRows)))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("Should pass HTTP errors through", func(t *testing.T) {
		original := errs.NewNotFoundError("Invoice not found", true, nil)
		assert.Same(t, original, HandleError(original))
	})
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, IsClientError(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation})))
	assert.False(t, IsClientError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.False(t, IsClientError(errors.New("boom")))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, NotNullViolation, MapCode(pgerrcode.NotNullViolation))
	assert.Equal(t, ConnectionFailure, MapCode(pgerrcode.ConnectionFailure))
	assert.Equal(t, Other, MapCode(pgerrcode.DiskFull))
	assert.Equal(t, SeverityError, MapSeverity(""))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
}
