package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped Code for a given error, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a raw pgconn.PgError into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates "<DOMAIN>_<ACTION>" application error codes,
// e.g. invoices + ForeignKeyViolation on customer_id => CUSTOMER_NOT_FOUND.
func generateErrorCode(sqlErr *Error) string {
	domain := strings.ToUpper(strings.ReplaceAll(getEntityName(sqlErr.TableName, sqlErr.ColumnName), " ", "_"))
	if sqlErr.Code != ForeignKeyViolation {
		domain = strings.ToUpper(singular(sqlErr.TableName))
		if domain == "" {
			domain = "RECORD"
		}
	}

	action := "ERROR"
	switch sqlErr.Code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", strings.ToLower(entityName))

	case UniqueViolation:
		// "identifier" is replaced when the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", strings.ToLower(entityName))

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(checkedColumn(sqlErr))
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidText:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name from table/column data.
//
//  1. column ending in "_id" wins: "customer_id" -> "Customer"
//  2. otherwise the singularized table: "invoices" -> "Invoice"
//  3. otherwise "record"
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}
	if tableName != "" {
		return humanizeText(singular(tableName))
	}
	return "record"
}

func singular(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case: "image_url" -> "Image Url".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var (
	uniqueKeyPattern  = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	checkPattern      = regexp.MustCompile(`^[^_]+_(.+)_check$`)
	foreignKeyPattern = regexp.MustCompile(`^[^_]+_(.+)_fkey$`)
)

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
//  1. "unique_<table>_<column>", e.g. unique_customers_email -> "email"
//  2. "<table>_<column>_(key|ukey)", e.g. customers_email_key -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// checkedColumn returns the column of a CHECK failure, falling back to the
// Postgres default constraint name "<table>_<column>_check".
func checkedColumn(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}
	if matches := checkPattern.FindStringSubmatch(sqlErr.ConstraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// referencingColumn returns the column of a foreign key failure. Postgres
// leaves ColumnName empty for these, so the default constraint name
// "<table>_<column>_fkey" is parsed instead.
func referencingColumn(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}
	if matches := foreignKeyPattern.FindStringSubmatch(sqlErr.ConstraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: constraint violations become 400s, the rest a 500
//   - ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		if sqlErr.Code == ForeignKeyViolation {
			sqlErr.ColumnName = referencingColumn(sqlErr)
		}
		errorCode := generateErrorCode(sqlErr)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			field := strings.ToLower(sqlErr.ColumnName)
			var fieldErrors []errs.FieldError
			if field != "" {
				fieldErrors = []errs.FieldError{{Field: field, Error: "does not exist"}}
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case UniqueViolation:
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "is required",
			}}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, InvalidText:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

// IsClientError reports whether err maps onto a 4xx response, i.e. the
// store rejected the input rather than failing.
func IsClientError(err error) bool {
	switch ErrCode(err) {
	case ForeignKeyViolation, UniqueViolation, NotNullViolation, CheckViolation, InvalidText:
		return true
	default:
		return false
	}
}
