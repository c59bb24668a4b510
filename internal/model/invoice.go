package model

import (
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/validation"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is a row of the invoices table.
type Invoice struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Amount     int64     `db:"amount" json:"amount"`
	Status     Status    `db:"status" json:"status"`
	Date       time.Time `db:"date" json:"date"`
}

// InvoiceInput is the raw form submitted by the create and edit views.
// All fields arrive as strings; Amount is in major units ("15.50").
type InvoiceInput struct {
	CustomerID string `form:"customerId" json:"customerId" validate:"required"`
	Amount     string `form:"amount" json:"amount" validate:"required,amount"`
	Status     Status `form:"status" json:"status" validate:"required,oneof=pending paid"`
}

func (i *InvoiceInput) Validate() error {
	return validation.Struct(i)
}

// UpdateInvoiceInput is an InvoiceInput addressed to an existing invoice.
type UpdateInvoiceInput struct {
	ID string `param:"id" json:"-" validate:"required"`
	InvoiceInput
}

func (i *UpdateInvoiceInput) Validate() error {
	return validation.Struct(i)
}

// InvoiceIDParam addresses a single invoice from the route.
type InvoiceIDParam struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (p *InvoiceIDParam) Validate() error {
	return validation.Struct(p)
}

// InvoiceSearch is the listing query: a free-text filter and a 1-based page.
type InvoiceSearch struct {
	Query string `query:"query" json:"query"`
	Page  int    `query:"page" json:"page" validate:"gte=0"`
}

func (s *InvoiceSearch) Validate() error {
	return validation.Struct(s)
}

// LatestInvoice is a dashboard row for the most recent invoices.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoicesTableRow is a row of the filtered invoice listing.
type InvoicesTableRow struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `json:"date"`
	Amount     int64  `json:"amount"`
	Status     Status `json:"status"`
}

// InvoiceForm prefills the edit view.
//
// AmountCents is the stored value. Amount is the same value in major units,
// which is what the edit form submits back.
type InvoiceForm struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Status      Status `json:"status"`
}

// InvoicePages is the page count for a listing query.
type InvoicePages struct {
	TotalPages int `json:"total_pages"`
}
