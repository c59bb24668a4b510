package model

// Customer is a row of the customers table.
type Customer struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	ImageURL string `db:"image_url" json:"image_url"`
}

// CustomerField is the id/name pair offered by the invoice form's picker.
type CustomerField struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// CustomersTableRow is a row of the customer table with invoice aggregates.
type CustomersTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// CustomerSearch filters the customer table by name or email.
type CustomerSearch struct {
	Query string `query:"query" json:"query"`
}

func (s *CustomerSearch) Validate() error {
	return nil
}
