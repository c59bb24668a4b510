package model

// Revenue is the recorded revenue for one month.
type Revenue struct {
	Month   string `db:"month" json:"month"`
	Revenue int64  `db:"revenue" json:"revenue"`
}

// CardData holds the dashboard summary figures.
type CardData struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// NoParams is the request type for endpoints that take no input.
type NoParams struct{}

func (*NoParams) Validate() error {
	return nil
}
