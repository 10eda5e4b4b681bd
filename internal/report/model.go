package report

// Totals holds per-status sums of quantity × price across a user's orders.
type Totals struct {
	PaidTotal    float64 `json:"paidTotal"`
	PendingTotal float64 `json:"pendingTotal"`
	FailedTotal  float64 `json:"failedTotal"`
}

// Counts holds per-status order counts.
type Counts struct {
	PaidCount    int `json:"paidCount"`
	PendingCount int `json:"pendingCount"`
	FailedCount  int `json:"failedCount"`
}

type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type InvoiceCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type InvoiceOrder struct {
	OrderID     string          `json:"orderId"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Customer    InvoiceCustomer `json:"customer"`
	Items       []InvoiceItem   `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
}

type InvoiceBusiness struct {
	Name string `json:"name"`
}

// Invoice is the single-order invoice view.
type Invoice struct {
	Business InvoiceBusiness `json:"business"`
	Order    InvoiceOrder    `json:"order"`
}

type ReportItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// ReportRow is one order in the all-orders report.
type ReportRow struct {
	OrderID         string       `json:"orderId"`
	Date            string       `json:"date"`
	CustomerName    string       `json:"customerName"`
	CustomerPhone   string       `json:"customerPhone"`
	CustomerAddress string       `json:"customerAddress"`
	Status          string       `json:"status"`
	Items           []ReportItem `json:"items"`
	TotalAmount     float64      `json:"totalAmount"`
}
