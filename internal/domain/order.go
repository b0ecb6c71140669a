package domain

import "time"

// Customer holds the checkout form fields. Phone and Notes are optional.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// Order is the ephemeral snapshot produced at submission. It lives only for
// the confirmation display and is discarded once acknowledged.
type Order struct {
	ID       string
	Number   string
	Customer Customer
	Items    []LineItem
	Total    float64
	PlacedAt time.Time
}

// Confirmation is what the user sees after a successful submission.
type Confirmation struct {
	OrderNumber string
	Total       float64
	Items       []LineItem
}
