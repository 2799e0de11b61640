package domain

import "time"

type CustomerBillingRecord struct {
	ID            int64     `json:"id"`
	InvoiceDate   time.Time `json:"invoice_date"`
	CustomerID    string    `json:"customer_id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method"`
}

const BillingStatusDefault = "unpaid"

var billingStatuses = map[string]struct{}{
	"unpaid":  {},
	"paid":    {},
	"overdue": {},
}

func ValidBillingStatus(s string) bool {
	_, ok := billingStatuses[s]
	return ok
}

var paymentMethods = map[string]struct{}{
	"cash":  {},
	"card":  {},
	"check": {},
}

func ValidPaymentMethod(s string) bool {
	_, ok := paymentMethods[s]
	return ok
}
