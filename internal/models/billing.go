package models

// BillingStatus is the state of the subscription
type BillingStatus string

const (
	BillingActive    BillingStatus = "active"
	BillingCancelled BillingStatus = "cancelled"
	BillingPending   BillingStatus = "pending"
)

// PaymentMethod describes the card on file
type PaymentMethod struct {
	Type   string `json:"type"`
	Brand  string `json:"brand"`
	Last4  string `json:"last4"`
	Expiry string `json:"expiry"`
}

// Invoice is one entry of the billing history
type Invoice struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// BillingInfo is the subscription shown on the settings page
type BillingInfo struct {
	Plan           string        `json:"plan"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	NextBilling    string        `json:"nextBilling"`
	Status         BillingStatus `json:"status"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	BillingHistory []Invoice     `json:"billingHistory"`
}
