package entities

import "time"

// PaymentStatus represents where a scheduled or received payment stands.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Payment is an entry of the project's payment schedule.
//
// Card payments collected through Mercado Pago are appended here with Method "Card" and
// the provider payment id in ProviderPaymentID.
type Payment struct {
	ID                string        `json:"id"`
	Date              time.Time     `json:"date"`
	Amount            float64       `json:"amount" validate:"gte=0.01"`
	Method            string        `json:"method"`
	IsPaid            bool          `json:"isPaid"`
	Status            PaymentStatus `json:"status"`
	Note              string        `json:"note,omitempty"`
	ProviderPaymentID string        `json:"providerPaymentId,omitempty"`
}
