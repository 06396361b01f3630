package response

import (
	"time"

	"renovation_estimator/internal/domain/entities"
)

type CardPaymentResponse struct {
	PaymentID         string                  `json:"paymentId"`
	ProjectID         string                  `json:"projectId"`
	ProviderPaymentID string                  `json:"providerPaymentId"`
	Amount            float64                 `json:"amount"`
	Status            string                  `json:"status"`
	IsPaid            bool                    `json:"isPaid"`
	Date              time.Time               `json:"date"`
	PaymentDetails    entities.PaymentDetails `json:"paymentDetails"`
}

func FromCardPayment(projectID string, p entities.Payment, details entities.PaymentDetails) CardPaymentResponse {
	return CardPaymentResponse{
		PaymentID:         p.ID,
		ProjectID:         projectID,
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            p.Amount,
		Status:            string(p.Status),
		IsPaid:            p.IsPaid,
		Date:              p.Date,
		PaymentDetails:    details,
	}
}
