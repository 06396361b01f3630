package estimating

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"renovation_estimator/internal/domain/entities"
)

// DepositMethod is the payment method that marks an entry as the project deposit.
const DepositMethod = "Deposit"

// AggregatePayments sums the paid entries of a schedule against the grand total.
func AggregatePayments(payments []entities.Payment, grandTotal float64) entities.PaymentDetails {
	var paid, deposit float64
	for _, p := range payments {
		if !p.IsPaid {
			continue
		}
		paid += p.Amount
		if IsDeposit(p.Method) {
			deposit += p.Amount
		}
	}
	return entities.PaymentDetails{
		TotalPaid:     Round2(paid),
		TotalDue:      Round2(math.Max(0, grandTotal-paid)),
		DepositAmount: Round2(deposit),
	}
}

// IsDeposit reports whether method is the deposit marker. Methods are typed by hand in the
// client, so the match ignores case and surrounding spaces: "deposit " counts, "Deposit 2"
// does not.
func IsDeposit(method string) bool {
	return strings.EqualFold(strings.TrimSpace(method), DepositMethod)
}

// DecodePayments reads a payment schedule from raw JSON. Absent input or anything other than
// an array yields an empty schedule; array elements that are not payment objects are skipped.
func DecodePayments(raw json.RawMessage) []entities.Payment {
	var elems []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elems) != nil {
		return []entities.Payment{}
	}
	out := make([]entities.Payment, 0, len(elems))
	for _, el := range elems {
		if len(el) == 0 || el[0] != '{' {
			continue
		}
		var p paymentPayload
		if err := json.Unmarshal(el, &p); err != nil {
			continue
		}
		out = append(out, p.toEntity())
	}
	return out
}

type paymentPayload struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Amount            float64 `json:"amount"`
	Method            string  `json:"method"`
	IsPaid            bool    `json:"isPaid"`
	Status            string  `json:"status"`
	Note              string  `json:"note"`
	ProviderPaymentID string  `json:"providerPaymentId"`
}

var paymentDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func (p paymentPayload) toEntity() entities.Payment {
	var date time.Time
	for _, layout := range paymentDateLayouts {
		if d, err := time.Parse(layout, strings.TrimSpace(p.Date)); err == nil {
			date = d.UTC()
			break
		}
	}
	status := entities.PaymentStatus(strings.ToLower(strings.TrimSpace(p.Status)))
	if status == "" {
		status = entities.PaymentStatusPending
		if p.IsPaid {
			status = entities.PaymentStatusPaid
		}
	}
	return entities.Payment{
		ID:                strings.TrimSpace(p.ID),
		Date:              date,
		Amount:            p.Amount,
		Method:            strings.TrimSpace(p.Method),
		IsPaid:            p.IsPaid,
		Status:            status,
		Note:              p.Note,
		ProviderPaymentID: p.ProviderPaymentID,
	}
}
