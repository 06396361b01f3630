package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyProviderPayload = errors.New("mp_payload cannot be empty")

// CardPaymentRequest asks for a card charge against a project's balance.
//
// Amount is optional; zero charges the full balance due. `mp_payload` is forwarded to
// Mercado Pago as-is (card token, payment_method_id, payer, installments).
type CardPaymentRequest struct {
	Amount    float64         `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

func (r CardPaymentRequest) ResolvePayload() (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(r.MPPayload))
	if trimmed == "" || trimmed == "null" {
		return nil, ErrEmptyProviderPayload
	}
	return r.MPPayload, nil
}
