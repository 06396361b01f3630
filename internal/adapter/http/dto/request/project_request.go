package request

import (
	"encoding/json"
	"strings"

	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/domain/estimating"
)

// ProjectRequest is the create/update/preview payload.
//
// Work items and payments are kept as raw JSON: malformed entries are dropped one by one
// further down instead of failing the whole bind.
type ProjectRequest struct {
	CustomerInfo CustomerInfoRequest `json:"customerInfo"`
	Categories   []CategoryRequest   `json:"categories" binding:"required"`
	Settings     SettingsRequest     `json:"settings"`
}

type CustomerInfoRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	StreetNumber string `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	Unit         string `json:"unit"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

type CategoryRequest struct {
	Key       string            `json:"key"`
	Name      string            `json:"name"`
	WorkItems []json.RawMessage `json:"workItems"`
}

type MiscFeeRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type SettingsRequest struct {
	TaxRate           float64          `json:"taxRate"`
	WasteFactor       float64          `json:"wasteFactor"`
	LaborDiscount     float64          `json:"laborDiscount"`
	Markup            float64          `json:"markup"`
	TransportationFee float64          `json:"transportationFee"`
	MiscFees          []MiscFeeRequest `json:"miscFees"`
	Payments          json.RawMessage  `json:"payments" swaggertype:"array,object"`
}

func (r ProjectRequest) RawCategories() []estimating.RawCategory {
	out := make([]estimating.RawCategory, 0, len(r.Categories))
	for _, c := range r.Categories {
		out = append(out, estimating.RawCategory{Key: c.Key, Name: c.Name, WorkItems: c.WorkItems})
	}
	return out
}

func (r ProjectRequest) ToCustomerInfo() entities.CustomerInfo {
	c := r.CustomerInfo
	return entities.CustomerInfo{
		FirstName:    strings.TrimSpace(c.FirstName),
		LastName:     strings.TrimSpace(c.LastName),
		Email:        strings.TrimSpace(c.Email),
		Phone:        strings.TrimSpace(c.Phone),
		StreetNumber: strings.TrimSpace(c.StreetNumber),
		StreetName:   strings.TrimSpace(c.StreetName),
		Unit:         strings.TrimSpace(c.Unit),
		City:         strings.TrimSpace(c.City),
		State:        strings.TrimSpace(c.State),
		ZipCode:      strings.TrimSpace(c.ZipCode),
		Address:      strings.TrimSpace(c.Address),
		Notes:        c.Notes,
	}
}

func (r ProjectRequest) ToSettings() entities.Settings {
	s := r.Settings
	fees := make([]entities.MiscFee, 0, len(s.MiscFees))
	for _, f := range s.MiscFees {
		fees = append(fees, entities.MiscFee{Name: strings.TrimSpace(f.Name), Amount: f.Amount})
	}
	return entities.Settings{
		TaxRate:           s.TaxRate,
		WasteFactor:       s.WasteFactor,
		LaborDiscount:     s.LaborDiscount,
		Markup:            s.Markup,
		TransportationFee: s.TransportationFee,
		MiscFees:          fees,
		Payments:          estimating.DecodePayments(s.Payments),
	}
}
