package entities

import "time"

// Project is a renovation estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Derived blocks:
//   - Totals and PaymentDetails are recomputed on every write and never trusted from input.
type Project struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"ownerId"`
	CustomerInfo   CustomerInfo   `json:"customerInfo"`
	Categories     []Category     `json:"categories" validate:"min=1,dive"`
	Settings       Settings       `json:"settings"`
	Totals         Totals         `json:"totals"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CustomerInfo holds the client contact block. Address is the composite street line and is
// derived from the street components whenever they are present.
type CustomerInfo struct {
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

type Category struct {
	Key       string     `json:"key" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	WorkItems []WorkItem `json:"workItems" validate:"dive"`
}

type Surface struct {
	MeasurementType string  `json:"measurementType,omitempty"`
	Width           float64 `json:"width" validate:"gte=0"`
	Height          float64 `json:"height" validate:"gte=0"`
	Sqft            float64 `json:"sqft" validate:"gte=0"`
	LinearFt        float64 `json:"linearFt" validate:"gte=0"`
	Units           float64 `json:"units" validate:"gte=0"`
	Length          float64 `json:"length" validate:"gte=0"`
}

type Settings struct {
	TaxRate           float64   `json:"taxRate" validate:"gte=0,lte=1"`
	WasteFactor       float64   `json:"wasteFactor" validate:"gte=0,lte=1"`
	LaborDiscount     float64   `json:"laborDiscount" validate:"gte=0,lte=1"`
	Markup            float64   `json:"markup" validate:"gte=0,lte=10"`
	TransportationFee float64   `json:"transportationFee" validate:"gte=0"`
	MiscFees          []MiscFee `json:"miscFees" validate:"dive"`
	Payments          []Payment `json:"payments" validate:"dive"`
}

type MiscFee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Totals is the flat cost breakdown produced by the totals calculator. Every field is rounded
// to 2 decimal places.
type Totals struct {
	MaterialCost            float64 `json:"materialCost"`
	LaborCost               float64 `json:"laborCost"`
	LaborCostBeforeDiscount float64 `json:"laborCostBeforeDiscount"`
	LaborDiscount           float64 `json:"laborDiscount"`
	WasteCost               float64 `json:"wasteCost"`
	TaxAmount               float64 `json:"taxAmount"`
	MarkupAmount            float64 `json:"markupAmount"`
	MiscFeesTotal           float64 `json:"miscFeesTotal"`
	TransportationFee       float64 `json:"transportationFee"`
	Subtotal                float64 `json:"subtotal"`
	Total                   float64 `json:"total"`
}

type PaymentDetails struct {
	TotalPaid     float64 `json:"totalPaid"`
	TotalDue      float64 `json:"totalDue"`
	DepositAmount float64 `json:"depositAmount"`
}
