package response

import (
	"strings"
	"time"

	"renovation_estimator/internal/domain/entities"
)

type ProjectResponse struct {
	ID             string                  `json:"id"`
	CustomerInfo   entities.CustomerInfo   `json:"customerInfo"`
	Categories     []entities.Category     `json:"categories"`
	Settings       entities.Settings       `json:"settings"`
	Totals         entities.Totals         `json:"totals"`
	PaymentDetails entities.PaymentDetails `json:"paymentDetails"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// ProjectSummaryResponse is the list row: enough to render a project card without the tree.
type ProjectSummaryResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address"`
	Categories   int       `json:"categories"`
	WorkItems    int       `json:"workItems"`
	Total        float64   `json:"total"`
	TotalDue     float64   `json:"totalDue"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CalculationResponse is the preview result. Nothing in it has been persisted.
type CalculationResponse struct {
	Categories     []entities.Category     `json:"categories"`
	Totals         entities.Totals         `json:"totals"`
	PaymentDetails entities.PaymentDetails `json:"paymentDetails"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		CustomerInfo:   p.CustomerInfo,
		Categories:     nonNilCategories(p.Categories),
		Settings:       p.Settings,
		Totals:         p.Totals,
		PaymentDetails: p.PaymentDetails,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProjectSummary(p entities.Project) ProjectSummaryResponse {
	items := 0
	for _, c := range p.Categories {
		items += len(c.WorkItems)
	}
	name := strings.TrimSpace(p.CustomerInfo.FirstName + " " + p.CustomerInfo.LastName)
	return ProjectSummaryResponse{
		ID:           p.ID,
		CustomerName: name,
		Address:      p.CustomerInfo.Address,
		Categories:   len(p.Categories),
		WorkItems:    items,
		Total:        p.Totals.Total,
		TotalDue:     p.PaymentDetails.TotalDue,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProjectList(projects []entities.Project) []ProjectSummaryResponse {
	out := make([]ProjectSummaryResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProjectSummary(p))
	}
	return out
}

func FromCalculation(p entities.Project) CalculationResponse {
	return CalculationResponse{
		Categories:     nonNilCategories(p.Categories),
		Totals:         p.Totals,
		PaymentDetails: p.PaymentDetails,
	}
}

func nonNilCategories(c []entities.Category) []entities.Category {
	if c == nil {
		return []entities.Category{}
	}
	return c
}
