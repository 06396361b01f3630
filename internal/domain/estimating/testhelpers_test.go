package estimating

import (
	"encoding/json"
	"testing"

	"renovation_estimator/internal/domain/entities"
)

func rawItems(t *testing.T, items ...any) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, json.RawMessage(s))
			continue
		}
		b, err := json.Marshal(it)
		if err != nil {
			t.Fatalf("marshal item: %v", err)
		}
		out = append(out, b)
	}
	return out
}

func kitchenFlooring(sqft, material, labor float64) entities.WorkItem {
	item := entities.NewStandardWorkItem("kitchen-flooring", "Tile floor")
	item.MaterialCost = material
	item.LaborCost = labor
	item.MeasurementType = string(MeasurementArea)
	item.CategoryKey = "kitchen"
	item.Surfaces = []entities.Surface{{MeasurementType: string(MeasurementArea), Sqft: sqft}}
	return item
}

func kitchenProject(items ...entities.WorkItem) entities.Project {
	return entities.Project{
		ID:      "p-1",
		OwnerID: "owner-1",
		Categories: []entities.Category{
			{Key: "kitchen", Name: "Kitchen", WorkItems: items},
		},
	}
}
