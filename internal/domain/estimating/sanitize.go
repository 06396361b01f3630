package estimating

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"renovation_estimator/internal/domain/entities"
)

// DefaultWorkItemName is applied to surviving items that arrive without a name.
const DefaultWorkItemName = "Untitled Work Item"

// RawCategory is a category exactly as received from a caller. Work items stay raw so that
// malformed entries can be dropped individually instead of failing the whole decode.
type RawCategory struct {
	Key       string
	Name      string
	WorkItems []json.RawMessage
}

// Sanitize turns a caller-supplied category tree into a well-formed one.
//
// A category without key or name fails the whole call. Work items that are not objects, have
// a blank type, or are custom without a custom name are dropped. Categories are kept even
// when they end up empty, but at least one item must survive across the tree.
func Sanitize(raw []RawCategory) ([]entities.Category, error) {
	out := make([]entities.Category, 0, len(raw))
	survivors := 0
	for i, rc := range raw {
		key := strings.TrimSpace(rc.Key)
		name := strings.TrimSpace(rc.Name)
		if key == "" {
			return nil, structuralError(fmt.Sprintf("categories[%d].key", i),
				fmt.Sprintf("category at index %d is missing a key", i), nil)
		}
		if name == "" {
			return nil, structuralError(fmt.Sprintf("categories[%d].name", i),
				fmt.Sprintf("category at index %d is missing a name", i), nil)
		}

		cat := entities.Category{Key: key, Name: name, WorkItems: make([]entities.WorkItem, 0, len(rc.WorkItems))}
		for _, rawItem := range rc.WorkItems {
			item, ok := sanitizeWorkItem(rawItem, key)
			if !ok {
				continue
			}
			cat.WorkItems = append(cat.WorkItems, item)
		}
		survivors += len(cat.WorkItems)
		out = append(out, cat)
	}
	if survivors == 0 {
		return nil, structuralError("categories", "no valid work items", ErrNoValidWorkItem)
	}
	return out, nil
}

func sanitizeWorkItem(raw json.RawMessage, categoryKey string) (entities.WorkItem, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return entities.WorkItem{}, false
	}

	workType := stringField(fields, "type")
	if workType == "" {
		return entities.WorkItem{}, false
	}
	name := stringField(fields, "name")
	if name == "" {
		name = DefaultWorkItemName
	}

	var item entities.WorkItem
	if workType == entities.CustomWorkTypeMarker {
		customName := stringField(fields, "customWorkTypeName")
		if customName == "" {
			return entities.WorkItem{}, false
		}
		item = entities.NewCustomWorkItem(customName, name)
	} else {
		item = entities.NewStandardWorkItem(workType, name)
	}

	item.MaterialCost = numberField(fields, "materialCost")
	item.LaborCost = numberField(fields, "laborCost")
	item.MeasurementType = stringField(fields, "measurementType")
	if item.MeasurementType == "" {
		item.MeasurementType = string(MeasurementArea)
	}
	item.Notes = stringField(fields, "notes")
	item.CategoryKey = categoryKey
	item.Surfaces = sanitizeSurfaces(fields["surfaces"])
	return item, true
}

func sanitizeSurfaces(v any) []entities.Surface {
	list, ok := v.([]any)
	if !ok {
		return []entities.Surface{}
	}
	out := make([]entities.Surface, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, entities.Surface{
			MeasurementType: stringField(m, "measurementType"),
			Width:           numberField(m, "width"),
			Height:          numberField(m, "height"),
			Sqft:            numberField(m, "sqft"),
			LinearFt:        numberField(m, "linearFt"),
			Units:           numberField(m, "units"),
			Length:          numberField(m, "length"),
		})
	}
	return out
}

func stringField(m map[string]any, key string) string {
	s, ok := m[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// numberField accepts JSON numbers and numeric strings; anything else is 0.
func numberField(m map[string]any, key string) float64 {
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
