package estimating

import (
	"math"
	"strings"

	"renovation_estimator/internal/domain/entities"
)

// UnitWarning flags a surface whose measurement type could not be resolved. The surface
// contributes nothing to the unit count.
type UnitWarning struct {
	CategoryKey     string
	WorkItemName    string
	SurfaceIndex    int
	MeasurementType string
}

// UnitCount converts an item's surfaces into the scalar quantity its rates apply to.
func UnitCount(item entities.WorkItem) (float64, []UnitWarning) {
	var (
		total    float64
		warnings []UnitWarning
	)
	for i, s := range item.Surfaces {
		raw := s.MeasurementType
		if strings.TrimSpace(raw) == "" {
			raw = item.MeasurementType
		}
		mt, ok := LookupMeasurementType(raw)
		if !ok {
			warnings = append(warnings, UnitWarning{
				CategoryKey:     item.CategoryKey,
				WorkItemName:    item.Name,
				SurfaceIndex:    i,
				MeasurementType: raw,
			})
			continue
		}
		switch mt {
		case MeasurementArea:
			total += s.Sqft
		case MeasurementLinear:
			total += s.LinearFt
		case MeasurementByUnit:
			total += math.Trunc(s.Units)
		}
	}
	return total, warnings
}
