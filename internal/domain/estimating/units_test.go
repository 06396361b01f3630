package estimating

import (
	"testing"

	"renovation_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCount(t *testing.T) {
	t.Run("no surfaces", func(t *testing.T) {
		units, warnings := UnitCount(entities.WorkItem{MeasurementType: "area"})
		assert.Zero(t, units)
		assert.Empty(t, warnings)
	})

	t.Run("surface type overrides item type", func(t *testing.T) {
		item := entities.WorkItem{
			MeasurementType: "area",
			Surfaces: []entities.Surface{
				{Sqft: 10, LinearFt: 99},
				{MeasurementType: "linear", Sqft: 99, LinearFt: 4},
				{MeasurementType: "by-unit", Units: 3.9},
			},
		}
		units, warnings := UnitCount(item)
		assert.Equal(t, 17.0, units)
		assert.Empty(t, warnings)
	})

	t.Run("aliases resolve case-insensitively", func(t *testing.T) {
		item := entities.WorkItem{
			MeasurementType: "Linear Ft",
			Surfaces: []entities.Surface{
				{LinearFt: 12},
				{MeasurementType: "UNITS", Units: 2},
				{MeasurementType: "Square Foot", Sqft: 1.5},
			},
		}
		units, _ := UnitCount(item)
		assert.Equal(t, 15.5, units)
	})

	t.Run("unknown type contributes zero and warns", func(t *testing.T) {
		item := entities.WorkItem{
			Name:            "Odd",
			CategoryKey:     "kitchen",
			MeasurementType: "area",
			Surfaces: []entities.Surface{
				{Sqft: 5},
				{MeasurementType: "cubic-yard", Sqft: 100},
			},
		}
		units, warnings := UnitCount(item)
		assert.Equal(t, 5.0, units)
		require.Len(t, warnings, 1)
		assert.Equal(t, 1, warnings[0].SurfaceIndex)
		assert.Equal(t, "cubic-yard", warnings[0].MeasurementType)
		assert.Equal(t, "kitchen", warnings[0].CategoryKey)
	})
}

func TestNormalizeMeasurementType(t *testing.T) {
	tests := []struct {
		in   string
		want MeasurementType
	}{
		{"square-foot", MeasurementArea},
		{"square foot", MeasurementArea},
		{"Single-Surface", MeasurementArea},
		{"linear ft", MeasurementLinear},
		{" LINEAR ", MeasurementLinear},
		{"unit", MeasurementByUnit},
		{"units", MeasurementByUnit},
		{"by-unit", MeasurementByUnit},
		{"gallons", MeasurementArea},
		{"", MeasurementArea},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMeasurementType(tt.in))
		})
	}

	_, ok := LookupMeasurementType("gallons")
	assert.False(t, ok)
}
