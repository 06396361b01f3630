package estimating

import "strings"

// MeasurementType is the canonical unit family a surface is measured in.
type MeasurementType string

const (
	MeasurementArea   MeasurementType = "area"
	MeasurementLinear MeasurementType = "linear"
	MeasurementByUnit MeasurementType = "by-unit"
)

var measurementAliases = map[string]MeasurementType{
	"area":           MeasurementArea,
	"sqft":           MeasurementArea,
	"sq ft":          MeasurementArea,
	"square-foot":    MeasurementArea,
	"square foot":    MeasurementArea,
	"square-feet":    MeasurementArea,
	"square feet":    MeasurementArea,
	"single-surface": MeasurementArea,
	"single surface": MeasurementArea,

	"linear":      MeasurementLinear,
	"linear-ft":   MeasurementLinear,
	"linear ft":   MeasurementLinear,
	"linear-foot": MeasurementLinear,
	"linear foot": MeasurementLinear,
	"linear-feet": MeasurementLinear,
	"linear feet": MeasurementLinear,
	"linearft":    MeasurementLinear,

	"by-unit": MeasurementByUnit,
	"by unit": MeasurementByUnit,
	"unit":    MeasurementByUnit,
	"units":   MeasurementByUnit,
	"each":    MeasurementByUnit,
}

// LookupMeasurementType resolves a free-form measurement string. The match is
// case-insensitive and ignores surrounding whitespace.
func LookupMeasurementType(raw string) (MeasurementType, bool) {
	mt, ok := measurementAliases[strings.ToLower(strings.TrimSpace(raw))]
	return mt, ok
}

// NormalizeMeasurementType is LookupMeasurementType with unrecognized values falling back to
// area.
func NormalizeMeasurementType(raw string) MeasurementType {
	if mt, ok := LookupMeasurementType(raw); ok {
		return mt
	}
	return MeasurementArea
}
