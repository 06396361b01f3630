package entities

// WorkItemKind discriminates the two shapes a work item can take.
type WorkItemKind string

const (
	WorkItemKindStandard WorkItemKind = "standard"
	WorkItemKindCustom   WorkItemKind = "custom"
)

// CustomWorkTypeMarker is the work item type reserved for user-defined work. Items carrying
// it must also carry a non-blank CustomWorkTypeName.
const CustomWorkTypeMarker = "custom-work-type"

// WorkItem is a billable unit of work inside a category.
//
// MaterialCost and LaborCost are per-unit rates. CategoryKey is a denormalized copy of the
// owning category's key and is overwritten on every validation pass.
type WorkItem struct {
	Type               string    `json:"type" validate:"required"`
	CustomWorkTypeName string    `json:"customWorkTypeName,omitempty"`
	Name               string    `json:"name"`
	MaterialCost       float64   `json:"materialCost" validate:"gte=0"`
	LaborCost          float64   `json:"laborCost" validate:"gte=0"`
	MeasurementType    string    `json:"measurementType"`
	Surfaces           []Surface `json:"surfaces" validate:"dive"`
	CategoryKey        string    `json:"categoryKey"`
	Notes              string    `json:"notes,omitempty"`
}

// NewStandardWorkItem builds an item whose type is checked against the taxonomy.
func NewStandardWorkItem(workType, name string) WorkItem {
	return WorkItem{Type: workType, Name: name}
}

// NewCustomWorkItem builds a user-defined item. The custom name is mandatory.
func NewCustomWorkItem(customName, name string) WorkItem {
	return WorkItem{Type: CustomWorkTypeMarker, CustomWorkTypeName: customName, Name: name}
}

func (w WorkItem) Kind() WorkItemKind {
	if w.Type == CustomWorkTypeMarker {
		return WorkItemKindCustom
	}
	return WorkItemKindStandard
}
