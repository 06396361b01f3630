package estimating

import (
	"strings"

	"renovation_estimator/internal/domain/entities"
)

// RepairedCustomWorkTypeName replaces a blank custom work type name on stored records.
const RepairedCustomWorkTypeName = "Unnamed Custom Work"

// NeedsCustomNameRepair reports whether any custom work item of p has a blank name.
func NeedsCustomNameRepair(p entities.Project) bool {
	for _, cat := range p.Categories {
		for _, item := range cat.WorkItems {
			if needsName(item) {
				return true
			}
		}
	}
	return false
}

// RepairCustomWorkNames names every unnamed custom work item of p in place and returns how
// many items it touched. Running it on a healthy project is a no-op.
func RepairCustomWorkNames(p *entities.Project) int {
	repaired := 0
	for i := range p.Categories {
		items := p.Categories[i].WorkItems
		for j := range items {
			if needsName(items[j]) {
				items[j].CustomWorkTypeName = RepairedCustomWorkTypeName
				repaired++
			}
		}
	}
	return repaired
}

func needsName(item entities.WorkItem) bool {
	return item.Kind() == entities.WorkItemKindCustom && strings.TrimSpace(item.CustomWorkTypeName) == ""
}
