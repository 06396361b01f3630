package estimating

import (
	"testing"

	"renovation_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestRepairCustomWorkNames(t *testing.T) {
	unnamed := entities.WorkItem{Type: entities.CustomWorkTypeMarker, Name: "x", CustomWorkTypeName: "  "}
	named := entities.NewCustomWorkItem("Sauna heater", "y")
	std := kitchenFlooring(1, 1, 1)

	p := kitchenProject(std, unnamed, named)
	p.Categories = append(p.Categories, entities.Category{
		Key: "custom-shed", Name: "Shed",
		WorkItems: []entities.WorkItem{{Type: entities.CustomWorkTypeMarker}},
	})

	assert.True(t, NeedsCustomNameRepair(p))
	assert.Equal(t, 2, RepairCustomWorkNames(&p))

	assert.Equal(t, RepairedCustomWorkTypeName, p.Categories[0].WorkItems[1].CustomWorkTypeName)
	assert.Equal(t, "Sauna heater", p.Categories[0].WorkItems[2].CustomWorkTypeName)
	assert.Equal(t, RepairedCustomWorkTypeName, p.Categories[1].WorkItems[0].CustomWorkTypeName)
	assert.Empty(t, p.Categories[0].WorkItems[0].CustomWorkTypeName)

	assert.False(t, NeedsCustomNameRepair(p))
	assert.Zero(t, RepairCustomWorkNames(&p))
}

func TestRepairedProjectPassesEnforcer(t *testing.T) {
	p := kitchenProject(entities.WorkItem{Type: entities.CustomWorkTypeMarker, Name: "x"})
	e := NewEnforcer(DefaultTaxonomy())

	_, err := e.Enforce(p)
	assert.Error(t, err)

	RepairCustomWorkNames(&p)
	_, err = e.Enforce(p)
	assert.NoError(t, err)
}
