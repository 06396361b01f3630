package estimating

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"renovation_estimator/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// Enforcer is the pre-persist pass. It re-derives denormalized fields, normalizes
// measurement types and validates the tree against the taxonomy and the field rules.
//
// Enforce is pure and idempotent: it never mutates its argument and enforcing an already
// enforced project returns it unchanged.
type Enforcer struct {
	taxonomy *Taxonomy
	validate *validator.Validate
}

func NewEnforcer(taxonomy *Taxonomy) *Enforcer {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Enforcer{taxonomy: taxonomy, validate: v}
}

func (e *Enforcer) Taxonomy() *Taxonomy { return e.taxonomy }

func (e *Enforcer) Enforce(p entities.Project) (entities.Project, error) {
	out := cloneProject(p)
	out.CustomerInfo = deriveAddress(out.CustomerInfo)

	var v violations
	for i := range out.Categories {
		cat := &out.Categories[i]
		if len(cat.WorkItems) == 0 && cat.Key != "" && !e.taxonomy.HasCategory(cat.Key) {
			v.addTaxonomy(fmt.Sprintf("categories[%d].key", i),
				fmt.Sprintf("unknown categoryKey %q", cat.Key))
		}
		for j := range cat.WorkItems {
			item := &cat.WorkItems[j]
			path := fmt.Sprintf("categories[%d].workItems[%d]", i, j)

			item.CategoryKey = cat.Key
			normalizeItemMeasurements(item)

			switch item.Kind() {
			case entities.WorkItemKindCustom:
				if strings.TrimSpace(item.CustomWorkTypeName) == "" {
					v.add(path+".customWorkTypeName", "customWorkTypeName is required for custom work items")
					continue
				}
			default:
				item.CustomWorkTypeName = ""
			}

			if item.Type == "" {
				continue
			}
			if err := e.taxonomy.Check(cat.Key, item.Type); err != nil {
				v.addTaxonomy(path+".type",
					fmt.Sprintf("type %q is not allowed for categoryKey %q", item.Type, cat.Key))
			}
		}
	}

	if err := e.validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return entities.Project{}, err
		}
		for _, fe := range verrs {
			v.add(fieldPath(fe.Namespace()), fieldMessage(fe))
		}
	}

	if err := v.err(); err != nil {
		return entities.Project{}, err
	}
	return out, nil
}

// normalizeItemMeasurements canonicalizes the item's type and every surface type. Surfaces
// without their own type inherit the item's, which keeps the unit count unchanged.
func normalizeItemMeasurements(item *entities.WorkItem) {
	itemType := NormalizeMeasurementType(item.MeasurementType)
	item.MeasurementType = string(itemType)
	for k := range item.Surfaces {
		s := &item.Surfaces[k]
		if strings.TrimSpace(s.MeasurementType) == "" {
			s.MeasurementType = string(itemType)
			continue
		}
		s.MeasurementType = string(NormalizeMeasurementType(s.MeasurementType))
	}
}

func deriveAddress(c entities.CustomerInfo) entities.CustomerInfo {
	number := strings.TrimSpace(c.StreetNumber)
	street := strings.TrimSpace(c.StreetName)
	if number == "" && street == "" {
		return c
	}
	addr := strings.TrimSpace(number + " " + street)
	if unit := strings.TrimSpace(c.Unit); unit != "" {
		addr += ", Unit " + unit
	}
	c.Address = addr
	return c
}

func cloneProject(p entities.Project) entities.Project {
	out := p
	if p.Categories != nil {
		out.Categories = make([]entities.Category, len(p.Categories))
		for i, cat := range p.Categories {
			c := cat
			if cat.WorkItems != nil {
				c.WorkItems = make([]entities.WorkItem, len(cat.WorkItems))
				for j, item := range cat.WorkItems {
					it := item
					if item.Surfaces != nil {
						it.Surfaces = append([]entities.Surface(nil), item.Surfaces...)
					}
					c.WorkItems[j] = it
				}
			}
			out.Categories[i] = c
		}
	}
	if p.Settings.MiscFees != nil {
		out.Settings.MiscFees = append([]entities.MiscFee(nil), p.Settings.MiscFees...)
	}
	if p.Settings.Payments != nil {
		out.Settings.Payments = append([]entities.Payment(nil), p.Settings.Payments...)
	}
	return out
}

// fieldPath drops the root type name from a validator namespace:
// "Project.categories[0].name" becomes "categories[0].name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "min":
		return fmt.Sprintf("%s must contain at least %s entries", path, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", path, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}
