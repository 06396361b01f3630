package response

import (
	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/domain/estimating"
)

type TaxonomyResponse struct {
	Version              string              `json:"version"`
	CustomCategoryPrefix string              `json:"customCategoryPrefix"`
	CustomWorkType       string              `json:"customWorkType"`
	Categories           map[string][]string `json:"categories"`
}

func FromTaxonomy(t *estimating.Taxonomy) TaxonomyResponse {
	return TaxonomyResponse{
		Version:              t.Version(),
		CustomCategoryPrefix: estimating.CustomCategoryPrefix,
		CustomWorkType:       entities.CustomWorkTypeMarker,
		Categories:           t.Table(),
	}
}
