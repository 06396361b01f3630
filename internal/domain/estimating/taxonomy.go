package estimating

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"renovation_estimator/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// CustomCategoryPrefix marks user-defined categories. Any work item type is allowed in them.
const CustomCategoryPrefix = "custom-"

var (
	ErrTypeNotAllowed     = errors.New("work item type not allowed for category")
	ErrUnknownCategoryKey = errors.New("unknown category key")
	ErrEmptyTaxonomy      = errors.New("taxonomy has no categories")
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

// Taxonomy maps category keys to the work item types allowed in them.
//
// The table is configuration: adding a permitted type is an edit to the YAML document, the
// checks below never change.
type Taxonomy struct {
	version    string
	categories map[string]map[string]struct{}
}

type taxonomyDocument struct {
	Version    string              `yaml:"version"`
	Categories map[string][]string `yaml:"categories"`
}

// NewTaxonomy builds a taxonomy from an in-memory table. Keys and types are trimmed.
func NewTaxonomy(version string, table map[string][]string) *Taxonomy {
	t := &Taxonomy{version: version, categories: make(map[string]map[string]struct{}, len(table))}
	for key, types := range table {
		key = strings.TrimSpace(key)
		set := make(map[string]struct{}, len(types))
		for _, typ := range types {
			if typ = strings.TrimSpace(typ); typ != "" {
				set[typ] = struct{}{}
			}
		}
		t.categories[key] = set
	}
	return t
}

func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var doc taxonomyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, ErrEmptyTaxonomy
	}
	return NewTaxonomy(doc.Version, doc.Categories), nil
}

func LoadTaxonomyFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	return ParseTaxonomy(data)
}

// DefaultTaxonomy returns the table shipped with the service.
func DefaultTaxonomy() *Taxonomy {
	t, err := ParseTaxonomy(defaultTaxonomyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
}

func (t *Taxonomy) Version() string { return t.version }

// Check reports whether workType may appear under categoryKey.
//
//   - the custom work type marker is always allowed
//   - any type is allowed under a custom category
//   - otherwise the type must be listed for the key; unknown keys reject everything
func (t *Taxonomy) Check(categoryKey, workType string) error {
	if workType == entities.CustomWorkTypeMarker {
		return nil
	}
	if IsCustomCategory(categoryKey) {
		return nil
	}
	allowed, ok := t.categories[categoryKey]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategoryKey, categoryKey)
	}
	if _, ok := allowed[workType]; !ok {
		return fmt.Errorf("%w: type %q, categoryKey %q", ErrTypeNotAllowed, workType, categoryKey)
	}
	return nil
}

// HasCategory reports whether key is listed in the table or marked custom.
func (t *Taxonomy) HasCategory(key string) bool {
	if IsCustomCategory(key) {
		return true
	}
	_, ok := t.categories[key]
	return ok
}

// Table returns a sorted copy of the table, suitable for serving to clients.
func (t *Taxonomy) Table() map[string][]string {
	out := make(map[string][]string, len(t.categories))
	for key, set := range t.categories {
		types := make([]string, 0, len(set))
		for typ := range set {
			types = append(types, typ)
		}
		sort.Strings(types)
		out[key] = types
	}
	return out
}

func IsCustomCategory(key string) bool {
	return strings.HasPrefix(key, CustomCategoryPrefix)
}
