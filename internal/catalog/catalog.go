package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Component is a purchasable part offered in one category.
type Component struct {
	Category    Category `json:"category" yaml:"-"`
	Name        string   `json:"name" yaml:"name"`
	Price       int      `json:"price" yaml:"price"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Catalog lists the components offered per category, in catalog order.
type Catalog struct {
	byCategory map[Category][]Component
}

// document is the on-disk YAML layout.
type document struct {
	Components map[string][]Component `yaml:"components"`
	Rules      ruleDocument           `yaml:"rules"`
}

type ruleDocument struct {
	CPUMotherboard    map[string][]string `yaml:"cpu_motherboard"`
	RAMMotherboard    map[string][]string `yaml:"ram_motherboard"`
	PowerRequirements map[string]int      `yaml:"power_requirements"`
}

// Default parses the embedded catalog and rule set.
func Default() (*Catalog, *RuleSet, error) {
	return Parse(defaultCatalogYAML)
}

// MustDefault is Default for package init and tests; it panics on a bad embed.
func MustDefault() (*Catalog, *RuleSet) {
	cat, rules, err := Default()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog invalid: %v", err))
	}
	return cat, rules
}

// LoadFile reads a catalog YAML file. An empty path loads the embedded default.
func LoadFile(path string) (*Catalog, *RuleSet, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog YAML document and validates it.
func Parse(data []byte) (*Catalog, *RuleSet, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse catalog: %w", err)
	}

	cat := &Catalog{byCategory: make(map[Category][]Component, Count())}
	for key, items := range doc.Components {
		c, ok := ParseCategory(key)
		if !ok {
			return nil, nil, fmt.Errorf("parse catalog: unknown category %q", key)
		}
		seen := make(map[string]bool, len(items))
		list := make([]Component, 0, len(items))
		for _, item := range items {
			if item.Name == "" {
				return nil, nil, fmt.Errorf("parse catalog: %s: component without name", c)
			}
			if item.Price < 0 {
				return nil, nil, fmt.Errorf("parse catalog: %s: %q has negative price", c, item.Name)
			}
			if seen[item.Name] {
				return nil, nil, fmt.Errorf("parse catalog: %s: duplicate component %q", c, item.Name)
			}
			seen[item.Name] = true
			item.Category = c
			list = append(list, item)
		}
		cat.byCategory[c] = list
	}

	rules := NewRuleSet(doc.Rules.CPUMotherboard, doc.Rules.RAMMotherboard, doc.Rules.PowerRequirements)
	return cat, rules, nil
}

// Components returns the components of a category in catalog order.
// The returned slice is a copy.
func (c *Catalog) Components(category Category) []Component {
	items := c.byCategory[category]
	out := make([]Component, len(items))
	copy(out, items)
	return out
}

// Find looks up a component by exact name within a category.
func (c *Catalog) Find(category Category, name string) (Component, bool) {
	for _, item := range c.byCategory[category] {
		if item.Name == name {
			return item, true
		}
	}
	return Component{}, false
}

// Len returns the total number of components across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, items := range c.byCategory {
		n += len(items)
	}
	return n
}
