package ops

import (
	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
	"github.com/hpungsan/pcbuild/internal/errors"
)

// CatalogItem is a component annotated for display.
type CatalogItem struct {
	catalog.Component
	FormattedPrice string `json:"formatted_price"`
	Selected       bool   `json:"selected"`
}

// CatalogGroup lists the components of one category.
type CatalogGroup struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Items    []CatalogItem    `json:"items"`
}

// CatalogOutput is returned by ListCatalog.
type CatalogOutput struct {
	Groups []CatalogGroup `json:"groups"`
}

// ListCatalog returns catalog components marked against the current build.
// An empty category lists every category in fixed order.
func (s *Session) ListCatalog(category string) (*CatalogOutput, error) {
	cats := catalog.Categories()
	if category != "" {
		c, ok := catalog.ParseCategory(category)
		if !ok {
			return nil, errors.NewUnknownCategory(category)
		}
		cats = []catalog.Category{c}
	}

	out := &CatalogOutput{Groups: make([]CatalogGroup, 0, len(cats))}
	for _, c := range cats {
		out.Groups = append(out.Groups, s.catalogGroup(c))
	}
	return out, nil
}

func (s *Session) catalogGroup(c catalog.Category) CatalogGroup {
	sel, hasSel := s.state.Get(c)
	g := CatalogGroup{Category: c, Label: c.Label(), Items: []CatalogItem{}}
	for _, comp := range s.catalog.Components(c) {
		g.Items = append(g.Items, CatalogItem{
			Component:      comp,
			FormattedPrice: build.FormatPrice(comp.Price),
			Selected:       hasSel && sel.Name == comp.Name,
		})
	}
	return g
}
