package ops

import (
	"strings"

	"github.com/hpungsan/pcbuild/internal/catalog"
	"github.com/hpungsan/pcbuild/internal/errors"
)

// View is the visible tab: one of the category ids, ViewSummary or
// ViewCompatibility.
type View string

const (
	ViewSummary       View = "resumen"
	ViewCompatibility View = "compatibilidad"
)

// Views returns every tab in display order.
func Views() []View {
	views := make([]View, 0, catalog.Count()+2)
	for _, c := range catalog.Categories() {
		views = append(views, View(c))
	}
	return append(views, ViewSummary, ViewCompatibility)
}

// ParseView validates a tab name.
func ParseView(s string) (View, bool) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views() {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// Label returns the tab title.
func (v View) Label() string {
	switch v {
	case ViewSummary:
		return "Resumen"
	case ViewCompatibility:
		return "Compatibilidad"
	}
	return catalog.Category(v).Label()
}

// Category returns the category shown by a category tab.
func (v View) Category() (catalog.Category, bool) {
	c := catalog.Category(v)
	return c, c.Valid()
}

// ViewOutput is returned by SwitchView. Check is set only for the
// compatibility tab.
type ViewOutput struct {
	View  View         `json:"view"`
	Check *CheckOutput `json:"check,omitempty"`
}

// View returns the current tab.
func (s *Session) View() View {
	return s.view
}

// SwitchView changes the visible tab. Entering the compatibility tab
// refreshes the check.
func (s *Session) SwitchView(view string) (*ViewOutput, error) {
	v, ok := ParseView(view)
	if !ok {
		return nil, errors.NewInvalidRequest("unknown view: " + view)
	}
	s.view = v
	out := &ViewOutput{View: v}
	if v == ViewCompatibility {
		check := s.Check()
		out.Check = &check
	}
	return out, nil
}
