package ops

import (
	"math"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
)

// SummaryItem is one selected component as shown in the summary view.
type SummaryItem struct {
	Category       catalog.Category `json:"category"`
	Label          string           `json:"label"`
	Name           string           `json:"name"`
	Price          int              `json:"price"`
	FormattedPrice string           `json:"formatted_price"`
}

// MissingItem is an unselected category.
type MissingItem struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
}

// SummaryOutput is the summary view of a build.
type SummaryOutput struct {
	Items           []SummaryItem `json:"items"`
	Missing         []MissingItem `json:"missing"`
	TotalPrice      int           `json:"total_price"`
	FormattedTotal  string        `json:"formatted_total"`
	SelectedCount   int           `json:"selected_count"`
	TotalCategories int           `json:"total_categories"`
	Progress        float64       `json:"progress"`
	ProgressPercent int           `json:"progress_percent"`
	Empty           bool          `json:"empty"`
	EmptyMessage    string        `json:"empty_message,omitempty"`
}

// Summary describes the current build in fixed category order.
func (s *Session) Summary() SummaryOutput {
	return Summarize(s.state)
}

// Summarize builds a SummaryOutput for any state.
func Summarize(st *build.State) SummaryOutput {
	out := SummaryOutput{
		Items:           []SummaryItem{},
		Missing:         []MissingItem{},
		TotalPrice:      st.TotalPrice(),
		FormattedTotal:  build.FormatPrice(st.TotalPrice()),
		SelectedCount:   st.SelectedCount(),
		TotalCategories: catalog.Count(),
		Progress:        st.CompletionRatio(),
		ProgressPercent: int(math.Round(st.CompletionRatio() * 100)),
		Empty:           st.IsEmpty(),
	}
	for _, sel := range st.Selections() {
		out.Items = append(out.Items, SummaryItem{
			Category:       sel.Category,
			Label:          sel.Category.Label(),
			Name:           sel.Name,
			Price:          sel.Price,
			FormattedPrice: build.FormatPrice(sel.Price),
		})
	}
	for _, c := range st.MissingCategories() {
		out.Missing = append(out.Missing, MissingItem{Category: c, Label: c.Label()})
	}
	if out.Empty {
		out.EmptyMessage = MsgEmptyBuild
	}
	return out
}
