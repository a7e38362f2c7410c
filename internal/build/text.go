package build

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	shareTitle  = "🖥️ Mi Configuración de PC"
	shareFooter = "🔧 Generado con el Configurador de PC"
)

// FormatPrice renders whole dollars as US currency, e.g. $1,234.00.
func FormatPrice(dollars int) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%.2f", float64(dollars))
}

// ShareText renders the plain-text summary handed to the share collaborator:
// one "Label: Name - $Price" line per selection, then the total and footer.
func ShareText(s *State) string {
	var b strings.Builder
	b.WriteString(shareTitle)
	b.WriteString("\n\n")
	for _, sel := range s.Selections() {
		fmt.Fprintf(&b, "%s: %s - $%d\n", sel.Category.Label(), sel.Name, sel.Price)
	}
	fmt.Fprintf(&b, "\n💰 Total: $%d", s.TotalPrice())
	b.WriteString("\n\n")
	b.WriteString(shareFooter)
	return b.String()
}

// Markdown renders the build as a markdown table with a total row.
func Markdown(s *State) string {
	var b strings.Builder
	b.WriteString("## Mi Configuración de PC\n\n")
	if s.IsEmpty() {
		b.WriteString("_Selecciona componentes para ver tu configuración_\n")
		return b.String()
	}
	b.WriteString("| Componente | Modelo | Precio |\n")
	b.WriteString("|---|---|---:|\n")
	for _, sel := range s.Selections() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", sel.Category.Label(), escapeCell(sel.Name), FormatPrice(sel.Price))
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** |\n", FormatPrice(s.TotalPrice()))
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
