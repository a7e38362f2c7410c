package build

import (
	"strings"
	"testing"

	"github.com/hpungsan/pcbuild/internal/catalog"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0.00"},
		{49, "$49.00"},
		{1234, "$1,234.00"},
		{1500000, "$1,500,000.00"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShareText(t *testing.T) {
	s := New()
	s.Select(catalog.GPU, "RTX 4070 Super", 599)
	s.Select(catalog.CPU, "Intel Core i5-13400F", 199)

	want := "🖥️ Mi Configuración de PC\n\n" +
		"Procesador: Intel Core i5-13400F - $199\n" +
		"Tarjeta Gráfica: RTX 4070 Super - $599\n" +
		"\n💰 Total: $798" +
		"\n\n🔧 Generado con el Configurador de PC"

	if got := ShareText(s); got != want {
		t.Errorf("ShareText() =\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	s := New()
	if !strings.Contains(Markdown(s), "Selecciona componentes") {
		t.Error("empty build should render the empty-state hint")
	}

	s.Select(catalog.Storage, "Weird | Name 1TB", 1234)
	md := Markdown(s)
	if !strings.Contains(md, `| Almacenamiento | Weird \| Name 1TB | $1,234.00 |`) {
		t.Errorf("Markdown() missing escaped row:\n%s", md)
	}
	if !strings.Contains(md, "| **Total** | | **$1,234.00** |") {
		t.Errorf("Markdown() missing total row:\n%s", md)
	}
}
