package httpx

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates. Each page is a named
// template; "flash" is a shared partial.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer(currency string) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return currency + d.StringFixed(2)
		},
		"amount": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"deref": func(p *int64) int64 {
			if p == nil {
				return 0
			}
			return *p
		},
	}
	tpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

func (re *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := re.tpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
