package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mala-inventario/internal/infrastructure/pdf"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Secciones de la navegación, en orden.
var sections = []navItem{
	{Key: "inicio", Label: "Inicio", Href: "/"},
	{Key: "catalogo", Label: "Catálogo de Productos", Href: "/catalogo"},
	{Key: "inventario", Label: "Gestión de Inventario", Href: "/inventario"},
	{Key: "ventas", Label: "Registro de Ventas", Href: "/ventas"},
	{Key: "estadisticas", Label: "Estadísticas", Href: "/estadisticas"},
}

var pageNames = []string{"home", "catalog", "inventory", "sales", "statistics", "empty"}

type navItem struct {
	Key   string
	Label string
	Href  string
}

// Page datos comunes a todas las vistas.
type Page struct {
	Brand   string
	Title   string
	Active  string
	Nav     []navItem
	Success string
	Error   string
	Warning string
	Info    string
}

// Views plantillas HTML de las cinco vistas.
type Views struct {
	brand   string
	pages   map[string]*template.Template
	warning func() error
}

// NewViews parsea las plantillas embebidas. warning devuelve la advertencia de carga
// (catálogo no encontrado) que se muestra en todas las vistas; puede ser nil.
func NewViews(brand string, warning func() error) (*Views, error) {
	funcs := template.FuncMap{
		"money":   func(d decimal.Decimal) string { return "$" + pdf.FormatMoney(d) },
		"fixed2":  func(d decimal.Decimal) string { return d.StringFixed(2) },
		"pct1":    func(d decimal.Decimal) string { return d.StringFixed(1) + "%" },
		"pctRaw":  func(d decimal.Decimal) string { return d.StringFixed(1) },
		"date":    func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
		"barPct":  barPct,
		"isEqual": func(a, b string) bool { return a == b },
	}
	v := &Views{brand: brand, pages: make(map[string]*template.Template), warning: warning}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("vistas: %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// page construye los datos comunes de una vista.
func (v *Views) page(title, active string) Page {
	p := Page{Brand: v.brand, Title: title, Active: active, Nav: sections}
	if v.warning != nil {
		if err := v.warning(); err != nil {
			p.Warning = "El archivo de base de datos no fue encontrado. La base de datos de productos está vacía o no se pudo cargar."
		}
	}
	return p
}

// Render ejecuta la plantilla completa en memoria y la envía como HTML.
func (v *Views) Render(c *fiber.Ctx, name string, data any) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("vistas: plantilla %q no encontrada", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("vistas: %s: %w", name, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// barPct ancho relativo (0-100) de una barra respecto del máximo.
func barPct(units, max int) int {
	if max <= 0 {
		return 0
	}
	return units * 100 / max
}
