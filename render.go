package numpager

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/samber/lo"
)

const (
	DefaultAriaLabel = "Pagination"
	DefaultListClass = "nugoPagination"
)

// HrefFunc returns the link for a 1-based page number.
type HrefFunc func(page int) string

// Fmt returns an HrefFunc which returns base for the first page and
// fmt.Sprintf(format, base, page) for other pages.
func Fmt(format string, base string) HrefFunc {
	return func(page int) string {
		if page <= 1 {
			return base
		}
		return fmt.Sprintf(format, base, page)
	}
}

// Renderer turns a NumberPager into HTML. The zero value is usable: it labels
// the landmark "Pagination", uses the "nugoPagination" list class and links
// every item to "#".
type Renderer struct {
	AriaLabel string
	ListClass string
	Href      HrefFunc
}

type renderItem struct {
	Label     string
	Href      string
	Active    bool
	Jump      bool
	AriaLabel string
	Caret     string
}

type renderData struct {
	AriaLabel string
	ListClass string
	Items     []renderItem
}

var _paginationTemplate = template.Must(template.New("pagination").Parse(
	`<nav aria-label="{{.AriaLabel}}"><ul class="{{.ListClass}}">
{{- range .Items}}
{{- if .Jump}}<li class="page-item"><a class="page-link" href="{{.Href}}" aria-label="{{.AriaLabel}}"><span aria-hidden="true"><i aria-hidden="true" class="caret {{.Caret}}"></i></span></a></li>
{{- else}}<li class="page-item{{if .Active}} active{{end}}"><a class="page-link" href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
{{- end}}</ul></nav>`,
))

// Render returns the markup of the control, or an empty string when the pager
// is not visible (no records or a single page).
func (r Renderer) Render(p *NumberPager) (template.HTML, error) {
	if !p.IsVisible() {
		return "", nil
	}

	data := renderData{
		AriaLabel: lo.Ternary(r.AriaLabel != "", r.AriaLabel, DefaultAriaLabel),
		ListClass: lo.Ternary(r.ListClass != "", r.ListClass, DefaultListClass),
		Items: lo.Map(p.Markers(), func(m PageMarker, _ int) renderItem {
			return r.item(p, m)
		}),
	}

	var buf bytes.Buffer
	if err := _paginationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render pagination: %w", err)
	}

	return template.HTML(buf.String()), nil
}

func (r Renderer) item(p *NumberPager, m PageMarker) renderItem {
	item := renderItem{
		Href: r.href(p.JumpTarget(m)),
		Jump: m.IsJump(),
	}

	switch m.Kind {
	case MarkerJumpLeft:
		item.AriaLabel = m.Kind.AriaLabel()
		item.Caret = "left"
	case MarkerJumpRight:
		item.AriaLabel = m.Kind.AriaLabel()
		item.Caret = "right"
	default:
		item.Label = strconv.Itoa(m.Page)
		item.Active = p.IsCurrent(m)
	}

	return item
}

func (r Renderer) href(page int) string {
	if r.Href == nil {
		return "#"
	}

	return r.Href(max(page, 1))
}

// Render renders p with the zero Renderer.
func Render(p *NumberPager) (template.HTML, error) {
	return Renderer{}.Render(p)
}
