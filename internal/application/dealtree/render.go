package dealtree

import (
	_ "embed"
	"html/template"
	"io"
)

//go:embed tree.gohtml
var treeTemplate string

// Renderer renders a TreeView as nested collapsible HTML panels
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the tree template and returns a reusable renderer
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("dealtree").Parse(treeTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the HTML for the view to w
func (r *Renderer) Render(w io.Writer, view *TreeView) error {
	return r.tmpl.Execute(w, view)
}
