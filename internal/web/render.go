// Package web is the HTML presentation of the portfolio: a gin server with
// fragment routes for project details, live reload of the content
// directory, and a static export of the same markup.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"folio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(parseTemplates())

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
}

func funcMap() template.FuncMap {
	upper := cases.Upper(language.English)
	return template.FuncMap{
		"markdown":     renderMarkdown,
		"upper":        upper.String,
		"join":         strings.Join,
		"fragmentPath": FragmentPath,
		"actionLabel":  actionLabel,
	}
}

// FragmentPath is the page-relative URL of a project's detail fragment.
// The ".html" suffix lets the exported site serve the same links, and the
// relative form keeps them working when the site lives under a subpath.
func FragmentPath(slug string) string {
	return "projects/" + slug + ".html"
}

func actionLabel(a content.Action) string {
	switch a.Kind {
	case content.ActionDownload:
		return "Download report"
	case content.ActionLive:
		return "Live demo"
	default:
		return "Repository"
	}
}

// pageData is what the page template sees.
type pageData struct {
	*content.Site
	Static bool // exported: no server routes behind forms
}

// Render writes the full page for site.
func Render(w io.Writer, site *content.Site) error {
	return render(w, pageData{Site: site, Static: true})
}

func render(w io.Writer, data pageData) error {
	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderProject writes the detail fragment of p.
func RenderProject(w io.Writer, p content.Project) error {
	if err := templates.ExecuteTemplate(w, "project.html", p); err != nil {
		return fmt.Errorf("render project %s: %w", p.Slug, err)
	}
	return nil
}
