// Package content holds the read-only data a portfolio page is rendered from:
// navigation entries, projects, and the static sections around them.
package content

import "strings"

// NavigationItem is one entry of the navigation bar.
// Target is an in-page anchor ("#about"), an external URL, or empty.
type NavigationItem struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// IsAnchor reports whether the item points inside the page.
func (n NavigationItem) IsAnchor() bool {
	return strings.HasPrefix(n.Target, "#")
}

// AnchorID returns the target without its leading '#'. "#" alone yields "" (top of page).
func (n NavigationItem) AnchorID() string {
	return strings.TrimPrefix(n.Target, "#")
}

// ActionKind selects how a project card's quick action behaves.
type ActionKind string

const (
	ActionRepository ActionKind = "repository"
	ActionDownload   ActionKind = "download"
	ActionLive       ActionKind = "live"
)

// Action is the quick-action shown on a project card next to "View Details".
type Action struct {
	Kind ActionKind `yaml:"kind"`
	Href string     `yaml:"href"`
}

// Project is one showcased project. Immutable once loaded.
type Project struct {
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Image        string   `yaml:"image"`
	Summary      string   `yaml:"summary"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"` // set semantics; deduplicated on load
	Link         string   `yaml:"link"`
	Action       *Action  `yaml:"action,omitempty"`
}

// QuickAction returns the card action, falling back to the project link.
func (p Project) QuickAction() Action {
	if p.Action != nil && p.Action.Href != "" {
		a := *p.Action
		if a.Kind == "" {
			a.Kind = ActionRepository
		}
		return a
	}
	return Action{Kind: ActionRepository, Href: p.Link}
}

// Link is a labelled external link (social profile, mail address).
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Profile is the hero and about section.
type Profile struct {
	Name       string   `yaml:"name"`
	Headline   string   `yaml:"headline"`
	Tagline    string   `yaml:"tagline"`
	Location   string   `yaml:"location"`
	Portrait   string   `yaml:"portrait"`
	About      string   `yaml:"about"` // markdown
	Highlights []string `yaml:"highlights"`
	CV         string   `yaml:"cv"`
	Socials    []Link   `yaml:"socials"`
}

// Degree is one entry of the academic timeline.
type Degree struct {
	Title       string   `yaml:"title"`
	Institution string   `yaml:"institution"`
	Location    string   `yaml:"location"`
	Period      string   `yaml:"period"`
	Status      string   `yaml:"status"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

// Completed reports whether the degree is finished.
func (d Degree) Completed() bool {
	return strings.EqualFold(d.Status, "completed")
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Contact is the contact section.
type Contact struct {
	Heading string `yaml:"heading"`
	Email   string `yaml:"email"`
	Links   []Link `yaml:"links"`
}

// Meta carries page metadata for the HTML head.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	BaseURL     string   `yaml:"baseURL"`
	Copyright   string   `yaml:"copyright"`
}

// Site aggregates everything a page needs.
type Site struct {
	Meta       Meta             `yaml:"meta"`
	Navigation []NavigationItem `yaml:"navigation"`
	Profile    Profile          `yaml:"profile"`
	Academic   []Degree         `yaml:"academic"`
	Projects   []Project        `yaml:"projects"`
	Skills     []SkillCategory  `yaml:"skills"`
	Contact    Contact          `yaml:"contact"`
}

// ProjectBySlug returns the project with the given slug.
func (s *Site) ProjectBySlug(slug string) (Project, error) {
	for _, p := range s.Projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

// ResolveHref turns a site-relative href ("/static/cv.pdf") into an absolute
// URL using Meta.BaseURL. Anything else is returned unchanged.
func (s *Site) ResolveHref(href string) string {
	if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") || s.Meta.BaseURL == "" {
		return href
	}
	return strings.TrimRight(s.Meta.BaseURL, "/") + href
}
