package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"folio/internal/content"
	"folio/internal/ui/textutil"
)

const (
	pageMargin   = 1
	gridGap      = 1
	summaryLines = 3
)

var upper = cases.Upper(language.English)

// pageState is everything besides content that changes the page rendering.
type pageState struct {
	width    int
	selected int    // focused project card
	cardOpen []bool // per card: modal shown
	contact  string // rendered contact form
}

// buildDocument renders every section of site into a document.
func buildDocument(site *content.Site, st pageState) document {
	cw := ContentWidth(st.width)
	b := newDocBuilder(pageMargin)

	b.anchor("")
	renderHero(b, site.Profile, cw)
	b.blank()

	b.anchor("about")
	renderAbout(b, site.Profile, cw)
	b.blank()

	b.anchor("academic")
	renderAcademic(b, site.Academic, cw)
	b.blank()

	b.anchor("projects")
	renderProjects(b, site.Projects, st, cw)
	b.blank()

	b.anchor("skills")
	renderSkills(b, site.Skills, cw)
	b.blank()

	b.anchor("contact")
	renderContact(b, site.Contact, st.contact, cw)
	b.blank()

	renderFooter(b, site.Meta, cw)
	return b.doc
}

func sectionHeading(b *docBuilder, title, subtitle string, width int) {
	b.add(Styles.Title.Render(title))
	if subtitle != "" {
		b.add(Styles.Muted.Render(strings.Join(textutil.Wrap(subtitle, width), "\n")))
	}
	b.blank()
}

func renderHero(b *docBuilder, p content.Profile, width int) {
	b.blank()
	if p.Location != "" {
		b.add(Styles.Eyebrow.Render(upper.String(p.Location)))
	}
	b.add(Styles.Hero.Render(p.Name))
	if p.Headline != "" {
		b.add(Styles.Normal.Render(strings.Join(textutil.Wrap(p.Headline, width), "\n")))
	}
	if p.Tagline != "" {
		b.add(Styles.Muted.Render(strings.Join(textutil.Wrap(p.Tagline, width), "\n")))
	}
	b.blank()
	actions := Styles.Button.Render("[4 View Projects]")
	if p.CV != "" {
		actions += "  " + Styles.Muted.Render("CV: ") + Styles.Link.Render(p.CV)
	}
	b.add(actions)
}

func renderAbout(b *docBuilder, p content.Profile, width int) {
	sectionHeading(b, "About", "", width)
	if p.About != "" {
		b.add(RenderMarkdown(p.About, width))
		b.blank()
	}
	if len(p.Highlights) > 0 {
		b.add(strings.Join(textutil.WrapTokens(badges(p.Highlights, Styles.Badge), width, " "), "\n"))
		b.blank()
	}
	for _, s := range p.Socials {
		b.add(Styles.Muted.Render(s.Label+": ") + Styles.Link.Render(s.Href))
	}
}

func renderAcademic(b *docBuilder, degrees []content.Degree, width int) {
	sectionHeading(b, "Academic Journey",
		"Building expertise through rigorous academic training in Data Science, AI, and Business Intelligence", width)
	inner := max(width-2, 10)
	for i, d := range degrees {
		status := Styles.Badge.Render("[" + d.Status + "]")
		if d.Completed() {
			status = Styles.BadgeSuccess.Render("[" + d.Status + "]")
		}
		b.add("● " + Styles.CardTitle.Render(d.Title) + "  " + status)
		var body []string
		body = append(body, Styles.Normal.Render(d.Institution))
		body = append(body, Styles.Muted.Render(strings.TrimPrefix(d.Location+" · "+d.Period, " · ")))
		for _, l := range textutil.Wrap(d.Description, inner) {
			body = append(body, Styles.Normal.Render(l))
		}
		body = append(body, textutil.WrapTokens(badges(d.Highlights, Styles.BadgeMuted), inner, " ")...)
		for _, l := range body {
			b.add(Styles.Muted.Render("│ ") + l)
		}
		if i < len(degrees)-1 {
			b.add(Styles.Muted.Render("│"))
		}
	}
}

func renderProjects(b *docBuilder, projects []content.Project, st pageState, width int) {
	sectionHeading(b, "Projects", "Selected work with real-world impact and strong engineering foundations", width)
	cols := GridColumns(st.width)
	cardW := (width - gridGap*(cols-1)) / cols
	b.doc.cards = make([]Rect, len(projects))
	for start := 0; start < len(projects); start += cols {
		end := min(start+cols, len(projects))
		boxes := make([]string, 0, end-start)
		top := b.line()
		for i := start; i < end; i++ {
			open := i < len(st.cardOpen) && st.cardOpen[i]
			box := renderProjectCard(projects[i], cardW, i == st.selected, open)
			if i > start {
				boxes = append(boxes, strings.Repeat(" ", gridGap))
			}
			boxes = append(boxes, box)
			b.doc.cards[i] = Rect{
				X: pageMargin + (i-start)*(cardW+gridGap),
				Y: top,
				W: cardW,
				H: lipgloss.Height(box),
			}
		}
		b.add(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
}

// renderProjectCard draws the condensed card: title, clamped summary,
// technology badges and the two affordances.
func renderProjectCard(p content.Project, outer int, selected, open bool) string {
	inner := max(outer-4, 8)
	var lines []string
	for _, l := range textutil.Wrap(p.Title, inner) {
		lines = append(lines, Styles.CardTitle.Render(l))
	}
	for _, l := range textutil.Clamp(textutil.Wrap(p.Summary, inner), summaryLines, inner) {
		lines = append(lines, Styles.Muted.Render(l))
	}
	lines = append(lines, textutil.WrapTokens(badges(p.Technologies, Styles.Badge), inner, " ")...)

	details := "[View Details]"
	if open {
		details = "[● Details]"
	}
	button := Styles.Button.Render(details)
	if selected {
		button = Styles.ButtonFocus.Render(details)
	}
	lines = append(lines, button+" "+Styles.Link.Render(actionLabel(p.QuickAction())))

	style := Styles.Card
	if selected {
		style = Styles.CardSelected
	}
	return style.Width(outer - 2).Render(strings.Join(lines, "\n"))
}

func actionLabel(a content.Action) string {
	switch a.Kind {
	case content.ActionDownload:
		return "↓ report"
	case content.ActionLive:
		return "↗ live"
	default:
		return "↗ repo"
	}
}

func renderSkills(b *docBuilder, skills []content.SkillCategory, width int) {
	sectionHeading(b, "Skills", "Technical expertise across data science, AI, and business intelligence", width)
	cols := GridColumns(width + 2)
	cardW := (width - gridGap*(cols-1)) / cols
	for start := 0; start < len(skills); start += cols {
		end := min(start+cols, len(skills))
		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			inner := max(cardW-4, 8)
			lines := []string{Styles.CardTitle.Render(textutil.Truncate(skills[i].Title, inner))}
			lines = append(lines, textutil.WrapTokens(badges(skills[i].Items, Styles.BadgeMuted), inner, " ")...)
			if i > start {
				boxes = append(boxes, strings.Repeat(" ", gridGap))
			}
			boxes = append(boxes, Styles.Card.Width(cardW-2).Render(strings.Join(lines, "\n")))
		}
		b.add(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
}

func renderContact(b *docBuilder, c content.Contact, form string, width int) {
	sectionHeading(b, "Contact", c.Heading, width)
	b.doc.contact = b.line()
	if form != "" {
		b.add(form)
		b.blank()
	}
	b.add(Styles.CardTitle.Render("Connect"))
	if c.Email != "" {
		b.add(Styles.Muted.Render("Email: ") + Styles.Link.Render(c.Email))
	}
	for _, l := range c.Links {
		b.add(Styles.Muted.Render(l.Label+": ") + Styles.Link.Render(l.Href))
	}
}

func renderFooter(b *docBuilder, m content.Meta, width int) {
	b.add(Styles.Muted.Render(strings.Repeat("─", width)))
	left := m.Copyright
	right := "g: back to top"
	gap := width - textutil.VisualWidth(left) - textutil.VisualWidth(right)
	if gap < 2 {
		b.add(Styles.Muted.Render(left))
		b.add(Styles.Hint.Render(right))
		return
	}
	b.add(Styles.Muted.Render(left) + strings.Repeat(" ", gap) + Styles.Hint.Render(right))
}

func badges(items []string, style lipgloss.Style) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = style.Render(fmt.Sprintf("[%s]", it))
	}
	return out
}
