// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render produces the public HTML for the site: the home page,
// slug pages, and the generated theme stylesheet. Templates are embedded
// and compiled once at startup; section presentation comes entirely from
// the resolver so the home and slug surfaces can never drift.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"pagecraft/internal/models"
	"pagecraft/internal/resolver"
	"pagecraft/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// themeTTL is how long a theme snapshot is served before the store is
// consulted again. Edits become visible within one interval.
const themeTTL = 30 * time.Second

// themeSnapshot is the ambient theme state sampled from the store.
type themeSnapshot struct {
	colors     models.ThemeColors
	typography *models.Typography
	darkMode   bool
	taken      time.Time
}

// Renderer renders the public pages.
type Renderer struct {
	store *store.Store
	tmpl  *template.Template

	mu   sync.Mutex
	snap themeSnapshot
}

// PageView is the data handed to the page template.
type PageView struct {
	Title           string
	SiteTitle       string
	Favicon         string
	Logo            models.Logo
	Menu            *models.Menu
	HeaderVariation string
	DarkMode        bool
	Sections        []*resolver.Description
	Footer          *FooterView
}

// FooterView is the resolved footer block.
type FooterView struct {
	Settings models.FooterSettings
	Layout   string
	Menus    []*models.Menu
	Year     int
}

// New creates a Renderer over the embedded template set.
func New(st *store.Store) (*Renderer, error) {
	funcs := template.FuncMap{
		// rem converts Tailwind spacing units to a CSS length.
		"rem": func(units int) string {
			return fmt.Sprintf("%grem", float64(units)/4)
		},
		// rawHTML marks rich-text section content as pre-sanitized HTML.
		"rawHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"cssColor": func(s string) template.CSS {
			return template.CSS(s)
		},
	}

	tmpl, err := template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{store: st, tmpl: tmpl}, nil
}

// theme returns the current theme snapshot, refreshing it from the store
// when the TTL has passed.
func (rn *Renderer) theme() themeSnapshot {
	rn.mu.Lock()
	defer rn.mu.Unlock()

	if time.Since(rn.snap.taken) > themeTTL {
		rn.snap = themeSnapshot{
			colors:     rn.store.Colors(),
			typography: rn.store.TypographyValue(),
			darkMode:   rn.store.DarkMode(),
			taken:      time.Now(),
		}
	}
	return rn.snap
}

// Home renders the page with slug "/", falling back to the first page,
// or an empty shell when no pages exist yet.
func (rn *Renderer) Home(w http.ResponseWriter, r *http.Request) {
	if page := rn.store.Document().PageBySlug("/"); page != nil {
		rn.renderPage(w, page)
		return
	}
	pages := rn.store.Pages()
	if len(pages) == 0 {
		rn.renderPage(w, nil)
		return
	}
	rn.renderPage(w, &pages[0])
}

// Page renders the page with the given slug, or a 404 shell.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, slug string) {
	page := rn.store.Document().PageBySlug(slug)
	if page == nil {
		w.WriteHeader(http.StatusNotFound)
		rn.renderPage(w, nil)
		return
	}
	rn.renderPage(w, page)
}

func (rn *Renderer) renderPage(w http.ResponseWriter, page *models.Page) {
	doc := rn.store.Document()
	snap := rn.theme()
	settings := doc.Settings

	view := &PageView{
		SiteTitle:       settings.SiteTitle,
		Favicon:         settings.Favicon,
		Logo:            rn.store.LogoValue(),
		HeaderVariation: settings.EffectiveHeaderVariation(),
		DarkMode:        snap.darkMode,
	}

	if page != nil {
		view.Title = page.Title
		view.Sections = resolver.ResolvePage(page.Sections, snap.colors, snap.darkMode)
	}
	if view.Title == "" {
		view.Title = settings.SiteTitle
	}

	if settings.SelectedMenuID != "" {
		view.Menu = doc.MenuByID(settings.SelectedMenuID)
	}

	if settings.Footer != nil && settings.Footer.Enabled {
		view.Footer = rn.footerView(doc, settings.Footer)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rn.tmpl.ExecuteTemplate(w, "page.html", view); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// footerView collects the footer menus for the configured layout. Menu
// count is capped at 4 and missing menus are skipped.
func (rn *Renderer) footerView(doc *models.Document, f *models.FooterSettings) *FooterView {
	ids := []string{f.SelectedMenu, f.SelectedMenu2, f.SelectedMenu3, f.SelectedMenu4}

	count := f.MenuCount
	if count < 1 {
		count = 1
	}
	if count > len(ids) {
		count = len(ids)
	}

	var menus []*models.Menu
	for _, id := range ids[:count] {
		if id == "" {
			continue
		}
		if m := doc.MenuByID(id); m != nil {
			menus = append(menus, m)
		}
	}

	return &FooterView{
		Settings: *f,
		Layout:   f.EffectiveLayout(),
		Menus:    menus,
		Year:     time.Now().Year(),
	}
}

// ThemeCSS writes the generated theme stylesheet: color variables for
// every palette key, typography variables when configured, and the
// handful of utility classes the page templates rely on.
func (rn *Renderer) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	snap := rn.theme()

	// Emitted in a fixed order so the stylesheet is stable across
	// requests.
	pairs := []struct{ key, value string }{
		{"heading", snap.colors.Heading},
		{"subheading", snap.colors.Subheading},
		{"body", snap.colors.Body},
		{"background", snap.colors.Background},
		{"text", snap.colors.Text},
		{"button", snap.colors.Button},
		{"buttonText", snap.colors.ButtonText},
		{"primary", snap.colors.Primary},
		{"accent", snap.colors.Accent},
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range pairs {
		if p.value != "" {
			fmt.Fprintf(&b, "  --color-%s: %s;\n", p.key, p.value)
		}
	}

	if t := snap.typography; t != nil {
		writeFontRole(&b, "heading", t.Heading)
		writeFontRole(&b, "subheading", t.Subheading)
		writeFontRole(&b, "text", t.Text)
	}
	b.WriteString("}\n\n")

	b.WriteString("body { background: var(--color-background); color: var(--color-text); font-family: var(--font-text-family, inherit); }\n")
	b.WriteString("h1, h2 { color: var(--color-heading); font-family: var(--font-heading-family, inherit); font-size: var(--font-heading-size, inherit); font-weight: var(--font-heading-weight, inherit); }\n")
	b.WriteString("h3 { color: var(--color-subheading); font-family: var(--font-subheading-family, inherit); font-size: var(--font-subheading-size, inherit); font-weight: var(--font-subheading-weight, inherit); }\n")
	b.WriteString(".bg-surface { background: var(--color-background); }\n")
	b.WriteString(".btn { background: var(--color-button); color: var(--color-buttonText, #fff); }\n")

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	fmt.Fprint(w, b.String())
}

// writeFontRole emits the CSS variables for one typography role,
// skipping empty fields so the stylesheet fallbacks stay in force.
func writeFontRole(b *strings.Builder, role string, f models.FontRole) {
	if f.Family != "" {
		fmt.Fprintf(b, "  --font-%s-family: %s;\n", role, f.Family)
	}
	if f.Size != "" {
		fmt.Fprintf(b, "  --font-%s-size: %s;\n", role, f.Size)
	}
	if f.Weight != "" {
		fmt.Fprintf(b, "  --font-%s-weight: %s;\n", role, f.Weight)
	}
}
