// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ThemeColors is the globally shared color palette. The key set is fixed;
// values are hex strings. No versioning — the palette applies site-wide.
type ThemeColors struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Body       string `json:"body"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Button     string `json:"button"`
	ButtonText string `json:"buttonText,omitempty"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
}

// DefaultThemeColors returns the palette used when no colors are stored.
func DefaultThemeColors() ThemeColors {
	return ThemeColors{
		Heading:    "#1A1A1A",
		Subheading: "#424242",
		Body:       "#FFFFFF",
		Background: "#F5F5F5",
		Text:       "#212121",
		Button:     "#2196F3",
		ButtonText: "#FFFFFF",
		Primary:    "#2196F3",
		Accent:     "#42A5F5",
	}
}

// IsZero reports whether no colors are set at all.
func (c ThemeColors) IsZero() bool {
	return c == ThemeColors{}
}

// Resolve maps a theme color name ("accent", "heading", ...) to its hex
// value, or "" for unknown names.
func (c ThemeColors) Resolve(name string) string {
	switch name {
	case "heading":
		return c.Heading
	case "subheading":
		return c.Subheading
	case "body":
		return c.Body
	case "background":
		return c.Background
	case "text":
		return c.Text
	case "button":
		return c.Button
	case "buttonText":
		return c.ButtonText
	case "primary":
		return c.Primary
	case "accent":
		return c.Accent
	}
	return ""
}

// FontRole describes the font settings for one text role.
type FontRole struct {
	Family string `json:"family"`
	Size   string `json:"size"`
	Weight string `json:"weight"`
}

// Typography holds the three named font roles. Its absence in the store is
// meaningful: the renderer falls back to the default stylesheet rules, so
// the document keeps a *Typography rather than a zero value.
type Typography struct {
	Heading    FontRole `json:"heading"`
	Subheading FontRole `json:"subheading"`
	Text       FontRole `json:"text"`
}

// DefaultTypography returns the fallback roles used when generating the
// theme stylesheet for a site with no typography configured.
func DefaultTypography() Typography {
	return Typography{
		Heading:    FontRole{Family: "Arial, sans-serif", Size: "32px", Weight: "700"},
		Subheading: FontRole{Family: "Arial, sans-serif", Size: "24px", Weight: "600"},
		Text:       FontRole{Family: "Arial, sans-serif", Size: "16px", Weight: "400"},
	}
}
