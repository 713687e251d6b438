// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolver turns a stored section record plus the ambient theme
// state into a fully resolved presentation description. It is the single
// source of truth for background selection, sizing, layout shape, and
// conditional sub-blocks, consumed identically by both public page
// surfaces so the two can never drift.
//
// Resolution is a pure mapping: no state, no I/O, deterministic for a
// given (section, theme, dark-mode) triple.
package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"pagecraft/internal/models"
)

// BackgroundKind identifies which background branch fired for a section.
// Exactly one fires per section.
type BackgroundKind string

const (
	// KindNone applies no background styling at all, not even a fill.
	KindNone BackgroundKind = "none"
	// KindSurface is the default surface class, used when bgType is
	// "image" but no image URL is set.
	KindSurface BackgroundKind = "surface"
	// KindImage is a CSS cover background image with optional overlay.
	KindImage BackgroundKind = "image"
	// KindColor is a solid custom color.
	KindColor BackgroundKind = "color"
	// KindTheme resolves a named theme color.
	KindTheme BackgroundKind = "theme"
	// KindVideo is a looping video background with overlay.
	KindVideo BackgroundKind = "video"
)

// darkSurface is the solid surface that replaces color backgrounds when
// dark mode is enabled.
const darkSurface = "#1a1a1a"

// Video describes a resolved video background.
type Video struct {
	URL            string
	Autoplay       bool
	Loop           bool
	Muted          bool
	Controls       bool
	Contained      bool // constrain to the content container width
	ShowPlayButton bool
}

// Background is the resolved background of one section.
type Background struct {
	Kind           BackgroundKind
	ImageURL       string  // KindImage
	Color          string  // KindColor (or dark-mode override)
	ThemeName      string  // KindTheme: palette key, e.g. "accent"
	ThemeColor     string  // KindTheme: resolved hex
	OverlayOpacity float64 // 0..1, image and video kinds
	Video          *Video  // KindVideo
}

// HasMedia reports whether the section needs relative positioning for an
// absolutely positioned media layer.
func (b Background) HasMedia() bool {
	return b.Kind == KindImage || b.Kind == KindVideo
}

// LayoutKind is the high-level arrangement of a section's content.
type LayoutKind string

const (
	// LayoutWithImage is the two-column image + content arrangement.
	LayoutWithImage LayoutKind = "with-image"
	// LayoutWithoutImage is a single text-aligned column.
	LayoutWithoutImage LayoutKind = "without-image"
	// LayoutContact renders the contact form block.
	LayoutContact LayoutKind = "contact"
)

// IconKind classifies a feature icon as a loadable image or a literal
// glyph (emoji, symbol) rendered as text.
type IconKind string

const (
	IconNone  IconKind = ""
	IconImage IconKind = "image"
	IconGlyph IconKind = "glyph"
)

// FeatureView is one resolved feature entry.
type FeatureView struct {
	Icon     string
	IconKind IconKind
	Title    string
	Text     string
	URL      string
	External bool // open link in a new tab
}

// Features is the resolved feature block of a section.
type Features struct {
	Layout string // grid-2, grid-3, or stacked
	Items  []FeatureView
}

// Button is a resolved call-to-action.
type Button struct {
	Label  string
	Link   string
	Target string
	Rel    string // "noopener noreferrer" for _blank targets
}

// ColorOverrides carries per-section text color overrides. Empty fields
// fall back to the theme CSS variables.
type ColorOverrides struct {
	Heading    string
	Subheading string
	Text       string
}

// Contact is the resolved contact-form block.
type Contact struct {
	ShowMap          bool
	MapURL           string
	Email            string
	Phone            string
	Address          string
	FormTitle        string
	SubmitButtonText string
}

// Description is the fully resolved presentation of one section. It is
// everything a renderer needs; no further defaulting happens downstream.
type Description struct {
	Index int    // position in the page's section list, hidden included
	DOMID string // "section-<index>", scopes the color overrides

	Layout     LayoutKind
	Background Background

	PaddingUnits int // Tailwind spacing units for vertical padding
	MinHeight    int // px

	// With-image layout only.
	ImageURL            string
	ImageRight          bool
	ImageHeight         int  // px, 0 means the default container height
	ContentSpansColumns bool // centered text takes the full row

	TextAlign string

	Subheading      string
	Heading         string
	DescriptionHTML string // rich text, raw HTML

	Features *Features
	FAQs     []models.FAQ
	Button   *Button

	Overrides *ColorOverrides
	Contact   *Contact
}

// ResolvePage resolves every visible section of a page in order. Hidden
// sections are excluded entirely; indices still count them so that
// presentation state keyed by (section, item) stays stable across a
// visibility toggle.
func ResolvePage(sections []models.Section, theme models.ThemeColors, darkMode bool) []*Description {
	var out []*Description
	for i, s := range sections {
		if d := Resolve(i, s, theme, darkMode); d != nil {
			out = append(out, d)
		}
	}
	return out
}

// Resolve maps one section to its presentation description, or nil when
// the section is hidden. The hidden check runs before anything else.
func Resolve(index int, s models.Section, theme models.ThemeColors, darkMode bool) *Description {
	if s.Hidden {
		return nil
	}

	d := &Description{
		Index:        index,
		DOMID:        fmt.Sprintf("section-%d", index),
		Background:   resolveBackground(s, theme, darkMode),
		PaddingUnits: paddingUnits(s.PaddingY),
		MinHeight:    minHeight(s),
		TextAlign:    textAlign(s),
		Heading:      s.Heading,
	}

	switch {
	case s.SectionType == models.SectionTypeContact:
		d.Layout = LayoutContact
		d.Contact = &Contact{
			ShowMap:          s.MapVisible(),
			MapURL:           s.MapURL,
			Email:            s.ContactEmail,
			Phone:            s.ContactPhone,
			Address:          s.ContactAddress,
			FormTitle:        stringOr(s.FormTitle, models.DefaultFormTitle),
			SubmitButtonText: stringOr(s.SubmitButtonText, models.DefaultSubmitButtonText),
		}
	case s.HasImage():
		d.Layout = LayoutWithImage
		d.ImageURL = s.Img
		d.ImageRight = s.Align == models.AlignRight
		d.ImageHeight = s.CustomHeight
		d.ContentSpansColumns = s.TextAlign == models.AlignCenter
	default:
		d.Layout = LayoutWithoutImage
	}

	if s.SubheadingVisible() {
		d.Subheading = s.Subheading
	}
	if s.DescriptionVisible() {
		d.DescriptionHTML = s.Description
	}

	if len(s.Features) > 0 {
		d.Features = resolveFeatures(s)
	}
	if len(s.FAQs) > 0 {
		d.FAQs = s.FAQs
	}
	if s.Button != "" {
		d.Button = resolveButton(s)
	}

	if s.CustomHeadingColor != "" || s.CustomSubheadingColor != "" || s.CustomTextColor != "" {
		d.Overrides = &ColorOverrides{
			Heading:    s.CustomHeadingColor,
			Subheading: s.CustomSubheadingColor,
			Text:       s.CustomTextColor,
		}
	}

	return d
}

// resolveBackground picks exactly one background branch, in priority
// order: video, image, custom color, theme color, nothing. A branch only
// fires when its payload field is set, so e.g. bgType "video" with no URL
// falls all the way through. Unknown bgType values resolve to no
// background. Dark mode replaces the color branches (including "no
// background") with a dark surface; media backgrounds and the image
// fallback surface are left alone.
func resolveBackground(s models.Section, theme models.ThemeColors, darkMode bool) Background {
	bg := Background{Kind: KindNone}

	switch {
	case s.BgType == models.BackgroundVideo && s.BgVideoURL != "":
		bg = Background{
			Kind:           KindVideo,
			OverlayOpacity: float64(s.VideoOverlay()) / 100,
			Video: &Video{
				URL:            s.BgVideoURL,
				Autoplay:       s.VideoAutoplay(),
				Loop:           s.VideoLoop(),
				Muted:          s.VideoMuted(),
				Controls:       s.VideoControls(),
				Contained:      s.BgVideoWidth == "container",
				ShowPlayButton: s.VideoShowPlayButton(),
			},
		}

	case s.BgType == models.BackgroundImage && (s.BgImage != "" || s.BgImageURL != ""):
		bg = Background{
			Kind:           KindImage,
			ImageURL:       stringOr(s.BgImage, s.BgImageURL),
			OverlayOpacity: float64(s.BgImageOverlay) / 100,
		}

	case s.BgType == models.BackgroundImage:
		// Image background with no URL: default surface, not nothing.
		bg = Background{Kind: KindSurface}

	case s.BgType == models.BackgroundColor && s.BgColor != "":
		bg = Background{Kind: KindColor, Color: s.BgColor}

	case s.BgType == models.BackgroundThemeColor && s.BgThemeColor != "":
		bg = Background{
			Kind:       KindTheme,
			ThemeName:  s.BgThemeColor,
			ThemeColor: theme.Resolve(s.BgThemeColor),
		}
	}

	if darkMode && (bg.Kind == KindNone || bg.Kind == KindColor || bg.Kind == KindTheme) {
		return Background{Kind: KindColor, Color: darkSurface}
	}
	return bg
}

// paddingUnits looks up the vertical padding for a preset, defaulting to
// comfortable for absent or unknown values.
func paddingUnits(p models.PaddingSize) int {
	if units, ok := models.PaddingUnits[p]; ok {
		return units
	}
	return models.PaddingUnits[models.PaddingComfortable]
}

// minHeight computes the section's minimum height: the custom height when
// set, otherwise taller with an image than without.
func minHeight(s models.Section) int {
	if s.CustomHeight > 0 {
		return s.CustomHeight
	}
	if s.HasImage() {
		return models.MinHeightWithImage
	}
	return models.MinHeightWithoutImage
}

// textAlign returns the effective text alignment, defaulting left.
func textAlign(s models.Section) string {
	if s.TextAlign == "" {
		return models.AlignLeft
	}
	return s.TextAlign
}

func resolveFeatures(s models.Section) *Features {
	layout := s.FeaturesLayout
	if layout != models.FeaturesGrid3 && layout != models.FeaturesStacked {
		layout = models.FeaturesGrid2
	}

	items := make([]FeatureView, 0, len(s.Features))
	for _, f := range s.Features {
		items = append(items, FeatureView{
			Icon:     f.Icon,
			IconKind: ClassifyIcon(f.Icon),
			Title:    f.Title,
			Text:     f.Text,
			URL:      f.URL,
			External: strings.HasPrefix(f.URL, "http"),
		})
	}
	return &Features{Layout: layout, Items: items}
}

func resolveButton(s models.Section) *Button {
	b := &Button{
		Label:  s.Button,
		Link:   stringOr(s.ButtonLink, "#"),
		Target: stringOr(s.ButtonTarget, models.DefaultButtonTarget),
	}
	if b.Target == "_blank" {
		b.Rel = "noopener noreferrer"
	}
	return b
}

// imageExtRe matches filenames ending in a known raster or vector image
// extension.
var imageExtRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|svg|webp)$`)

// ClassifyIcon decides whether a feature icon string is an image
// reference or a literal glyph. URLs (absolute or root-relative), known
// asset-host substrings, and image-file extensions select the image
// branch; everything else renders as text. Empty means no icon.
func ClassifyIcon(icon string) IconKind {
	if icon == "" {
		return IconNone
	}
	if strings.HasPrefix(icon, "http://") ||
		strings.HasPrefix(icon, "https://") ||
		strings.HasPrefix(icon, "/") ||
		strings.Contains(icon, "cloudinary.com") ||
		strings.Contains(icon, "pexels.com") ||
		imageExtRe.MatchString(icon) {
		return IconImage
	}
	return IconGlyph
}

// stringOr returns s, or the fallback when s is empty.
func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
