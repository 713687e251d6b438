// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// BackgroundType selects how a section's background is drawn.
type BackgroundType string

const (
	BackgroundNone       BackgroundType = "none"
	BackgroundImage      BackgroundType = "image"
	BackgroundColor      BackgroundType = "customColor"
	BackgroundThemeColor BackgroundType = "themeColor"
	BackgroundVideo      BackgroundType = "video"
)

// PaddingSize names the vertical padding presets for a section.
type PaddingSize string

const (
	PaddingCompact       PaddingSize = "compact"
	PaddingComfortable   PaddingSize = "comfortable"
	PaddingSpacious      PaddingSize = "spacious"
	PaddingExtraSpacious PaddingSize = "extra-spacious"
)

// Features layout presets. Grid2 is the default.
const (
	FeaturesGrid2   = "grid-2"
	FeaturesGrid3   = "grid-3"
	FeaturesStacked = "stacked"
)

// SectionTypeContact marks a section that renders a contact form instead
// of the regular content column.
const SectionTypeContact = "contact"

// Alignment values shared by align and textAlign.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// Default sizing applied when the corresponding field is absent.
const (
	DefaultVideoOverlay      = 50  // percent
	DefaultImageOverlay      = 0   // percent
	MinHeightWithImage       = 500 // px
	MinHeightWithoutImage    = 400 // px
	DefaultButtonTarget      = "_self"
	DefaultFormTitle         = "Send us a message"
	DefaultSubmitButtonText  = "Send Message"
)

// PaddingUnits maps a paddingY preset to Tailwind spacing units.
// Absent or unknown values fall back to comfortable.
var PaddingUnits = map[PaddingSize]int{
	PaddingCompact:       8,
	PaddingComfortable:   12,
	PaddingSpacious:      20,
	PaddingExtraSpacious: 32,
}

// Feature is one entry in a section's feature grid or stacked list.
type Feature struct {
	Icon  string `json:"icon,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	URL   string `json:"url,omitempty"`
}

// FAQ is one collapsible question/answer pair.
type FAQ struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// Section is one vertical content block of a page. Almost every field is
// optional: fields equal to their documented default are stripped before
// persistence (see Clean), so readers must treat absence as "use default".
// Boolean fields whose default is true are pointers — absence and false
// mean different things.
type Section struct {
	Heading     string `json:"heading,omitempty"`
	Subheading  string `json:"subheading,omitempty"`
	Description string `json:"description,omitempty"` // rich text, raw HTML
	Img         string `json:"img,omitempty"`

	Align     string `json:"align,omitempty"`     // image side: left|right, only with img
	TextAlign string `json:"textAlign,omitempty"` // left|center|right, only without img

	BgType       BackgroundType `json:"bgType,omitempty"`
	BgImage      string         `json:"bgImage,omitempty"`
	BgImageURL   string         `json:"bgImageUrl,omitempty"`
	BgImageOverlay int          `json:"bgImageOverlay,omitempty"` // percent, 0-100
	BgColor      string         `json:"bgColor,omitempty"`
	BgThemeColor string         `json:"bgThemeColor,omitempty"`

	BgVideoURL            string `json:"bgVideoUrl,omitempty"`
	BgVideoAutoplay       *bool  `json:"bgVideoAutoplay,omitempty"`       // default true
	BgVideoLoop           *bool  `json:"bgVideoLoop,omitempty"`           // default true
	BgVideoMuted          *bool  `json:"bgVideoMuted,omitempty"`          // default true
	BgVideoControls       *bool  `json:"bgVideoControls,omitempty"`       // default false
	BgVideoOverlay        *int   `json:"bgVideoOverlay,omitempty"`        // default 50
	BgVideoWidth          string `json:"bgVideoWidth,omitempty"`          // "container" or full-bleed
	BgVideoShowPlayButton *bool  `json:"bgVideoShowPlayButton,omitempty"` // default true

	PaddingY     PaddingSize `json:"paddingY,omitempty"`
	CustomHeight int         `json:"customHeight,omitempty"` // px
	Hidden       bool        `json:"hidden,omitempty"`

	ShowSubheading  *bool `json:"showSubheading,omitempty"`  // default true
	ShowDescription *bool `json:"showDescription,omitempty"` // default true

	Features       []Feature `json:"features,omitempty"`
	FeaturesLayout string    `json:"featuresLayout,omitempty"`
	FAQs           []FAQ     `json:"faqs,omitempty"`

	Button       string `json:"button,omitempty"`
	ButtonLink   string `json:"buttonLink,omitempty"`
	ButtonTarget string `json:"buttonTarget,omitempty"`

	SectionType string `json:"sectionType,omitempty"` // "" (normal) or "contact"

	ShowMap          *bool  `json:"showMap,omitempty"` // default true
	MapURL           string `json:"mapUrl,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	ContactAddress   string `json:"contactAddress,omitempty"`
	FormTitle        string `json:"formTitle,omitempty"`
	SubmitButtonText string `json:"submitButtonText,omitempty"`

	CustomHeadingColor    string `json:"customHeadingColor,omitempty"`
	CustomSubheadingColor string `json:"customSubheadingColor,omitempty"`
	CustomTextColor       string `json:"customTextColor,omitempty"`
}

// PageSection is a section paired with its owning page, used by the legacy
// flattened /api/sections view.
type PageSection struct {
	Section
	PageID string `json:"pageId,omitempty"`
}

// boolOr resolves a tri-state boolean field against its default.
func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// HasImage reports whether the section uses the two-column with-image layout.
func (s *Section) HasImage() bool { return s.Img != "" }

// VideoAutoplay returns the effective autoplay flag (default true).
func (s *Section) VideoAutoplay() bool { return boolOr(s.BgVideoAutoplay, true) }

// VideoLoop returns the effective loop flag (default true).
func (s *Section) VideoLoop() bool { return boolOr(s.BgVideoLoop, true) }

// VideoMuted returns the effective muted flag (default true).
func (s *Section) VideoMuted() bool { return boolOr(s.BgVideoMuted, true) }

// VideoControls returns the effective controls flag (default false).
func (s *Section) VideoControls() bool { return boolOr(s.BgVideoControls, false) }

// VideoShowPlayButton returns the effective play-button flag (default true).
func (s *Section) VideoShowPlayButton() bool { return boolOr(s.BgVideoShowPlayButton, true) }

// VideoOverlay returns the video overlay percentage (default 50).
func (s *Section) VideoOverlay() int {
	if s.BgVideoOverlay == nil {
		return DefaultVideoOverlay
	}
	return *s.BgVideoOverlay
}

// SubheadingVisible reports whether the subheading block should render.
func (s *Section) SubheadingVisible() bool {
	return s.Subheading != "" && boolOr(s.ShowSubheading, true)
}

// DescriptionVisible reports whether the description block should render.
func (s *Section) DescriptionVisible() bool {
	return s.Description != "" && boolOr(s.ShowDescription, true)
}

// MapVisible reports whether a contact section shows its map (default true).
func (s *Section) MapVisible() bool { return boolOr(s.ShowMap, true) }

// Clean returns a copy with every default-valued field zeroed so that
// omitempty drops it from the stored document. Readers re-supply the
// defaults, making Clean lossless for rendering: the resolver produces the
// same description for a section and its cleaned form.
func (s Section) Clean() Section {
	if s.BgType == BackgroundNone || s.BgType == "default" {
		s.BgType = ""
	}

	// Drop background fields that the active bgType cannot use.
	switch s.BgType {
	case "":
		s.BgImage, s.BgImageURL, s.BgColor, s.BgThemeColor = "", "", "", ""
	case BackgroundImage:
		s.BgColor, s.BgThemeColor = "", ""
	case BackgroundColor:
		s.BgImage, s.BgImageURL, s.BgThemeColor = "", "", ""
	case BackgroundThemeColor:
		s.BgImage, s.BgImageURL, s.BgColor = "", "", ""
	}

	// align only applies with an image; textAlign only without. Left is the
	// default on both.
	if s.Img == "" || s.Align == AlignLeft {
		s.Align = ""
	}
	if s.Img != "" || s.TextAlign == AlignLeft {
		s.TextAlign = ""
	}

	if s.ButtonTarget == DefaultButtonTarget {
		s.ButtonTarget = ""
	}
	if s.PaddingY == PaddingComfortable {
		s.PaddingY = ""
	}

	return s
}
