// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Header variation names understood by the public renderer.
const (
	HeaderBackground  = "background"
	HeaderTransparent = "transparent"
	HeaderCenter      = "center"
	HeaderFloating    = "floating"
	HeaderLeftside    = "leftside"
	HeaderFullscreen  = "fullscreen"
)

// Footer layout presets: centered, two columns, horizontal, three columns,
// four columns.
const (
	FooterLayout1 = "layout1"
	FooterLayout2 = "layout2"
	FooterLayout3 = "layout3"
	FooterLayout4 = "layout4"
	FooterLayout5 = "layout5"
)

// SocialLink is one social media entry in the footer.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// FooterSettings configures the public site footer.
type FooterSettings struct {
	Enabled bool   `json:"enabled,omitempty"`
	Layout  string `json:"layout,omitempty"` // layout1..layout5

	SelectedMenu  string `json:"selectedMenu,omitempty"`
	SelectedMenu2 string `json:"selectedMenu2,omitempty"`
	SelectedMenu3 string `json:"selectedMenu3,omitempty"`
	SelectedMenu4 string `json:"selectedMenu4,omitempty"`
	MenuCount     int    `json:"menuCount,omitempty"`

	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`

	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`

	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
	Copyright   string       `json:"copyright,omitempty"`
	FooterLogo  string       `json:"footerLogo,omitempty"`

	BgType             string `json:"bgType,omitempty"` // default|customColor|image
	BgColor            string `json:"bgColor,omitempty"`
	BgImage            string `json:"bgImage,omitempty"`
	TextColor          string `json:"textColor,omitempty"`
	SecondaryTextColor string `json:"secondaryTextColor,omitempty"`
}

// EffectiveLayout returns the configured layout, defaulting to layout1.
// Safe on a nil receiver since the footer block is optional.
func (f *FooterSettings) EffectiveLayout() string {
	if f == nil || f.Layout == "" {
		return FooterLayout1
	}
	return f.Layout
}

// Settings is the site-wide grab-bag record. Writes shallow-merge into the
// existing record so partial dashboard saves never drop sibling fields
// (notably the footer block).
type Settings struct {
	SiteTitle       string          `json:"siteTitle,omitempty"`
	Tagline         string          `json:"tagline,omitempty"`
	Favicon         string          `json:"favicon,omitempty"`
	URL             string          `json:"url,omitempty"`
	Email           string          `json:"email,omitempty"`
	ContactNumber   string          `json:"contactNumber,omitempty"`
	Address         string          `json:"address,omitempty"`
	GoogleMapLink   string          `json:"googleMapLink,omitempty"`
	EnableDarkMode  bool            `json:"enableDarkMode,omitempty"`
	SelectedMenuID  string          `json:"selectedMenuId,omitempty"`
	HeaderVariation string          `json:"headerVariation,omitempty"`
	Footer          *FooterSettings `json:"footer,omitempty"`
}

// EffectiveHeaderVariation returns the header variation, defaulting to
// "background".
func (s *Settings) EffectiveHeaderVariation() string {
	if s.HeaderVariation == "" {
		return HeaderBackground
	}
	return s.HeaderVariation
}

// Logo is the site logo reference. Width and height are CSS-ish strings
// ("150", "auto"), matching what the dashboard stores.
type Logo struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// DefaultLogo returns the logo record used when none is stored.
func DefaultLogo() Logo {
	return Logo{URL: "", Width: "150", Height: "auto"}
}
