// Package site holds the site-wide configuration rendered by every page:
// hero picture, contact details, theme tokens and footer credits.
package site

import (
	"fmt"
	"maps"
	"time"
)

type Picture struct {
	Dark  string `json:"dark" yaml:"dark"`
	Light string `json:"light" yaml:"light"`
	Alt   string `json:"alt" yaml:"alt"`
}

type Global struct {
	Picture     Picture `json:"picture" yaml:"picture"`
	MeetingLink string  `json:"meetingLink" yaml:"meeting_link"`
	Email       string  `json:"email" yaml:"email"`
	Available   bool    `json:"available" yaml:"available"`
}

type Colors struct {
	Primary string `json:"primary" yaml:"primary"`
	Neutral string `json:"neutral" yaml:"neutral"`
}

// ComponentStyle carries the class tokens applied to one UI component. Slots
// override classes of named sub-elements (container, title, ...).
type ComponentStyle struct {
	Class string            `json:"class,omitempty" yaml:"class,omitempty"`
	Slots map[string]string `json:"slots,omitempty" yaml:"slots,omitempty"`
}

type UI struct {
	Colors     Colors                    `json:"colors" yaml:"colors"`
	Components map[string]ComponentStyle `json:"components" yaml:"components"`
}

type FooterLink struct {
	Icon      string `json:"icon" yaml:"icon"`
	To        string `json:"to" yaml:"to"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	AriaLabel string `json:"ariaLabel" yaml:"aria_label"`
}

// NewTab reports whether the link opens in a new browser tab.
func (l FooterLink) NewTab() bool {
	return l.Target == "_blank"
}

type Footer struct {
	Credits   string       `json:"credits" yaml:"credits"`
	ColorMode bool         `json:"colorMode" yaml:"color_mode"`
	Links     []FooterLink `json:"links" yaml:"links"`
}

type Config struct {
	Global Global `json:"global" yaml:"global"`
	UI     UI     `json:"ui" yaml:"ui"`
	Footer Footer `json:"footer" yaml:"footer"`
}

const owner = "Bahadin Ali"

// Credits returns the footer credit line for the given year.
func Credits(year int) string {
	return fmt.Sprintf("Built with Nuxt UI • © %d %s", year, owner)
}

// Default returns the compiled-in configuration. The copyright year is taken
// from now and never re-evaluated afterwards.
func Default(now time.Time) Config {
	return Config{
		Global: Global{
			Picture: Picture{
				Dark:  "/hero/myPic.png",
				Light: "/hero/myPic.png",
				Alt:   owner + " - Frontend Developer",
			},
			MeetingLink: "https://cal.com/",
			Email:       "se.bahauddin@gmail.com",
			Available:   true,
		},
		UI: UI{
			Colors: Colors{
				Primary: "blue",
				Neutral: "neutral",
			},
			Components: map[string]ComponentStyle{
				"button": {
					Class: "ios-glass-button",
				},
				"pageHero": {
					Slots: map[string]string{
						"container":   "py-18 sm:py-24 lg:py-32",
						"title":       "mx-auto max-w-xl text-pretty text-3xl sm:text-4xl lg:text-5xl",
						"description": "mt-2 text-md mx-auto max-w-2xl text-pretty sm:text-md text-muted",
					},
				},
			},
		},
		Footer: Footer{
			Credits:   Credits(now.Year()),
			ColorMode: false,
			Links: []FooterLink{
				{
					Icon:      "i-simple-icons-github",
					To:        "https://github.com/EngBahadin",
					Target:    "_blank",
					AriaLabel: "GitHub Profile",
				},
				{
					Icon:      "i-simple-icons-linkedin",
					To:        "https://www.linkedin.com/in/bahadin-ali/",
					Target:    "_blank",
					AriaLabel: "LinkedIn Profile",
				},
			},
		},
	}
}

// Component returns the style overrides for a component, or the zero value.
func (c Config) Component(name string) ComponentStyle {
	return c.UI.Components[name]
}

// Clone returns a deep copy so the caller may modify it freely.
func (c Config) Clone() Config {
	out := c
	if c.UI.Components != nil {
		out.UI.Components = make(map[string]ComponentStyle, len(c.UI.Components))
		for name, style := range c.UI.Components {
			style.Slots = maps.Clone(style.Slots)
			out.UI.Components[name] = style
		}
	}
	if c.Footer.Links != nil {
		out.Footer.Links = append([]FooterLink(nil), c.Footer.Links...)
	}
	return out
}

// Provider owns the frozen configuration built at startup.
type Provider struct {
	cfg Config
}

func New(now time.Time, overrides ...Overrides) *Provider {
	cfg := Default(now)
	for _, o := range overrides {
		cfg = o.Apply(cfg)
	}
	return &Provider{cfg: cfg}
}

// Config returns the site configuration. Every call yields an equal value.
func (p *Provider) Config() Config {
	return p.cfg.Clone()
}
