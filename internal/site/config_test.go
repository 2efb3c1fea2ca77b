package site

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testNow = time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

func TestDefaultCredits(t *testing.T) {
	cfg := Default(testNow)

	want := "Built with Nuxt UI • © 2025 Bahadin Ali"
	if cfg.Footer.Credits != want {
		t.Errorf("expected credits %q, got %q", want, cfg.Footer.Credits)
	}
	if cfg.Footer.ColorMode {
		t.Error("expected color mode toggle to be disabled")
	}
}

func TestDefaultGlobal(t *testing.T) {
	cfg := Default(testNow)

	if cfg.Global.Picture.Dark != "/hero/myPic.png" || cfg.Global.Picture.Light != "/hero/myPic.png" {
		t.Errorf("unexpected picture paths: %+v", cfg.Global.Picture)
	}
	if cfg.Global.Picture.Alt == "" {
		t.Error("expected picture alt text")
	}
	if cfg.Global.Email != "se.bahauddin@gmail.com" {
		t.Errorf("unexpected email %q", cfg.Global.Email)
	}
	if !cfg.Global.Available {
		t.Error("expected available to be true")
	}
	if cfg.UI.Colors.Primary != "blue" || cfg.UI.Colors.Neutral != "neutral" {
		t.Errorf("unexpected colors: %+v", cfg.UI.Colors)
	}
	if got := cfg.Component("button").Class; got != "ios-glass-button" {
		t.Errorf("expected button class 'ios-glass-button', got %q", got)
	}
	if got := cfg.Component("pageHero").Slots["container"]; got != "py-18 sm:py-24 lg:py-32" {
		t.Errorf("unexpected pageHero container slot %q", got)
	}
	if got := cfg.Component("missing"); got.Class != "" || got.Slots != nil {
		t.Errorf("expected zero style for unknown component, got %+v", got)
	}
}

func TestFooterLinks(t *testing.T) {
	links := Default(testNow).Footer.Links
	if len(links) != 2 {
		t.Fatalf("expected 2 footer links, got %d", len(links))
	}

	wantLabels := []string{"GitHub Profile", "LinkedIn Profile"}
	for i, l := range links {
		if l.Icon == "" {
			t.Errorf("link %d: empty icon", i)
		}
		if l.AriaLabel != wantLabels[i] {
			t.Errorf("link %d: expected label %q, got %q", i, wantLabels[i], l.AriaLabel)
		}
		u, err := url.Parse(l.To)
		if err != nil {
			t.Errorf("link %d: invalid url %q: %v", i, l.To, err)
			continue
		}
		if u.Scheme != "https" || u.Host == "" {
			t.Errorf("link %d: expected external https url, got %q", i, l.To)
		}
		if !l.NewTab() {
			t.Errorf("link %d: expected to open in a new tab", i)
		}
	}
}

func TestProviderReadsAreIdentical(t *testing.T) {
	p := New(testNow)

	first := p.Config()
	for n := 0; n < 10; n++ {
		if diff := cmp.Diff(first, p.Config()); diff != "" {
			t.Fatalf("config changed between reads (-first +now):\n%s", diff)
		}
	}
}

func TestProviderConfigIsolation(t *testing.T) {
	p := New(testNow)

	cfg := p.Config()
	cfg.Global.Email = "changed@example.com"
	cfg.Footer.Links[0].To = "https://example.com"
	cfg.UI.Components["pageHero"].Slots["title"] = "changed"
	cfg.UI.Components["button"] = ComponentStyle{Class: "changed"}

	if diff := cmp.Diff(Default(testNow), p.Config()); diff != "" {
		t.Errorf("mutating a returned config leaked into the provider (-want +got):\n%s", diff)
	}
}

func TestProviderAppliesOverridesInOrder(t *testing.T) {
	first := "first@example.com"
	second := "second@example.com"
	unavailable := false

	p := New(testNow,
		Overrides{Email: &first, Available: &unavailable},
		Overrides{Email: &second},
	)
	cfg := p.Config()

	if cfg.Global.Email != second {
		t.Errorf("expected last override to win, got %q", cfg.Global.Email)
	}
	if cfg.Global.Available {
		t.Error("expected available override to apply")
	}
	if cfg.Global.MeetingLink != "https://cal.com/" {
		t.Errorf("expected untouched meeting link, got %q", cfg.Global.MeetingLink)
	}
}

func TestOverridesEmpty(t *testing.T) {
	if !(Overrides{}).Empty() {
		t.Error("expected zero overrides to be empty")
	}
	credits := "custom"
	if (Overrides{Credits: &credits}).Empty() {
		t.Error("expected overrides with credits not to be empty")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := `meeting_link: https://cal.com/bahadin
available: false
picture_alt: Portrait
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	o, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	cfg := o.Apply(Default(testNow))
	if cfg.Global.MeetingLink != "https://cal.com/bahadin" {
		t.Errorf("unexpected meeting link %q", cfg.Global.MeetingLink)
	}
	if cfg.Global.Available {
		t.Error("expected available to be false")
	}
	if cfg.Global.Picture.Alt != "Portrait" {
		t.Errorf("unexpected alt %q", cfg.Global.Picture.Alt)
	}
	if cfg.Global.Email != "se.bahauddin@gmail.com" {
		t.Errorf("expected default email, got %q", cfg.Global.Email)
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	o, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Empty() {
		t.Errorf("expected no overrides, got %+v", o)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("available: [not, a, bool]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse site config") {
		t.Errorf("unexpected error message %q", err)
	}
}
