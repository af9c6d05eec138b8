package localize

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

func TestBuiltinResources(t *testing.T) {
	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	if got := len(b.Locales()); got < 3 {
		t.Fatalf("Locales() = %d, want at least 3", got)
	}

	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "Highlighted"},
		{"en", "Highlighted"},
		{"de-DE", "Hervorgehoben"},
		{"de-AT", "Hervorgehoben"},
		{"fr-FR", "En surbrillance"},
		{"ja-JP", "Highlighted"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			c := b.Localizer(language.MustParse(tt.locale))
			if got := c.DisplayName("Visual_Hightlighted"); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	c := b.Localizer(language.German)
	if got := c.DisplayName("Visual_Missing"); got != "Visual_Missing" {
		t.Errorf("DisplayName() = %q, want key", got)
	}
}

func TestFallbackToDefaultLocale(t *testing.T) {
	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	partial := []byte("locale = \"es-ES\"\n\n[strings]\nVisual_Tooltip_Value = \"Valor\"\n")
	if err := b.Add(partial); err != nil {
		t.Fatalf("Add: %v", err)
	}

	c := b.Localizer(language.MustParse("es-ES"))
	if got := c.DisplayName("Visual_Tooltip_Value"); got != "Valor" {
		t.Errorf("own key = %q, want Valor", got)
	}
	if got := c.DisplayName("Visual_Hightlighted"); got != "Highlighted" {
		t.Errorf("fallback key = %q, want Highlighted", got)
	}
}

func TestAddDirOverrides(t *testing.T) {
	dir := t.TempDir()
	override := []byte("locale = \"en-US\"\n\n[strings]\nVisual_Hightlighted = \"Selected\"\n")
	if err := os.WriteFile(filepath.Join(dir, "custom.toml"), override, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	if err := b.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	if got := b.Localizer(language.AmericanEnglish).DisplayName("Visual_Hightlighted"); got != "Selected" {
		t.Errorf("DisplayName() = %q, want Selected", got)
	}
}

func TestFingerprint(t *testing.T) {
	load := func(label string) *Bundle {
		t.Helper()
		b, err := NewBundle()
		if err != nil {
			t.Fatalf("NewBundle: %v", err)
		}
		if label != "" {
			doc := "locale = \"en-US\"\n\n[strings]\nVisual_Hightlighted = \"" + label + "\"\n"
			if err := b.Add([]byte(doc)); err != nil {
				t.Fatalf("Add: %v", err)
			}
		}
		return b
	}

	builtin := load("")
	if builtin.Fingerprint() == "" {
		t.Fatal("built-in bundle has no fingerprint")
	}
	if got := load("").Fingerprint(); got != builtin.Fingerprint() {
		t.Errorf("same resources gave %q and %q", got, builtin.Fingerprint())
	}
	if load("Marked").Fingerprint() == builtin.Fingerprint() {
		t.Error("changed string kept the fingerprint")
	}
	if load("Marked").Fingerprint() != load("Marked").Fingerprint() {
		t.Error("fingerprint is not stable")
	}
}

func TestAddErrors(t *testing.T) {
	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}

	tests := []struct {
		name string
		data string
		code tkerrors.Code
	}{
		{"malformed toml", "locale = ", tkerrors.ErrCodeInvalidConfig},
		{"missing locale", "[strings]\nA = \"b\"\n", tkerrors.ErrCodeInvalidLocale},
		{"bad locale", "locale = \"??\"\n", tkerrors.ErrCodeInvalidLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Add([]byte(tt.data))
			if !tkerrors.Is(err, tt.code) {
				t.Errorf("Add() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestEmptyBundle(t *testing.T) {
	c := (&Bundle{tables: map[string]map[string]string{}}).Localizer(language.German)
	if got := c.DisplayName("Visual_Hightlighted"); got != "Visual_Hightlighted" {
		t.Errorf("empty bundle DisplayName() = %q, want key", got)
	}
}
