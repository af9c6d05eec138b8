// Package localize maps message keys to display strings for a locale.
//
// Resources are TOML files, one per locale:
//
//	locale = "de-DE"
//
//	[strings]
//	Visual_Hightlighted = "Hervorgehoben"
//
// A [Bundle] holds every loaded locale. [Bundle.Localizer] picks the best
// match for a requested language tag and returns a [Catalog] that falls back
// to the default locale, then to the key itself.
package localize

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

// Keys of the table labels shipped with the built-in resources.
const (
	KeyCategory = "Visual_Tooltip_Category"
	KeySeries   = "Visual_Tooltip_Series"
	KeyValue    = "Visual_Tooltip_Value"
)

// DefaultLocale is the locale every lookup falls back to.
var DefaultLocale = language.AmericanEnglish

//go:embed resources/*.toml
var builtin embed.FS

// Localizer returns the display string for a message key.
type Localizer interface {
	DisplayName(key string) string
}

type resourceFile struct {
	Locale  string            `toml:"locale"`
	Strings map[string]string `toml:"strings"`
}

// Bundle is a set of per-locale string tables.
type Bundle struct {
	tags        []language.Tag
	tables      map[string]map[string]string // keyed by tag.String()
	fingerprint string
}

// NewBundle returns a bundle preloaded with the built-in resources.
func NewBundle() (*Bundle, error) {
	b := &Bundle{tables: make(map[string]map[string]string)}
	if err := b.addFS(builtin, "resources"); err != nil {
		return nil, err
	}
	return b, nil
}

// AddDir loads every *.toml resource in dir. Keys in later files override
// earlier ones for the same locale.
func (b *Bundle) AddDir(dir string) error {
	if err := tkerrors.ValidatePath(dir); err != nil {
		return err
	}
	return b.addFS(os.DirFS(dir), ".")
}

func (b *Bundle) addFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read resources: %w", err)
	}
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".toml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, ent.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", ent.Name(), err)
		}
		if err := b.Add(data); err != nil {
			return fmt.Errorf("%s: %w", ent.Name(), err)
		}
	}
	return nil
}

// Add parses one TOML resource document and merges it into the bundle.
func (b *Bundle) Add(data []byte) error {
	var rf resourceFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return tkerrors.Wrap(tkerrors.ErrCodeInvalidConfig, err, "parse resource")
	}
	tag, err := tkerrors.ValidateLocale(rf.Locale)
	if err != nil {
		return err
	}

	table, ok := b.tables[tag.String()]
	if !ok {
		table = make(map[string]string, len(rf.Strings))
		b.tables[tag.String()] = table
		b.tags = append(b.tags, tag)
	}
	for k, v := range rf.Strings {
		table[k] = v
	}
	b.fingerprint = fingerprint(b.tables)
	return nil
}

// Fingerprint identifies the merged string tables. It changes whenever a
// loaded string changes.
func (b *Bundle) Fingerprint() string {
	return b.fingerprint
}

func fingerprint(tables map[string]map[string]string) string {
	// encoding/json sorts map keys.
	data, err := json.Marshal(tables)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Locales returns the loaded locales in load order.
func (b *Bundle) Locales() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Localizer returns the catalog best matching tag.
func (b *Bundle) Localizer(tag language.Tag) *Catalog {
	fallback := b.tables[DefaultLocale.String()]
	c := &Catalog{tag: DefaultLocale, strings: fallback, fallback: fallback}
	if len(b.tags) == 0 {
		return c
	}
	_, idx, conf := language.NewMatcher(b.tags).Match(tag)
	if conf != language.No {
		c.tag = b.tags[idx]
		c.strings = b.tables[c.tag.String()]
	}
	return c
}

// Catalog is one locale's string table. It implements [Localizer].
type Catalog struct {
	tag      language.Tag
	strings  map[string]string
	fallback map[string]string
}

// Locale returns the locale the catalog serves.
func (c *Catalog) Locale() language.Tag { return c.tag }

// DisplayName returns the localized string for key, falling back to the
// default locale, then to key.
func (c *Catalog) DisplayName(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	if s, ok := c.fallback[key]; ok {
		return s
	}
	return key
}

var _ Localizer = (*Catalog)(nil)
