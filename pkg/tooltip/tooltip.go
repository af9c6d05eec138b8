package tooltip

import (
	"golang.org/x/text/language"

	"github.com/matzehuels/tooltipkit/pkg/dataview"
	"github.com/matzehuels/tooltipkit/pkg/format"
	"github.com/matzehuels/tooltipkit/pkg/localize"
)

const (
	// DefaultSeriesIndex is the value column used when none is requested.
	DefaultSeriesIndex = 0

	// DefaultDisplayName seeds composite category labels.
	DefaultDisplayName = ""

	// DisplayNameSeparator joins composite category display names.
	DisplayNameSeparator = "/"

	// HighlightedKey is the message key labelling highlighted values.
	HighlightedKey = "Visual_Hightlighted"
)

// Entry is one tooltip line.
type Entry struct {
	DisplayName string `json:"displayName"`
	Value       string `json:"value"`
}

// CategoryItem is the resolved category for a data point. Metadata holds
// one column, or several when the category axis is composite.
type CategoryItem struct {
	Value    any
	Metadata []*dataview.Column
}

// SeriesItem is one measure for a data point.
type SeriesItem struct {
	Value            any
	HighlightedValue any
	Metadata         *dataview.ValueColumn
}

// Builder assembles tooltip entries with a fixed set of collaborators.
type Builder struct {
	resolver  format.Resolver
	formatter format.ValueFormatter
	localizer localize.Localizer
}

// Option configures a Builder.
type Option func(*Builder)

// WithResolver sets the format string resolver.
func WithResolver(r format.Resolver) Option {
	return func(b *Builder) { b.resolver = r }
}

// WithFormatter sets the value formatter.
func WithFormatter(f format.ValueFormatter) Option {
	return func(b *Builder) { b.formatter = f }
}

// WithEngine uses e as both resolver and formatter.
func WithEngine(e *format.Engine) Option {
	return func(b *Builder) {
		b.resolver = e
		b.formatter = e
	}
}

// WithLocalizer sets the localizer for fixed labels.
func WithLocalizer(l localize.Localizer) Option {
	return func(b *Builder) { b.localizer = l }
}

// WithLocale sets a format engine and the built-in localization catalog
// for tag. Later options override the pieces they name.
func WithLocale(tag language.Tag) Option {
	return func(b *Builder) {
		e := format.NewEngine(tag)
		b.resolver, b.formatter = e, e
		if bundle, err := localize.NewBundle(); err == nil {
			b.localizer = bundle.Localizer(tag)
		}
	}
}

// New returns a Builder. Unset collaborators default to the
// [localize.DefaultLocale] engine and catalog.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.resolver == nil || b.formatter == nil || b.localizer == nil {
		def := &Builder{}
		WithLocale(localize.DefaultLocale)(def)
		if b.resolver == nil {
			b.resolver = def.resolver
		}
		if b.formatter == nil {
			b.formatter = def.formatter
		}
		if b.localizer == nil {
			b.localizer = def.localizer
		}
	}
	if b.localizer == nil {
		b.localizer = keyLocalizer{}
	}
	return b
}

// Build selects the descriptors for a data point and assembles its entries.
// seriesIndex picks the value column; pass [DefaultSeriesIndex] for the first.
func (b *Builder) Build(cat *dataview.Categorical, categoryValue, value any, seriesIndex int) []Entry {
	s := Select(cat, categoryValue, value, seriesIndex)
	return b.Assemble(s.Category, s.DynamicSeries, s.Series)
}

// keyLocalizer echoes keys; used only when no catalog could be loaded.
type keyLocalizer struct{}

func (keyLocalizer) DisplayName(key string) string { return key }
