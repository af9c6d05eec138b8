// Package pipeline turns data views into tooltip tables.
//
// The pipeline has two stages:
//
//  1. Load: decode a JSON data view from a file, inline bytes, or a view
//     previously stored with [Runner.StoreView]
//  2. Build: enumerate data points and run [tooltip.Builder] on each
//
// Both the CLI and the HTTP server go through a [Runner] so results are
// cached the same way everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:    "sales.json",
//	    Locale:    "de-DE",
//	    AllSeries: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range result.Points {
//	    fmt.Println(p.Category, p.Entries)
//	}
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/matzehuels/tooltipkit/pkg/cache"
	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
	"github.com/matzehuels/tooltipkit/pkg/localize"
	"github.com/matzehuels/tooltipkit/pkg/tooltip"
)

// DefaultTTL is how long computed tooltip tables stay cached.
const DefaultTTL = 24 * time.Hour

// Options selects the data view and the points to build.
// Exactly one of Source, Data and ViewHash must be set.
type Options struct {
	Source   string `json:"-"`
	Data     []byte `json:"-"`
	ViewHash string `json:"view,omitempty"`

	Locale      string `json:"locale,omitempty"`
	SeriesIndex int    `json:"series,omitempty"`
	AllSeries   bool   `json:"allSeries,omitempty"`
	Point       *int   `json:"point,omitempty"` // nil builds every point
	Refresh     bool   `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	tag       language.Tag
	validated bool
}

// Result is a computed tooltip table.
type Result struct {
	ViewHash string  `json:"view"`
	Locale   string  `json:"locale"`
	Points   []Point `json:"points"`
	Stats    Stats   `json:"stats"`
	CacheHit bool    `json:"cacheHit"`
}

// Point is the tooltip of one data point and series.
type Point struct {
	Index    int             `json:"index"`
	Category any             `json:"category"`
	Series   int             `json:"series"`
	Entries  []tooltip.Entry `json:"entries"`
}

// Stats contains execution statistics.
type Stats struct {
	Columns   int           `json:"columns"`
	Points    int           `json:"points"`
	Entries   int           `json:"entries"`
	LoadTime  time.Duration `json:"loadTime"`
	BuildTime time.Duration `json:"buildTime"`
}

// PointAt returns a pointer to i for use as [Options.Point].
func PointAt(i int) *int { return &i }

// ValidateAndSetDefaults checks the options and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	sources := 0
	for _, set := range []bool{o.Source != "", len(o.Data) > 0, o.ViewHash != ""} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return tkerrors.New(tkerrors.ErrCodeInvalidInput, "a data view source, inline data or view hash is required")
	}
	if sources > 1 {
		return tkerrors.New(tkerrors.ErrCodeInvalidInput, "source, data and view hash are mutually exclusive")
	}
	if o.Source != "" {
		if err := tkerrors.ValidatePath(o.Source); err != nil {
			return err
		}
	}

	if o.Locale == "" {
		o.Locale = localize.DefaultLocale.String()
	}
	tag, err := tkerrors.ValidateLocale(o.Locale)
	if err != nil {
		return err
	}
	o.tag = tag

	if o.Point != nil && *o.Point < 0 {
		return tkerrors.New(tkerrors.ErrCodeInvalidIndex, "point index cannot be negative: %d", *o.Point)
	}
	o.validated = true
	return nil
}

// TooltipKeyOpts returns the cache key options for these options.
func (o *Options) TooltipKeyOpts() cache.TooltipKeyOpts {
	point := -1
	if o.Point != nil {
		point = *o.Point
	}
	return cache.TooltipKeyOpts{
		Locale:      o.tag.String(),
		SeriesIndex: o.SeriesIndex,
		AllSeries:   o.AllSeries,
		Point:       point,
	}
}
