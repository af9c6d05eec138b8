package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/matzehuels/tooltipkit/pkg/cache"
	"github.com/matzehuels/tooltipkit/pkg/dataview"
	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
	"github.com/matzehuels/tooltipkit/pkg/format"
	"github.com/matzehuels/tooltipkit/pkg/localize"
	"github.com/matzehuels/tooltipkit/pkg/observability"
	"github.com/matzehuels/tooltipkit/pkg/tooltip"
)

// Cache key types reported to observability hooks.
const (
	keyTypeView    = "view"
	keyTypeTooltip = "tooltip"
)

// Runner executes the pipeline with caching.
//
// A Runner holds no per-request state, so one instance can serve
// concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Bundle supplies the localized labels. Nil uses the built-in resources.
	Bundle *localize.Bundle

	// TTL applies to stored views and tooltip tables.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Execute loads the data view named by opts and builds its tooltip table.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	hooks := observability.Pipeline()

	loadStart := time.Now()
	label := sourceLabel(opts)
	hooks.OnLoadStart(ctx, label)

	data, viewHash, err := r.load(ctx, opts)
	if err != nil {
		hooks.OnLoadComplete(ctx, observability.LoadEvent{Source: label, Duration: time.Since(loadStart), Err: err})
		return nil, err
	}

	keyOpts := opts.TooltipKeyOpts()
	if r.Bundle != nil {
		keyOpts.Resources = r.Bundle.Fingerprint()
	}
	key := r.Keyer.TooltipKey(viewHash, keyOpts)
	if !opts.Refresh {
		if cached, ok := r.cachedResult(ctx, key); ok {
			hooks.OnLoadComplete(ctx, observability.LoadEvent{Source: label, Columns: cached.Stats.Columns, Duration: time.Since(loadStart)})
			opts.Logger.Debug("tooltip cache hit", "view", shortHash(viewHash), "points", len(cached.Points))
			return cached, nil
		}
	}

	cat, err := dataview.ReadJSON(bytes.NewReader(data))
	loadTime := time.Since(loadStart)
	if err != nil {
		hooks.OnLoadComplete(ctx, observability.LoadEvent{Source: label, Duration: loadTime, Err: err})
		return nil, err
	}
	columns := len(cat.Columns())
	hooks.OnLoadComplete(ctx, observability.LoadEvent{Source: label, Columns: columns, Duration: loadTime})
	opts.Logger.Info("loaded data view",
		"source", label,
		"columns", columns,
		"points", cat.PointCount(),
		"duration", loadTime)

	buildStart := time.Now()
	points, err := BuildPoints(ctx, r.builder(opts.tag), cat, opts)
	if err != nil {
		return nil, err
	}
	entries := 0
	for _, p := range points {
		entries += len(p.Entries)
	}

	result := &Result{
		ViewHash: viewHash,
		Locale:   opts.tag.String(),
		Points:   points,
		Stats: Stats{
			Columns:   columns,
			Points:    len(points),
			Entries:   entries,
			LoadTime:  loadTime,
			BuildTime: time.Since(buildStart),
		},
	}
	hooks.OnBuildComplete(ctx, observability.BuildEvent{Points: len(points), Entries: entries, Duration: result.Stats.BuildTime})
	opts.Logger.Info("built tooltips",
		"points", len(points),
		"entries", entries,
		"duration", result.Stats.BuildTime)

	if payload, err := json.Marshal(result); err == nil {
		if err := r.Cache.Set(ctx, key, payload, r.TTL); err != nil {
			opts.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeTooltip, len(payload))
		}
	}

	return result, nil
}

// StoreView validates a JSON data view and stores it for later use through
// [Options.ViewHash]. It returns the view hash.
func (r *Runner) StoreView(ctx context.Context, data []byte) (string, error) {
	cat, err := dataview.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	hash := cache.Hash(data)
	if err := r.Cache.Set(ctx, r.Keyer.ViewKey(hash), data, r.TTL); err != nil {
		return "", tkerrors.Wrap(tkerrors.ErrCodeInternal, err, "store view")
	}
	observability.Cache().OnCacheSet(ctx, keyTypeView, len(data))
	r.Logger.Info("stored data view", "view", shortHash(hash), "columns", len(cat.Columns()))
	return hash, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// BuildPoints builds the tooltip of every selected point and series of cat.
//
// Without [Options.Point] every category index is built. With
// [Options.AllSeries] every value column is built, otherwise only
// [Options.SeriesIndex]. The series' highlight at the point, when present,
// is attached to its series item.
func BuildPoints(ctx context.Context, b *tooltip.Builder, cat *dataview.Categorical, opts Options) ([]Point, error) {
	n := cat.PointCount()
	indices := make([]int, 0, n)
	if opts.Point != nil {
		if err := tkerrors.ValidateIndex("point", *opts.Point, n); err != nil {
			return nil, err
		}
		indices = append(indices, *opts.Point)
	} else {
		for i := 0; i < n; i++ {
			indices = append(indices, i)
		}
	}

	series := []int{opts.SeriesIndex}
	if opts.AllSeries && cat.Values.Len() > 0 {
		series = series[:0]
		for s := 0; s < cat.Values.Len(); s++ {
			series = append(series, s)
		}
	}

	observability.Pipeline().OnBuildStart(ctx, len(indices)*len(series))

	points := make([]Point, 0, len(indices)*len(series))
	for _, i := range indices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		categoryValue := cat.CompositeCategoryValue(i)
		for _, s := range series {
			vc := cat.Values.At(s)
			sel := tooltip.Select(cat, categoryValue, vc.Value(i), s)
			if len(sel.Series) > 0 {
				sel.Series[0].HighlightedValue = vc.Highlight(i)
			}
			entries := b.Assemble(sel.Category, sel.DynamicSeries, sel.Series)
			if entries == nil {
				entries = []tooltip.Entry{}
			}
			points = append(points, Point{
				Index:    i,
				Category: categoryValue,
				Series:   s,
				Entries:  entries,
			})
		}
	}
	return points, nil
}

func (r *Runner) load(ctx context.Context, opts Options) ([]byte, string, error) {
	switch {
	case opts.ViewHash != "":
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ViewKey(opts.ViewHash))
		if err != nil {
			return nil, "", tkerrors.Wrap(tkerrors.ErrCodeInternal, err, "load view %s", shortHash(opts.ViewHash))
		}
		if !hit {
			observability.Cache().OnCacheMiss(ctx, keyTypeView)
			return nil, "", tkerrors.New(tkerrors.ErrCodeNotFound, "view not found: %s", opts.ViewHash)
		}
		observability.Cache().OnCacheHit(ctx, keyTypeView)
		return data, opts.ViewHash, nil
	case opts.Source != "":
		data, err := os.ReadFile(opts.Source)
		if os.IsNotExist(err) {
			return nil, "", tkerrors.Wrap(tkerrors.ErrCodeFileNotFound, err, "open %s", opts.Source)
		}
		if err != nil {
			return nil, "", tkerrors.Wrap(tkerrors.ErrCodeInvalidInput, err, "read %s", opts.Source)
		}
		return data, cache.Hash(data), nil
	default:
		return opts.Data, cache.Hash(opts.Data), nil
	}
}

func (r *Runner) cachedResult(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeTooltip)
		return nil, false
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		observability.Cache().OnCacheMiss(ctx, keyTypeTooltip)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeTooltip)
	result.CacheHit = true
	return &result, true
}

func (r *Runner) builder(tag language.Tag) *tooltip.Builder {
	opts := []tooltip.Option{tooltip.WithEngine(format.NewEngine(tag))}
	if r.Bundle != nil {
		opts = append(opts, tooltip.WithLocalizer(r.Bundle.Localizer(tag)))
	} else {
		opts = append(opts, tooltip.WithLocale(tag))
	}
	return tooltip.New(opts...)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func sourceLabel(opts Options) string {
	switch {
	case opts.ViewHash != "":
		return keyTypeView + ":" + shortHash(opts.ViewHash)
	case opts.Source != "":
		return opts.Source
	default:
		return "inline"
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
