// Package observability lets a host process observe the pipeline, the cache
// and the HTTP server without those packages depending on a metrics or
// tracing backend.
//
// Register hooks once at startup:
//
//	observability.SetPipelineHooks(myMetrics)
//	observability.SetCacheHooks(myMetrics)
//
// Instrumented code fetches the current hooks at the call site:
//
//	observability.Pipeline().OnLoadComplete(ctx, observability.LoadEvent{...})
//
// Until something is registered every hook is a no-op. [LogHooks] reports
// all events to a charm logger at debug level.
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// LoadEvent describes a finished data view load.
type LoadEvent struct {
	Source   string
	Columns  int
	Duration time.Duration
	Err      error
}

// BuildEvent describes a finished tooltip build.
type BuildEvent struct {
	Points   int
	Entries  int
	Duration time.Duration
}

// RequestEvent describes an HTTP request. Status and Duration are only set
// on response.
type RequestEvent struct {
	Method    string
	Path      string
	RequestID string
	Status    int
	Duration  time.Duration
}

// PipelineHooks receives events from the tooltip pipeline.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, ev LoadEvent)
	OnBuildStart(ctx context.Context, points int)
	OnBuildComplete(ctx context.Context, ev BuildEvent)
}

// CacheHooks receives cache events. keyType is "view" or "tooltip".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, ev RequestEvent)
	OnResponse(ctx context.Context, ev RequestEvent)
}

// Noop implements every hook interface and does nothing.
type Noop struct{}

func (Noop) OnLoadStart(context.Context, string)         {}
func (Noop) OnLoadComplete(context.Context, LoadEvent)   {}
func (Noop) OnBuildStart(context.Context, int)           {}
func (Noop) OnBuildComplete(context.Context, BuildEvent) {}
func (Noop) OnCacheHit(context.Context, string)          {}
func (Noop) OnCacheMiss(context.Context, string)         {}
func (Noop) OnCacheSet(context.Context, string, int)     {}
func (Noop) OnRequest(context.Context, RequestEvent)     {}
func (Noop) OnResponse(context.Context, RequestEvent)    {}

type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var (
	current atomic.Pointer[registry]
	writeMu sync.Mutex
)

func init() { Reset() }

// update applies fn to a copy of the registry and publishes it.
func update(fn func(r *registry)) {
	writeMu.Lock()
	defer writeMu.Unlock()
	next := *current.Load()
	fn(&next)
	current.Store(&next)
}

// SetPipelineHooks registers pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks registers HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	writeMu.Lock()
	defer writeMu.Unlock()
	current.Store(&registry{pipeline: Noop{}, cache: Noop{}, http: Noop{}})
}
