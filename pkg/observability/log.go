package observability

import (
	"context"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to Logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to l.
func NewLogHooks(l *log.Logger) LogHooks {
	return LogHooks{Logger: l.WithPrefix("obs")}
}

// Install registers h for the pipeline, cache and HTTP events.
func (h LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("load start", "source", source)
}

func (h LogHooks) OnLoadComplete(_ context.Context, ev LoadEvent) {
	if ev.Err != nil {
		h.Logger.Debug("load failed", "source", ev.Source, "duration", ev.Duration, "error", ev.Err)
		return
	}
	h.Logger.Debug("load complete", "source", ev.Source, "columns", ev.Columns, "duration", ev.Duration)
}

func (h LogHooks) OnBuildStart(_ context.Context, points int) {
	h.Logger.Debug("build start", "points", points)
}

func (h LogHooks) OnBuildComplete(_ context.Context, ev BuildEvent) {
	h.Logger.Debug("build complete", "points", ev.Points, "entries", ev.Entries, "duration", ev.Duration)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h LogHooks) OnRequest(_ context.Context, ev RequestEvent) {
	h.Logger.Debug("request", "method", ev.Method, "path", ev.Path, "request_id", ev.RequestID)
}

func (h LogHooks) OnResponse(_ context.Context, ev RequestEvent) {
	h.Logger.Debug("response", "method", ev.Method, "path", ev.Path, "status", ev.Status,
		"duration", ev.Duration, "request_id", ev.RequestID)
}

var (
	_ PipelineHooks = LogHooks{}
	_ CacheHooks    = LogHooks{}
	_ HTTPHooks     = LogHooks{}
)
