package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// TooltipKeyOpts are the options that change a tooltip table.
type TooltipKeyOpts struct {
	Locale      string `json:"locale"`
	SeriesIndex int    `json:"series_index"`
	AllSeries   bool   `json:"allSeries,omitempty"`
	Point       int    `json:"point"` // -1 for every point
	Resources   string `json:"resources,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ViewKey keys a stored data view by the hash of its source bytes.
	ViewKey(viewHash string) string

	// TooltipKey keys a computed tooltip table.
	TooltipKey(viewHash string, opts TooltipKeyOpts) string
}

// DefaultKeyer produces "view:<hash>" and "tooltip:<digest>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ViewKey(viewHash string) string {
	return "view:" + viewHash
}

func (DefaultKeyer) TooltipKey(viewHash string, opts TooltipKeyOpts) string {
	return "tooltip:" + digest(viewHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer. It isolates tenants
// or releases that share one backend.
//
//	k := NewScopedKeyer(nil, "v1.4.0:")
//	k.ViewKey("ab12") // "v1.4.0:view:ab12"
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the [DefaultKeyer] when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

func (k ScopedKeyer) ViewKey(viewHash string) string {
	return k.prefix + k.inner.ViewKey(viewHash)
}

func (k ScopedKeyer) TooltipKey(viewHash string, opts TooltipKeyOpts) string {
	return k.prefix + k.inner.TooltipKey(viewHash, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digest hashes the JSON encoding of parts.
func digest(parts ...any) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(parts)
	return hex.EncodeToString(h.Sum(nil))
}
