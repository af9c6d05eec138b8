package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/tooltipkit/pkg/dataview"
)

// Resolver derives a column's format string from host-side settings.
// It returns "" when the column carries nothing to derive from.
type Resolver interface {
	FormatString(col *dataview.Column, preferPrimary bool) string
}

// ValueFormatter renders a value using a format string. An empty format
// string must be accepted.
type ValueFormatter interface {
	Format(value any, format string) string
}

// Engine is the locale-bound [Resolver] and [ValueFormatter]. It is safe
// for concurrent use.
type Engine struct {
	tag     language.Tag
	printer *message.Printer
	dates   datePatterns
}

// NewEngine returns an engine that formats for tag.
func NewEngine(tag language.Tag) *Engine {
	return &Engine{
		tag:     tag,
		printer: message.NewPrinter(tag),
		dates:   datePatternsFor(tag),
	}
}

// Locale returns the engine's language tag.
func (e *Engine) Locale() language.Tag { return e.tag }

// FormatString returns the column's formatting-pane override. With
// preferPrimary set and a sectioned override ("pos;neg;zero"), only the
// positive section is returned.
func (e *Engine) FormatString(col *dataview.Column, preferPrimary bool) string {
	if col == nil || col.FormatOverride == "" {
		return ""
	}
	if preferPrimary {
		return splitSections(col.FormatOverride)[0]
	}
	return col.FormatOverride
}

// Format renders value with format.
func (e *Engine) Format(value any, format string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if isDateFormat(format) {
			if t, err := dateparse.ParseAny(v); err == nil {
				return e.formatDate(t, format)
			}
		}
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case time.Time:
		return e.formatDate(v, format)
	}

	if n, ok := toNumeric(value); ok {
		return e.formatNumber(n, format)
	}
	return fmt.Sprint(value)
}

// toNumeric coerces the numeric kinds a data view can carry.
func toNumeric(value any) (numeric, bool) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return numeric{}, false
		}
		return signedNumeric(i), true
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(v)
		if err != nil {
			return numeric{}, false
		}
		return numeric{f: float64(u), abs: u, exact: true}, true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return signedNumeric(i), true
		}
	case float32, float64:
	default:
		return numeric{}, false
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return numeric{}, false
	}
	return numeric{f: f}, true
}

func signedNumeric(i int64) numeric {
	abs := uint64(i)
	if i < 0 {
		abs = -abs
	}
	return numeric{f: float64(i), abs: abs, exact: true}
}

func plainNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var (
	_ Resolver       = (*Engine)(nil)
	_ ValueFormatter = (*Engine)(nil)
)
