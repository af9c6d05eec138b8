package dataview

import (
	"fmt"
	"strings"
)

// ValueType classifies the primitive values a column holds.
type ValueType string

// Supported value types.
const (
	TypeText     ValueType = "text"
	TypeNumeric  ValueType = "numeric"
	TypeInteger  ValueType = "integer"
	TypeDateTime ValueType = "datetime"
	TypeBool     ValueType = "bool"
)

// Column describes one data field.
type Column struct {
	QueryName   string    `json:"queryName"`
	DisplayName string    `json:"displayName"`
	Format      string    `json:"format,omitempty"`
	Type        ValueType `json:"type,omitempty"`

	// FormatOverride is the format string set on the visual's formatting
	// pane. It takes precedence over Format when resolving.
	FormatOverride string `json:"formatOverride,omitempty"`

	// GroupName is the dynamic series value this column belongs to
	// (e.g. "North" for a Sales column grouped by Region).
	GroupName any `json:"groupName,omitempty"`

	// IsAutoGenerated marks synthetic helper columns added by the host.
	// They are never surfaced to users.
	IsAutoGenerated bool `json:"isAutoGenerated,omitempty"`
}

// CategoryColumn is one category axis field and its values.
type CategoryColumn struct {
	Source *Column
	Values []any
}

// ValueColumn is one measure field and its values. Highlights, when present,
// run parallel to Values and hold the cross-filtered value per category.
type ValueColumn struct {
	Source     *Column
	Values     []any
	Highlights []any
}

// Value returns the value at category index i, or nil when out of range.
func (vc *ValueColumn) Value(i int) any {
	if vc == nil || i < 0 || i >= len(vc.Values) {
		return nil
	}
	return vc.Values[i]
}

// Highlight returns the highlighted value at category index i, or nil when
// the column has no highlights or i is out of range.
func (vc *ValueColumn) Highlight(i int) any {
	if vc == nil || i < 0 || i >= len(vc.Highlights) {
		return nil
	}
	return vc.Highlights[i]
}

// ValueColumns is the ordered set of measure columns. Source is the dynamic
// series grouping field; nil when values are not grouped.
type ValueColumns struct {
	Source  *Column
	Columns []*ValueColumn
}

// Len returns the number of value columns.
func (v *ValueColumns) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Columns)
}

// At returns the value column at index i, or nil when out of range.
func (v *ValueColumns) At(i int) *ValueColumn {
	if v == nil || i < 0 || i >= len(v.Columns) {
		return nil
	}
	return v.Columns[i]
}

// Categorical is the categorical data view: category columns and values.
type Categorical struct {
	Categories []*CategoryColumn
	Values     *ValueColumns
}

// HasCategories reports whether the view has at least one category column.
func (c *Categorical) HasCategories() bool {
	return c != nil && len(c.Categories) > 0
}

// PointCount returns the number of data points along the category axis.
// Without categories it falls back to the longest value column.
func (c *Categorical) PointCount() int {
	if c == nil {
		return 0
	}
	if len(c.Categories) > 0 {
		return len(c.Categories[0].Values)
	}
	n := 0
	if c.Values != nil {
		for _, vc := range c.Values.Columns {
			if vc != nil && len(vc.Values) > n {
				n = len(vc.Values)
			}
		}
	}
	return n
}

// CategoryValue returns the first category column's value at index i.
func (c *Categorical) CategoryValue(i int) any {
	if !c.HasCategories() {
		return nil
	}
	vals := c.Categories[0].Values
	if i < 0 || i >= len(vals) {
		return nil
	}
	return vals[i]
}

// CompositeCategoryValue returns the category value at index i. With a single
// category column this is the raw value; with several, the non-nil values are
// joined with a space ("2024 Jan").
func (c *Categorical) CompositeCategoryValue(i int) any {
	if !c.HasCategories() {
		return nil
	}
	if len(c.Categories) == 1 {
		return c.CategoryValue(i)
	}
	parts := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if i < 0 || i >= len(cat.Values) || cat.Values[i] == nil {
			continue
		}
		parts = append(parts, fmt.Sprint(cat.Values[i]))
	}
	if len(parts) == 0 {
		return nil
	}
	return strings.Join(parts, " ")
}

// Columns returns every distinct column referenced by the view, in the
// order first seen: categories, grouping source, then value columns.
func (c *Categorical) Columns() []*Column {
	if c == nil {
		return nil
	}
	seen := make(map[*Column]bool)
	var out []*Column
	add := func(col *Column) {
		if col == nil || seen[col] {
			return
		}
		seen[col] = true
		out = append(out, col)
	}
	for _, cat := range c.Categories {
		add(cat.Source)
	}
	if c.Values != nil {
		add(c.Values.Source)
		for _, vc := range c.Values.Columns {
			if vc != nil {
				add(vc.Source)
			}
		}
	}
	return out
}
