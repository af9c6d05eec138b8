package tooltip

import (
	"strings"

	"github.com/matzehuels/tooltipkit/pkg/dataview"
)

// Assemble turns selected descriptors into ordered entries.
//
// When dynamic is set but series is empty the grouping entry is still
// emitted, with an empty value.
func (b *Builder) Assemble(category *CategoryItem, dynamic *dataview.Column, series []SeriesItem) []Entry {
	var entries []Entry

	if category != nil && len(category.Metadata) > 0 {
		first := category.Metadata[0]
		name := displayName(first)
		if len(category.Metadata) > 1 {
			var sb strings.Builder
			sb.WriteString(DefaultDisplayName)
			for i, col := range category.Metadata {
				if i != 0 {
					sb.WriteString(DisplayNameSeparator)
				}
				sb.WriteString(displayName(col))
			}
			name = sb.String()
		}
		entries = append(entries, Entry{
			DisplayName: name,
			Value:       b.formatValue(first, category.Value),
		})
	}

	if dynamic != nil {
		var value string
		if len(series) > 0 && series[0].Metadata != nil && series[0].Metadata.Source != nil {
			value = b.formatValue(dynamic, series[0].Metadata.Source.GroupName)
		}
		entries = append(entries, Entry{DisplayName: dynamic.DisplayName, Value: value})
	}

	for _, s := range series {
		if s.Metadata == nil {
			continue
		}
		col := s.Metadata.Source
		if s.Value != nil {
			entries = append(entries, Entry{
				DisplayName: displayName(col),
				Value:       b.formatValue(col, s.Value),
			})
		}
		if s.HighlightedValue != nil {
			entries = append(entries, Entry{
				DisplayName: b.localizer.DisplayName(HighlightedKey),
				Value:       b.formatValue(col, s.HighlightedValue),
			})
		}
	}

	return entries
}

func displayName(col *dataview.Column) string {
	if col == nil {
		return DefaultDisplayName
	}
	return col.DisplayName
}
