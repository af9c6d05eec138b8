// Package tooltip builds the ordered label/value entries shown in a chart
// tooltip for one data point.
//
// # Overview
//
// Building a tooltip is two steps:
//
//  1. [Select] reads a [dataview.Categorical] and extracts the category
//     metadata, the dynamic series grouping column (when distinct from the
//     category), and the one relevant value column.
//  2. [Builder.Assemble] turns those descriptors into entries, formatting
//     each value with its column's format string.
//
// [Builder.Build] runs both steps.
//
// # Entry Order
//
// Entries always come out in this order:
//
//	category → dynamic series → series value → series highlighted value
//
// With several category columns the category entry's label joins their
// display names with "/" ("Year/Month"). Highlighted values are labelled
// with the localized [HighlightedKey] message.
//
// # Absent Values
//
// A nil value is absent and produces no entry. Numeric zero is a value and
// always produces one. Auto-generated helper columns are never shown.
//
// # Example
//
//	b := tooltip.New(tooltip.WithLocale(language.German))
//	entries := b.Build(view, "France", 1234.0, 0)
//	// [{Country France} {Sales 1.234}]
//
// Builders hold no mutable state and are safe for concurrent use.
package tooltip
