// Package format resolves column format strings and renders primitive values
// as display text.
//
// # Overview
//
// Two small interfaces split the work:
//
//   - [Resolver] derives a format string from a column's host-side settings
//   - [ValueFormatter] renders a value with a format string
//
// [Engine] implements both for a single locale. Numbers are rendered with
// golang.org/x/text/number so grouping and decimal separators follow the
// locale; dates use per-locale standard patterns; strings, booleans, and nil
// need no locale.
//
// # Format Strings
//
// Numeric patterns follow the familiar spreadsheet/.NET custom syntax:
//
//	0          integer, no grouping          1234
//	#,0        grouped integer               1,234
//	#,0.00     two fixed decimals            1,234.50
//	0.##       up to two decimals            1234.5
//	0.0%       percent                       25.6%
//	#,0,       scaled by 1000                1,235
//	$#,0;($#,0);-   positive;negative;zero sections
//
// Standard numeric specifiers N, F, P and G take an optional precision
// ("N2", "P0"). Date patterns accept the standard specifiers d, D, g, G, t,
// T, M and Y, or custom tokens (yyyy, MM, MMMM, dd, ddd, HH, hh, mm, ss, tt,
// fff). A string value is parsed as a date (github.com/araddon/dateparse)
// only when the format is a date pattern.
//
// An empty format string is legal everywhere and renders the value plainly.
package format
