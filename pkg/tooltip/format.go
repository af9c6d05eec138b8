package tooltip

import "github.com/matzehuels/tooltipkit/pkg/dataview"

// formatValue renders value with col's format string: the resolver's
// derived format when it has one, else the column's own Format. A nil
// column formats with no format string.
func (b *Builder) formatValue(col *dataview.Column, value any) string {
	var f string
	if col != nil {
		f = b.resolver.FormatString(col, true)
		if f == "" {
			f = col.Format
		}
	}
	return b.formatter.Format(value, f)
}
