package tooltip

import "github.com/matzehuels/tooltipkit/pkg/dataview"

// Selection is the output of [Select].
type Selection struct {
	Category      *CategoryItem
	DynamicSeries *dataview.Column
	Series        []SeriesItem
}

// Select extracts the tooltip descriptors for one data point.
//
// The dynamic series column is kept only when it is not the same column as
// the category's first metadata. The value column at seriesIndex becomes the
// single series item unless it is missing or auto-generated.
func Select(cat *dataview.Categorical, categoryValue, value any, seriesIndex int) Selection {
	var s Selection
	if cat == nil {
		return s
	}

	switch n := len(cat.Categories); {
	case n > 1:
		meta := make([]*dataview.Column, 0, n)
		for _, c := range cat.Categories {
			meta = append(meta, c.Source)
		}
		s.Category = &CategoryItem{Value: categoryValue, Metadata: meta}
	case n == 1:
		s.Category = &CategoryItem{
			Value:    categoryValue,
			Metadata: []*dataview.Column{cat.Categories[0].Source},
		}
	}

	if cat.Values == nil {
		return s
	}
	if src := cat.Values.Source; src != nil {
		if s.Category == nil || s.Category.Metadata[0] != src {
			s.DynamicSeries = src
		}
	}

	vc := cat.Values.At(seriesIndex)
	if vc == nil || (vc.Source != nil && vc.Source.IsAutoGenerated) {
		return s
	}
	s.Series = append(s.Series, SeriesItem{Value: value, Metadata: vc})
	return s
}
