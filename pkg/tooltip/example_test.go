package tooltip_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/matzehuels/tooltipkit/pkg/dataview"
	"github.com/matzehuels/tooltipkit/pkg/tooltip"
)

func Example() {
	view := &dataview.Categorical{
		Categories: []*dataview.CategoryColumn{{
			Source: &dataview.Column{DisplayName: "Country"},
			Values: []any{"France"},
		}},
		Values: &dataview.ValueColumns{Columns: []*dataview.ValueColumn{{
			Source: &dataview.Column{DisplayName: "Sales", Format: "#,0"},
			Values: []any{1234.0},
		}}},
	}

	b := tooltip.New()
	for _, e := range b.Build(view, "France", 1234.0, tooltip.DefaultSeriesIndex) {
		fmt.Printf("%s: %s\n", e.DisplayName, e.Value)
	}
	// Output:
	// Country: France
	// Sales: 1,234
}

func ExampleBuilder_Assemble() {
	year := &dataview.Column{DisplayName: "Year"}
	month := &dataview.Column{DisplayName: "Month"}
	sales := &dataview.Column{DisplayName: "Sales", Format: "#,0.00"}

	b := tooltip.New(tooltip.WithLocale(language.German))
	entries := b.Assemble(
		&tooltip.CategoryItem{Value: "2024 Jan", Metadata: []*dataview.Column{year, month}},
		nil,
		[]tooltip.SeriesItem{{
			Value:            1234.5,
			HighlightedValue: 0.0,
			Metadata:         &dataview.ValueColumn{Source: sales},
		}},
	)
	for _, e := range entries {
		fmt.Printf("%s: %s\n", e.DisplayName, e.Value)
	}
	// Output:
	// Year/Month: 2024 Jan
	// Sales: 1.234,50
	// Hervorgehoben: 0,00
}
