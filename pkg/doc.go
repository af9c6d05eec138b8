// Package pkg holds the tooltipkit libraries.
//
// # Overview
//
// tooltipkit builds the tooltip shown when hovering a data point of a
// categorical chart. The pkg directory is organized as:
//
//  1. [dataview] - the categorical data view and its JSON form
//  2. [tooltip] - selection and assembly of tooltip entries
//  3. [format] - locale-aware number and date formatting
//  4. [localize] - localized fixed labels
//  5. [pipeline] - load → build orchestration with caching
//  6. [cache], [config], [server], [observability], [errors] - infrastructure
//
// # Data Flow
//
//	JSON data view
//	      ↓
//	 [dataview] (resolve column references)
//	      ↓
//	 [tooltip] Select → Assemble, formatting through [format] and [localize]
//	      ↓
//	 []Entry per data point, cached by [pipeline]
//
// # Quick Start
//
//	cat, err := dataview.ImportJSON("sales.json")
//	if err != nil {
//	    return err
//	}
//	b := tooltip.New(tooltip.WithLocale(language.German))
//	for _, e := range b.Build(cat, cat.CategoryValue(0), cat.Values.At(0).Value(0), tooltip.DefaultSeriesIndex) {
//	    fmt.Printf("%s: %s\n", e.DisplayName, e.Value)
//	}
//
// [dataview]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/dataview
// [tooltip]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/tooltip
// [format]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/format
// [localize]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/localize
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tooltipkit/pkg/errors
package pkg
