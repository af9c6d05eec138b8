package dataview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

const salesJSON = `{
  "columns": [
    {"queryName": "Geo.Country", "displayName": "Country", "type": "text"},
    {"queryName": "Geo.Region", "displayName": "Region", "type": "text"},
    {"queryName": "Sales.North", "displayName": "Sales", "format": "#,0", "type": "numeric", "groupName": "North"},
    {"queryName": "Helper", "displayName": "Helper", "isAutoGenerated": true}
  ],
  "categories": [{"source": "Geo.Country", "values": ["France", "Spain", null]}],
  "values": {
    "source": "Geo.Region",
    "columns": [
      {"source": "Sales.North", "values": [1234, 0, 7], "highlights": [null, 0]},
      {"source": "Helper", "values": [1, 1, 1]}
    ]
  }
}`

func TestReadJSON(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(salesJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if !c.HasCategories() {
		t.Fatal("HasCategories() = false, want true")
	}
	if got := c.Categories[0].Source.DisplayName; got != "Country" {
		t.Errorf("category display name = %q, want Country", got)
	}
	if c.Values.Source == nil || c.Values.Source.DisplayName != "Region" {
		t.Errorf("values grouping = %+v, want Region", c.Values.Source)
	}
	if got := c.Values.Len(); got != 2 {
		t.Fatalf("Values.Len() = %d, want 2", got)
	}
	sales := c.Values.At(0)
	if sales.Source.Format != "#,0" {
		t.Errorf("format = %q, want #,0", sales.Source.Format)
	}
	if sales.Source.GroupName != "North" {
		t.Errorf("group name = %v, want North", sales.Source.GroupName)
	}
	if !c.Values.At(1).Source.IsAutoGenerated {
		t.Error("Helper should be auto-generated")
	}
	if got := sales.Value(1); got != float64(0) {
		t.Errorf("Value(1) = %v, want 0", got)
	}
	if got := sales.Highlight(0); got != nil {
		t.Errorf("Highlight(0) = %v, want nil", got)
	}
	if got := sales.Highlight(2); got != nil {
		t.Errorf("Highlight(2) past end = %v, want nil", got)
	}
}

func TestReadJSONSharesColumns(t *testing.T) {
	const doc = `{
	  "columns": [{"queryName": "Region", "displayName": "Region"}],
	  "categories": [{"source": "Region", "values": ["North"]}],
	  "values": {"source": "Region", "columns": []}
	}`
	c, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if c.Categories[0].Source != c.Values.Source {
		t.Error("category and grouping should reference the same *Column")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code tkerrors.Code
	}{
		{"malformed", `{"columns": [`, tkerrors.ErrCodeInvalidDataView},
		{"missing query name", `{"columns": [{"displayName": "x"}]}`, tkerrors.ErrCodeInvalidDataView},
		{"duplicate column", `{"columns": [{"queryName": "a"}, {"queryName": "a"}]}`, tkerrors.ErrCodeInvalidColumnRef},
		{"unknown category", `{"columns": [], "categories": [{"source": "a"}]}`, tkerrors.ErrCodeInvalidColumnRef},
		{"unknown grouping", `{"columns": [], "values": {"source": "g", "columns": []}}`, tkerrors.ErrCodeInvalidColumnRef},
		{"unknown value column", `{"columns": [], "values": {"columns": [{"source": "v"}]}}`, tkerrors.ErrCodeInvalidColumnRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !tkerrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", tkerrors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !tkerrors.Is(err, tkerrors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRoundTrip(t *testing.T) {
	orig, err := ReadJSON(strings.NewReader(salesJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	path := filepath.Join(t.TempDir(), "view.json")
	if err := ExportJSON(orig, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	if len(got.Categories) != len(orig.Categories) {
		t.Fatalf("categories = %d, want %d", len(got.Categories), len(orig.Categories))
	}
	if got.Values.Len() != orig.Values.Len() {
		t.Fatalf("value columns = %d, want %d", got.Values.Len(), orig.Values.Len())
	}
	if got.Values.Source.QueryName != "Geo.Region" {
		t.Errorf("grouping = %q, want Geo.Region", got.Values.Source.QueryName)
	}
	if got.PointCount() != 3 {
		t.Errorf("PointCount() = %d, want 3", got.PointCount())
	}
}

func TestWriteJSONGeneratesQueryNames(t *testing.T) {
	country := &Column{DisplayName: "Country"}
	sales := &Column{DisplayName: "Sales"}
	taken := &Column{QueryName: "col1", DisplayName: "Taken"}
	c := &Categorical{
		Categories: []*CategoryColumn{{Source: country, Values: []any{"France"}}},
		Values: &ValueColumns{Columns: []*ValueColumn{
			{Source: sales, Values: []any{1.0}},
			{Source: taken, Values: []any{2.0}},
		}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if country.QueryName != "" {
		t.Error("WriteJSON must not modify the input columns")
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON of generated output: %v\n%s", err, buf.String())
	}
	if got.Categories[0].Source.DisplayName != "Country" {
		t.Errorf("category = %q, want Country", got.Categories[0].Source.DisplayName)
	}
	if got.Values.At(1).Source.QueryName != "col1" {
		t.Errorf("existing query name = %q, want col1", got.Values.At(1).Source.QueryName)
	}
}

func TestPointCount(t *testing.T) {
	tests := []struct {
		name string
		c    *Categorical
		want int
	}{
		{"nil", nil, 0},
		{"empty", &Categorical{}, 0},
		{"categories", &Categorical{Categories: []*CategoryColumn{{Values: []any{"a", "b"}}}}, 2},
		{"values only", &Categorical{Values: &ValueColumns{Columns: []*ValueColumn{
			{Values: []any{1}}, {Values: []any{1, 2, 3}},
		}}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.PointCount(); got != tt.want {
				t.Errorf("PointCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompositeCategoryValue(t *testing.T) {
	year := &CategoryColumn{Source: &Column{DisplayName: "Year"}, Values: []any{2024.0, nil}}
	month := &CategoryColumn{Source: &Column{DisplayName: "Month"}, Values: []any{"Jan", nil}}

	single := &Categorical{Categories: []*CategoryColumn{year}}
	if got := single.CompositeCategoryValue(0); got != 2024.0 {
		t.Errorf("single column value = %v, want raw 2024", got)
	}

	composite := &Categorical{Categories: []*CategoryColumn{year, month}}
	if got := composite.CompositeCategoryValue(0); got != "2024 Jan" {
		t.Errorf("composite value = %v, want %q", got, "2024 Jan")
	}
	if got := composite.CompositeCategoryValue(1); got != nil {
		t.Errorf("all-nil composite = %v, want nil", got)
	}
	if got := composite.CompositeCategoryValue(5); got != nil {
		t.Errorf("out of range = %v, want nil", got)
	}
}

func TestImportJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.json")
	if err := os.WriteFile(path, []byte(salesJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got := len(c.Columns()); got != 4 {
		t.Errorf("Columns() = %d, want 4", got)
	}
}
