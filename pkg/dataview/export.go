package dataview

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes c as JSON and writes it to w. Columns without a query
// name are given a generated one ("col1", "col2", ...) in the output only.
// The result can be re-read with [ReadJSON].
func WriteJSON(c *Categorical, w io.Writer) error {
	cols := c.Columns()
	reserved := make(map[string]bool, len(cols))
	for _, col := range cols {
		reserved[col.QueryName] = true
	}

	var doc document
	names := make(map[*Column]string, len(cols))
	used := make(map[string]bool, len(cols))
	n := 0
	for _, col := range cols {
		name := col.QueryName
		if name == "" || used[name] {
			for name = ""; name == "" || reserved[name] || used[name]; {
				n++
				name = fmt.Sprintf("col%d", n)
			}
		}
		used[name] = true
		names[col] = name

		out := *col
		out.QueryName = name
		doc.Columns = append(doc.Columns, &out)
	}

	if c != nil {
		for _, cat := range c.Categories {
			doc.Categories = append(doc.Categories, categoryDoc{Source: names[cat.Source], Values: cat.Values})
		}
		if c.Values != nil {
			vd := &valuesDoc{Source: names[c.Values.Source]}
			for _, vc := range c.Values.Columns {
				if vc == nil {
					continue
				}
				vd.Columns = append(vd.Columns, valueDoc{
					Source:     names[vc.Source],
					Values:     vc.Values,
					Highlights: vc.Highlights,
				})
			}
			doc.Values = vd
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes c to a JSON file at path.
func ExportJSON(c *Categorical, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
