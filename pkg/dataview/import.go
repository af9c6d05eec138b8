package dataview

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

type document struct {
	Columns    []*Column     `json:"columns"`
	Categories []categoryDoc `json:"categories,omitempty"`
	Values     *valuesDoc    `json:"values,omitempty"`
}

type categoryDoc struct {
	Source string `json:"source"`
	Values []any  `json:"values"`
}

type valuesDoc struct {
	Source  string     `json:"source,omitempty"`
	Columns []valueDoc `json:"columns"`
}

type valueDoc struct {
	Source     string `json:"source"`
	Values     []any  `json:"values"`
	Highlights []any  `json:"highlights,omitempty"`
}

// ReadJSON decodes a JSON data view from r.
//
// ReadJSON returns an INVALID_DATAVIEW error when the JSON is malformed or a
// column has no queryName, and an INVALID_COLUMN_REF error when a query name
// is duplicated or a "source" names an unknown column. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*Categorical, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, tkerrors.Wrap(tkerrors.ErrCodeInvalidDataView, err, "decode")
	}

	byName := make(map[string]*Column, len(doc.Columns))
	for i, col := range doc.Columns {
		if col == nil || col.QueryName == "" {
			return nil, tkerrors.New(tkerrors.ErrCodeInvalidDataView, "column %d: missing queryName", i)
		}
		if _, dup := byName[col.QueryName]; dup {
			return nil, tkerrors.New(tkerrors.ErrCodeInvalidColumnRef, "duplicate column %q", col.QueryName)
		}
		byName[col.QueryName] = col
	}
	lookup := func(ref string) (*Column, error) {
		col, ok := byName[ref]
		if !ok {
			return nil, tkerrors.New(tkerrors.ErrCodeInvalidColumnRef, "unknown column %q", ref)
		}
		return col, nil
	}

	cat := &Categorical{}
	for i, cd := range doc.Categories {
		src, err := lookup(cd.Source)
		if err != nil {
			return nil, fmt.Errorf("category %d: %w", i, err)
		}
		cat.Categories = append(cat.Categories, &CategoryColumn{Source: src, Values: cd.Values})
	}

	if doc.Values != nil {
		vcs := &ValueColumns{}
		if doc.Values.Source != "" {
			src, err := lookup(doc.Values.Source)
			if err != nil {
				return nil, fmt.Errorf("values grouping: %w", err)
			}
			vcs.Source = src
		}
		for i, vd := range doc.Values.Columns {
			src, err := lookup(vd.Source)
			if err != nil {
				return nil, fmt.Errorf("value column %d: %w", i, err)
			}
			vcs.Columns = append(vcs.Columns, &ValueColumn{
				Source:     src,
				Values:     vd.Values,
				Highlights: vd.Highlights,
			})
		}
		cat.Values = vcs
	}

	return cat, nil
}

// ImportJSON reads the JSON data view at path.
// A missing file is reported as FILE_NOT_FOUND.
func ImportJSON(path string) (*Categorical, error) {
	if err := tkerrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, tkerrors.Wrap(tkerrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
