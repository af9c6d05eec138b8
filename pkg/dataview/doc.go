// Package dataview models the categorical data view a chart host hands to a
// visual, and provides JSON import and export for it.
//
// # Overview
//
// A [Categorical] view groups category columns (the chart's axis) with value
// columns (the measures). Every column points at a shared [Column] metadata
// record; two references to the same field are the same pointer, which lets
// callers compare columns by identity.
//
// Values are untyped primitives (string, float64, bool, time.Time, ...).
// A nil value means "absent". Numeric zero is a real value.
//
// # JSON Format
//
//	{
//	  "columns": [
//	    {"queryName": "Geo.Country", "displayName": "Country", "type": "text"},
//	    {"queryName": "Sales", "displayName": "Sales", "format": "#,0", "type": "numeric"}
//	  ],
//	  "categories": [{"source": "Geo.Country", "values": ["France", "Spain"]}],
//	  "values": {
//	    "source": "",
//	    "columns": [{"source": "Sales", "values": [1234, 0], "highlights": [null, 0]}]
//	  }
//	}
//
// Column references ("source") name a queryName from the "columns" table.
// The optional "values.source" names the dynamic series grouping column.
//
// Use [ImportJSON] / [ReadJSON] to decode and [ExportJSON] / [WriteJSON] to
// encode. Decoding resolves every reference to the same *Column, so the
// identity relationships of the original view survive a round-trip.
package dataview
