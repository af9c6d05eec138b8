package format

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/matzehuels/tooltipkit/pkg/dataview"
)

func TestFormatNumber(t *testing.T) {
	e := NewEngine(language.AmericanEnglish)

	tests := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{"grouped integer", 1234, "#,0", "1,234"},
		{"grouped float", 1234.0, "#,0", "1,234"},
		{"no grouping", 1234, "0", "1234"},
		{"fixed decimals", 1234.5, "#,0.00", "1,234.50"},
		{"optional decimals", 1234.5, "0.##", "1234.5"},
		{"optional decimals trimmed", 12.0, "0.##", "12"},
		{"zero is formatted", 0, "#,0", "0"},
		{"percent", 0.256, "0.0%", "25.6%"},
		{"currency prefix", 1234, "$#,0", "$1,234"},
		{"negative prefix", -1234, "$#,0", "-$1,234"},
		{"quoted suffix", 12, `0" units"`, "12 units"},
		{"escaped literal", 5, `\#0`, "#5"},
		{"thousands scaling", 1234567, "#,0,", "1,235"},
		{"negative section", -5, "#,0;(#,0)", "(5)"},
		{"zero section", 0, "#,0;(#,0);zero", "zero"},
		{"quoted zero section", 0, `0;(0);"zero"`, "zero"},
		{"dash zero section", 0, "#,0;-#,0;-", "-"},
		{"literal negative section", -3, "0;n/a", "n/a"},
		{"no placeholders", 2024, "yyyy", "2024"},
		{"positive ignores sections", 7, "#,0;(#,0);zero", "7"},
		{"leading zeros", 7, "000", "007"},
		{"standard N", 1234.567, "N2", "1,234.57"},
		{"standard F", 3.14159, "F3", "3.142"},
		{"standard P", 0.5, "P0", "50 %"},
		{"empty format", 1234, "", "1234"},
		{"empty format fraction", 0.5, "", "0.5"},
		{"general", 12.25, "General", "12.25"},
		{"int64", int64(42), "0", "42"},
		{"uint8", uint8(9), "0", "9"},
		{"json number", json.Number("1234"), "#,0", "1,234"},
		{"negative rounds to zero", -0.001, "0", "0"},
		{"int64 above 2^53", int64(9007199254740993), "0", "9007199254740993"},
		{"int64 above 2^53 grouped", int64(9007199254740993), "#,0", "9,007,199,254,740,993"},
		{"max uint64", uint64(math.MaxUint64), "0", "18446744073709551615"},
		{"min int64", int64(math.MinInt64), "0", "-9223372036854775808"},
		{"max uint64 general", uint64(math.MaxUint64), "", "18446744073709551615"},
		{"large json number", json.Number("9007199254740993"), "#,0", "9,007,199,254,740,993"},
		{"integer with decimals", 1234, "#,0.00", "1,234.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Format(tt.value, tt.format); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatNumberGerman(t *testing.T) {
	e := NewEngine(language.MustParse("de-DE"))
	if got := e.Format(1234.5, "#,0.00"); got != "1.234,50" {
		t.Errorf("de-DE Format = %q, want %q", got, "1.234,50")
	}
}

func TestFormatNonNumeric(t *testing.T) {
	e := NewEngine(language.AmericanEnglish)

	tests := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{"nil", nil, "#,0", ""},
		{"nil no format", nil, "", ""},
		{"string", "France", "", "France"},
		{"string ignores numeric format", "France", "#,0", "France"},
		{"numeric string stays text", "1234", "#,0", "1234"},
		{"true", true, "", "True"},
		{"false", false, "", "False"},
		{"other", []int{1}, "", "[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Format(tt.value, tt.format); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.January, 5, 14, 3, 9, 250e6, time.UTC)

	tests := []struct {
		name   string
		locale string
		value  any
		format string
		want   string
	}{
		{"iso custom", "en-US", ts, "yyyy-MM-dd", "2024-01-05"},
		{"short us", "en-US", ts, "d", "1/5/2024"},
		{"short de", "de-DE", ts, "d", "05.01.2024"},
		{"short gb", "en-GB", ts, "d", "05/01/2024"},
		{"long us", "en-US", ts, "D", "Friday, January 5, 2024"},
		{"month names", "en-US", ts, "dd MMMM yyyy", "05 January 2024"},
		{"abbreviations", "en-US", ts, "ddd MMM yy", "Fri Jan 24"},
		{"24h time", "en-US", ts, "HH:mm:ss", "14:03:09"},
		{"12h time", "en-US", ts, "h:mm tt", "2:03 PM"},
		{"milliseconds", "en-US", ts, "ss.fff", "09.250"},
		{"quoted literal", "en-US", ts, "yyyy 'at' HH", "2024 at 14"},
		{"empty format", "en-US", ts, "", "1/5/2024"},
		{"string date", "en-US", "2024-01-05", "d", "1/5/2024"},
		{"unparseable string", "en-US", "soon", "d", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(language.MustParse(tt.locale))
			if got := e.Format(tt.value, tt.format); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	e := NewEngine(language.AmericanEnglish)

	tests := []struct {
		name          string
		col           *dataview.Column
		preferPrimary bool
		want          string
	}{
		{"nil column", nil, true, ""},
		{"no override", &dataview.Column{Format: "#,0"}, true, ""},
		{"override", &dataview.Column{Format: "#,0", FormatOverride: "0.00"}, true, "0.00"},
		{"primary section", &dataview.Column{FormatOverride: "#,0;(#,0)"}, true, "#,0"},
		{"all sections", &dataview.Column{FormatOverride: "#,0;(#,0)"}, false, "#,0;(#,0)"},
		{"quoted semicolon", &dataview.Column{FormatOverride: `0" a;b"`}, true, `0" a;b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.FormatString(tt.col, tt.preferPrimary); got != tt.want {
				t.Errorf("FormatString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitSections(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"#,0", []string{"#,0"}},
		{"a;b;c", []string{"a", "b", "c"}},
		{`0\;0;x`, []string{`0\;0`, "x"}},
		{`'a;b';c`, []string{`'a;b'`, "c"}},
	}

	for _, tt := range tests {
		got := splitSections(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitSections(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitSections(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"d", true},
		{"G", true},
		{"yyyy-MM-dd", true},
		{"HH:mm", true},
		{"", false},
		{"#,0", false},
		{"0.00", false},
		{"N2", false},
	}

	for _, tt := range tests {
		if got := isDateFormat(tt.format); got != tt.want {
			t.Errorf("isDateFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}
