package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tooltipkit/pkg/localize"
	"github.com/matzehuels/tooltipkit/pkg/pipeline"
	"github.com/matzehuels/tooltipkit/pkg/tooltip"
)

func testResult() *pipeline.Result {
	return &pipeline.Result{
		Locale: "en-US",
		Points: []pipeline.Point{
			{Index: 0, Category: "France", Entries: []tooltip.Entry{
				{DisplayName: "Country", Value: "France"},
				{DisplayName: "Sales", Value: "1,234"},
			}},
			{Index: 1, Category: "Spain", Entries: []tooltip.Entry{
				{DisplayName: "Country", Value: "Spain"},
				{DisplayName: "Sales", Value: "56"},
				{DisplayName: "Highlighted", Value: "50"},
			}},
			{Index: 2, Category: nil, Entries: nil},
		},
	}
}

var testLabels = labels{highlight: "Highlighted", category: "Category", series: "Series", value: "Value"}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseNavigation(t *testing.T) {
	var m tea.Model = newBrowseModel("sales.json", testResult(), testLabels)

	steps := []struct {
		key  string
		want int
	}{
		{"down", 1},
		{"j", 2},
		{"down", 2},
		{"up", 1},
		{"g", 0},
		{"k", 0},
		{"G", 2},
	}
	for _, s := range steps {
		m, _ = m.Update(key(s.key))
		if got := m.(browseModel).cursor; got != s.want {
			t.Fatalf("after %q cursor = %d, want %d", s.key, got, s.want)
		}
	}
}

func TestBrowseQuit(t *testing.T) {
	m := newBrowseModel("sales.json", testResult(), testLabels)
	for _, k := range []string{"q", "esc"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%q should return a command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should quit", k)
		}
	}
}

func TestBrowseScrolls(t *testing.T) {
	var m tea.Model = newBrowseModel("sales.json", testResult(), testLabels)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 1})
	if got := m.(browseModel).height; got != 5 {
		t.Errorf("height = %d, want minimum 5", got)
	}

	bm := m.(browseModel)
	bm.height = 1
	var next tea.Model = bm
	next, _ = next.Update(key("down"))
	if got := next.(browseModel).offset; got != 1 {
		t.Errorf("offset = %d, want 1 after scrolling past the window", got)
	}
}

func TestBrowseView(t *testing.T) {
	var m tea.Model = newBrowseModel("sales.json", testResult(), testLabels)
	m, _ = m.Update(key("down"))
	view := m.View()

	for _, want := range []string{"sales.json", "Spain", "Highlighted", "50", "[2/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = m.Update(key("G"))
	if !strings.Contains(m.View(), "(no entries)") {
		t.Error("a point without entries should say so")
	}
}

func TestTooltipRows(t *testing.T) {
	rows := tooltipRows(testResult().Points)
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	if rows[0][1] != "France" || rows[1][0] != "" || rows[1][3] != "Sales" {
		t.Errorf("first point rows = %q, %q", rows[0], rows[1])
	}
	if last := rows[5]; last[0] != "2" || last[1] != "" || last[3] != "" {
		t.Errorf("empty point row = %q", last)
	}
}

func TestLocalizedLabels(t *testing.T) {
	b, err := localize.NewBundle()
	if err != nil {
		t.Fatal(err)
	}
	res := testResult()
	res.Locale = "de-DE"
	res.Points[1].Series = 1
	lb := resultLabels(b, res)

	want := labels{highlight: "Hervorgehoben", category: "Kategorie", series: "Reihe", value: "Wert"}
	if lb != want {
		t.Fatalf("resultLabels() = %+v, want %+v", lb, want)
	}

	tbl := renderTooltipTable(res.Points, lb)
	for _, s := range []string{"Kategorie", "Reihe", "Wert"} {
		if !strings.Contains(tbl, s) {
			t.Errorf("table missing header %q:\n%s", s, tbl)
		}
	}

	view := newBrowseModel("sales.json", res, lb).View()
	for _, s := range []string{"Kategorie", "Spain (reihe 1)"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}

	if got := resultLabels(nil, res); got.category != localize.KeyCategory {
		t.Errorf("labels without a bundle = %+v, want raw keys", got)
	}
}
