package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"

	"github.com/matzehuels/tooltipkit/pkg/localize"
	"github.com/matzehuels/tooltipkit/pkg/pipeline"
	"github.com/matzehuels/tooltipkit/pkg/tooltip"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - highlights
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed    = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printStats prints result statistics on a single line.
func printStats(w io.Writer, res *pipeline.Result) {
	parts := []string{
		fmt.Sprintf("%d points", res.Stats.Points),
		fmt.Sprintf("%d entries", res.Stats.Entries),
		res.Locale,
	}

	status, statusStyle := iconFresh, styleComputed
	if res.CacheHit {
		status, statusStyle = iconCached, styleCached
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, part := range parts {
		if i > 0 {
			b.WriteString(StyleDim.Render(" · "))
		}
		b.WriteString(StyleDim.Render(part))
	}
	b.WriteString(StyleDim.Render(" · "))
	b.WriteString(statusStyle.Render(status))
	fmt.Fprintln(w, b.String())
}

// =============================================================================
// Tooltip Tables
// =============================================================================

// labels are the localized strings the tables and the browser show.
type labels struct {
	highlight string
	category  string
	series    string
	value     string
}

// newLabels looks the labels up in l. A nil l yields the raw keys.
func newLabels(l localize.Localizer) labels {
	if l == nil {
		l = rawKeys{}
	}
	return labels{
		highlight: l.DisplayName(tooltip.HighlightedKey),
		category:  l.DisplayName(localize.KeyCategory),
		series:    l.DisplayName(localize.KeySeries),
		value:     l.DisplayName(localize.KeyValue),
	}
}

type rawKeys struct{}

func (rawKeys) DisplayName(key string) string { return key }

// resultLabels returns the labels for the locale res was built in.
func resultLabels(b *localize.Bundle, res *pipeline.Result) labels {
	if b == nil {
		return newLabels(nil)
	}
	return newLabels(b.Localizer(language.Make(res.Locale)))
}

// tooltipRows flattens points into one row per entry. The point columns
// are only filled on a point's first entry.
func tooltipRows(points []pipeline.Point) [][]string {
	var rows [][]string
	for _, p := range points {
		category := ""
		if p.Category != nil {
			category = fmt.Sprint(p.Category)
		}
		if len(p.Entries) == 0 {
			rows = append(rows, []string{fmt.Sprint(p.Index), category, fmt.Sprint(p.Series), "", ""})
			continue
		}
		for i, e := range p.Entries {
			if i == 0 {
				rows = append(rows, []string{fmt.Sprint(p.Index), category, fmt.Sprint(p.Series), e.DisplayName, e.Value})
			} else {
				rows = append(rows, []string{"", "", "", e.DisplayName, e.Value})
			}
		}
	}
	return rows
}

// renderTooltipTable renders points as a bordered table.
func renderTooltipTable(points []pipeline.Point, lb labels) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", lb.category, lb.series, "", lb.value).
		Rows(tooltipRows(points)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 4:
				return StyleValue
			case col < 3:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// renderEntries renders a single tooltip as an aligned name/value block.
func renderEntries(p pipeline.Point, highlightName string) string {
	width := 0
	for _, e := range p.Entries {
		width = max(width, lipgloss.Width(e.DisplayName))
	}
	nameStyle := lipgloss.NewStyle().Foreground(colorGray).Width(width + 2)

	var b strings.Builder
	for _, e := range p.Entries {
		value := StyleValue.Render(e.Value)
		if e.DisplayName == highlightName {
			value = StyleHighlight.Render(e.Value)
		}
		b.WriteString(nameStyle.Render(e.DisplayName) + value + "\n")
	}
	if b.Len() == 0 {
		b.WriteString(StyleDim.Render("(no entries)") + "\n")
	}
	return b.String()
}
