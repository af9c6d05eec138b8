package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tooltipkit/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "browse [view.json]",
		Short: "Step through the tooltips of a data view",
		Example: `  tooltipkit browse sales.json --all-series
  tooltipkit browse sales.json --locale fr-FR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Execute(cmd.Context(), c.options(args[0], flags))
			if err != nil {
				return err
			}
			if len(res.Points) == 0 {
				printInfo(cmd.OutOrStdout(), "No data points in %s", args[0])
				return nil
			}

			m := newBrowseModel(args[0], res, resultLabels(runner.Bundle, res))
			_, err = tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// browseModel is the bubbletea model of the browse command: a point list on
// the left and the selected point's tooltip on the right.
type browseModel struct {
	title  string
	result *pipeline.Result
	labels labels
	cursor int
	offset int
	height int
}

func newBrowseModel(title string, res *pipeline.Result, lb labels) browseModel {
	return browseModel{title: title, result: res, labels: lb, height: 15}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := len(m.result.Points) - 1
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "right", "l":
			if m.cursor < last {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = last
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 5)
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString(StyleDim.Render("  " + m.result.Locale))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.result.Points))
	var list strings.Builder
	list.WriteString(StyleDim.Render(fmt.Sprintf("  %3s  %s", "#", m.labels.category)) + "\n")
	for i := m.offset; i < end; i++ {
		p := m.result.Points[i]
		line := fmt.Sprintf("%3d  %s", p.Index, pointLabel(p, m.labels.series))
		if i == m.cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			list.WriteString(listNormalStyle.Render("  " + line))
		}
		if i < end-1 {
			list.WriteString("\n")
		}
	}

	current := m.result.Points[m.cursor]
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(list.String()),
		" ",
		panelStyle.Render(strings.TrimSuffix(renderEntries(current, m.labels.highlight), "\n")),
	))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.result.Points))))

	return b.String()
}

func pointLabel(p pipeline.Point, series string) string {
	label := "—"
	if p.Category != nil {
		label = fmt.Sprint(p.Category)
	}
	if p.Series > 0 {
		label += fmt.Sprintf(" (%s %d)", strings.ToLower(series), p.Series)
	}
	return label
}
