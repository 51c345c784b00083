package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	badStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Heading returns the report title for the outcome
func (r Report) Heading() string {
	if r.PassedAll {
		return gotext.Get("You passed every level!")
	}
	return gotext.Get("Game Over — Reflection Summary")
}

// StatLine is the one-line statistics row
func (r Report) StatLine() string {
	return fmt.Sprintf("%s %s   %s %d   %s %d%%   %s %s",
		gotext.Get("Net Worth:"), Money(r.NetWorth),
		gotext.Get("Credit Score:"), r.Credit,
		gotext.Get("Happiness:"), r.Happiness,
		gotext.Get("Debt:"), Money(r.Debt),
	)
}

// Render draws the report for a terminal of the given width
func (r Report) Render(width int) string {
	if width < 40 {
		width = 40
	}
	inner := width - 4

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Heading()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(gotext.Get("Your money moves, at a glance.")))
	b.WriteString("\n\n")
	b.WriteString(statStyle.Render(r.StatLine()))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render(gotext.Get("Choices Timeline")))
	b.WriteString("\n")
	for _, s := range r.Steps {
		mark := okStyle.Render("✓")
		if !s.Correct {
			mark = badStyle.Render("!")
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, s.Number, s.Title)
		b.WriteString(indent(wordwrap.String(gotext.Get("You chose: ")+s.ChoiceText, inner-2)))
		if s.Result != "" {
			b.WriteString(indent(dimStyle.Render(wordwrap.String(s.Result, inner-2))))
		}
		if s.Effects != "" {
			b.WriteString(indent(dimStyle.Render(gotext.Get("Effects: ") + s.Effects)))
		}
	}

	var lessons strings.Builder
	lessons.WriteString(titleStyle.Render(gotext.Get("What to take with you")))
	lessons.WriteString("\n")
	for _, l := range r.Lessons {
		lessons.WriteString(wordwrap.String("• "+l.Title+": "+l.Text, inner))
		lessons.WriteString("\n")
	}
	lessons.WriteString(wordwrap.String(r.Rule, inner))

	b.WriteString("\n")
	b.WriteString(panelStyle.Width(inner).Render(lessons.String()))
	b.WriteString("\n")
	return b.String()
}

func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
