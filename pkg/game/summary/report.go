// Package summary builds the end of game reflection: final statistics, the
// timeline of choices and a lesson for every mistake. It can be rendered as
// terminal text or exported as a PDF.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"moneymoves/pkg/game/state"
)

// Step is one answered scenario in the timeline
type Step struct {
	Number     int
	Title      string
	ChoiceText string
	Result     string
	Effects    string
	Correct    bool
}

// Lesson pairs a scenario title with its takeaway
type Lesson struct {
	Title string
	Text  string
}

// Report is the reflection shown when the run ends
type Report struct {
	PassedAll bool
	NetWorth  int
	Credit    int
	Happiness int
	Debt      int
	Steps     []Step
	Lessons   []Lesson
	Rule      string
}

var printer = message.NewPrinter(language.English)

// Money formats a dollar amount with thousands separators
func Money(v int) string {
	return printer.Sprintf("$%d", v)
}

// Build assembles the report from the final stats and the choice history
func Build(stats state.Stats, history []state.ChoiceRecord, passedAll bool) Report {
	r := Report{
		PassedAll: passedAll,
		NetWorth:  stats.Money,
		Credit:    stats.Credit,
		Happiness: stats.Happiness(),
		Debt:      stats.Debt,
	}

	for i, h := range history {
		title := h.ScenarioTitle
		if title == "" {
			title = gotext.Get("Scenario")
		}
		r.Steps = append(r.Steps, Step{
			Number:     i + 1,
			Title:      title,
			ChoiceText: h.ChoiceText,
			Result:     h.Result,
			Effects:    EffectList(h.Effects),
			Correct:    h.Correct,
		})
		if !h.Correct {
			r.Lessons = append(r.Lessons, Lesson{Title: h.ScenarioTitle, Text: LessonLine(h.ChoiceText)})
		}
	}

	if len(r.Lessons) > 0 {
		r.Rule = gotext.Get("Rule of thumb: earn → save/invest automatically → cover needs → spend on wants. " +
			"Use credit responsibly (on-time, in-full, low utilization) to raise your score and slash borrowing costs.")
	} else {
		r.Rule = gotext.Get("Clean round. Keep paying yourself first, avoiding interest-bearing balances, " +
			"and letting compounding do the heavy lifting.")
	}
	return r
}

// EffectList renders effects as "key: +v" joined by " · ", keys sorted
func EffectList(effects map[string]int) string {
	keys := make([]string, 0, len(effects))
	for k := range effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		v := effects[k]
		sign := ""
		if v >= 0 {
			sign = "+"
		}
		parts[i] = fmt.Sprintf("%s: %s%d", k, sign, v)
	}
	return strings.Join(parts, " · ")
}

// lessonRules are checked in order against the lower-cased choice text
var lessonRules = []struct {
	keywords []string
	text     string
}{
	{[]string{"payday", "high-interest", "premium"}, "High-interest debt and fees compound fast. Compare APRs, avoid fees, and plan a quick payoff."},
	{[]string{"in full", "utilization", "card"}, "Use credit on-time and in-full with low utilization (<30%) to build score without interest."},
	{[]string{"save", "budget", "auto-save"}, "Automate saving and budget first; it turns intentions into progress."},
	{[]string{"emergency", "repair", "fund"}, "Emergency funds turn crises into inconveniences. Start with $500–$1,000 and grow from there."},
}

const defaultLesson = "Make a plan, avoid high-interest traps, and let small consistent moves compound."

// LessonLine picks the takeaway for a wrong choice from its wording.
// Lessons are content, like the scenarios, and are not translated.
func LessonLine(choiceText string) string {
	txt := strings.ToLower(choiceText)
	for _, r := range lessonRules {
		for _, kw := range r.keywords {
			if strings.Contains(txt, kw) {
				return r.text
			}
		}
	}
	return defaultLesson
}
