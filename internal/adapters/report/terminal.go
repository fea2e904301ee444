package report

import (
	"fmt"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/ports"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

// TerminalReporter prints a run summary and a bar histogram when the run finishes.
type TerminalReporter struct {
	w         io.Writer
	bins      int
	title     lipgloss.Style
	label     lipgloss.Style
	bar       lipgloss.Style
	dom       domain.Domain
	fractures int
	redraws   int
}

var _ ports.Reporter = (*TerminalReporter)(nil)

func NewTerminalReporter(w io.Writer, bins int) *TerminalReporter {
	if bins <= 0 {
		bins = DefaultBins
	}

	r := lipgloss.NewRenderer(w)
	return &TerminalReporter{
		w:     w,
		bins:  bins,
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Faint(true),
		bar:   r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (t *TerminalReporter) Begin(dom domain.Domain, fractures *domain.FractureSet) {
	t.dom = dom
	t.fractures = 0
	if fractures != nil {
		t.fractures = fractures.Len()
	}
	t.redraws = 0
}

func (t *TerminalReporter) ObserveTrial(trial domain.Trial) {
	t.redraws += trial.Redraws
}

func (t *TerminalReporter) Finish(series domain.P10Series) error {
	var b strings.Builder

	s := Summarize(series)
	fmt.Fprintln(&b, t.title.Render(fmt.Sprintf("Distribution of P10 values for %d Simulations", s.Trials)))
	fmt.Fprintf(&b, "%s %g x %g\n", t.label.Render("Domain:   "), t.dom.XMax, t.dom.YMax)
	fmt.Fprintf(&b, "%s %d\n", t.label.Render("Fractures:"), t.fractures)
	fmt.Fprintf(&b, "%s %d\n", t.label.Render("Redraws:  "), t.redraws)
	fmt.Fprintf(&b, "%s %.6f\n", t.label.Render("Mean P10: "), s.Mean)
	fmt.Fprintf(&b, "%s %.6f\n", t.label.Render("Std dev:  "), s.StdDev)
	fmt.Fprintf(&b, "%s %.6f .. %.6f\n", t.label.Render("Range:    "), s.Min, s.Max)
	b.WriteString("\n")

	bins := Histogram(series, t.bins)
	peak := 0
	for _, bin := range bins {
		peak = max(peak, bin.Count)
	}
	for _, bin := range bins {
		n := 0
		if peak > 0 {
			n = bin.Count * barWidth / peak
		}
		fmt.Fprintf(&b, "%10.6f - %10.6f | %s %d\n", bin.Lo, bin.Hi, t.bar.Render(strings.Repeat("#", n)), bin.Count)
	}

	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("terminal report: write: %w", err)
	}
	return nil
}
