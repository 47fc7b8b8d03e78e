package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/readage/internal/readability"
	"github.com/verte-zerg/readage/internal/textstats"
)

func renderTextHeader(w io.Writer, text string, st textstats.Stats) error {
	if _, err := fmt.Fprintf(w, "The text is:\n%s\n\n", text); err != nil {
		return err
	}
	counts := []struct {
		label string
		value int
	}{
		{"Words", st.Words},
		{"Sentences", st.Sentences},
		{"Characters", st.Characters},
		{"Syllables", st.Syllables},
		{"Polysyllables", st.Polysyllables},
	}
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c.label, c.value); err != nil {
			return err
		}
	}
	return nil
}

func renderTextScores(w io.Writer, a readability.Assessment) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, s := range a.Scores {
		if _, err := fmt.Fprintf(w, "%s: %.2f (about %d-year-olds).\n", s.Metric.Name(), s.Value, s.UpperAge()); err != nil {
			return err
		}
	}
	if !a.HasAverage {
		return nil
	}
	_, err := fmt.Fprintf(w, "\nThis text should be understood in average by %.2f-year-olds.\n", a.Average)
	return err
}
