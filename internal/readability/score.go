package readability

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/readage/internal/agegroup"
	"github.com/verte-zerg/readage/internal/textstats"
)

var (
	// ErrNoWords is returned when the text has no words to divide by.
	ErrNoWords = errors.New("text has no words")
	// ErrNoSentences is returned when the text has no sentences to divide by.
	ErrNoSentences = errors.New("text has no sentences")
)

// Inputs carries the counts used by the formulas.
type Inputs struct {
	Characters    float64
	Words         float64
	Sentences     float64
	Syllables     float64
	Polysyllables float64
}

// InputsFrom converts text statistics into formula inputs.
func InputsFrom(st textstats.Stats) Inputs {
	return Inputs{
		Characters:    float64(st.Characters),
		Words:         float64(st.Words),
		Sentences:     float64(st.Sentences),
		Syllables:     float64(st.Syllables),
		Polysyllables: float64(st.Polysyllables),
	}
}

// Compute evaluates a single metric after checking its denominators.
func Compute(m Metric, in Inputs) (float64, error) {
	if in.Sentences == 0 {
		return 0, ErrNoSentences
	}
	switch m {
	case MetricARI:
		if in.Words == 0 {
			return 0, ErrNoWords
		}
		return ARI(in.Characters, in.Words, in.Sentences), nil
	case MetricFleschKincaid:
		if in.Words == 0 {
			return 0, ErrNoWords
		}
		return FleschKincaid(in.Words, in.Sentences, in.Syllables), nil
	case MetricSMOG:
		return SMOG(in.Polysyllables, in.Sentences), nil
	case MetricColemanLiau:
		if in.Words == 0 {
			return 0, ErrNoWords
		}
		return ColemanLiau(in.Characters, in.Words, in.Sentences), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownSelection, string(m))
	}
}

// Score is a computed metric together with its age group.
type Score struct {
	Metric Metric         `json:"metric" yaml:"metric"`
	Value  float64        `json:"score" yaml:"score"`
	Group  agegroup.Group `json:"group" yaml:"group"`
}

// UpperAge returns the upper age of the score's group.
func (s Score) UpperAge() int {
	return s.Group.UpperAge()
}

// Assessment is the result of evaluating a selection.
type Assessment struct {
	Selection Selection `json:"selection" yaml:"selection"`
	Scores    []Score   `json:"scores" yaml:"scores"`
	// Average is the mean upper age and is only set when HasAverage is true.
	Average    float64 `json:"average_age,omitempty" yaml:"average_age,omitempty"`
	HasAverage bool    `json:"-" yaml:"-"`
}

// Evaluate computes every metric in the selection. Nothing is returned
// unless all of them map to a known age group.
func Evaluate(sel Selection, st textstats.Stats) (Assessment, error) {
	in := InputsFrom(st)
	metrics := sel.Metrics()
	out := Assessment{Selection: sel, Scores: make([]Score, 0, len(metrics))}
	for _, m := range metrics {
		value, err := Compute(m, in)
		if err != nil {
			return Assessment{}, fmt.Errorf("%s: %w", m.Name(), err)
		}
		group, err := agegroup.ForScore(value)
		if err != nil {
			return Assessment{}, fmt.Errorf("%s: %w", m.Name(), err)
		}
		out.Scores = append(out.Scores, Score{Metric: m, Value: value, Group: group})
	}
	if sel.IsAll() {
		out.Average = AverageAge(out.Scores)
		out.HasAverage = true
	}
	return out, nil
}

// AverageAge returns the arithmetic mean of the upper ages of scores.
func AverageAge(scores []Score) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s.UpperAge()
	}
	return float64(sum) / float64(len(scores))
}
