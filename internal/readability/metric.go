package readability

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSelection is returned for a selection outside the supported set.
var ErrUnknownSelection = errors.New("unknown metric selection")

// Metric identifies a single readability formula.
type Metric string

const (
	MetricARI           Metric = "ARI"
	MetricFleschKincaid Metric = "FK"
	MetricSMOG          Metric = "SMOG"
	MetricColemanLiau   Metric = "CL"
)

// Metrics lists every metric in reporting order.
var Metrics = []Metric{MetricARI, MetricFleschKincaid, MetricSMOG, MetricColemanLiau}

// Name returns the display name of the metric.
func (m Metric) Name() string {
	switch m {
	case MetricARI:
		return "Automated Readability Index"
	case MetricFleschKincaid:
		return "Flesch–Kincaid readability tests"
	case MetricSMOG:
		return "Simple Measure of Gobbledygook"
	case MetricColemanLiau:
		return "Coleman–Liau index"
	default:
		return string(m)
	}
}

// Selection is what the user asked to compute: one metric or all of them.
type Selection string

const (
	SelectARI           = Selection(MetricARI)
	SelectFleschKincaid = Selection(MetricFleschKincaid)
	SelectSMOG          = Selection(MetricSMOG)
	SelectColemanLiau   = Selection(MetricColemanLiau)
	SelectAll           = Selection("all")
)

// Selections lists the accepted selections in prompt order.
var Selections = []Selection{SelectARI, SelectFleschKincaid, SelectSMOG, SelectColemanLiau, SelectAll}

// ParseSelection matches s exactly, case included, against the supported selections.
func ParseSelection(s string) (Selection, error) {
	for _, sel := range Selections {
		if string(sel) == s {
			return sel, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnknownSelection, s, SelectionList())
}

// SelectionList renders the selections as "ARI, FK, SMOG, CL, all".
func SelectionList() string {
	names := make([]string, len(Selections))
	for i, sel := range Selections {
		names[i] = string(sel)
	}
	return strings.Join(names, ", ")
}

// IsAll reports whether the selection covers every metric.
func (s Selection) IsAll() bool {
	return s == SelectAll
}

// Metrics returns the metrics covered by the selection.
func (s Selection) Metrics() []Metric {
	if s.IsAll() {
		return append([]Metric(nil), Metrics...)
	}
	return []Metric{Metric(s)}
}
