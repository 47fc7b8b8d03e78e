package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/readage/internal/readability"
	"github.com/verte-zerg/readage/internal/textstats"
)

const foxText = "The quick brown fox jumps over the lazy dog because it wanted to reach " +
	"the river before sunset. Everyone watched quietly from the hill."

func foxReport(t *testing.T, sel readability.Selection) Report {
	t.Helper()
	st := textstats.Compute(foxText)
	a, err := readability.Evaluate(sel, st)
	require.NoError(t, err)
	return Report{Text: foxText, Stats: st, Assessment: a}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "TABLE", " json ", "yaml"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.True(t, FormatJSON.Structured())
	assert.False(t, FormatTable.Structured())
}

func TestRenderTextHeader(t *testing.T) {
	var buf bytes.Buffer
	st := textstats.Compute("The cat sat on the mat. It was happy!")
	require.NoError(t, RenderHeader(&buf, FormatText, "The cat sat on the mat. It was happy!", st))

	want := "The text is:\n" +
		"The cat sat on the mat. It was happy!\n" +
		"\n" +
		"Words: 9\n" +
		"Sentences: 3\n" +
		"Characters: 29\n" +
		"Syllables: 8\n" +
		"Polysyllables: -1\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderHeaderSkipsStructuredFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHeader(&buf, FormatJSON, "x", textstats.Stats{}))
	assert.Empty(t, buf.String())
}

func TestRenderTextAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, FormatText, foxReport(t, readability.SelectAll)))

	want := "\n" +
		"Automated Readability Index: 4.55 (about 10-year-olds).\n" +
		"Flesch–Kincaid readability tests: 3.26 (about 8-year-olds).\n" +
		"Simple Measure of Gobbledygook: 6.43 (about 11-year-olds).\n" +
		"Coleman–Liau index: 11.27 (about 16-year-olds).\n" +
		"\n" +
		"This text should be understood in average by 11.25-year-olds.\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTextSingle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, FormatText, foxReport(t, readability.SelectSMOG)))
	assert.Equal(t, "\nSimple Measure of Gobbledygook: 6.43 (about 11-year-olds).\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, FormatTable, foxReport(t, readability.SelectAll)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Empty(t, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Metric"))
	assert.Contains(t, lines[2], "Automated Readability Index")
	assert.Contains(t, lines[2], "4.55")
	assert.Contains(t, lines[2], "Fourth Grade")
	assert.Contains(t, lines[5], "15-16")
	assert.Equal(t, "Average age: 11.25", lines[7])
}

func TestRenderTableHeader(t *testing.T) {
	var buf bytes.Buffer
	st := textstats.Compute("The cat sat on the mat. It was happy!")
	require.NoError(t, RenderHeader(&buf, FormatTable, "The cat sat on the mat. It was happy!", st))

	want := "The text is:\n" +
		"The cat sat on the mat. It was happy!\n" +
		"\n" +
		"Count          Value\n" +
		"Words              9\n" +
		"Sentences          3\n" +
		"Characters        29\n" +
		"Syllables          8\n" +
		"Polysyllables     -1\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, FormatJSON, foxReport(t, readability.SelectAll)))

	var got struct {
		Text  string `json:"text"`
		Stats struct {
			Words int `json:"words"`
		} `json:"stats"`
		Assessment struct {
			Selection string `json:"selection"`
			Scores    []struct {
				Metric string `json:"metric"`
				Group  struct {
					MaxAge int `json:"max_age"`
				} `json:"group"`
			} `json:"scores"`
			Average float64 `json:"average_age"`
		} `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, foxText, got.Text)
	assert.Equal(t, 24, got.Stats.Words)
	assert.Equal(t, "all", got.Assessment.Selection)
	require.Len(t, got.Assessment.Scores, 4)
	assert.Equal(t, "CL", got.Assessment.Scores[3].Metric)
	assert.Equal(t, 16, got.Assessment.Scores[3].Group.MaxAge)
	assert.InDelta(t, 11.25, got.Assessment.Average, 1e-9)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, FormatYAML, foxReport(t, readability.SelectFleschKincaid)))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	stats, ok := got["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 32, stats["syllables"])
	assessment, ok := got["assessment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FK", assessment["selection"])
	assert.NotContains(t, assessment, "average_age")
}

func TestRenderResultUnknownFormat(t *testing.T) {
	err := RenderResult(&bytes.Buffer{}, Format("xml"), Report{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
