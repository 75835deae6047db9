package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/twcss"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"p-4\">",
			column:     15,
			want:       "              ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"p-99\">",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"p-4\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIssuesFromFailures(t *testing.T) {
	engine, err := twcss.New(twcss.DefaultTheme())
	require.NoError(t, err)
	_, buildErr := engine.Build("p-99")
	require.Error(t, buildErr)

	refs := []twcss.ClassReference{
		{Class: "p-4", Location: twcss.FileLocation{File: "b.templ", Line: 1, Column: 13, Text: `<div class="p-4 p-99">`}},
		{Class: "p-99", Location: twcss.FileLocation{File: "b.templ", Line: 1, Column: 17, Text: `<div class="p-4 p-99">`}},
		{Class: "p-99", Location: twcss.FileLocation{File: "a.templ", Line: 3, Column: 5, Text: `x`}},
	}
	issues := Issues(refs, map[string]error{"p-99": buildErr, "other": errors.New("boom")})
	require.Len(t, issues, 2)

	SortIssues(issues)
	assert.Equal(t, "a.templ", issues[0].Pos.Filename)
	assert.Equal(t, "b.templ", issues[1].Pos.Filename)
	assert.Equal(t, 17, issues[1].Pos.Column)
	assert.Equal(t, string(twcss.KindUnknownUtility), issues[1].Kind)
	assert.Equal(t, LinterName, issues[1].FromLinter)
}

func TestPrintIssuesAndSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	issues := []Issue{{
		FromLinter:  LinterName,
		Text:        `"p-99": unknown utility "p-99"`,
		Kind:        string(twcss.KindUnknownUtility),
		Severity:    SeverityError,
		SourceLines: []string{`<div class="p-99">`},
		Pos:         IssuePos{Filename: "page.templ", Line: 4, Column: 13},
	}}
	r.PrintIssues(issues)
	r.PrintSummary(issues)

	want := "page.templ:4:13: \"p-99\": unknown utility \"p-99\" (twcss)\n" +
		"\t<div class=\"p-99\">\n" +
		"\t            ^\n" +
		"\n" +
		"1 issue:\n" +
		"* UNKNOWN_UTILITY: 1\n" +
		"\n" +
		"Hint: run `twcss explain <class>` to see how a class resolves\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintExplanation(t *testing.T) {
	engine, err := twcss.New(twcss.DefaultTheme())
	require.NoError(t, err)
	ex, err := engine.Explain("md:hover:bg-blue-500/50")
	require.NoError(t, err)

	var buf bytes.Buffer
	NewSummaryReporter(&buf, false).PrintExplanation(ex)

	out := buf.String()
	assert.Contains(t, out, "Utility:    bg (color)")
	assert.Contains(t, out, "Opacity:    50%")
	assert.Contains(t, out, "Variants:   responsive(md) > state(hover)")
	assert.Contains(t, out, "Cascade:    responsive")
	assert.Contains(t, out, `Selector:   .md\:hover\:bg-blue-500\/50:hover`)
	assert.Contains(t, out, "Visual:\n  background-color: rgb(59 130 246 / 50%)")
}
