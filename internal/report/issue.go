// Package report prints build and check results for the twcss CLI.
package report

import (
	"sort"

	"github.com/yacobolo/twcss"
)

// Issue is one failed class reference in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "twcss"
	Text        string   `json:"Text"`        // `"p-99": unknown utility "p-99"`
	Kind        string   `json:"Kind"`        // "UNKNOWN_UTILITY"
	Severity    string   `json:"Severity"`    // "error"
	SourceLines []string `json:"SourceLines"` // lines of code with the issue
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based start of the class
}

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName tags issues produced by twcss.
const LinterName = "twcss"

// Issues pairs scanned references with the class errors they hit. failures
// maps a class string to its error; references to classes that built are
// skipped.
func Issues(refs []twcss.ClassReference, failures map[string]error) []Issue {
	var issues []Issue
	for _, ref := range refs {
		err, failed := failures[ref.Class]
		if !failed {
			continue
		}
		issue := Issue{
			FromLinter:  LinterName,
			Text:        err.Error(),
			Severity:    SeverityError,
			SourceLines: []string{ref.Location.Text},
			Pos: IssuePos{
				Filename: twcss.GetRelativePath(ref.Location.File),
				Line:     ref.Location.Line,
				Column:   ref.Location.Column,
			},
		}
		if ce, ok := twcss.AsClassError(err); ok {
			issue.Kind = string(ce.Kind)
		}
		issues = append(issues, issue)
	}
	return issues
}

// SortIssues orders issues by file, line and column.
func SortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
