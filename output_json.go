package twcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema of a stylesheet.
type JSONOutput struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Summary    JSONSummary     `json:"summary"`
	Categories []CategoryCount `json:"categories"`
	Groups     []JSONGroup     `json:"groups"`
	Errors     []JSONError     `json:"errors"`
}

// JSONSummary holds counts for the whole batch.
type JSONSummary struct {
	Rules  int `json:"rules"`
	Groups int `json:"groups"`
	Errors int `json:"errors"`
}

// JSONGroup is one rule group.
type JSONGroup struct {
	Category Category   `json:"category"`
	Context  string     `json:"context"`
	Layers   []Layer    `json:"layers"`
	Rules    []JSONRule `json:"rules"`
}

// JSONRule is one rule with its fully applied selector.
type JSONRule struct {
	Class        string        `json:"class"`
	Selector     string        `json:"selector"`
	Utility      string        `json:"utility"`
	Declarations []Declaration `json:"declarations"`
}

// JSONError is one failed class string.
type JSONError struct {
	Class   string    `json:"class"`
	Kind    ErrorKind `json:"kind"`
	Detail  string    `json:"detail,omitempty"`
	Message string    `json:"message"`
}

// WriteJSON writes sheet as indented JSON.
func WriteJSON(w io.Writer, sheet *Stylesheet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(sheet))
}

func buildJSONOutput(sheet *Stylesheet) JSONOutput {
	groups := make([]JSONGroup, len(sheet.Groups))
	for i, g := range sheet.Groups {
		rules := make([]JSONRule, len(g.Rules))
		for j, r := range g.Rules {
			rules[j] = JSONRule{
				Class:        r.Class,
				Selector:     r.FullSelector(),
				Utility:      r.Utility,
				Declarations: r.Declarations,
			}
		}
		layers := g.Context.Layers
		if layers == nil {
			layers = []Layer{}
		}
		groups[i] = JSONGroup{
			Category: g.Category,
			Context:  g.Context.Key(),
			Layers:   layers,
			Rules:    rules,
		}
	}

	errs := make([]JSONError, len(sheet.Errors))
	for i, err := range sheet.Errors {
		je := JSONError{Message: err.Error()}
		if ce, ok := AsClassError(err); ok {
			je.Class, je.Kind, je.Detail = ce.Class, ce.Kind, ce.Detail
		}
		errs[i] = je
	}

	categories := sheet.CountCategories()
	if categories == nil {
		categories = []CategoryCount{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Rules:  sheet.Len(),
			Groups: len(sheet.Groups),
			Errors: len(sheet.Errors),
		},
		Categories: categories,
		Groups:     groups,
		Errors:     errs,
	}
}
