package twcss

import (
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RuleGroup holds the rules sharing one wrapping context.
type RuleGroup struct {
	Context  WrappingContext `json:"context"`
	Category Category        `json:"category"`
	Rules    []Rule          `json:"rules"`
}

// merge adds rule, folding it into an existing rule with the same selector.
func (g *RuleGroup) merge(rule Rule) {
	for i := range g.Rules {
		if g.Rules[i].Selector == rule.Selector {
			for _, d := range rule.Declarations {
				g.Rules[i].Set(d.Property, d.Value)
			}
			return
		}
	}
	g.Rules = append(g.Rules, rule)
}

// Stylesheet is the result of one Generate call.
type Stylesheet struct {
	// Groups in cascade order.
	Groups []RuleGroup `json:"groups"`

	// Errors holds one error per failed distinct class string, in the order
	// the strings were first submitted.
	Errors []error `json:"-"`

	// Mode is the layout String uses.
	Mode OutputMode `json:"-"`
}

// Rules returns every rule in emission order.
func (s *Stylesheet) Rules() []Rule {
	var out []Rule
	for _, g := range s.Groups {
		out = append(out, g.Rules...)
	}
	return out
}

// Len returns the number of rules.
func (s *Stylesheet) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Rules)
	}
	return n
}

// Err combines the batch errors into one, or returns nil.
func (s *Stylesheet) Err() error {
	return multierr.Combine(s.Errors...)
}

type buildResult struct {
	rule Rule
	err  error
}

// Generate builds every class string in batch. Failures are collected per
// string and never stop the batch. Repeated strings are built once. The
// emitted order depends only on the set of strings, not their order.
func (e *Engine) Generate(batch []string) (*Stylesheet, []error) {
	unique := dedupe(batch)
	results := e.buildAll(unique)

	sheet := &Stylesheet{Mode: e.mode}
	index := make(map[string]int)

	for _, res := range results {
		if res.err != nil {
			sheet.Errors = append(sheet.Errors, res.err)
			continue
		}
		key := res.rule.Context.Key()
		gi, ok := index[key]
		if !ok {
			gi = len(sheet.Groups)
			index[key] = gi
			sheet.Groups = append(sheet.Groups, RuleGroup{
				Context:  res.rule.Context,
				Category: res.rule.Context.Classify(),
			})
		}
		sheet.Groups[gi].merge(res.rule)
	}

	e.cascade.sort(sheet.Groups)
	for _, grp := range sheet.Groups {
		sort.SliceStable(grp.Rules, func(i, j int) bool {
			if grp.Rules[i].Order != grp.Rules[j].Order {
				return grp.Rules[i].Order < grp.Rules[j].Order
			}
			return grp.Rules[i].Selector < grp.Rules[j].Selector
		})
	}

	e.log.Debug("generated stylesheet",
		zap.Int("classes", len(batch)),
		zap.Int("distinct", len(unique)),
		zap.Int("rules", sheet.Len()),
		zap.Int("groups", len(sheet.Groups)),
		zap.Int("errors", len(sheet.Errors)),
	)

	return sheet, sheet.Errors
}

// buildAll builds each class of unique on the engine's worker pool. Results
// keep the order of unique.
func (e *Engine) buildAll(unique []string) []buildResult {
	results := make([]buildResult, len(unique))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, raw := range unique {
		g.Go(func() error {
			results[i].rule, results[i].err = e.Build(raw)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Check validates every class string in batch and returns the failures
// combined in first-seen order, or nil when every string builds.
func (e *Engine) Check(batch []string) error {
	unique := dedupe(batch)
	var err error
	for _, res := range e.buildAll(unique) {
		err = multierr.Append(err, res.err)
	}
	return err
}

// Failures validates every class string in batch and returns the ones that
// fail, keyed by class string. The map is empty when every string builds.
func (e *Engine) Failures(batch []string) map[string]error {
	unique := dedupe(batch)
	failures := make(map[string]error)
	for i, res := range e.buildAll(unique) {
		if res.err != nil {
			failures[unique[i]] = res.err
		}
	}
	return failures
}

// Explanation describes how one class string is built.
type Explanation struct {
	Token      ClassToken            `json:"token"`
	Context    WrappingContext       `json:"context"`
	Category   Category              `json:"category"`
	Rule       Rule                  `json:"rule"`
	Properties []CategorizedProperty `json:"properties"`
	CSS        string                `json:"css"`
}

// Explain runs the pipeline for raw and reports each stage.
func (e *Engine) Explain(raw string) (*Explanation, error) {
	tok, err := e.Parse(raw)
	if err != nil {
		return nil, err
	}
	rule, err := e.Build(raw)
	if err != nil {
		return nil, err
	}

	cat := rule.Context.Classify()
	sheet := &Stylesheet{
		Mode:   e.mode,
		Groups: []RuleGroup{{Context: rule.Context, Category: cat, Rules: []Rule{rule}}},
	}

	return &Explanation{
		Token:      tok,
		Context:    rule.Context,
		Category:   cat,
		Rule:       rule,
		Properties: CategorizeDeclarations(rule.Declarations),
		CSS:        sheet.String(),
	}, nil
}

func dedupe(batch []string) []string {
	seen := make(map[string]bool, len(batch))
	out := make([]string, 0, len(batch))
	for _, raw := range batch {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		out = append(out, raw)
	}
	return out
}
