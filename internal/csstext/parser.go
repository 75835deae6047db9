package csstext

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// Declaration is one property/value pair read back from a stylesheet.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a block that holds declarations, with the preludes of every block
// enclosing it, outermost first.
type Rule struct {
	// Parents are the enclosing at-rule and style-rule preludes.
	Parents []string

	// Prelude is the rule's own selector or at-rule prelude.
	Prelude string

	Declarations []Declaration
}

// Selector joins the enclosing style selectors with the rule's own, resolving
// nested "&" references. At-rule parents are skipped.
func (r Rule) Selector() string {
	sel := ""
	for _, p := range append(append([]string{}, r.Parents...), r.Prelude) {
		if strings.HasPrefix(p, "@") {
			continue
		}
		switch {
		case sel == "":
			sel = p
		case strings.Contains(p, "&"):
			sel = strings.ReplaceAll(p, "&", sel)
		default:
			sel = sel + " " + p
		}
	}
	return sel
}

// AtRules returns the at-rule preludes wrapping the rule, outermost first.
func (r Rule) AtRules() []string {
	var out []string
	for _, p := range append(append([]string{}, r.Parents...), r.Prelude) {
		if strings.HasPrefix(p, "@") {
			out = append(out, p)
		}
	}
	return out
}

// Value returns the value of the last declaration of property.
func (r Rule) Value(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

type block struct {
	prelude string
	decls   []Declaration
	nested  int
}

// Parse reads a stylesheet into the rules that carry declarations, in
// document order. It reports structural problems as a combined error but
// still returns whatever it could read.
func Parse(content string) ([]Rule, error) {
	lexer := css.NewLexer(parse.NewInputString(content))

	var (
		rules []Rule
		stack []*block
		buf   strings.Builder
		errs  error
	)

	flushDeclaration := func() {
		text := collapse(buf.String())
		buf.Reset()
		if text == "" {
			return
		}
		if len(stack) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("declaration %q outside any block", text))
			return
		}
		prop, value, ok := strings.Cut(text, ":")
		prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
		if !ok || prop == "" || value == "" {
			errs = multierr.Append(errs, fmt.Errorf("malformed declaration %q in %q", text, stack[len(stack)-1].prelude))
			return
		}
		top := stack[len(stack)-1]
		top.decls = append(top.decls, Declaration{Property: prop, Value: value})
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				errs = multierr.Append(errs, fmt.Errorf("lex: %w", err))
			}
			break
		}

		switch tt {
		case css.CommentToken:
			continue
		case css.LeftBraceToken:
			prelude := collapse(buf.String())
			buf.Reset()
			if prelude == "" {
				errs = multierr.Append(errs, fmt.Errorf("block without prelude"))
			}
			if len(stack) > 0 {
				stack[len(stack)-1].nested++
			}
			stack = append(stack, &block{prelude: prelude})
		case css.SemicolonToken:
			flushDeclaration()
		case css.RightBraceToken:
			flushDeclaration()
			if len(stack) == 0 {
				errs = multierr.Append(errs, fmt.Errorf("unexpected '}'"))
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(top.decls) == 0 && top.nested == 0 {
				errs = multierr.Append(errs, fmt.Errorf("empty block %q", top.prelude))
			}
			if len(top.decls) > 0 {
				parents := make([]string, 0, len(stack))
				for _, b := range stack {
					parents = append(parents, b.prelude)
				}
				rules = append(rules, Rule{Parents: parents, Prelude: top.prelude, Declarations: top.decls})
			}
		default:
			buf.Write(text)
		}
	}

	if rest := collapse(buf.String()); rest != "" {
		errs = multierr.Append(errs, fmt.Errorf("trailing content %q", rest))
	}
	for i := len(stack) - 1; i >= 0; i-- {
		errs = multierr.Append(errs, fmt.Errorf("unclosed block %q", stack[i].prelude))
	}

	return rules, errs
}

// Verify reports whether content is a structurally sound stylesheet.
func Verify(content string) error {
	_, err := Parse(content)
	return err
}

// collapse trims s and folds whitespace runs to one space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
