package twcss

import (
	"io"
	"strings"
)

// cssWriter writes nested blocks in pretty or minified layout.
type cssWriter struct {
	b      strings.Builder
	pretty bool
	depth  int
}

func (w *cssWriter) indent() {
	if w.pretty {
		w.b.WriteString(strings.Repeat("  ", w.depth))
	}
}

func (w *cssWriter) open(prelude string) {
	if w.pretty && w.depth == 0 && w.b.Len() > 0 {
		w.b.WriteByte('\n')
	}
	w.indent()
	w.b.WriteString(prelude)
	if w.pretty {
		w.b.WriteString(" {\n")
	} else {
		w.b.WriteByte('{')
	}
	w.depth++
}

func (w *cssWriter) close() {
	w.depth--
	w.indent()
	w.b.WriteByte('}')
	if w.pretty {
		w.b.WriteByte('\n')
	}
}

func (w *cssWriter) declarations(decls []Declaration) {
	for i, d := range decls {
		if w.pretty {
			w.indent()
			w.b.WriteString(d.Property + ": " + d.Value + ";\n")
			continue
		}
		if i > 0 {
			w.b.WriteByte(';')
		}
		w.b.WriteString(d.Property + ":" + d.Value)
	}
}

// group writes one rule group. Leading at-rule layers open once for the
// whole group; the remaining layers apply per rule.
func (w *cssWriter) group(g RuleGroup) {
	leading, rest := g.Context.split()
	for _, l := range leading {
		w.open(l.Prelude(!w.pretty))
	}
	for _, r := range g.Rules {
		w.rule(r, rest)
	}
	for range leading {
		w.close()
	}
}

// rule writes one rule. Selector layers fold into the selector until an
// at-rule layer appears; from there on, at-rules nest inside the style rule
// and later selector layers open nested "&" rules.
func (w *cssWriter) rule(r Rule, layers []Layer) {
	sel := r.Selector
	i := 0
	for i < len(layers) && !layers[i].IsAtRule() {
		sel = layers[i].Apply(sel)
		i++
	}

	w.open(sel)
	nested := layers[i:]
	for _, l := range nested {
		w.open(l.Prelude(!w.pretty))
	}
	w.declarations(r.Declarations)
	for range nested {
		w.close()
	}
	w.close()
}

// CSS renders the stylesheet as CSS text.
func (s *Stylesheet) CSS(mode OutputMode) string {
	w := &cssWriter{pretty: mode != OutputMinified}
	for _, g := range s.Groups {
		w.group(g)
	}
	return w.b.String()
}

// String renders the stylesheet in its configured mode.
func (s *Stylesheet) String() string {
	return s.CSS(s.Mode)
}

// WriteTo writes the stylesheet in its configured mode.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
