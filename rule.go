package twcss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/yacobolo/twcss/internal/csstext"
)

// Rule is one built CSS rule.
type Rule struct {
	// Class is the raw class string the rule was built from.
	Class string `json:"class"`

	// Selector is the escaped class selector before any selector layer.
	Selector string `json:"selector"`

	// Declarations in insertion order; Set keeps one entry per property.
	Declarations []Declaration `json:"declarations"`

	Context WrappingContext `json:"context"`

	// Utility is the registry entry ID the rule came from.
	Utility string `json:"utility"`

	// Order is the registry entry's registration index.
	Order int `json:"-"`
}

// Set assigns property. An existing property keeps its position and takes
// the new value.
func (r *Rule) Set(property, value string) {
	for i := range r.Declarations {
		if r.Declarations[i].Property == property {
			r.Declarations[i].Value = value
			return
		}
	}
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// Get returns the value of property.
func (r Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// FullSelector applies the rule's selector layers, stopping at the first
// at-rule that follows one.
func (r Rule) FullSelector() string {
	sel := r.Selector
	_, rest := r.Context.split()
	for _, l := range rest {
		if l.IsAtRule() {
			break
		}
		sel = l.Apply(sel)
	}
	return sel
}

func (r Rule) clone() Rule {
	out := r
	out.Declarations = append([]Declaration(nil), r.Declarations...)
	out.Context = r.Context.clone()
	return out
}

// BuildRule combines a registry entry, a token resolved against it and the
// token's wrapping context into exactly one rule.
func BuildRule(def *UtilityDefinition, tok ClassToken, ctx WrappingContext) (Rule, error) {
	rule := Rule{
		Class:    tok.Raw,
		Selector: "." + EscapeClass(tok.Raw),
		Context:  ctx,
		Utility:  def.ID,
		Order:    def.Order,
	}

	important := ""
	if tok.Important {
		important = " !important"
	}

	if def.IsLiteral() {
		if tok.HasOpacity {
			return Rule{}, newClassError(KindInvalidOpacityModifier, tok.Raw, tok.Raw)
		}
		for _, d := range def.Fixed {
			rule.Set(d.Property, d.Value+important)
		}
		return rule, nil
	}

	props := def.Properties
	value, err := resolveValue(def, tok)
	if err != nil {
		return Rule{}, err
	}

	if def.Space.Kind == ValueArbitrary && len(props) == 0 {
		// [property:value]
		prop, v, _ := strings.Cut(value, ":")
		props, value = []string{prop}, v
	}

	if tok.Negative {
		neg, ok := negate(value, tok.IsArbitrary())
		if !ok {
			return Rule{}, newClassError(KindUnknownUtility, tok.Raw, tok.Raw)
		}
		value = neg
	}

	if def.Format != "" {
		value = strings.Replace(def.Format, "%s", value, 1)
	}

	for _, p := range props {
		rule.Set(p, value+important)
	}
	return rule, nil
}

// resolveValue maps the token's value to a CSS literal.
func resolveValue(def *UtilityDefinition, tok ClassToken) (string, error) {
	if tok.IsArbitrary() {
		return resolveArbitrary(def, tok)
	}

	switch def.Space.Kind {
	case ValueKeyword, ValueScale:
		key := tok.Value
		if key == "" {
			key = DefaultKey
		}
		v, ok := def.Space.Values[key]
		if !ok {
			return "", newClassError(KindUnknownUtility, tok.Raw, tok.Raw)
		}
		return v, nil
	case ValueColor:
		_, _, lit, ok := lookupColor(def.Space.Palette, tok.Value)
		if !ok {
			return "", newClassError(KindUnknownUtility, tok.Raw, tok.Raw)
		}
		if tok.HasOpacity {
			return withOpacity(tok, lit)
		}
		return lit, nil
	case ValueArbitrary:
		return "", newClassError(KindUnknownUtility, tok.Raw, tok.Raw)
	default:
		panic(fmt.Sprintf("twcss: unhandled value kind %v", def.Space.Kind))
	}
}

func resolveArbitrary(def *UtilityDefinition, tok ClassToken) (string, error) {
	malformed := newClassError(KindMalformedArbitraryValue, tok.Raw, tok.Value)
	inner := unbracket(tok.Value)

	if def.Space.Kind == ValueArbitrary && len(def.Properties) == 0 {
		prop, v, ok := strings.Cut(inner, ":")
		if !ok {
			return "", malformed
		}
		if csstext.ValidateProperty(prop) != nil {
			return "", malformed
		}
		v = decodeArbitrary(v)
		if csstext.ValidateValue(v) != nil {
			return "", malformed
		}
		return prop + ":" + v, nil
	}

	_, v := splitTypeHint(inner)
	v = decodeArbitrary(v)
	if csstext.ValidateValue(v) != nil {
		return "", malformed
	}
	if tok.HasOpacity {
		return withOpacity(tok, v)
	}
	return v, nil
}

// decodeArbitrary turns '_' into a space; "\_" stays an underscore.
func decodeArbitrary(v string) string {
	if !strings.Contains(v, "_") {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		switch c := v[i]; {
		case c == '\\' && i+1 < len(v) && v[i+1] == '_':
			b.WriteByte('_')
			i++
		case c == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// withOpacity rewrites a hex color as rgb() with an alpha percentage.
func withOpacity(tok ClassToken, color string) (string, error) {
	c, err := colorful.Hex(color)
	if err != nil {
		return "", newClassError(KindInvalidOpacityModifier, tok.Raw, color)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d %d %d / %d%%)", r, g, b, tok.Opacity), nil
}

// negate flips the sign of a numeric literal. Zero stays as is; arbitrary
// non-numeric literals are wrapped in calc().
func negate(v string, arbitrary bool) (string, bool) {
	if s, ok := strings.CutPrefix(v, "-"); ok {
		return s, true
	}
	num := v[:len(v)-len(strings.TrimLeft(v, "0123456789."))]
	if num == "" {
		if arbitrary {
			return "calc(" + v + " * -1)", true
		}
		return "", false
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil && f == 0 {
		return v, true
	}
	return "-" + v, true
}

// EscapeClass escapes a class name for use in a class selector
// ("md:p-4" -> `md\:p-4`).
func EscapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 8)
	for i, r := range class {
		switch {
		case r >= '0' && r <= '9':
			if i == 0 || (i == 1 && class[0] == '-') {
				fmt.Fprintf(&b, "\\%x ", r)
				continue
			}
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r >= 0x80:
			b.WriteRune(r)
		case r == '-':
			if i == 0 && len(class) == 1 {
				b.WriteString(`\-`)
				continue
			}
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f || r == ' ':
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
