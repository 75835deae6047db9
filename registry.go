package twcss

import (
	"fmt"
	"strings"
)

// ValueKind tags the value space of a utility.
type ValueKind int

const (
	// ValueKeyword takes its value from a fixed set of named literals.
	ValueKeyword ValueKind = iota
	// ValueScale maps a theme scale step to a literal.
	ValueScale
	// ValueColor combines a palette and shade into a color literal.
	ValueColor
	// ValueArbitrary accepts only bracketed literals.
	ValueArbitrary
)

func (k ValueKind) String() string {
	switch k {
	case ValueKeyword:
		return "keyword"
	case ValueScale:
		return "scale"
	case ValueColor:
		return "color"
	case ValueArbitrary:
		return "arbitrary"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k ValueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ValueSpace describes which values a utility accepts.
type ValueSpace struct {
	Kind ValueKind

	// Values maps an allowed keyword or scale step to its literal (Keyword, Scale).
	Values map[string]string

	// Palette maps palette -> shade -> literal (Color).
	Palette map[string]map[string]string

	// OpacityCapable allows a /NN suffix (Color only).
	OpacityCapable bool

	// Arbitrary allows a bracketed value in addition to the named ones.
	Arbitrary bool
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// UtilityDefinition is one immutable registry entry.
type UtilityDefinition struct {
	// ID is unique within a registry ("p", "text:color", "flex").
	ID string

	// Prefix is the class-name prefix the entry is keyed by.
	Prefix string

	// Properties receive the resolved value, in order.
	Properties []string

	Space ValueSpace

	// Format wraps the resolved value ("translateX(%s)"); empty means as-is.
	Format string

	// Fixed holds the declarations of an exact-literal utility ("flex", "truncate").
	Fixed []Declaration

	// Negative allows a leading "-" on the class.
	Negative bool

	// Order is the registration index; lower entries cascade first.
	Order int
}

// IsLiteral reports whether the entry is an exact literal with no value.
func (d *UtilityDefinition) IsLiteral() bool {
	return d.Fixed != nil
}

// Match is the result of resolving a base utility name.
type Match struct {
	Definition *UtilityDefinition
	// Value is the part of the name after the prefix; empty for literals and
	// DEFAULT steps, bracketed for arbitrary values.
	Value string
}

// Resolver resolves a base utility name to a registry entry.
type Resolver interface {
	Resolve(name string) (Match, bool)
}

type trieNode struct {
	children map[string]*trieNode
	defs     []*UtilityDefinition
}

func (n *trieNode) child(seg string) *trieNode {
	if n.children == nil {
		n.children = make(map[string]*trieNode)
	}
	c, ok := n.children[seg]
	if !ok {
		c = &trieNode{}
		n.children[seg] = c
	}
	return c
}

// Registry maps utility names to definitions. It is built once by NewRegistry
// and is read-only afterwards, so concurrent Resolve calls need no locking.
type Registry struct {
	theme     Theme
	exact     map[string]*UtilityDefinition
	root      *trieNode
	byID      map[string]*UtilityDefinition
	defs      []*UtilityDefinition
	arbitrary *UtilityDefinition
}

// NewRegistry builds the utility table for theme.
func NewRegistry(theme Theme) *Registry {
	r := &Registry{
		theme: theme.Clone(),
		exact: make(map[string]*UtilityDefinition),
		root:  &trieNode{},
		byID:  make(map[string]*UtilityDefinition),
	}

	for _, lit := range literalUtilities {
		r.add(&UtilityDefinition{
			ID:     lit.name,
			Prefix: lit.name,
			Fixed:  lit.decls,
			Space:  ValueSpace{Kind: ValueKeyword},
		})
	}

	for _, entry := range parametricUtilities {
		r.add(entry.definition(r.theme))
	}

	r.arbitrary = &UtilityDefinition{
		ID:     "[arbitrary]",
		Space:  ValueSpace{Kind: ValueArbitrary, Arbitrary: true},
		Order:  len(r.defs),
		Prefix: "",
	}
	r.byID[r.arbitrary.ID] = r.arbitrary

	return r
}

func (r *Registry) add(def *UtilityDefinition) {
	if _, dup := r.byID[def.ID]; dup {
		panic(fmt.Sprintf("twcss: duplicate utility ID %q", def.ID))
	}
	def.Order = len(r.defs)
	r.defs = append(r.defs, def)
	r.byID[def.ID] = def

	if def.IsLiteral() {
		r.exact[def.Prefix] = def
		return
	}

	node := r.root
	for _, seg := range strings.Split(def.Prefix, "-") {
		node = node.child(seg)
	}
	node.defs = append(node.defs, def)
}

// Theme returns a copy of the theme the registry was built from.
func (r *Registry) Theme() Theme {
	return r.theme.Clone()
}

// Definition returns the entry with the given ID.
func (r *Registry) Definition(id string) (*UtilityDefinition, bool) {
	def, ok := r.byID[id]
	return def, ok
}

// Definitions returns all entries in registration order.
func (r *Registry) Definitions() []*UtilityDefinition {
	out := make([]*UtilityDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Resolve finds the entry for a base utility name (no variants, sign,
// important marker or opacity suffix).
//
// Exact literals win over parameterized entries; among parameterized entries
// the longest prefix whose value space accepts the remainder wins.
func (r *Registry) Resolve(name string) (Match, bool) {
	if name == "" {
		return Match{}, false
	}

	if isBracketed(name) {
		return Match{Definition: r.arbitrary, Value: name}, true
	}

	if def, ok := r.exact[name]; ok {
		return Match{Definition: def}, true
	}

	// name-[value]: the prefix must match exactly
	if i := strings.Index(name, "-["); i > 0 && strings.HasSuffix(name, "]") {
		head, value := name[:i], name[i+1:]
		node := r.root
		for _, seg := range strings.Split(head, "-") {
			node = node.children[seg]
			if node == nil {
				return Match{}, false
			}
		}
		if def := pickArbitrary(node.defs, value); def != nil {
			return Match{Definition: def, Value: value}, true
		}
		return Match{}, false
	}

	segs := strings.Split(name, "-")
	path := make([]*trieNode, 0, len(segs))
	node := r.root
	for _, seg := range segs {
		node = node.children[seg]
		if node == nil {
			break
		}
		path = append(path, node)
	}

	for depth := len(path); depth > 0; depth-- {
		value := strings.Join(segs[depth:], "-")
		for _, def := range path[depth-1].defs {
			if accepts(def.Space, value) {
				return Match{Definition: def, Value: value}, true
			}
		}
	}

	return Match{}, false
}

// accepts reports whether a named (non-bracketed) value belongs to the space.
func accepts(space ValueSpace, value string) bool {
	switch space.Kind {
	case ValueKeyword, ValueScale:
		if value == "" {
			value = DefaultKey
		}
		_, ok := space.Values[value]
		return ok
	case ValueColor:
		if value == "" {
			return false
		}
		_, _, _, ok := lookupColor(space.Palette, value)
		return ok
	default:
		return false
	}
}

// pickArbitrary chooses among entries sharing a prefix for a bracketed value.
// Color entries take color-looking values; the others take the rest.
func pickArbitrary(defs []*UtilityDefinition, bracketed string) *UtilityDefinition {
	hint, inner := splitTypeHint(unbracket(bracketed))
	wantColor := hint == "color" || (hint == "" && looksLikeColor(inner))

	var fallback *UtilityDefinition
	for _, def := range defs {
		if !def.Space.Arbitrary && def.Space.Kind != ValueArbitrary {
			continue
		}
		if (def.Space.Kind == ValueColor) == wantColor {
			return def
		}
		if fallback == nil && hint == "" {
			fallback = def
		}
	}
	return fallback
}

// lookupColor resolves "blue-500" or "white" against a palette table.
func lookupColor(palettes map[string]map[string]string, value string) (palette, shade, literal string, ok bool) {
	if p, found := palettes[value]; found {
		if lit, found := p[DefaultKey]; found {
			return value, "", lit, true
		}
	}
	i := strings.LastIndex(value, "-")
	if i <= 0 {
		return "", "", "", false
	}
	palette, shade = value[:i], value[i+1:]
	if lit, found := palettes[palette][shade]; found {
		return palette, shade, lit, true
	}
	return "", "", "", false
}

var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color(", "color-mix("}

func looksLikeColor(v string) bool {
	if strings.HasPrefix(v, "#") {
		return true
	}
	lower := strings.ToLower(v)
	for _, fn := range colorFunctions {
		if strings.HasPrefix(lower, fn) {
			return true
		}
	}
	return lower == "transparent" || lower == "currentcolor"
}

var typeHints = map[string]bool{
	"color": true, "length": true, "number": true, "percentage": true,
	"url": true, "image": true, "position": true, "family-name": true, "any": true,
}

// splitTypeHint separates a "color:" style hint from an arbitrary value.
func splitTypeHint(v string) (hint, value string) {
	if i := strings.Index(v, ":"); i > 0 && typeHints[v[:i]] {
		return v[:i], v[i+1:]
	}
	return "", v
}

func isBracketed(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

func unbracket(s string) string {
	if isBracketed(s) {
		return s[1 : len(s)-1]
	}
	return s
}
