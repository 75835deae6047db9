package twcss

import (
	"fmt"
	"sort"
	"strings"
)

// VariantKind tags what a variant token controls.
type VariantKind int

const (
	// VariantResponsive applies a min-width breakpoint ("md").
	VariantResponsive VariantKind = iota
	// VariantDark applies dark mode, as a class selector or a media query.
	VariantDark
	// VariantState appends a pseudo-class ("hover", "first").
	VariantState
	// VariantGroup matches a state of an ancestor marked "group".
	VariantGroup
	// VariantPeer matches a state of a preceding sibling marked "peer".
	VariantPeer
	// VariantMedia applies a media feature ("print", "motion-reduce").
	VariantMedia
	// VariantPseudoElement targets a generated box ("before", "placeholder").
	VariantPseudoElement
	// VariantContainer applies a container query ("@md", "@[400px]/sidebar").
	VariantContainer
)

func (k VariantKind) String() string {
	switch k {
	case VariantResponsive:
		return "responsive"
	case VariantDark:
		return "dark"
	case VariantState:
		return "state"
	case VariantGroup:
		return "group"
	case VariantPeer:
		return "peer"
	case VariantMedia:
		return "media"
	case VariantPseudoElement:
		return "pseudo-element"
	case VariantContainer:
		return "container"
	default:
		return fmt.Sprintf("VariantKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k VariantKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Variant is one parsed variant token.
type Variant struct {
	Kind VariantKind `json:"kind"`

	// Name is the token as written ("md", "group-hover", "@lg/sidebar").
	Name string `json:"name"`

	// Param is the resolved parameter: a min-width for responsive and container
	// variants, a selector fragment for state, pseudo-element, group and peer
	// variants, a media query for media variants.
	Param string `json:"param,omitempty"`

	// Container is the optional container name ("@md/sidebar" -> "sidebar").
	Container string `json:"container,omitempty"`
}

// pseudoClasses maps state names to selector suffixes.
var pseudoClasses = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"focus-within":      ":focus-within",
	"focus-visible":     ":focus-visible",
	"active":            ":active",
	"visited":           ":visited",
	"target":            ":target",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"checked":           ":checked",
	"indeterminate":     ":indeterminate",
	"required":          ":required",
	"optional":          ":optional",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"read-only":         ":read-only",
	"placeholder-shown": ":placeholder-shown",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"empty":             ":empty",
	"open":              "[open]",
}

var pseudoElements = map[string]string{
	"before":       "::before",
	"after":        "::after",
	"placeholder":  "::placeholder",
	"selection":    "::selection",
	"marker":       "::marker",
	"first-line":   "::first-line",
	"first-letter": "::first-letter",
	"file":         "::file-selector-button",
	"backdrop":     "::backdrop",
}

var mediaFeatures = map[string]string{
	"print":         "print",
	"motion-safe":   "(prefers-reduced-motion: no-preference)",
	"motion-reduce": "(prefers-reduced-motion: reduce)",
	"portrait":      "(orientation: portrait)",
	"landscape":     "(orientation: landscape)",
	"contrast-more": "(prefers-contrast: more)",
	"contrast-less": "(prefers-contrast: less)",
}

// VariantResolver parses variant tokens and turns chains into contexts.
// It holds only read-only theme data.
type VariantResolver struct {
	breakpoints  map[string]string
	containers   map[string]string
	darkMode     DarkMode
	darkSelector string
}

// NewVariantResolver builds a resolver for the theme's breakpoints, container
// sizes and dark-mode strategy.
func NewVariantResolver(theme Theme) *VariantResolver {
	mode := theme.DarkMode
	if mode == "" {
		mode = DarkModeMedia
	}
	sel := theme.DarkSelector
	if sel == "" {
		sel = ".dark"
	}
	return &VariantResolver{
		breakpoints:  cloneTable(theme.Breakpoints),
		containers:   cloneTable(theme.Containers),
		darkMode:     mode,
		darkSelector: sel,
	}
}

// Parse classifies one variant token. The second result is false for a
// token that names no known variant.
func (v *VariantResolver) Parse(name string) (Variant, bool) {
	if width, ok := v.breakpoints[name]; ok {
		return Variant{Kind: VariantResponsive, Name: name, Param: width}, true
	}
	if name == "dark" {
		return Variant{Kind: VariantDark, Name: name}, true
	}
	if sel, ok := pseudoClasses[name]; ok {
		return Variant{Kind: VariantState, Name: name, Param: sel}, true
	}
	if sel, ok := pseudoElements[name]; ok {
		return Variant{Kind: VariantPseudoElement, Name: name, Param: sel}, true
	}
	if q, ok := mediaFeatures[name]; ok {
		return Variant{Kind: VariantMedia, Name: name, Param: q}, true
	}
	if state, ok := strings.CutPrefix(name, "group-"); ok {
		if sel, ok := pseudoClasses[state]; ok {
			return Variant{Kind: VariantGroup, Name: name, Param: sel}, true
		}
	}
	if state, ok := strings.CutPrefix(name, "peer-"); ok {
		if sel, ok := pseudoClasses[state]; ok {
			return Variant{Kind: VariantPeer, Name: name, Param: sel}, true
		}
	}
	if rest, ok := strings.CutPrefix(name, "@"); ok {
		return v.parseContainer(name, rest)
	}
	return Variant{}, false
}

func (v *VariantResolver) parseContainer(name, rest string) (Variant, bool) {
	var size, container, width string

	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return Variant{}, false
		}
		size = rest[:end+1]
		if tail := rest[end+1:]; tail != "" {
			c, ok := strings.CutPrefix(tail, "/")
			if !ok || c == "" {
				return Variant{}, false
			}
			container = c
		}
		width = unbracket(size)
		if _, ok := lengthPx(width); !ok {
			return Variant{}, false
		}
	} else {
		size = rest
		if i := strings.Index(rest, "/"); i >= 0 {
			size, container = rest[:i], rest[i+1:]
			if container == "" {
				return Variant{}, false
			}
		}
		m, ok := v.containers[size]
		if !ok {
			return Variant{}, false
		}
		width = m
	}

	return Variant{Kind: VariantContainer, Name: name, Param: width, Container: container}, true
}

// Check reports the first variant whose kind already appeared in chain.
// Each kind may appear at most once: "hover:focus" is as ambiguous as
// "md:lg".
func (v *VariantResolver) Check(chain []Variant) (VariantKind, bool) {
	seen := make(map[VariantKind]bool, len(chain))
	for _, vr := range chain {
		if seen[vr.Kind] {
			return vr.Kind, false
		}
		seen[vr.Kind] = true
	}
	return 0, true
}

// Resolve turns a variant chain into a wrapping context. Layers keep the
// chain's order: the first variant is the outermost layer.
func (v *VariantResolver) Resolve(chain []Variant) WrappingContext {
	if len(chain) == 0 {
		return WrappingContext{}
	}
	layers := make([]Layer, 0, len(chain))
	for _, vr := range chain {
		layers = append(layers, v.layer(vr))
	}
	return WrappingContext{Layers: layers}
}

func (v *VariantResolver) layer(vr Variant) Layer {
	switch vr.Kind {
	case VariantResponsive:
		return Layer{Kind: LayerMedia, Source: vr.Kind, Query: "(min-width: " + vr.Param + ")"}
	case VariantDark:
		if v.darkMode == DarkModeClass {
			return Layer{Kind: LayerSelector, Source: vr.Kind, Query: v.darkSelector + " &"}
		}
		return Layer{Kind: LayerMedia, Source: vr.Kind, Query: "(prefers-color-scheme: dark)"}
	case VariantState, VariantPseudoElement:
		return Layer{Kind: LayerSelector, Source: vr.Kind, Query: "&" + vr.Param}
	case VariantGroup:
		return Layer{Kind: LayerSelector, Source: vr.Kind, Query: ".group" + vr.Param + " &"}
	case VariantPeer:
		return Layer{Kind: LayerSelector, Source: vr.Kind, Query: ".peer" + vr.Param + " ~ &"}
	case VariantMedia:
		return Layer{Kind: LayerMedia, Source: vr.Kind, Query: vr.Param}
	case VariantContainer:
		return Layer{Kind: LayerContainer, Source: vr.Kind, Query: "(min-width: " + vr.Param + ")", Name: vr.Container}
	default:
		panic(fmt.Sprintf("twcss: unhandled variant kind %v", vr.Kind))
	}
}

// LayerKind tags a wrapping layer.
type LayerKind int

const (
	// LayerMedia wraps in an @media block.
	LayerMedia LayerKind = iota
	// LayerContainer wraps in an @container block.
	LayerContainer
	// LayerSelector rewrites the selector through a template containing "&".
	LayerSelector
)

func (k LayerKind) String() string {
	switch k {
	case LayerMedia:
		return "media"
	case LayerContainer:
		return "container"
	case LayerSelector:
		return "selector"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k LayerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Layer is one transform of a wrapping context.
type Layer struct {
	Kind LayerKind `json:"kind"`

	// Source is the variant kind that produced the layer.
	Source VariantKind `json:"source"`

	// Query is the media or container predicate, or the selector template.
	Query string `json:"query"`

	// Name is the container name of a container layer.
	Name string `json:"name,omitempty"`
}

// IsAtRule reports whether the layer opens an at-rule block.
func (l Layer) IsAtRule() bool {
	return l.Kind == LayerMedia || l.Kind == LayerContainer
}

// Prelude renders the at-rule prelude or the selector template.
func (l Layer) Prelude(minified bool) string {
	q := l.Query
	if minified && l.IsAtRule() {
		q = strings.ReplaceAll(q, ": ", ":")
	}
	switch l.Kind {
	case LayerMedia:
		return "@media " + q
	case LayerContainer:
		if l.Name != "" {
			return "@container " + l.Name + " " + q
		}
		return "@container " + q
	default:
		return q
	}
}

// Apply substitutes selector into a selector layer's template.
func (l Layer) Apply(selector string) string {
	return strings.ReplaceAll(l.Query, "&", selector)
}

func (l Layer) String() string {
	return l.Kind.String() + ":" + l.Prelude(false)
}

// WrappingContext is the ordered stack of layers around a rule, outermost
// first. The zero value is the unconditional context.
type WrappingContext struct {
	Layers []Layer `json:"layers,omitempty"`
}

// Key identifies the context for grouping. Contexts with equal layer lists
// have equal keys.
func (c WrappingContext) Key() string {
	if len(c.Layers) == 0 {
		return ""
	}
	parts := make([]string, len(c.Layers))
	for i, l := range c.Layers {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}

// Equal reports whether two contexts have the same layers in the same order.
func (c WrappingContext) Equal(other WrappingContext) bool {
	return c.Key() == other.Key()
}

// IsBase reports whether the context has no layers.
func (c WrappingContext) IsBase() bool {
	return len(c.Layers) == 0
}

// split separates the leading at-rule layers, which a group shares, from
// the layers applied per rule.
func (c WrappingContext) split() (leading, rest []Layer) {
	i := 0
	for i < len(c.Layers) && c.Layers[i].IsAtRule() {
		i++
	}
	return c.Layers[:i], c.Layers[i:]
}

func (c WrappingContext) clone() WrappingContext {
	if c.Layers == nil {
		return c
	}
	layers := make([]Layer, len(c.Layers))
	copy(layers, c.Layers)
	return WrappingContext{Layers: layers}
}

// Category is a cascade-priority class of wrapping contexts.
type Category string

// Cascade categories.
const (
	CategoryBase       Category = "base"
	CategoryResponsive Category = "responsive"
	CategoryState      Category = "state"
	CategoryContainer  Category = "container"
)

// DefaultCascade orders categories from first emitted to last.
var DefaultCascade = []Category{CategoryBase, CategoryResponsive, CategoryState, CategoryContainer}

// Classify returns the context's cascade category.
func (c WrappingContext) Classify() Category {
	if len(c.Layers) == 0 {
		return CategoryBase
	}
	responsive := false
	for _, l := range c.Layers {
		if l.Kind == LayerContainer {
			return CategoryContainer
		}
		if l.Source == VariantResponsive {
			responsive = true
		}
	}
	if responsive {
		return CategoryResponsive
	}
	return CategoryState
}

// sortSize is the min-width in px that orders responsive and container
// contexts within their category; 0 for the others.
func (c WrappingContext) sortSize() float64 {
	cat := c.Classify()
	for _, l := range c.Layers {
		if (cat == CategoryResponsive && l.Source == VariantResponsive) ||
			(cat == CategoryContainer && l.Kind == LayerContainer) {
			q := strings.TrimSuffix(strings.TrimPrefix(l.Query, "(min-width: "), ")")
			if px, ok := lengthPx(q); ok {
				return px
			}
		}
	}
	return 0
}

func (c WrappingContext) containerName() string {
	for _, l := range c.Layers {
		if l.Kind == LayerContainer {
			return l.Name
		}
	}
	return ""
}

// cascade ranks contexts for emission.
type cascade struct {
	rank map[Category]int
}

func newCascade(order []Category) (cascade, error) {
	if len(order) == 0 {
		order = DefaultCascade
	}
	rank := make(map[Category]int, len(order))
	for i, cat := range order {
		switch cat {
		case CategoryBase, CategoryResponsive, CategoryState, CategoryContainer:
		default:
			return cascade{}, fmt.Errorf("unknown cascade category %q", cat)
		}
		if _, dup := rank[cat]; dup {
			return cascade{}, fmt.Errorf("cascade category %q listed twice", cat)
		}
		rank[cat] = i
	}
	if len(rank) != len(DefaultCascade) {
		return cascade{}, fmt.Errorf("cascade must list all of %v", DefaultCascade)
	}
	return cascade{rank: rank}, nil
}

// ParseCascade reads a comma separated category list ("base,state,responsive,container").
func ParseCascade(s string) ([]Category, error) {
	var out []Category
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, Category(f))
	}
	if _, err := newCascade(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cs cascade) sort(groups []RuleGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if ra, rb := cs.rank[a.Category], cs.rank[b.Category]; ra != rb {
			return ra < rb
		}
		if sa, sb := a.Context.sortSize(), b.Context.sortSize(); sa != sb {
			return sa < sb
		}
		if a.Category == CategoryContainer {
			if na, nb := a.Context.containerName(), b.Context.containerName(); na != nb {
				return na < nb
			}
		}
		return a.Context.Key() < b.Context.Key()
	})
}
