package twcss

import (
	"maps"
	"strconv"
)

type literalEntry struct {
	name  string
	decls []Declaration
}

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// literalUtilities are exact class names with fixed declarations.
var literalUtilities = []literalEntry{
	// Display
	{"block", []Declaration{decl("display", "block")}},
	{"inline-block", []Declaration{decl("display", "inline-block")}},
	{"inline", []Declaration{decl("display", "inline")}},
	{"flex", []Declaration{decl("display", "flex")}},
	{"inline-flex", []Declaration{decl("display", "inline-flex")}},
	{"grid", []Declaration{decl("display", "grid")}},
	{"inline-grid", []Declaration{decl("display", "inline-grid")}},
	{"table", []Declaration{decl("display", "table")}},
	{"contents", []Declaration{decl("display", "contents")}},
	{"flow-root", []Declaration{decl("display", "flow-root")}},
	{"hidden", []Declaration{decl("display", "none")}},

	// Position
	{"static", []Declaration{decl("position", "static")}},
	{"fixed", []Declaration{decl("position", "fixed")}},
	{"absolute", []Declaration{decl("position", "absolute")}},
	{"relative", []Declaration{decl("position", "relative")}},
	{"sticky", []Declaration{decl("position", "sticky")}},

	// Visibility
	{"visible", []Declaration{decl("visibility", "visible")}},
	{"invisible", []Declaration{decl("visibility", "hidden")}},
	{"collapse", []Declaration{decl("visibility", "collapse")}},

	// Flexbox
	{"flex-row", []Declaration{decl("flex-direction", "row")}},
	{"flex-row-reverse", []Declaration{decl("flex-direction", "row-reverse")}},
	{"flex-col", []Declaration{decl("flex-direction", "column")}},
	{"flex-col-reverse", []Declaration{decl("flex-direction", "column-reverse")}},
	{"flex-wrap", []Declaration{decl("flex-wrap", "wrap")}},
	{"flex-wrap-reverse", []Declaration{decl("flex-wrap", "wrap-reverse")}},
	{"flex-nowrap", []Declaration{decl("flex-wrap", "nowrap")}},
	{"grow", []Declaration{decl("flex-grow", "1")}},
	{"grow-0", []Declaration{decl("flex-grow", "0")}},
	{"shrink", []Declaration{decl("flex-shrink", "1")}},
	{"shrink-0", []Declaration{decl("flex-shrink", "0")}},

	// Typography
	{"underline", []Declaration{decl("text-decoration-line", "underline")}},
	{"overline", []Declaration{decl("text-decoration-line", "overline")}},
	{"line-through", []Declaration{decl("text-decoration-line", "line-through")}},
	{"no-underline", []Declaration{decl("text-decoration-line", "none")}},
	{"uppercase", []Declaration{decl("text-transform", "uppercase")}},
	{"lowercase", []Declaration{decl("text-transform", "lowercase")}},
	{"capitalize", []Declaration{decl("text-transform", "capitalize")}},
	{"normal-case", []Declaration{decl("text-transform", "none")}},
	{"italic", []Declaration{decl("font-style", "italic")}},
	{"not-italic", []Declaration{decl("font-style", "normal")}},
	{"antialiased", []Declaration{
		decl("-webkit-font-smoothing", "antialiased"),
		decl("-moz-osx-font-smoothing", "grayscale"),
	}},
	{"truncate", []Declaration{
		decl("overflow", "hidden"),
		decl("text-overflow", "ellipsis"),
		decl("white-space", "nowrap"),
	}},

	// Tables and borders
	{"border-collapse", []Declaration{decl("border-collapse", "collapse")}},
	{"border-separate", []Declaration{decl("border-collapse", "separate")}},
	{"outline-none", []Declaration{
		decl("outline", "2px solid transparent"),
		decl("outline-offset", "2px"),
	}},

	// Accessibility
	{"sr-only", []Declaration{
		decl("position", "absolute"),
		decl("width", "1px"),
		decl("height", "1px"),
		decl("padding", "0"),
		decl("margin", "-1px"),
		decl("overflow", "hidden"),
		decl("clip", "rect(0, 0, 0, 0)"),
		decl("white-space", "nowrap"),
		decl("border-width", "0"),
	}},

	// Containers
	{"@container", []Declaration{decl("container-type", "inline-size")}},
	{"transition", []Declaration{
		decl("transition-property", "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform"),
		decl("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"),
		decl("transition-duration", "150ms"),
	}},
}

// utilityEntry declares a parameterized utility. scale names a Theme table;
// values adds or overrides entries on top of it.
type utilityEntry struct {
	id        string
	prefix    string
	props     []string
	kind      ValueKind
	scale     string
	values    map[string]string
	format    string
	negative  bool
	arbitrary bool
}

func (s utilityEntry) definition(t Theme) *UtilityDefinition {
	id := s.id
	if id == "" {
		id = s.prefix
	}

	space := ValueSpace{Kind: s.kind, Arbitrary: s.arbitrary}
	switch s.kind {
	case ValueColor:
		space.Palette = t.Colors
		space.OpacityCapable = true
		space.Arbitrary = true
	case ValueArbitrary:
		space.Arbitrary = true
	default:
		values := make(map[string]string)
		maps.Copy(values, t.table(s.scale))
		maps.Copy(values, s.values)
		space.Values = values
	}

	return &UtilityDefinition{
		ID:         id,
		Prefix:     s.prefix,
		Properties: s.props,
		Space:      space,
		Format:     s.format,
		Negative:   s.negative,
	}
}

// table returns the named theme table, or nil.
func (t Theme) table(name string) map[string]string {
	switch name {
	case "spacing":
		return t.Spacing
	case "font-size":
		return t.FontSize
	case "font-weight":
		return t.FontWeight
	case "font-family":
		return t.FontFamily
	case "radius":
		return t.Radius
	case "border-width":
		return t.BorderWidth
	case "opacity":
		return t.Opacity
	case "z-index":
		return t.ZIndex
	case "line-height":
		return t.LineHeight
	case "letter-spacing":
		return t.LetterSpacing
	case "max-width":
		return t.MaxWidth
	default:
		return nil
	}
}

func join(tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}

var fractions = map[string]string{
	"1/2": "50%",
	"1/3": "33.333333%", "2/3": "66.666667%",
	"1/4": "25%", "2/4": "50%", "3/4": "75%",
	"1/5": "20%", "2/5": "40%", "3/5": "60%", "4/5": "80%",
	"1/6": "16.666667%", "5/6": "83.333333%",
	"full": "100%",
}

var sizing = map[string]string{
	"auto": "auto", "min": "min-content", "max": "max-content", "fit": "fit-content",
}

func numbered(from, to int, format func(n string) string) map[string]string {
	out := make(map[string]string, to-from+1)
	for i := from; i <= to; i++ {
		n := strconv.Itoa(i)
		out[n] = format(n)
	}
	return out
}

func suffixed(unit string, steps ...string) map[string]string {
	out := make(map[string]string, len(steps))
	for _, s := range steps {
		out[s] = s + unit
	}
	return out
}

var (
	gridTracks = join(
		numbered(1, 12, func(n string) string { return "repeat(" + n + ", minmax(0, 1fr))" }),
		map[string]string{"none": "none", "subgrid": "subgrid"},
	)
	gridSpans = join(
		numbered(1, 12, func(n string) string { return "span " + n + " / span " + n }),
		map[string]string{"full": "1 / -1", "auto": "auto"},
	)
	durations = suffixed("ms", "0", "75", "100", "150", "200", "300", "500", "700", "1000")
)

// parametricUtilities in cascade order: broader utilities come first so the
// narrower ones (px after p) override them when both apply.
var parametricUtilities = []utilityEntry{
	// Padding
	{prefix: "p", props: []string{"padding"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "px", props: []string{"padding-left", "padding-right"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "py", props: []string{"padding-top", "padding-bottom"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "ps", props: []string{"padding-inline-start"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "pe", props: []string{"padding-inline-end"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "pt", props: []string{"padding-top"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "pr", props: []string{"padding-right"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "pb", props: []string{"padding-bottom"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "pl", props: []string{"padding-left"}, kind: ValueScale, scale: "spacing", arbitrary: true},

	// Margin
	{prefix: "m", props: []string{"margin"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "mx", props: []string{"margin-left", "margin-right"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "my", props: []string{"margin-top", "margin-bottom"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "ms", props: []string{"margin-inline-start"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "me", props: []string{"margin-inline-end"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "mt", props: []string{"margin-top"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "mr", props: []string{"margin-right"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "mb", props: []string{"margin-bottom"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},
	{prefix: "ml", props: []string{"margin-left"}, kind: ValueScale, scale: "spacing", values: map[string]string{"auto": "auto"}, negative: true, arbitrary: true},

	// Gap
	{prefix: "gap", props: []string{"gap"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "gap-x", props: []string{"column-gap"}, kind: ValueScale, scale: "spacing", arbitrary: true},
	{prefix: "gap-y", props: []string{"row-gap"}, kind: ValueScale, scale: "spacing", arbitrary: true},

	// Sizing
	{prefix: "size", props: []string{"width", "height"}, kind: ValueScale, scale: "spacing", values: join(fractions, sizing), arbitrary: true},
	{prefix: "w", props: []string{"width"}, kind: ValueScale, scale: "spacing", values: join(fractions, sizing, map[string]string{"screen": "100vw"}), arbitrary: true},
	{prefix: "min-w", props: []string{"min-width"}, kind: ValueScale, scale: "spacing", values: join(sizing, map[string]string{"full": "100%"}), arbitrary: true},
	{prefix: "max-w", props: []string{"max-width"}, kind: ValueScale, scale: "max-width", arbitrary: true},
	{prefix: "h", props: []string{"height"}, kind: ValueScale, scale: "spacing", values: join(fractions, sizing, map[string]string{"screen": "100vh"}), arbitrary: true},
	{prefix: "min-h", props: []string{"min-height"}, kind: ValueScale, scale: "spacing", values: join(sizing, map[string]string{"full": "100%", "screen": "100vh"}), arbitrary: true},
	{prefix: "max-h", props: []string{"max-height"}, kind: ValueScale, scale: "spacing", values: join(sizing, map[string]string{"none": "none", "full": "100%", "screen": "100vh"}), arbitrary: true},

	// Placement
	{prefix: "inset", props: []string{"inset"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "inset-x", props: []string{"left", "right"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "inset-y", props: []string{"top", "bottom"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "top", props: []string{"top"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "right", props: []string{"right"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "bottom", props: []string{"bottom"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "left", props: []string{"left"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), negative: true, arbitrary: true},
	{prefix: "z", props: []string{"z-index"}, kind: ValueScale, scale: "z-index", negative: true, arbitrary: true},
	{prefix: "order", props: []string{"order"}, kind: ValueScale, values: join(numbered(1, 12, func(n string) string { return n }), map[string]string{"first": "-9999", "last": "9999", "none": "0"}), negative: true, arbitrary: true},

	// Flexbox and grid
	{id: "flex:value", prefix: "flex", props: []string{"flex"}, kind: ValueKeyword, values: map[string]string{"1": "1 1 0%", "auto": "1 1 auto", "initial": "0 1 auto", "none": "none"}, arbitrary: true},
	{prefix: "basis", props: []string{"flex-basis"}, kind: ValueScale, scale: "spacing", values: join(fractions, map[string]string{"auto": "auto"}), arbitrary: true},
	{prefix: "items", props: []string{"align-items"}, kind: ValueKeyword, values: map[string]string{"start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch"}},
	{prefix: "justify", props: []string{"justify-content"}, kind: ValueKeyword, values: map[string]string{"normal": "normal", "start": "flex-start", "end": "flex-end", "center": "center", "between": "space-between", "around": "space-around", "evenly": "space-evenly", "stretch": "stretch"}},
	{id: "content:align", prefix: "content", props: []string{"align-content"}, kind: ValueKeyword, values: map[string]string{"normal": "normal", "center": "center", "start": "flex-start", "end": "flex-end", "between": "space-between", "around": "space-around", "evenly": "space-evenly", "stretch": "stretch"}},
	{id: "content:value", prefix: "content", props: []string{"content"}, kind: ValueArbitrary},
	{prefix: "self", props: []string{"align-self"}, kind: ValueKeyword, values: map[string]string{"auto": "auto", "start": "flex-start", "end": "flex-end", "center": "center", "stretch": "stretch", "baseline": "baseline"}},
	{prefix: "grid-cols", props: []string{"grid-template-columns"}, kind: ValueScale, values: gridTracks, arbitrary: true},
	{prefix: "grid-rows", props: []string{"grid-template-rows"}, kind: ValueScale, values: gridTracks, arbitrary: true},
	{prefix: "col-span", props: []string{"grid-column"}, kind: ValueScale, values: gridSpans, arbitrary: true},
	{prefix: "row-span", props: []string{"grid-row"}, kind: ValueScale, values: gridSpans, arbitrary: true},

	// Layout
	{prefix: "overflow", props: []string{"overflow"}, kind: ValueKeyword, values: map[string]string{"auto": "auto", "hidden": "hidden", "clip": "clip", "visible": "visible", "scroll": "scroll"}},
	{prefix: "overflow-x", props: []string{"overflow-x"}, kind: ValueKeyword, values: map[string]string{"auto": "auto", "hidden": "hidden", "clip": "clip", "visible": "visible", "scroll": "scroll"}},
	{prefix: "overflow-y", props: []string{"overflow-y"}, kind: ValueKeyword, values: map[string]string{"auto": "auto", "hidden": "hidden", "clip": "clip", "visible": "visible", "scroll": "scroll"}},
	{prefix: "object", props: []string{"object-fit"}, kind: ValueKeyword, values: map[string]string{"contain": "contain", "cover": "cover", "fill": "fill", "none": "none", "scale-down": "scale-down"}},
	{prefix: "aspect", props: []string{"aspect-ratio"}, kind: ValueKeyword, values: map[string]string{"auto": "auto", "square": "1 / 1", "video": "16 / 9"}, arbitrary: true},

	// Typography
	{id: "text:align", prefix: "text", props: []string{"text-align"}, kind: ValueKeyword, values: map[string]string{"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end"}},
	{id: "text:size", prefix: "text", props: []string{"font-size"}, kind: ValueScale, scale: "font-size", arbitrary: true},
	{id: "text:color", prefix: "text", props: []string{"color"}, kind: ValueColor},
	{id: "font:weight", prefix: "font", props: []string{"font-weight"}, kind: ValueScale, scale: "font-weight", arbitrary: true},
	{id: "font:family", prefix: "font", props: []string{"font-family"}, kind: ValueScale, scale: "font-family"},
	{prefix: "leading", props: []string{"line-height"}, kind: ValueScale, scale: "line-height", arbitrary: true},
	{prefix: "tracking", props: []string{"letter-spacing"}, kind: ValueScale, scale: "letter-spacing", negative: true, arbitrary: true},
	{prefix: "whitespace", props: []string{"white-space"}, kind: ValueKeyword, values: map[string]string{"normal": "normal", "nowrap": "nowrap", "pre": "pre", "pre-line": "pre-line", "pre-wrap": "pre-wrap", "break-spaces": "break-spaces"}},
	{prefix: "list", props: []string{"list-style-type"}, kind: ValueKeyword, values: map[string]string{"none": "none", "disc": "disc", "decimal": "decimal"}, arbitrary: true},
	{prefix: "decoration", props: []string{"text-decoration-color"}, kind: ValueColor},
	{prefix: "underline-offset", props: []string{"text-underline-offset"}, kind: ValueScale, values: join(suffixed("px", "0", "1", "2", "4", "8"), map[string]string{"auto": "auto"}), arbitrary: true},

	// Backgrounds
	{prefix: "bg", props: []string{"background-color"}, kind: ValueColor},

	// Borders
	{id: "border:width", prefix: "border", props: []string{"border-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{id: "border:style", prefix: "border", props: []string{"border-style"}, kind: ValueKeyword, values: map[string]string{"solid": "solid", "dashed": "dashed", "dotted": "dotted", "double": "double", "hidden": "hidden", "none": "none"}},
	{id: "border:color", prefix: "border", props: []string{"border-color"}, kind: ValueColor},
	{prefix: "border-x", props: []string{"border-left-width", "border-right-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{prefix: "border-y", props: []string{"border-top-width", "border-bottom-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{id: "border-t:width", prefix: "border-t", props: []string{"border-top-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{id: "border-t:color", prefix: "border-t", props: []string{"border-top-color"}, kind: ValueColor},
	{id: "border-r:width", prefix: "border-r", props: []string{"border-right-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{id: "border-r:color", prefix: "border-r", props: []string{"border-right-color"}, kind: ValueColor},
	{id: "border-b:width", prefix: "border-b", props: []string{"border-bottom-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{id: "border-b:color", prefix: "border-b", props: []string{"border-bottom-color"}, kind: ValueColor},
	{id: "border-l:width", prefix: "border-l", props: []string{"border-left-width"}, kind: ValueScale, scale: "border-width", arbitrary: true},
	{id: "border-l:color", prefix: "border-l", props: []string{"border-left-color"}, kind: ValueColor},
	{prefix: "rounded", props: []string{"border-radius"}, kind: ValueScale, scale: "radius", arbitrary: true},
	{prefix: "rounded-t", props: []string{"border-top-left-radius", "border-top-right-radius"}, kind: ValueScale, scale: "radius", arbitrary: true},
	{prefix: "rounded-r", props: []string{"border-top-right-radius", "border-bottom-right-radius"}, kind: ValueScale, scale: "radius", arbitrary: true},
	{prefix: "rounded-b", props: []string{"border-bottom-right-radius", "border-bottom-left-radius"}, kind: ValueScale, scale: "radius", arbitrary: true},
	{prefix: "rounded-l", props: []string{"border-top-left-radius", "border-bottom-left-radius"}, kind: ValueScale, scale: "radius", arbitrary: true},
	{id: "outline:width", prefix: "outline", props: []string{"outline-width"}, kind: ValueScale, values: suffixed("px", "0", "1", "2", "4", "8"), arbitrary: true},
	{id: "outline:color", prefix: "outline", props: []string{"outline-color"}, kind: ValueColor},

	// Effects
	{prefix: "opacity", props: []string{"opacity"}, kind: ValueScale, scale: "opacity", arbitrary: true},
	{prefix: "shadow", props: []string{"box-shadow"}, kind: ValueKeyword, values: map[string]string{
		"sm":       "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		DefaultKey: "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
		"md":       "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		"lg":       "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		"xl":       "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		"2xl":      "0 25px 50px -12px rgb(0 0 0 / 0.25)",
		"inner":    "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
		"none":     "0 0 #0000",
	}, arbitrary: true},

	// Transforms
	{prefix: "translate-x", props: []string{"transform"}, kind: ValueScale, scale: "spacing", values: fractions, format: "translateX(%s)", negative: true, arbitrary: true},
	{prefix: "translate-y", props: []string{"transform"}, kind: ValueScale, scale: "spacing", values: fractions, format: "translateY(%s)", negative: true, arbitrary: true},
	{prefix: "rotate", props: []string{"transform"}, kind: ValueScale, values: suffixed("deg", "0", "1", "2", "3", "6", "12", "45", "90", "180"), format: "rotate(%s)", negative: true, arbitrary: true},
	{prefix: "scale", props: []string{"transform"}, kind: ValueScale, values: map[string]string{
		"0": "0", "50": ".5", "75": ".75", "90": ".9", "95": ".95", "100": "1", "105": "1.05", "110": "1.1", "125": "1.25", "150": "1.5",
	}, format: "scale(%s)", arbitrary: true},

	// Transitions
	{id: "transition:property", prefix: "transition", props: []string{"transition-property"}, kind: ValueKeyword, values: map[string]string{
		"none": "none", "all": "all", "colors": "color, background-color, border-color, text-decoration-color, fill, stroke",
		"opacity": "opacity", "shadow": "box-shadow", "transform": "transform",
	}, arbitrary: true},
	{prefix: "duration", props: []string{"transition-duration"}, kind: ValueScale, values: durations, arbitrary: true},
	{prefix: "delay", props: []string{"transition-delay"}, kind: ValueScale, values: durations, arbitrary: true},
	{prefix: "ease", props: []string{"transition-timing-function"}, kind: ValueKeyword, values: map[string]string{
		"linear": "linear", "in": "cubic-bezier(0.4, 0, 1, 1)", "out": "cubic-bezier(0, 0, 0.2, 1)", "in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
	}, arbitrary: true},

	// Interactivity
	{prefix: "cursor", props: []string{"cursor"}, kind: ValueKeyword, values: map[string]string{
		"auto": "auto", "default": "default", "pointer": "pointer", "wait": "wait", "text": "text", "move": "move",
		"help": "help", "not-allowed": "not-allowed", "none": "none", "grab": "grab", "grabbing": "grabbing",
	}, arbitrary: true},
	{prefix: "select", props: []string{"user-select"}, kind: ValueKeyword, values: map[string]string{"none": "none", "text": "text", "all": "all", "auto": "auto"}},
	{prefix: "pointer-events", props: []string{"pointer-events"}, kind: ValueKeyword, values: map[string]string{"none": "none", "auto": "auto"}},
	{prefix: "accent", props: []string{"accent-color"}, kind: ValueColor},
	{prefix: "caret", props: []string{"caret-color"}, kind: ValueColor},

	// SVG
	{prefix: "fill", props: []string{"fill"}, kind: ValueColor},
	{prefix: "stroke", props: []string{"stroke"}, kind: ValueColor},
}
