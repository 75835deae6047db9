package twcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(DefaultTheme(), opts...)
	require.NoError(t, err)
	return e
}

func decls(pairs ...string) []Declaration {
	out := make([]Declaration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestBuildRule(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name  string
		input string
		want  []Declaration
	}{
		{name: "scale", input: "p-4", want: decls("padding", "1rem")},
		{name: "several properties", input: "px-4", want: decls("padding-left", "1rem", "padding-right", "1rem")},
		{name: "half step", input: "p-0.5", want: decls("padding", "0.125rem")},
		{name: "literal", input: "truncate", want: decls("overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap")},
		{name: "default step", input: "border", want: decls("border-width", "1px")},
		{name: "keyword", input: "items-center", want: decls("align-items", "center")},
		{name: "named color", input: "text-white", want: decls("color", "#ffffff")},
		{name: "color with opacity", input: "bg-blue-500/50", want: decls("background-color", "rgb(59 130 246 / 50%)")},
		{name: "default color with opacity", input: "bg-white/10", want: decls("background-color", "rgb(255 255 255 / 10%)")},
		{name: "negative", input: "-m-4", want: decls("margin", "-1rem")},
		{name: "negative zero", input: "-m-0", want: decls("margin", "0px")},
		{name: "negative fraction in format", input: "-translate-x-1/2", want: decls("transform", "translateX(-50%)")},
		{name: "negative arbitrary length", input: "-mt-[10px]", want: decls("margin-top", "-10px")},
		{name: "negative arbitrary expression", input: "-mt-[var(--x)]", want: decls("margin-top", "calc(var(--x) * -1)")},
		{name: "negative letter spacing flips sign", input: "-tracking-tight", want: decls("letter-spacing", "0.025em")},
		{name: "important", input: "p-4!", want: decls("padding", "1rem !important")},
		{name: "important literal", input: "!hidden", want: decls("display", "none !important")},
		{name: "arbitrary value", input: "w-[13px]", want: decls("width", "13px")},
		{name: "arbitrary underscores", input: "w-[calc(100%_-_1rem)]", want: decls("width", "calc(100% - 1rem)")},
		{name: "escaped underscore", input: `content-['a\_b']`, want: decls("content", "'a_b'")},
		{name: "arbitrary color with opacity", input: "bg-[#ff0000]/25", want: decls("background-color", "rgb(255 0 0 / 25%)")},
		{name: "type hint", input: "text-[color:var(--brand)]", want: decls("color", "var(--brand)")},
		{name: "arbitrary property", input: "[mask-type:luminance]", want: decls("mask-type", "luminance")},
		{name: "arbitrary custom property", input: "[--gutter:2rem]", want: decls("--gutter", "2rem")},
		{name: "format", input: "rotate-45", want: decls("transform", "rotate(45deg)")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := e.Build(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, rule.Class)
			assert.Equal(t, tt.want, rule.Declarations)
		})
	}
}

func TestBuildRule_Errors(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name       string
		input      string
		wantKind   ErrorKind
		wantDetail string
	}{
		{name: "semicolon in value", input: "w-[13px;color:red]", wantKind: KindMalformedArbitraryValue, wantDetail: "[13px;color:red]"},
		{name: "brace in value", input: "w-[13px}]", wantKind: KindMalformedArbitraryValue, wantDetail: "[13px}]"},
		{name: "important in value", input: "w-[red!important]", wantKind: KindMalformedArbitraryValue, wantDetail: "[red!important]"},
		{name: "unclosed function", input: "w-[calc(1px]", wantKind: KindMalformedArbitraryValue, wantDetail: "[calc(1px]"},
		{name: "property without value", input: "[mask-type]", wantKind: KindMalformedArbitraryValue, wantDetail: "[mask-type]"},
		{name: "bad property name", input: "[1x:red]", wantKind: KindMalformedArbitraryValue, wantDetail: "[1x:red]"},
		{name: "opacity on keyword color", input: "bg-current/50", wantKind: KindInvalidOpacityModifier, wantDetail: "currentColor"},
		{name: "negative keyword", input: "-m-auto", wantKind: KindUnknownUtility, wantDetail: "-m-auto"},
		{name: "two state variants", input: "hover:focus:underline", wantKind: KindAmbiguousDuplicateVariant, wantDetail: "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Build(tt.input)
			require.Error(t, err)
			ce, ok := AsClassError(err)
			require.True(t, ok, "got %T", err)
			assert.Equal(t, tt.wantKind, ce.Kind)
			assert.Equal(t, tt.wantDetail, ce.Detail)
		})
	}
}

func TestRuleSet(t *testing.T) {
	var r Rule
	r.Set("padding", "1rem")
	r.Set("margin", "0")
	r.Set("padding", "2rem")

	assert.Equal(t, decls("padding", "2rem", "margin", "0"), r.Declarations)

	v, ok := r.Get("padding")
	require.True(t, ok)
	assert.Equal(t, "2rem", v)

	_, ok = r.Get("color")
	assert.False(t, ok)
}

func TestRuleFullSelector(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input string
		want  string
	}{
		{"p-4", `.p-4`},
		{"hover:bg-blue-600", `.hover\:bg-blue-600:hover`},
		{"md:hover:p-4", `.md\:hover\:p-4:hover`},
		{"hover:md:p-4", `.hover\:md\:p-4:hover`},
		{"group-hover:underline", `.group:hover .group-hover\:underline`},
		{"peer-checked:block", `.peer:checked ~ .peer-checked\:block`},
		{"before:block", `.before\:block::before`},
		{"hover:before:block", `.hover\:before\:block:hover::before`},
		{"odd:bg-gray-50", `.odd\:bg-gray-50:nth-child(odd)`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rule, err := e.Build(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.FullSelector())
		})
	}
}

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"p-4", `p-4`},
		{"md:p-8", `md\:p-8`},
		{"w-1/2", `w-1\/2`},
		{"p-0.5", `p-0\.5`},
		{"2xl:p-4", `\32 xl\:p-4`},
		{"-m-4", `-m-4`},
		{"w-[13px]", `w-\[13px\]`},
		{"bg-blue-500/50", `bg-blue-500\/50`},
		{"p-4!", `p-4\!`},
		{"@md:flex", `\@md\:flex`},
		{"w-[calc(100%_-_1rem)]", `w-\[calc\(100\%_-_1rem\)\]`},
		{"content-['x']", `content-\[\'x\'\]`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeClass(tt.input))
		})
	}
}

func TestDecodeArbitrary(t *testing.T) {
	assert.Equal(t, "13px", decodeArbitrary("13px"))
	assert.Equal(t, "1px solid red", decodeArbitrary("1px_solid_red"))
	assert.Equal(t, "a_b c", decodeArbitrary(`a\_b_c`))
}
