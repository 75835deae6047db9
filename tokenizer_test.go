package twcss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer() *Tokenizer {
	theme := DefaultTheme()
	return NewTokenizer(NewRegistry(theme), NewVariantResolver(theme))
}

func TestTokenizerParse(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		name  string
		input string
		want  ClassToken
	}{
		{
			name:  "scale utility",
			input: "p-4",
			want:  ClassToken{Raw: "p-4", Utility: "p", Properties: []string{"padding"}, Kind: ValueScale, Value: "4"},
		},
		{
			name:  "literal",
			input: "flex",
			want:  ClassToken{Raw: "flex", Utility: "flex", Kind: ValueKeyword},
		},
		{
			name:  "variants in authoring order with opacity",
			input: "md:hover:bg-blue-500/50",
			want: ClassToken{
				Raw: "md:hover:bg-blue-500/50",
				Variants: []Variant{
					{Kind: VariantResponsive, Name: "md", Param: "768px"},
					{Kind: VariantState, Name: "hover", Param: ":hover"},
				},
				Utility:    "bg",
				Properties: []string{"background-color"},
				Kind:       ValueColor,
				Value:      "blue-500",
				Opacity:    50,
				HasOpacity: true,
			},
		},
		{
			name:  "negative",
			input: "-m-4",
			want:  ClassToken{Raw: "-m-4", Utility: "m", Properties: []string{"margin"}, Kind: ValueScale, Value: "4", Negative: true},
		},
		{
			name:  "trailing important",
			input: "p-4!",
			want:  ClassToken{Raw: "p-4!", Utility: "p", Properties: []string{"padding"}, Kind: ValueScale, Value: "4", Important: true},
		},
		{
			name:  "leading important",
			input: "!p-4",
			want:  ClassToken{Raw: "!p-4", Utility: "p", Properties: []string{"padding"}, Kind: ValueScale, Value: "4", Important: true},
		},
		{
			name:  "fraction is not opacity",
			input: "w-1/2",
			want:  ClassToken{Raw: "w-1/2", Utility: "w", Properties: []string{"width"}, Kind: ValueScale, Value: "1/2"},
		},
		{
			name:  "arbitrary value",
			input: "w-[13px]",
			want:  ClassToken{Raw: "w-[13px]", Utility: "w", Properties: []string{"width"}, Kind: ValueScale, Value: "[13px]"},
		},
		{
			name:  "colon inside brackets does not split",
			input: "md:[mask-type:luminance]",
			want: ClassToken{
				Raw:      "md:[mask-type:luminance]",
				Variants: []Variant{{Kind: VariantResponsive, Name: "md", Param: "768px"}},
				Utility:  "[arbitrary]",
				Kind:     ValueArbitrary,
				Value:    "[mask-type:luminance]",
			},
		},
		{
			name:  "arbitrary color with opacity",
			input: "bg-[#ff0000]/25",
			want: ClassToken{
				Raw: "bg-[#ff0000]/25", Utility: "bg", Properties: []string{"background-color"},
				Kind: ValueColor, Value: "[#ff0000]", Opacity: 25, HasOpacity: true,
			},
		},
		{
			name:  "state with pseudo-element",
			input: "hover:before:underline",
			want: ClassToken{
				Raw: "hover:before:underline",
				Variants: []Variant{
					{Kind: VariantState, Name: "hover", Param: ":hover"},
					{Kind: VariantPseudoElement, Name: "before", Param: "::before"},
				},
				Utility: "underline",
				Kind:    ValueKeyword,
			},
		},
		{
			name:  "named container variant",
			input: "@lg/sidebar:flex",
			want: ClassToken{
				Raw:      "@lg/sidebar:flex",
				Variants: []Variant{{Kind: VariantContainer, Name: "@lg/sidebar", Param: "32rem", Container: "sidebar"}},
				Utility:  "flex",
				Kind:     ValueKeyword,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tok.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizerParse_Errors(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		name       string
		input      string
		wantKind   ErrorKind
		wantErr    error
		wantDetail string
	}{
		{name: "empty", input: "", wantKind: KindEmptyClassString, wantErr: ErrEmptyClassString},
		{name: "blank", input: "   ", wantKind: KindEmptyClassString, wantErr: ErrEmptyClassString},
		{name: "unclosed bracket", input: "w-[13px", wantKind: KindUnbalancedBracket, wantErr: ErrUnbalancedBracket, wantDetail: "w-[13px"},
		{name: "stray closing bracket", input: "w-13px]", wantKind: KindUnbalancedBracket, wantErr: ErrUnbalancedBracket, wantDetail: "w-13px]"},
		{name: "bracket checked before variants", input: "foo:w-[13px", wantKind: KindUnbalancedBracket, wantErr: ErrUnbalancedBracket, wantDetail: "foo:w-[13px"},
		{name: "unknown variant", input: "foo:p-4", wantKind: KindUnknownVariant, wantErr: ErrUnknownVariant, wantDetail: "foo"},
		{name: "unknown variant before duplicate", input: "md:md:foo:p-4", wantKind: KindUnknownVariant, wantErr: ErrUnknownVariant, wantDetail: "foo"},
		{name: "two breakpoints", input: "md:lg:p-4", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "responsive"},
		{name: "repeated state", input: "hover:hover:p-4", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "state"},
		{name: "two different states", input: "hover:focus:underline", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "state"},
		{name: "two group states", input: "group-hover:group-focus:p-4", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "group"},
		{name: "two media features", input: "print:motion-reduce:hidden", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "media"},
		{name: "two pseudo-elements", input: "before:after:block", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "pseudo-element"},
		{name: "repeated dark", input: "dark:hover:dark:p-4", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "dark"},
		{name: "two containers", input: "@md:@lg:p-4", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "container"},
		{name: "duplicate before unknown utility", input: "md:md:nope", wantKind: KindAmbiguousDuplicateVariant, wantErr: ErrAmbiguousDuplicateVariant, wantDetail: "responsive"},
		{name: "unknown utility", input: "unknown-class", wantKind: KindUnknownUtility, wantErr: ErrUnknownUtility, wantDetail: "unknown-class"},
		{name: "unknown utility keeps base only", input: "md:nope", wantKind: KindUnknownUtility, wantErr: ErrUnknownUtility, wantDetail: "nope"},
		{name: "negative not supported", input: "-p-4", wantKind: KindUnknownUtility, wantErr: ErrUnknownUtility, wantDetail: "-p-4"},
		{name: "bare important", input: "!", wantKind: KindUnknownUtility, wantErr: ErrUnknownUtility, wantDetail: "!"},
		{name: "opacity out of range", input: "bg-blue-500/150", wantKind: KindInvalidOpacityModifier, wantErr: ErrInvalidOpacityModifier, wantDetail: "bg-blue-500/150"},
		{name: "opacity on spacing", input: "p-4/50", wantKind: KindInvalidOpacityModifier, wantErr: ErrInvalidOpacityModifier, wantDetail: "p-4/50"},
		{name: "opacity on literal", input: "flex/50", wantKind: KindInvalidOpacityModifier, wantErr: ErrInvalidOpacityModifier, wantDetail: "flex/50"},
		{name: "non-numeric opacity", input: "bg-blue-500/abc", wantKind: KindUnknownUtility, wantErr: ErrUnknownUtility, wantDetail: "bg-blue-500/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tok.Parse(tt.input)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			ce, ok := AsClassError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, ce.Kind)
			assert.Equal(t, tt.input, ce.Class)
			assert.Equal(t, tt.wantDetail, ce.Detail)
		})
	}
}

func TestSplitClass(t *testing.T) {
	tests := []struct {
		input  string
		want   []string
		wantOK bool
	}{
		{"p-4", []string{"p-4"}, true},
		{"md:hover:p-4", []string{"md", "hover", "p-4"}, true},
		{"[mask-type:luminance]", []string{"[mask-type:luminance]"}, true},
		{`content-['a\:b']`, []string{`content-['a\:b']`}, true},
		{"w-[[a]]", []string{"w-[[a]]"}, true},
		{"w-[a", nil, false},
		{"w-a]", nil, false},
		{`content-['[']`, nil, false},
		{`content-['\[']`, []string{`content-['\[']`}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := splitClass(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitOpacity(t *testing.T) {
	tests := []struct {
		input     string
		wantHead  string
		wantPct   int
		wantState opacityState
	}{
		{"bg-blue-500/50", "bg-blue-500", 50, opacityValid},
		{"bg-blue-500/0", "bg-blue-500", 0, opacityValid},
		{"bg-blue-500/100", "bg-blue-500", 100, opacityValid},
		{"bg-blue-500/101", "bg-blue-500/101", 0, opacityOutOfRange},
		{"bg-blue-500", "bg-blue-500", 0, opacityNone},
		{"bg-blue-500/", "bg-blue-500/", 0, opacityNone},
		{"bg-[url(/a/b)]", "bg-[url(/a/b)]", 0, opacityNone},
		{"bg-[url(/a/b)]/30", "bg-[url(/a/b)]", 30, opacityValid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			head, pct, state := splitOpacity(tt.input)
			assert.Equal(t, tt.wantHead, head)
			assert.Equal(t, tt.wantPct, pct)
			assert.Equal(t, tt.wantState, state)
		})
	}
}
