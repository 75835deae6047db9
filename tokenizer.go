package twcss

import (
	"strconv"
	"strings"
)

// ClassToken is the parsed form of one class string. It copies what it needs
// from the registry entry and keeps no reference to it.
type ClassToken struct {
	// Raw is the class string as submitted.
	Raw string `json:"raw"`

	// Variants in authoring order, left to right.
	Variants []Variant `json:"variants,omitempty"`

	// Utility is the ID of the matched registry entry.
	Utility string `json:"utility"`

	// Properties receive the value, in order. Empty for literals.
	Properties []string `json:"properties,omitempty"`

	Kind ValueKind `json:"kind"`

	// Value is the named step, keyword or color ("4", "blue-500"), or the
	// bracketed arbitrary literal ("[13px]"). Empty for literals and DEFAULT.
	Value string `json:"value,omitempty"`

	// Opacity is the /NN modifier, valid when HasOpacity is set.
	Opacity    int  `json:"opacity,omitempty"`
	HasOpacity bool `json:"hasOpacity,omitempty"`

	Important bool `json:"important,omitempty"`
	Negative  bool `json:"negative,omitempty"`
}

// IsArbitrary reports whether the value is a bracketed literal.
func (t ClassToken) IsArbitrary() bool {
	return isBracketed(t.Value)
}

func (t ClassToken) clone() ClassToken {
	out := t
	if t.Variants != nil {
		out.Variants = append([]Variant(nil), t.Variants...)
	}
	if t.Properties != nil {
		out.Properties = append([]string(nil), t.Properties...)
	}
	return out
}

// Tokenizer turns class strings into tokens. It synthesizes no CSS; the
// resolver is consulted only to identify the base utility.
type Tokenizer struct {
	resolver Resolver
	variants *VariantResolver
}

// NewTokenizer returns a tokenizer over resolver and variants.
func NewTokenizer(resolver Resolver, variants *VariantResolver) *Tokenizer {
	return &Tokenizer{resolver: resolver, variants: variants}
}

// Parse parses one class string. The result depends only on raw and the
// resolver's table, so equal inputs give equal tokens.
func (t *Tokenizer) Parse(raw string) (ClassToken, error) {
	if strings.TrimSpace(raw) == "" {
		return ClassToken{}, newClassError(KindEmptyClassString, raw, "")
	}

	parts, ok := splitClass(raw)
	if !ok {
		return ClassToken{}, newClassError(KindUnbalancedBracket, raw, raw)
	}

	tok := ClassToken{Raw: raw}

	if n := len(parts) - 1; n > 0 {
		tok.Variants = make([]Variant, 0, n)
		for _, name := range parts[:n] {
			v, ok := t.variants.Parse(name)
			if !ok {
				return ClassToken{}, newClassError(KindUnknownVariant, raw, name)
			}
			tok.Variants = append(tok.Variants, v)
		}
		if kind, ok := t.variants.Check(tok.Variants); !ok {
			return ClassToken{}, newClassError(KindAmbiguousDuplicateVariant, raw, kind.String())
		}
	}

	if err := t.parseBase(&tok, parts[len(parts)-1]); err != nil {
		return ClassToken{}, err
	}
	return tok, nil
}

func (t *Tokenizer) parseBase(tok *ClassToken, base string) error {
	name := base
	if s, ok := strings.CutSuffix(name, "!"); ok {
		name, tok.Important = s, true
	} else if s, ok := strings.CutPrefix(name, "!"); ok {
		name, tok.Important = s, true
	}
	if s, ok := strings.CutPrefix(name, "-"); ok {
		name, tok.Negative = s, true
	}
	if name == "" {
		return newClassError(KindUnknownUtility, tok.Raw, base)
	}

	// The whole name first, so fractions ("w-1/2") are not read as opacity.
	m, found := t.resolver.Resolve(name)
	if !found {
		head, pct, state := splitOpacity(name)
		switch state {
		case opacityOutOfRange:
			return newClassError(KindInvalidOpacityModifier, tok.Raw, base)
		case opacityNone:
			return newClassError(KindUnknownUtility, tok.Raw, base)
		}
		if m, found = t.resolver.Resolve(head); !found {
			return newClassError(KindUnknownUtility, tok.Raw, base)
		}
		if !m.Definition.Space.OpacityCapable {
			return newClassError(KindInvalidOpacityModifier, tok.Raw, base)
		}
		tok.Opacity, tok.HasOpacity = pct, true
	}

	def := m.Definition
	if tok.Negative && !def.Negative {
		return newClassError(KindUnknownUtility, tok.Raw, base)
	}

	tok.Utility = def.ID
	tok.Kind = def.Space.Kind
	tok.Value = m.Value
	if len(def.Properties) > 0 {
		tok.Properties = append([]string(nil), def.Properties...)
	}
	return nil
}

// splitClass splits raw on ':' outside brackets. Backslash escapes the next
// byte. The second result is false when brackets do not balance.
func splitClass(raw string) ([]string, bool) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, false
			}
		case ':':
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, false
	}
	return append(parts, raw[start:]), true
}

type opacityState int

const (
	opacityNone opacityState = iota
	opacityValid
	opacityOutOfRange
)

// splitOpacity splits a trailing "/NN" outside brackets.
func splitOpacity(name string) (head string, pct int, state opacityState) {
	depth, slash := 0, -1
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
		case '/':
			if depth == 0 {
				slash = i
			}
		}
	}
	if slash <= 0 {
		return name, 0, opacityNone
	}

	suffix := name[slash+1:]
	if suffix == "" || strings.TrimLeft(suffix, "0123456789") != "" {
		return name, 0, opacityNone
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n > 100 {
		return name, 0, opacityOutOfRange
	}
	return name[:slash], n, opacityValid
}
