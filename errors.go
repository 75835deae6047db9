package twcss

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes why a class string produced no rule.
type ErrorKind string

const (
	// KindEmptyClassString indicates a blank class string.
	KindEmptyClassString ErrorKind = "EMPTY_CLASS_STRING"

	// KindUnbalancedBracket indicates a '[' without its ']' (or the reverse).
	KindUnbalancedBracket ErrorKind = "UNBALANCED_BRACKET"

	// KindUnknownUtility indicates no registry entry matches the base utility.
	KindUnknownUtility ErrorKind = "UNKNOWN_UTILITY"

	// KindUnknownVariant indicates a variant token that names no known variant.
	KindUnknownVariant ErrorKind = "UNKNOWN_VARIANT"

	// KindAmbiguousDuplicateVariant indicates two variants of the same kind in one chain.
	KindAmbiguousDuplicateVariant ErrorKind = "AMBIGUOUS_DUPLICATE_VARIANT"

	// KindInvalidOpacityModifier indicates a /NN suffix the utility cannot honor.
	KindInvalidOpacityModifier ErrorKind = "INVALID_OPACITY_MODIFIER"

	// KindMalformedArbitraryValue indicates a bracketed value that could break CSS syntax.
	KindMalformedArbitraryValue ErrorKind = "MALFORMED_ARBITRARY_VALUE"
)

// Sentinel errors, one per kind. A *ClassError unwraps to the sentinel of its kind.
var (
	ErrEmptyClassString          = errors.New("empty class string")
	ErrUnbalancedBracket         = errors.New("unbalanced bracket")
	ErrUnknownUtility            = errors.New("unknown utility")
	ErrUnknownVariant            = errors.New("unknown variant")
	ErrAmbiguousDuplicateVariant = errors.New("ambiguous duplicate variant")
	ErrInvalidOpacityModifier    = errors.New("invalid opacity modifier")
	ErrMalformedArbitraryValue   = errors.New("malformed arbitrary value")
)

var sentinels = map[ErrorKind]error{
	KindEmptyClassString:          ErrEmptyClassString,
	KindUnbalancedBracket:         ErrUnbalancedBracket,
	KindUnknownUtility:            ErrUnknownUtility,
	KindUnknownVariant:            ErrUnknownVariant,
	KindAmbiguousDuplicateVariant: ErrAmbiguousDuplicateVariant,
	KindInvalidOpacityModifier:    ErrInvalidOpacityModifier,
	KindMalformedArbitraryValue:   ErrMalformedArbitraryValue,
}

// ClassError reports a failure to turn one class string into a rule.
//
// Class errors are per-string and never fatal to a batch. Detail carries the
// offending fragment: the utility or variant name, the raw arbitrary value, or
// the duplicated variant kind.
type ClassError struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// Class is the raw class string as submitted.
	Class string

	// Detail is the fragment of Class that caused the failure.
	Detail string
}

func newClassError(kind ErrorKind, class, detail string) *ClassError {
	return &ClassError{Kind: kind, Class: class, Detail: detail}
}

// Error implements the error interface.
func (e *ClassError) Error() string {
	sentinel := e.Unwrap()
	switch e.Kind {
	case KindEmptyClassString:
		return sentinel.Error()
	case KindAmbiguousDuplicateVariant:
		return fmt.Sprintf("%q: %s: %s", e.Class, sentinel, e.Detail)
	default:
		return fmt.Sprintf("%q: %s %q", e.Class, sentinel, e.Detail)
	}
}

// Unwrap returns the sentinel error for the kind, so errors.Is matches it.
func (e *ClassError) Unwrap() error {
	if s, ok := sentinels[e.Kind]; ok {
		return s
	}
	return errors.New(string(e.Kind))
}

// AsClassError extracts a *ClassError from err, following wrapped errors.
func AsClassError(err error) (*ClassError, bool) {
	var ce *ClassError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
