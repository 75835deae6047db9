// Package csstext lexes CSS fragments and stylesheets with tdewolff/parse.
package csstext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrEmptyValue is returned for a value with no tokens.
var ErrEmptyValue = errors.New("empty value")

// ValidateValue checks that v can stand as the value of one declaration
// without ending it, opening or closing a block, or smuggling in a priority.
func ValidateValue(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrEmptyValue
	}

	lexer := css.NewLexer(parse.NewInputString(v))
	depth := 0

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("lex value: %w", err)
			}
			if depth != 0 {
				return fmt.Errorf("unclosed parenthesis or bracket")
			}
			return nil
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
			return fmt.Errorf("unexpected %q", text)
		case css.BadStringToken, css.BadURLToken:
			return fmt.Errorf("unterminated %s", tokenName(tt))
		case css.CDOToken, css.CDCToken, css.AtKeywordToken:
			return fmt.Errorf("unexpected %q", text)
		case css.DelimToken:
			if len(text) == 1 && text[0] == '!' {
				return fmt.Errorf("unexpected %q", text)
			}
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("unexpected %q", text)
			}
		}
	}
}

// ValidateProperty checks an arbitrary property name ("mask-type", "--gutter").
func ValidateProperty(name string) error {
	if name == "" {
		return errors.New("empty property")
	}
	body := strings.TrimPrefix(name, "--")
	if body == name {
		body = strings.TrimPrefix(name, "-")
	}
	if body == "" {
		return fmt.Errorf("invalid property %q", name)
	}
	for i, r := range body {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '-' || r == '_' || (r >= '0' && r <= '9'):
			if i == 0 && !strings.HasPrefix(name, "--") {
				return fmt.Errorf("invalid property %q", name)
			}
		default:
			return fmt.Errorf("invalid property %q", name)
		}
	}
	return nil
}

func tokenName(tt css.TokenType) string {
	switch tt {
	case css.BadStringToken:
		return "string"
	case css.BadURLToken:
		return "url"
	default:
		return tt.String()
	}
}
