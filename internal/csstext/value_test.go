package csstext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "length", value: "13px"},
		{name: "calc with spaces", value: "calc(100% - 1rem)"},
		{name: "nested functions", value: "min(calc(100% - 2rem), 40rem)"},
		{name: "hex color", value: "#ff0000"},
		{name: "quoted string", value: `"hello world"`},
		{name: "url", value: "url(/img/hero.png)"},
		{name: "custom property reference", value: "var(--gutter)"},
		{name: "grid template", value: "repeat(3, minmax(0, 1fr))"},
		{name: "empty", value: "", wantErr: true},
		{name: "blank", value: "   ", wantErr: true},
		{name: "semicolon ends declaration", value: "13px;color:red", wantErr: true},
		{name: "opening brace", value: "red{", wantErr: true},
		{name: "closing brace", value: "red}", wantErr: true},
		{name: "important smuggled in", value: "red !important", wantErr: true},
		{name: "at-rule", value: "@import", wantErr: true},
		{name: "unclosed function", value: "calc(100% - 1rem", wantErr: true},
		{name: "stray closing paren", value: "1rem)", wantErr: true},
		{name: "unclosed bracket", value: "[a", wantErr: true},
		{name: "unterminated string", value: "\"abc\n", wantErr: true},
		{name: "html comment opener", value: "<!--", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.value)
			if tt.wantErr {
				require.Error(t, err, "ValidateValue(%q)", tt.value)
				return
			}
			require.NoError(t, err, "ValidateValue(%q)", tt.value)
		})
	}
}

func TestValidateValue_Empty(t *testing.T) {
	require.ErrorIs(t, ValidateValue(""), ErrEmptyValue)
}

func TestValidateProperty(t *testing.T) {
	tests := []struct {
		name    string
		prop    string
		wantErr bool
	}{
		{name: "plain", prop: "mask-type"},
		{name: "vendor prefixed", prop: "-webkit-line-clamp"},
		{name: "custom property", prop: "--gutter"},
		{name: "custom property with digit", prop: "--1col"},
		{name: "empty", prop: "", wantErr: true},
		{name: "only dashes", prop: "--", wantErr: true},
		{name: "leading digit", prop: "1col", wantErr: true},
		{name: "space", prop: "mask type", wantErr: true},
		{name: "colon", prop: "a:b", wantErr: true},
		{name: "brace", prop: "a{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProperty(tt.prop)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
