package csstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PrettyStylesheet(t *testing.T) {
	content := `.p-4 {
  padding: 1rem;
}

@media (min-width: 768px) {
  .md\:p-8 {
    padding: 2rem;
  }
}

.hover\:md\:p-8:hover {
  @media (min-width: 768px) {
    padding: 2rem;
  }
}
`
	rules, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, ".p-4", rules[0].Selector())
	assert.Empty(t, rules[0].AtRules())
	v, ok := rules[0].Value("padding")
	require.True(t, ok)
	assert.Equal(t, "1rem", v)

	assert.Equal(t, `.md\:p-8`, rules[1].Selector())
	assert.Equal(t, []string{"@media (min-width: 768px)"}, rules[1].AtRules())

	assert.Equal(t, `.hover\:md\:p-8:hover`, rules[2].Selector())
	assert.Equal(t, []string{"@media (min-width: 768px)"}, rules[2].AtRules())
	assert.Equal(t, "@media (min-width: 768px)", rules[2].Prelude)
}

func TestParse_Minified(t *testing.T) {
	rules, err := Parse(`.flex{display:flex}.truncate{overflow:hidden;text-overflow:ellipsis;white-space:nowrap}`)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, []Declaration{{Property: "display", Value: "flex"}}, rules[0].Declarations)
	assert.Len(t, rules[1].Declarations, 3)
}

func TestParse_NestedAmpersand(t *testing.T) {
	rules, err := Parse(`.a { @media print { &:hover { color: red; } } }`)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, ".a:hover", rules[0].Selector())
	assert.Equal(t, []string{"@media print"}, rules[0].AtRules())
}

func TestParse_ValueWithColon(t *testing.T) {
	rules, err := Parse(`.bg { background-image: url(http://example.com/a.png); }`)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	v, _ := rules[0].Value("background-image")
	assert.Equal(t, "url(http://example.com/a.png)", v)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty stylesheet", content: ""},
		{name: "sound", content: ".a{color:red}"},
		{name: "comment only", content: "/* nothing */"},
		{name: "unclosed block", content: ".a{color:red", wantErr: "unclosed block"},
		{name: "stray brace", content: ".a{color:red}}", wantErr: "unexpected '}'"},
		{name: "empty block", content: ".a{}", wantErr: "empty block"},
		{name: "missing prelude", content: "{color:red}", wantErr: "block without prelude"},
		{name: "malformed declaration", content: ".a{color}", wantErr: "malformed declaration"},
		{name: "declaration outside block", content: "color:red;", wantErr: "outside any block"},
		{name: "trailing content", content: ".a{color:red} .b", wantErr: "trailing content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.content)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVerify_CollectsEveryProblem(t *testing.T) {
	err := Verify(".a{} .b{color}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty block")
	assert.Contains(t, err.Error(), "malformed declaration")
}
