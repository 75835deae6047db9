package twcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassList(t *testing.T) {
	cl := NewClassList("p-4 md:p-8", "  ").
		Class("p-4").
		Class(" hover:bg-blue-600 ").
		Classes("flex  items-center").
		If(false, "hidden").
		If(true, "rounded p-4")

	assert.Equal(t, []string{"p-4", "md:p-8", "hover:bg-blue-600", "flex", "items-center", "rounded"}, cl.Names())
	assert.Equal(t, 6, cl.Len())
	assert.Equal(t, "p-4 md:p-8 hover:bg-blue-600 flex items-center rounded", cl.String())

	names := cl.Names()
	names[0] = "mutated"
	assert.Equal(t, "p-4", cl.Names()[0])
}

func TestClassList_ZeroValue(t *testing.T) {
	var cl ClassList
	cl.Class("flex").Class("flex")
	assert.Equal(t, 1, cl.Len())
	assert.Equal(t, "", (&ClassList{}).String())
}

func TestClassList_FeedsGenerate(t *testing.T) {
	e := newTestEngine(t, WithOutputMode(OutputMinified))
	cl := NewClassList().Class("p-4").Classes("md:p-8 p-4")

	sheet, errs := e.Generate(cl.Names())
	require.Empty(t, errs)
	assert.Equal(t, `.p-4{padding:1rem}@media (min-width:768px){.md\:p-8{padding:2rem}}`, sheet.String())
}
