package twcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassesFromLine(t *testing.T) {
	type found struct {
		class  string
		column int
	}

	tests := []struct {
		name string
		line string
		want []found
	}{
		{
			name: "class attribute",
			line: `<div class="p-4 md:p-8">`,
			want: []found{{"p-4", 13}, {"md:p-8", 17}},
		},
		{
			name: "class attribute with braces",
			line: `<div class={ "flex hover:bg-blue-600" }>`,
			want: []found{{"flex", 15}, {"hover:bg-blue-600", 20}},
		},
		{
			name: "className attribute",
			line: `<div className="w-[13px]">`,
			want: []found{{"w-[13px]", 17}},
		},
		{
			name: "ClassList Class call",
			line: `cl.Class("bg-blue-500/50")`,
			want: []found{{"bg-blue-500/50", 11}},
		},
		{
			name: "templ.Classes with several literals",
			line: `templ.Classes("p-4", ui.Foo, "m-2")`,
			want: []found{{"p-4", 16}, {"m-2", 31}},
		},
		{
			name: "templ.KV takes the first argument only",
			line: `templ.KV("hidden", "unused")`,
			want: []found{{"hidden", 11}},
		},
		{
			name: "comment line",
			line: `  // <div class="p-4">`,
			want: nil,
		},
		{
			name: "extra whitespace between classes",
			line: `<p class="  italic   underline ">`,
			want: []found{{"italic", 13}, {"underline", 22}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 7, "page.templ")

			var got []found
			for _, r := range refs {
				got = append(got, found{r.Class, r.Location.Column})
				assert.Equal(t, 7, r.Location.Line)
				assert.Equal(t, "page.templ", r.Location.File)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsTemplGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "standard templ generated (_templ.go)",
			path:     "internal/web/features/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "alternate templ generated (.templ.go)",
			path:     "internal/web/features/sidebar.templ.go",
			expected: true,
		},
		{
			name:     "regular go file",
			path:     "internal/api/handlers.go",
			expected: false,
		},
		{
			name:     "templ source file",
			path:     "internal/web/features/sidebar.templ",
			expected: false,
		},
		{
			name:     "file with templ in name but not generated",
			path:     "internal/templates/handler.go",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isTemplGenerated(tt.path)
			require.Equal(t, tt.expected, got, "isTemplGenerated(%q)", tt.path)
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	write("views/page.templ", "<div class=\"p-4 md:p-8\">\n<span class=\"p-4\"></span>\n")
	write("views/page_templ.go", `templ.Classes("should-not-appear")`)
	write("views/nested/card.go", `cl.Class("rounded-lg")`)

	refs, stats, err := ScanFiles([]string{filepath.Join(dir, "views/**/*")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Equal(t, 2, stats.FilesScanned)

	classes := UniqueClasses(refs)
	assert.ElementsMatch(t, []string{"p-4", "md:p-8", "rounded-lg"}, classes)
	assert.Len(t, refs, 4)
}

func TestExpandGlobsInvalidPattern(t *testing.T) {
	_, _, err := ExpandGlobs([]string{"[unclosed"})
	require.Error(t, err)
}
