package twcss

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// ClassReference is one class name found in a source file.
type ClassReference struct {
	Class    string       `json:"class"`
	Location FileLocation `json:"location"`
}

// FileLocation tracks where a class reference was found.
type FileLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"` // 1-based, start of the class name
	Text   string `json:"text"`   // trimmed source line
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesScanned    int `json:"files_scanned"`
	FilesSkipped    int `json:"files_skipped"`
}

// scanPattern finds class strings in a line. A literal pattern captures the
// class string itself; a call pattern captures an argument list whose
// string literals hold the classes.
type scanPattern struct {
	name      string
	regex     *regexp.Regexp
	call      bool
	firstOnly bool
}

var (
	patterns = []scanPattern{
		{name: "class attribute", regex: regexp.MustCompile(`\bclass="([^"]*)"`)},
		{name: "class attribute with braces", regex: regexp.MustCompile(`\bclass=\{\s*"([^"]*)"`)},
		{name: "className attribute", regex: regexp.MustCompile(`\bclassName="([^"]*)"`)},
		{name: "Class call", regex: regexp.MustCompile(`\.Class\(\s*"([^"]*)"`)},
		{name: "Classes call", regex: regexp.MustCompile(`\.Classes\(([^)]*)\)`), call: true},
		{name: "templ.KV call", regex: regexp.MustCompile(`templ\.KV\(([^)]*)\)`), call: true, firstOnly: true},
	}

	stringLiteral  = regexp.MustCompile(`"([^"]*)"`)
	commentPattern = regexp.MustCompile(`^\s*//`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated reports whether path is a templ-generated Go file.
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads ./.gitignore once. A missing file disables the check.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile skips generated templ files and, for relative paths,
// gitignored files.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ExpandGlobs expands doublestar patterns into the files to scan.
func ExpandGlobs(globs []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// ScanFiles extracts class references from every file matching globs.
// Unreadable files are logged and skipped.
func ScanFiles(globs []string, log *zap.Logger) ([]ClassReference, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	files, stats, err := ExpandGlobs(globs)
	if err != nil {
		return nil, stats, err
	}
	log.Debug("expanded scan patterns",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped),
	)

	var refs []ClassReference
	for _, file := range files {
		fileRefs, err := scanFile(file)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("file", file), zap.Error(err))
			continue
		}
		refs = append(refs, fileRefs...)
	}

	return refs, stats, nil
}

// UniqueClasses returns the distinct class names of refs in first-seen order.
func UniqueClasses(refs []ClassReference) []string {
	seen := make(map[string]bool, len(refs))
	var out []string
	for _, r := range refs {
		if !seen[r.Class] {
			seen[r.Class] = true
			out = append(out, r.Class)
		}
	}
	return out
}

func scanFile(path string) ([]ClassReference, error) {
	// #nosec G304 - path comes from the user's scan patterns
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, path)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return refs, nil
}

// extractClassesFromLine finds every class name in line.
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference
	text := strings.TrimSpace(line)

	emit := func(value string, offset int) {
		for _, f := range fieldsWithOffsets(value) {
			refs = append(refs, ClassReference{
				Class: f.text,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: offset + f.offset + 1,
					Text:   text,
				},
			})
		}
	}

	for _, p := range patterns {
		for _, m := range p.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			if !p.call {
				emit(line[m[2]:m[3]], m[2])
				continue
			}
			args := line[m[2]:m[3]]
			for i, lit := range stringLiteral.FindAllStringSubmatchIndex(args, -1) {
				if p.firstOnly && (i > 0 || strings.TrimSpace(args[:lit[0]]) != "") {
					break
				}
				emit(args[lit[2]:lit[3]], m[2]+lit[2])
			}
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Location.Column < refs[j].Location.Column
	})
	return refs
}

type field struct {
	text   string
	offset int
}

// fieldsWithOffsets splits s on whitespace, keeping each field's byte offset.
func fieldsWithOffsets(s string) []field {
	var out []field
	start := -1
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
			if start >= 0 {
				out = append(out, field{text: s[start:i], offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return out
}

// GetRelativePath returns path relative to the working directory when possible.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
