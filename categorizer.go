package twcss

import (
	"sort"
	"strings"
)

// PropertyCategory groups related CSS properties for reports.
type PropertyCategory string

// Property categories.
const (
	PropertyLayout     PropertyCategory = "Layout"
	PropertyVisual     PropertyCategory = "Visual"
	PropertyTypography PropertyCategory = "Typography"
	PropertyEffects    PropertyCategory = "Effects"
	PropertyVendor     PropertyCategory = "Vendor"
	PropertyCustom     PropertyCategory = "Custom"
)

// categoryOrder is the report order of categories.
var categoryOrder = []PropertyCategory{
	PropertyLayout, PropertyVisual, PropertyTypography, PropertyEffects, PropertyVendor, PropertyCustom,
}

// CategorizedProperty is one declaration with its category.
type CategorizedProperty struct {
	Name     string           `json:"name"`
	Value    string           `json:"value"`
	Category PropertyCategory `json:"category"`
}

var exactCategories = map[string]PropertyCategory{
	"color":            PropertyVisual,
	"opacity":          PropertyVisual,
	"box-shadow":       PropertyVisual,
	"fill":             PropertyVisual,
	"stroke":           PropertyVisual,
	"accent-color":     PropertyVisual,
	"caret-color":      PropertyVisual,
	"visibility":       PropertyVisual,
	"content":          PropertyTypography,
	"white-space":      PropertyTypography,
	"line-height":      PropertyTypography,
	"letter-spacing":   PropertyTypography,
	"list-style-type":  PropertyTypography,
	"transform":        PropertyEffects,
	"cursor":           PropertyEffects,
	"user-select":      PropertyEffects,
	"pointer-events":   PropertyEffects,
	"clip":             PropertyLayout,
	"container-type":   PropertyLayout,
	"border-collapse":  PropertyLayout,
	"outline-offset":   PropertyVisual,
	"mask-type":        PropertyEffects,
	"mix-blend-mode":   PropertyEffects,
	"backdrop-filter":  PropertyEffects,
	"filter":           PropertyEffects,
	"aspect-ratio":     PropertyLayout,
	"object-fit":       PropertyLayout,
	"z-index":          PropertyLayout,
	"order":            PropertyLayout,
	"display":          PropertyLayout,
	"position":         PropertyLayout,
	"top":              PropertyLayout,
	"right":            PropertyLayout,
	"bottom":           PropertyLayout,
	"left":             PropertyLayout,
	"inset":            PropertyLayout,
	"width":            PropertyLayout,
	"height":           PropertyLayout,
	"gap":              PropertyLayout,
	"row-gap":          PropertyLayout,
	"column-gap":       PropertyLayout,
	"background-color": PropertyVisual,
}

// prefixCategories is checked in order after exactCategories.
var prefixCategories = []struct {
	prefix   string
	category PropertyCategory
}{
	{"--", PropertyCustom},
	{"-webkit-", PropertyVendor},
	{"-moz-", PropertyVendor},
	{"-ms-", PropertyVendor},
	{"background", PropertyVisual},
	{"border-", PropertyVisual},
	{"outline", PropertyVisual},
	{"text-decoration", PropertyTypography},
	{"text-", PropertyTypography},
	{"font-", PropertyTypography},
	{"transition", PropertyEffects},
	{"animation", PropertyEffects},
	{"flex", PropertyLayout},
	{"grid", PropertyLayout},
	{"align-", PropertyLayout},
	{"justify-", PropertyLayout},
	{"padding", PropertyLayout},
	{"margin", PropertyLayout},
	{"min-", PropertyLayout},
	{"max-", PropertyLayout},
	{"overflow", PropertyLayout},
}

// CategorizeProperty returns the category of a property. Unknown properties
// count as Layout.
func CategorizeProperty(name string) PropertyCategory {
	if cat, ok := exactCategories[name]; ok {
		return cat
	}
	for _, p := range prefixCategories {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return PropertyLayout
}

// CategorizeDeclarations tags each declaration, sorted by category then name.
func CategorizeDeclarations(decls []Declaration) []CategorizedProperty {
	out := make([]CategorizedProperty, 0, len(decls))
	for _, d := range decls {
		out = append(out, CategorizedProperty{Name: d.Property, Value: d.Value, Category: CategorizeProperty(d.Property)})
	}
	rank := make(map[PropertyCategory]int, len(categoryOrder))
	for i, c := range categoryOrder {
		rank[c] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return rank[out[i].Category] < rank[out[j].Category]
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CategoryCount is the number of declarations in one category.
type CategoryCount struct {
	Category PropertyCategory `json:"category"`
	Count    int              `json:"count"`
}

// CountCategories tallies the stylesheet's declarations by category, in
// report order, omitting empty categories.
func (s *Stylesheet) CountCategories() []CategoryCount {
	counts := make(map[PropertyCategory]int)
	for _, g := range s.Groups {
		for _, r := range g.Rules {
			for _, d := range r.Declarations {
				counts[CategorizeProperty(d.Property)]++
			}
		}
	}
	var out []CategoryCount
	for _, c := range categoryOrder {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}
