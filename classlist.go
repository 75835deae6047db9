package twcss

import "strings"

// ClassList accumulates class names for one element, in first-added order
// with duplicates dropped. It does no resolution of its own; pass Names to
// Engine.Generate or String to a class attribute.
//
//	cl := twcss.NewClassList().Class("p-4").Classes("md:p-8 hover:bg-blue-600")
//	sheet, errs := engine.Generate(cl.Names())
type ClassList struct {
	names []string
	seen  map[string]bool
}

// NewClassList returns a list holding names, each of which may contain
// several space separated classes.
func NewClassList(names ...string) *ClassList {
	cl := &ClassList{seen: make(map[string]bool)}
	for _, n := range names {
		cl.Classes(n)
	}
	return cl
}

// Class adds one class name. Blank names are ignored.
func (cl *ClassList) Class(name string) *ClassList {
	name = strings.TrimSpace(name)
	if name == "" || cl.seen[name] {
		return cl
	}
	if cl.seen == nil {
		cl.seen = make(map[string]bool)
	}
	cl.seen[name] = true
	cl.names = append(cl.names, name)
	return cl
}

// Classes adds every space separated class in s.
func (cl *ClassList) Classes(s string) *ClassList {
	for _, f := range strings.Fields(s) {
		cl.Class(f)
	}
	return cl
}

// If adds name when cond holds.
func (cl *ClassList) If(cond bool, name string) *ClassList {
	if cond {
		cl.Classes(name)
	}
	return cl
}

// Names returns a copy of the accumulated class names.
func (cl *ClassList) Names() []string {
	return append([]string(nil), cl.names...)
}

// Len returns the number of distinct classes.
func (cl *ClassList) Len() int {
	return len(cl.names)
}

// String joins the classes for a class attribute.
func (cl *ClassList) String() string {
	return strings.Join(cl.names, " ")
}
