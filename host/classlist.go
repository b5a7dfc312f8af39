package host

import (
	"strings"

	"golang.org/x/net/html"
)

// ClassList is the class set of an element, backed by its "class" attribute.
// Class names containing white space cannot be represented and are ignored.
type ClassList struct {
	node *html.Node
}

// ClassListOf returns the class set of element n.
func ClassListOf(n *html.Node) *ClassList {
	return &ClassList{node: n}
}

// Values returns the classes in attribute order.
func (cl *ClassList) Values() []string {
	v, _ := Attr(cl.node, "class")
	return strings.Fields(v)
}

// Len is the number of classes.
func (cl *ClassList) Len() int {
	return len(cl.Values())
}

// Contains reports wether name is in the set.
func (cl *ClassList) Contains(name string) bool {
	for _, c := range cl.Values() {
		if c == name {
			return true
		}
	}
	return false
}

// Add adds classes not yet present, in order.
func (cl *ClassList) Add(names ...string) {
	classes := cl.Values()
	for _, name := range names {
		if !validClass(name) || contains(classes, name) {
			continue
		}
		classes = append(classes, name)
	}
	cl.write(classes)
}

// Remove removes classes from the set.
func (cl *ClassList) Remove(names ...string) {
	classes := cl.Values()
	kept := classes[:0]
	for _, c := range classes {
		if !contains(names, c) {
			kept = append(kept, c)
		}
	}
	cl.write(kept)
}

// Toggle removes name if present, adds it otherwise. It returns wether name
// is present afterwards.
func (cl *ClassList) Toggle(name string) bool {
	if cl.Contains(name) {
		cl.Remove(name)
		return false
	}
	cl.Add(name)
	return cl.Contains(name)
}

func (cl *ClassList) String() string {
	return strings.Join(cl.Values(), " ")
}

func (cl *ClassList) write(classes []string) {
	SetAttr(cl.node, "class", strings.Join(classes, " "))
}

func validClass(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n\r\f")
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
