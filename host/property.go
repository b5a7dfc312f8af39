package host

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Kind is the value type of a property.
type Kind uint8

// Value types of properties.
const (
	StringKind Kind = iota // values are strings
	BoolKind               // values are booleans
	IntKind                // values are integers
)

// Property describes a named node property of the host tree, e.g. "id" or
// "textContent". Only properties of the schema may be read or written.
type Property struct {
	Name     string
	Kind     Kind
	ReadOnly bool
	document bool // applies to document nodes as well
	get      func(*html.Node) any
	set      func(*html.Node, any) error
}

var schema = map[string]*Property{}

func define(p *Property) {
	schema[p.Name] = p
}

func init() {
	define(&Property{Name: "tagName", ReadOnly: true, get: tagName})
	define(&Property{Name: "localName", ReadOnly: true, get: func(n *html.Node) any { return n.Data }})
	define(&Property{Name: "nodeName", ReadOnly: true, document: true, get: nodeName})
	define(&Property{Name: "nodeType", Kind: IntKind, ReadOnly: true, document: true, get: nodeType})
	define(&Property{Name: "childElementCount", Kind: IntKind, ReadOnly: true, document: true,
		get: func(n *html.Node) any { return len(ElementChildren(n)) }})
	define(&Property{Name: "outerHTML", ReadOnly: true, get: outerHTML})
	define(&Property{Name: "innerHTML", get: innerHTML, set: setInnerHTML})
	define(&Property{Name: "textContent", document: true, get: textContent, set: setTextContent})
	reflect := map[string]string{ // property name => attribute key
		"id": "id", "className": "class", "title": "title", "lang": "lang", "dir": "dir",
		"name": "name", "value": "value", "type": "type", "href": "href", "src": "src",
		"alt": "alt", "placeholder": "placeholder", "role": "role",
	}
	for prop, key := range reflect {
		define(reflectString(prop, key))
	}
	for _, key := range []string{"hidden", "disabled", "checked"} {
		define(reflectBool(key))
	}
	define(&Property{Name: "tabIndex", Kind: IntKind, get: tabIndex, set: setTabIndex})
}

// LookupProperty finds a property of the schema.
func LookupProperty(name string) (*Property, bool) {
	p, ok := schema[name]
	return p, ok
}

// PropertyNames returns the names of all properties of the schema, sorted.
func PropertyNames() []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasProperty reports wether name is a property of node n.
func HasProperty(n *html.Node, name string) bool {
	_, err := propertyFor(n, name)
	return err == nil
}

func propertyFor(n *html.Node, name string) (*Property, error) {
	p, ok := schema[name]
	if n == nil || !ok {
		return nil, fmt.Errorf("%w: %s is not defined on this node", ErrUnknownProperty, name)
	}
	switch n.Type {
	case html.ElementNode:
		return p, nil
	case html.DocumentNode:
		if p.document {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not defined on %s", ErrUnknownProperty, name, nodeLabel(n))
}

// GetProperty returns the value of property name of n.
func GetProperty(n *html.Node, name string) (any, error) {
	p, err := propertyFor(n, name)
	if err != nil {
		return nil, err
	}
	return p.get(n), nil
}

// SetProperty sets property name of n to value. Values are converted to the
// kind of the property; values which cannot be converted are rejected with
// ErrInvalidValue.
func SetProperty(n *html.Node, name string, value any) error {
	p, err := propertyFor(n, name)
	if err != nil {
		return err
	}
	if p.ReadOnly || p.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnlyProperty, name)
	}
	return p.set(n, value)
}

// --- Property implementations ----------------------------------------------

func tagName(n *html.Node) any {
	if n.Namespace == "" {
		return strings.ToUpper(n.Data)
	}
	return n.Data
}

func nodeName(n *html.Node) any {
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return tagName(n)
}

func nodeType(n *html.Node) any {
	switch n.Type {
	case html.ElementNode:
		return 1
	case html.TextNode:
		return 3
	case html.CommentNode:
		return 8
	case html.DocumentNode:
		return 9
	case html.DoctypeNode:
		return 10
	}
	return 0
}

func textContent(n *html.Node) any {
	if n.Type == html.DocumentNode {
		return ""
	}
	return TextContent(n)
}

func setTextContent(n *html.Node, value any) error {
	if n.Type == html.DocumentNode {
		return fmt.Errorf("%w: textContent of a document", ErrReadOnlyProperty)
	}
	s := toString(value)
	RemoveAllChildren(n)
	if s != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
	return nil
}

func outerHTML(n *html.Node) any {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		tracer().Errorf("rendering %s: %v", nodeLabel(n), err)
	}
	return buf.String()
}

func innerHTML(n *html.Node) any {
	var buf bytes.Buffer
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := html.Render(&buf, ch); err != nil {
			tracer().Errorf("rendering %s: %v", nodeLabel(ch), err)
		}
	}
	return buf.String()
}

func setInnerHTML(n *html.Node, value any) error {
	nodes, err := html.ParseFragment(strings.NewReader(toString(value)), n)
	if err != nil {
		return fmt.Errorf("%w: innerHTML: %v", ErrInvalidValue, err)
	}
	RemoveAllChildren(n)
	for _, ch := range nodes {
		n.AppendChild(ch)
	}
	return nil
}

func reflectString(prop, key string) *Property {
	return &Property{
		Name: prop,
		get: func(n *html.Node) any {
			v, _ := Attr(n, key)
			return v
		},
		set: func(n *html.Node, value any) error {
			SetAttr(n, key, toString(value))
			return nil
		},
	}
}

func reflectBool(key string) *Property {
	return &Property{
		Name: key,
		Kind: BoolKind,
		get: func(n *html.Node) any {
			_, ok := Attr(n, key)
			return ok
		},
		set: func(n *html.Node, value any) error {
			b, err := toBool(value)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
			}
			if b {
				SetAttr(n, key, "")
			} else {
				RemoveAttr(n, key)
			}
			return nil
		},
	}
}

func tabIndex(n *html.Node) any {
	if v, ok := Attr(n, "tabindex"); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return -1
}

func setTabIndex(n *html.Node, value any) error {
	var i int
	switch v := value.(type) {
	case int:
		i = v
	case int64:
		i = int(v)
	case string:
		var err error
		if i, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%w: tabIndex %q", ErrInvalidValue, v)
		}
	default:
		return fmt.Errorf("%w: tabIndex of type %T", ErrInvalidValue, value)
	}
	SetAttr(n, "tabindex", strconv.Itoa(i))
	return nil
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		return v != "", nil
	}
	return false, fmt.Errorf("cannot use value of type %T as boolean", value)
}
