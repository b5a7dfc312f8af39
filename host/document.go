package host

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a host document: the root of an HTML parse tree together with
// the event listeners registered for its nodes.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]Listener
}

// NewDocument creates an empty document consisting of html, head and body.
func NewDocument() *Document {
	root := &html.Node{Type: html.DocumentNode}
	htm := newElement("html")
	htm.AppendChild(newElement("head"))
	htm.AppendChild(newElement("body"))
	root.AppendChild(htm)
	return &Document{root: root}
}

// Parse reads an HTML document. Missing html, head and body elements are
// implied the way browsers do it.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("parsing HTML document: %v", err)
		return nil, fmt.Errorf("parsing HTML document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is a shortcut for Parse(strings.NewReader(s)).
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromNode adopts an existing parse tree. n should be a document node; other
// nodes are accepted and serve as the root of a document fragment.
func FromNode(n *html.Node) *Document {
	return &Document{root: n}
}

// Node returns the document node.
func (doc *Document) Node() *html.Node {
	return doc.root
}

// Body returns the body element or nil.
func (doc *Document) Body() *html.Node {
	return findElement(atom.Body, doc.root)
}

// Head returns the head element or nil.
func (doc *Document) Head() *html.Node {
	return findElement(atom.Head, doc.root)
}

// CreateElement creates a new, unattached element node.
func (doc *Document) CreateElement(tag string) *html.Node {
	return newElement(tag)
}

// CreateTextNode creates a new, unattached text node.
func (doc *Document) CreateTextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

// Owns reports wether n is part of the document's tree.
func (doc *Document) Owns(n *html.Node) bool {
	return Contains(doc.root, n)
}

func newElement(tag string) *html.Node {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
