package host

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// IsElement is a predicate for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// Parent returns the parent of n or nil.
func Parent(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return n.Parent
}

// ElementChildren returns the element children of n in document order.
// Text, comment and other nodes are skipped.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, ch)
		}
	}
	return children
}

// Contains reports wether n is ancestor or equal to other.
func Contains(n, other *html.Node) bool {
	if n == nil {
		return false
	}
	for it := other; it != nil; it = it.Parent {
		if it == n {
			return true
		}
	}
	return false
}

// AppendChild inserts child as the last child of parent. If child is already
// part of a tree, it is moved.
//
// Inserting a node into its own subtree, inserting a document node, or
// inserting under a node which cannot have children fails with ErrHierarchy.
func AppendChild(parent, child *html.Node) error {
	if parent == nil || child == nil {
		return fmt.Errorf("%w: cannot append nil node", ErrInvalidValue)
	}
	if parent.Type != html.ElementNode && parent.Type != html.DocumentNode {
		return fmt.Errorf("%w: node of type %d cannot have children", ErrHierarchy, parent.Type)
	}
	if child.Type == html.DocumentNode || Contains(child, parent) {
		return fmt.Errorf("%w: cannot insert %s under %s", ErrHierarchy, nodeLabel(child), nodeLabel(parent))
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
	return nil
}

// RemoveChild removes child from parent. It fails with ErrNotFound if child
// is not a child of parent.
func RemoveChild(parent, child *html.Node) error {
	if parent == nil || child == nil || child.Parent != parent {
		return fmt.Errorf("%w: %s is not a child of %s", ErrNotFound, nodeLabel(child), nodeLabel(parent))
	}
	parent.RemoveChild(child)
	return nil
}

// Remove detaches n from its parent, if any.
func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// RemoveAllChildren detaches every child of n.
func RemoveAllChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// TextContent returns the concatenated text of all text nodes below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, b)
	}
}

// --- Attributes ------------------------------------------------------------

// Attr returns the value of attribute key of n, and wether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute key of n to val.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes attribute key from n.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func nodeLabel(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	}
	return fmt.Sprintf("node(type=%d)", n.Type)
}
