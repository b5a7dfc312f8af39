package yadl

import (
	"github.com/npillmayer/yadl/host"
	"golang.org/x/net/html"
)

var defaultTree = NewTree(nil)

// Default returns the tree the package level functions operate on.
func Default() *Tree {
	return defaultTree
}

// Create creates a new, unmounted element of the default tree.
// See Tree.Create.
func Create(typeString string) *Element {
	return defaultTree.Create(typeString)
}

// Select runs a selector query on the default tree. See Tree.Select.
func Select(query string) (Selection, error) {
	return defaultTree.Select(query)
}

// Wrap adopts a host node into the default tree. See Tree.Wrap.
func Wrap(n *html.Node) *Element {
	return defaultTree.Wrap(n)
}

// SetDocument rebinds the default tree to another document.
func SetDocument(doc *host.Document) {
	defaultTree.SetDocument(doc)
}

// Init bootstraps persistent mode for the default tree. If doc is nil, the
// currently bound document is used. See Tree.Init.
func Init(doc *host.Document) (*Element, error) {
	return defaultTree.Init(doc)
}

// Teardown leaves persistent mode on the default tree.
func Teardown() {
	defaultTree.Teardown()
}
