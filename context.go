package yadl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/yadl/host"
	"github.com/npillmayer/yadl/tree"
	"github.com/npillmayer/yadl/typestring"
	"golang.org/x/net/html"
)

// Tree is the context Elements operate in: it binds a host document and
// decides between persistent and non-persistent resolution of children and
// selector queries.
type Tree struct {
	doc        *host.Document
	persistent bool
	root       *Element                // wrapper of the document, persistent mode only
	body       *Element                // wrapper of the body, persistent mode only
	registry   map[*html.Node]*Element // wrappers of host nodes, persistent mode only
}

// Option configures a Tree.
type Option func(*Tree)

// Persistent configures a Tree to bootstrap persistent mode on creation,
// as if Init had been called.
func Persistent() Option {
	return func(t *Tree) {
		t.persistent = true
	}
}

// NewTree creates a tree context for a host document. If doc is nil, an
// empty document is created.
//
// With option Persistent, the shadow tree is bootstrapped as by Init.
// Bootstrapping fails only for a document without a root node (see
// host.FromNode). NewTree then traces the error and returns a persistent tree
// with neither Root nor Body. Clients needing the error call Init themselves.
func NewTree(doc *host.Document, opts ...Option) *Tree {
	if doc == nil {
		doc = host.NewDocument()
	}
	t := &Tree{doc: doc}
	for _, opt := range opts {
		opt(t)
	}
	if t.persistent {
		if _, err := t.Init(nil); err != nil {
			tracer().Errorf("cannot bootstrap persistent tree: %v", err)
		}
	}
	return t
}

// Document returns the bound host document.
func (t *Tree) Document() *host.Document {
	return t.doc
}

// SetDocument rebinds the tree to another document. The mode of the tree is
// left untouched; call Init to re-materialize a shadow tree for doc.
func (t *Tree) SetDocument(doc *host.Document) {
	if doc != nil {
		t.doc = doc
	}
}

// IsPersistent reports wether the tree operates in persistent mode.
func (t *Tree) IsPersistent() bool {
	return t.persistent
}

// Root returns the wrapper of the document in persistent mode, nil otherwise.
func (t *Tree) Root() *Element {
	return t.root
}

// Body returns the wrapper of the body element in persistent mode, nil otherwise.
func (t *Tree) Body() *Element {
	return t.body
}

// Init bootstraps persistent mode. If doc is non-nil, the tree is bound to it
// first. Init wraps the document as root and materializes the shadow tree
// from the document's elements. The body is resolved by selecting "body"
// from the root.
//
// Calling Init again discards the current shadow tree and builds a fresh one.
func (t *Tree) Init(doc *host.Document) (*Element, error) {
	t.SetDocument(doc)
	t.persistent = true
	t.registry = make(map[*html.Node]*Element)
	t.root, t.body = nil, nil
	root := t.Wrap(t.doc.Node())
	if _, err := root.Init(); err != nil {
		return nil, err
	}
	t.root = root
	sel, err := root.Select("body")
	if err != nil {
		return nil, err
	}
	t.body, _ = sel.One()
	tracer().Debugf("persistent tree initialized, %d elements", tree.Size(root.shadow))
	return root, nil
}

// Teardown leaves persistent mode. The shadow tree is dropped.
func (t *Tree) Teardown() {
	t.persistent = false
	t.root, t.body = nil, nil
	t.registry = nil
}

// Create creates a new, unmounted element from a type string such as
// "span#id.class1.class2". See package typestring.
func (t *Tree) Create(typeString string) *Element {
	desc := typestring.Parse(typeString)
	n := t.doc.CreateElement(desc.TagName)
	if desc.HasID() {
		host.SetAttr(n, "id", desc.IDValue())
	}
	if len(desc.Classes) > 0 {
		host.ClassListOf(n).Add(desc.Classes...)
	}
	e := t.newElement(n)
	t.register(e)
	return e
}

// Unbacked creates an element without a host node. Such an element stands
// for a conceptual node; operations needing a host node fail with ErrNotBacked.
func (t *Tree) Unbacked() *Element {
	return t.newElement(nil)
}

// Wrap adopts an existing host node. Wrapping a node which already has a
// parent yields a mounted element. In persistent mode, wrapping a node
// a second time returns the same element.
func (t *Tree) Wrap(n *html.Node) *Element {
	if n == nil {
		return t.Unbacked()
	}
	if e := t.lookup(n); e != nil {
		return e
	}
	e := t.newElement(n)
	e.mounted = n.Parent != nil
	t.register(e)
	return e
}

// Select runs a selector query from the root (persistent mode) or from the
// document (non-persistent mode).
func (t *Tree) Select(query string) (Selection, error) {
	if t.persistent && t.root != nil {
		return t.root.Select(query)
	}
	return t.Wrap(t.doc.Node()).Select(query)
}

// --- Registry of wrappers --------------------------------------------------

func (t *Tree) lookup(n *html.Node) *Element {
	if !t.persistent || n == nil {
		return nil
	}
	return t.registry[n]
}

func (t *Tree) register(e *Element) {
	if !t.persistent || e.node == nil {
		return
	}
	if t.registry == nil {
		t.registry = make(map[*html.Node]*Element)
	}
	t.registry[e.node] = e
}

// unregister drops e and its shadow descendents from the registry.
func (t *Tree) unregister(e *Element) {
	if t.registry == nil {
		return
	}
	nodes, _ := tree.NewWalker(e.shadow).Collect(tree.Whatever[*Element]())
	for _, n := range nodes {
		delete(t.registry, n.Payload.node)
	}
}
