package yadl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/yadl/hook"
	"github.com/npillmayer/yadl/host"
	"github.com/npillmayer/yadl/tree"
	"golang.org/x/net/html"
)

// Element wraps a node of the host document tree.
//
// Mutating operations return the element itself to allow for chaining,
// together with an error. Operations needing a host node fail with
// ErrNotBacked for elements created with Tree.Unbacked.
type Element struct {
	node    *html.Node           // host node, nil for unbacked elements
	shadow  *tree.Node[*Element] // shadow tree node; payload is the element itself
	mounted bool                 // set once the element has been inserted under a parent
	hooks   hook.Registry        // hooks in order of registration
	doc     *host.Document       // document the element belongs to
	ctx     *Tree                // tree context
}

func (t *Tree) newElement(n *html.Node) *Element {
	e := &Element{node: n, doc: t.doc, ctx: t}
	e.shadow = tree.NewNode(e)
	return e
}

func (e *Element) requireNode(op string) error {
	if e == nil || e.node == nil {
		return fmt.Errorf("%w: cannot %s", ErrNotBacked, op)
	}
	return nil
}

// Node returns the wrapped host node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Document returns the host document the element belongs to.
func (e *Element) Document() *host.Document {
	return e.doc
}

// Tree returns the tree context of the element.
func (e *Element) Tree() *Tree {
	return e.ctx
}

// Mounted reports wether the element has been inserted under a parent.
func (e *Element) Mounted() bool {
	return e.mounted
}

// Hooks returns the hook registry of the element.
func (e *Element) Hooks() *hook.Registry {
	return &e.hooks
}

// TagName returns the lower-case tag of the element, "#document" for
// documents and "" for unbacked elements.
func (e *Element) TagName() string {
	switch {
	case e.node == nil:
		return ""
	case e.node.Type == html.DocumentNode:
		return "#document"
	}
	return e.node.Data
}

// --- Properties ------------------------------------------------------------

// Get returns the value of a host property, e.g. "textContent".
func (e *Element) Get(name string) (any, error) {
	if err := e.requireNode("get " + name); err != nil {
		return nil, err
	}
	return host.GetProperty(e.node, name)
}

// Set sets a host property and fires the first hook registered for name.
func (e *Element) Set(name string, value any) (*Element, error) {
	if err := e.requireNode("set " + name); err != nil {
		return e, err
	}
	if err := host.SetProperty(e.node, name, value); err != nil {
		return e, err
	}
	if name == "textContent" || name == "innerHTML" {
		e.dropShadowChildren()
	}
	e.hooks.Fire(name, value)
	return e, nil
}

// dropShadowChildren discards the shadow children of e after its host
// children have been replaced wholesale.
func (e *Element) dropShadowChildren() {
	for _, ch := range e.shadow.Children() {
		e.ctx.unregister(ch.Payload)
	}
	e.shadow.RemoveChildren()
}

// Style sets a property of the element's style object and fires the first
// hook registered for "style." + name.
func (e *Element) Style(name, value string) (*Element, error) {
	if err := e.requireNode("set style " + name); err != nil {
		return e, err
	}
	if err := host.StyleOf(e.node).Set(name, value); err != nil {
		return e, err
	}
	e.hooks.Fire(hook.StyleKey(name), value)
	return e, nil
}

// StyleValue returns the value of a property of the element's style object.
func (e *Element) StyleValue(name string) (string, error) {
	if err := e.requireNode("get style " + name); err != nil {
		return "", err
	}
	return host.StyleOf(e.node).Get(name)
}

// Text sets the text content of the element. It is a shortcut for
// Set("textContent", value).
func (e *Element) Text(value string) (*Element, error) {
	return e.Set("textContent", value)
}

// AddHook registers a handler for key. Unbacked elements accept hooks as well.
func (e *Element) AddHook(key string, handler hook.Handler) (*Element, error) {
	if err := e.hooks.Add(key, handler); err != nil {
		return e, err
	}
	return e, nil
}

// ClassList returns the class set of the element, or nil for unbacked elements.
func (e *Element) ClassList() *host.ClassList {
	if e.node == nil {
		return nil
	}
	return host.ClassListOf(e.node)
}

// SetClass adds classes. No hooks are fired.
func (e *Element) SetClass(names ...string) (*Element, error) {
	if err := e.requireNode("set class"); err != nil {
		return e, err
	}
	host.ClassListOf(e.node).Add(names...)
	return e, nil
}

// RemoveClass removes classes. No hooks are fired.
func (e *Element) RemoveClass(names ...string) (*Element, error) {
	if err := e.requireNode("remove class"); err != nil {
		return e, err
	}
	host.ClassListOf(e.node).Remove(names...)
	return e, nil
}

// SetID sets the id of the element. No hooks are fired.
func (e *Element) SetID(id string) (*Element, error) {
	if err := e.requireNode("set id"); err != nil {
		return e, err
	}
	host.SetAttr(e.node, "id", id)
	return e, nil
}

// --- Events ----------------------------------------------------------------

// Listen registers an event listener with the host document.
func (e *Element) Listen(event string, handler host.Listener) (*Element, error) {
	if err := e.requireNode("listen to " + event); err != nil {
		return e, err
	}
	e.doc.AddEventListener(e.node, event, handler)
	return e, nil
}

// Dispatch fires an event at the element. The event bubbles up to the
// element's ancestors.
func (e *Element) Dispatch(event string, detail any) (*Element, error) {
	if err := e.requireNode("dispatch " + event); err != nil {
		return e, err
	}
	e.doc.DispatchEvent(e.node, host.NewEvent(event, detail))
	return e, nil
}

// --- Rendering -------------------------------------------------------------

// OuterHTML renders the element and its descendents as HTML.
func (e *Element) OuterHTML() (string, error) {
	if err := e.requireNode("render"); err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := html.Render(&sb, e.node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Element) String() string {
	if e == nil || e.node == nil {
		return "<unbacked>"
	}
	if e.node.Type != html.ElementNode {
		return e.TagName()
	}
	var sb strings.Builder
	sb.WriteString(e.node.Data)
	if id, ok := host.Attr(e.node, "id"); ok && id != "" {
		sb.WriteString("#" + id)
	}
	for _, c := range host.ClassListOf(e.node).Values() {
		sb.WriteString("." + c)
	}
	return sb.String()
}
