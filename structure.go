package yadl

import (
	"fmt"

	"github.com/npillmayer/yadl/hook"
	"github.com/npillmayer/yadl/host"
	"github.com/npillmayer/yadl/tree"
	"golang.org/x/net/html"
)

// Append inserts child as the last child of e and fires the first hook of e
// registered for hook.NewChild. child must not have been mounted before.
// In persistent mode child becomes the last shadow child of e.
func (e *Element) Append(child *Element) (*Element, error) {
	if err := e.requireNode("append"); err != nil {
		return e, err
	}
	if child == nil {
		return e, fmt.Errorf("%w: cannot append nil element", ErrInvalidArgument)
	}
	if child.mounted {
		return e, fmt.Errorf("%w: cannot append %s", ErrAlreadyMounted, child)
	}
	if err := child.requireNode("be appended"); err != nil {
		return e, err
	}
	if err := host.AppendChild(e.node, child.node); err != nil {
		return e, err
	}
	child.mounted = true
	child.shadow.Isolate()
	if e.ctx.persistent {
		e.shadow.AddChild(child.shadow)
		e.ctx.register(child)
		assertThat(child.shadow.Parent() == e.shadow, "shadow parent of %s is not %s", child, e)
	}
	tracer().Debugf("appended %s to %s", child, e)
	e.hooks.Fire(hook.NewChild, child)
	return e, nil
}

// AppendNode inserts a raw host node as the last child of e and fires the
// first hook of e registered for hook.NewChild with the node. In persistent
// mode an element node is wrapped and becomes the last shadow child of e.
func (e *Element) AppendNode(n *html.Node) (*Element, error) {
	if err := e.requireNode("append"); err != nil {
		return e, err
	}
	if n == nil {
		return e, fmt.Errorf("%w: cannot append nil node", ErrInvalidArgument)
	}
	if err := host.AppendChild(e.node, n); err != nil {
		return e, err
	}
	if e.ctx.persistent && host.IsElement(n) {
		w := e.ctx.Wrap(n)
		w.mounted = true
		e.shadow.AddChild(w.shadow)
	}
	e.hooks.Fire(hook.NewChild, n)
	return e, nil
}

// Attach mounts e under parent. A nil parent denotes the default mount
// target: the body of the tree in persistent mode, the body of e's document
// otherwise. Attaching delegates to parent.Append.
func (e *Element) Attach(parent *Element) (*Element, error) {
	if e.mounted {
		return e, fmt.Errorf("%w: cannot attach %s", ErrAlreadyMounted, e)
	}
	if parent == nil {
		if e.ctx.persistent && e.ctx.body != nil {
			parent = e.ctx.body
		} else {
			body := e.doc.Body()
			if body == nil {
				return e, fmt.Errorf("%w: document has no body", host.ErrNotFound)
			}
			return e.AttachNode(body)
		}
	}
	if _, err := parent.Append(e); err != nil {
		return e, err
	}
	return e, nil
}

// AttachNode mounts e under a raw host node. If a wrapper of parent is known
// to the tree (persistent mode), attaching is delegated to it.
func (e *Element) AttachNode(parent *html.Node) (*Element, error) {
	if e.mounted {
		return e, fmt.Errorf("%w: cannot attach %s", ErrAlreadyMounted, e)
	}
	if err := e.requireNode("attach"); err != nil {
		return e, err
	}
	if p := e.ctx.lookup(parent); p != nil {
		return e.Attach(p)
	}
	if err := host.AppendChild(parent, e.node); err != nil {
		return e, err
	}
	e.mounted = true
	e.shadow.Isolate()
	return e, nil
}

// Children returns the child elements of e. In persistent mode these are the
// shadow children, if there are any. Otherwise the element children of the
// host node are wrapped.
func (e *Element) Children() []*Element {
	if e.node == nil {
		return nil
	}
	if e.ctx.persistent && e.shadow.ChildCount() > 0 {
		return payloads(e.shadow.Children())
	}
	hostChildren := host.ElementChildren(e.node)
	children := make([]*Element, len(hostChildren))
	for i, ch := range hostChildren {
		children[i] = e.ctx.Wrap(ch)
	}
	return children
}

// Parent returns the parent element of e, or nil.
//
// In persistent mode, the parent is the same element which holds e as a
// shadow child, as long as the shadow tree agrees with the host tree.
// Otherwise the host parent is wrapped (returning a registered wrapper,
// if any).
func (e *Element) Parent() *Element {
	if e.node == nil || e.node.Parent == nil {
		return nil
	}
	if e.ctx.persistent {
		if p := e.shadow.Parent(); p != nil && p.Payload.node == e.node.Parent {
			return p.Payload
		}
	}
	return e.ctx.Wrap(e.node.Parent)
}

// RemoveChild removes child from e. In persistent mode child is removed from
// the shadow children of e as well.
func (e *Element) RemoveChild(child *Element) (*Element, error) {
	if err := e.requireNode("remove child"); err != nil {
		return e, err
	}
	if child == nil {
		return e, fmt.Errorf("%w: cannot remove nil element", ErrInvalidArgument)
	}
	if err := child.requireNode("be removed"); err != nil {
		return e, err
	}
	if err := host.RemoveChild(e.node, child.node); err != nil {
		return e, err
	}
	if child.shadow.Parent() == e.shadow {
		child.shadow.Isolate()
	}
	if e.ctx.persistent {
		e.ctx.unregister(child)
	}
	return e, nil
}

// Remove detaches e from its parent. In persistent mode e is removed from the
// shadow children of its former parent as well.
// A removed element stays mounted: it cannot be appended or attached again.
func (e *Element) Remove() (*Element, error) {
	if err := e.requireNode("remove"); err != nil {
		return e, err
	}
	host.Remove(e.node)
	e.shadow.Isolate()
	if e.ctx.persistent {
		e.ctx.unregister(e)
	}
	return e, nil
}

// Init materializes the shadow children of e from the element children of
// its host node, recursively. Existing shadow children are discarded.
func (e *Element) Init() (*Element, error) {
	if err := e.requireNode("initialize"); err != nil {
		return e, err
	}
	e.shadow.RemoveChildren()
	for _, ch := range host.ElementChildren(e.node) {
		w := e.ctx.Wrap(ch)
		w.mounted = true
		if _, err := w.Init(); err != nil {
			return e, err
		}
		e.shadow.AddChild(w.shadow)
	}
	return e, nil
}

// --- Selection -------------------------------------------------------------

// Matches reports wether e matches a selector query. Documents, unbacked
// elements and invalid queries never match.
func (e *Element) Matches(query string) bool {
	return host.Matches(e.node, query)
}

// Select finds all elements matching query.
//
// In non-persistent mode the host tree is queried for descendents of e.
// In persistent mode the shadow tree is walked in pre-order, starting with
// e itself. Shadow leaves with element children in the host tree (e.g.,
// after setting innerHTML) are searched in the host tree.
func (e *Element) Select(query string) (Selection, error) {
	if err := e.requireNode("select"); err != nil {
		return Selection{}, err
	}
	if _, err := host.Compile(query); err != nil {
		return Selection{}, err
	}
	if !e.ctx.persistent {
		nodes, err := host.QuerySelectorAll(e.node, query)
		if err != nil {
			return Selection{}, err
		}
		elems := make([]*Element, len(nodes))
		for i, n := range nodes {
			elems[i] = e.ctx.Wrap(n)
		}
		return Selection{elems: elems}, nil
	}
	isLeaf := tree.NodeIsLeaf[*Element]()
	nodes, err := tree.NewWalker(e.shadow).Collect(func(n *tree.Node[*Element]) (bool, error) {
		if n.Payload.Matches(query) {
			return true, nil
		}
		return isLeaf(n)
	})
	if err != nil {
		return Selection{}, err
	}
	var elems []*Element
	for _, n := range nodes {
		el := n.Payload
		if el.Matches(query) {
			elems = append(elems, el)
		}
		if n.ChildCount() > 0 {
			continue
		}
		found, err := host.QuerySelectorAll(el.node, query)
		if err != nil {
			return Selection{}, err
		}
		for _, m := range found {
			elems = append(elems, e.ctx.Wrap(m))
		}
	}
	return Selection{elems: elems}, nil
}

func payloads(nodes []*tree.Node[*Element]) []*Element {
	elems := make([]*Element, len(nodes))
	for i, n := range nodes {
		elems[i] = n.Payload
	}
	return elems
}
