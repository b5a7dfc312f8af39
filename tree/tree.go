package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a walker is called with a nil predicate or action.
var ErrInvalidFilter = errors.New("filter is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria.
//
// Walkers operate synchronously and visit nodes in document order
// (depth-first, pre-order). A typical usage looks like this:
//
//    w := NewWalker(node)
//    nodes, err := w.Collect(predicate)
//
type Walker[T comparable] struct {
	initial *Node[T] // initial node of (sub-)tree
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
//
// If initial is nil, NewWalker will return a nil-Walker. Calls on a
// nil-Walker result in an empty set of nodes and ErrEmptyTree.
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial}
}

// Predicate is a function type to match against nodes of a tree.
// It returns true if node should be part of the selection.
type Predicate[T comparable] func(node *Node[T]) (bool, error)

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) (bool, error) {
		return true, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(node *Node[T]) (bool, error) {
		return node.ChildCount() == 0, nil
	}
}

// Collect returns every node of the (sub-)tree matching predicate, the
// initial node included. Nodes are returned in pre-order.
func (w *Walker[T]) Collect(predicate Predicate[T]) ([]*Node[T], error) {
	if w == nil {
		return nil, ErrEmptyTree
	}
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	var selection []*Node[T]
	err := preorder(w.initial, func(node *Node[T]) error {
		match, err := predicate(node)
		if match {
			selection = append(selection, node)
		}
		return err
	})
	return selection, err
}

// preorder visits node and its descendents, parents before children.
// An error returned by action stops the traversal.
func preorder[T comparable](node *Node[T], action func(*Node[T]) error) error {
	if err := action(node); err != nil {
		return err
	}
	for _, ch := range node.Children() {
		if err := preorder(ch, action); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of nodes in the (sub-)tree below and including node.
func Size[T comparable](node *Node[T]) int {
	if node == nil {
		return 0
	}
	size := 1
	for _, ch := range node.Children() {
		size += Size(ch)
	}
	return size
}
