package yadl

// Selection is the result of a selector query: no element, exactly one
// element, or many elements in document order.
//
// Clients either ask for the cardinality they expect,
//
//    if e, ok := sel.One(); ok { … }
//
// or match on all three cases:
//
//    var e *Element
//    var es []*Element
//    switch m := sel.Match(); m {
//    case m.None():
//    case m.One(&e):
//    case m.Many(&es):
//    }
//
type Selection struct {
	elems []*Element
}

// Len is the number of elements selected.
func (sel Selection) Len() int {
	return len(sel.elems)
}

// Empty reports wether nothing has been selected.
func (sel Selection) Empty() bool {
	return len(sel.elems) == 0
}

// One returns the selected element if exactly one element has been selected.
func (sel Selection) One() (*Element, bool) {
	if len(sel.elems) != 1 {
		return nil, false
	}
	return sel.elems[0], true
}

// All returns the selected elements in document order. The slice is a copy.
func (sel Selection) All() []*Element {
	return append([]*Element(nil), sel.elems...)
}

// First returns the first selected element or nil.
func (sel Selection) First() *Element {
	if len(sel.elems) == 0 {
		return nil
	}
	return sel.elems[0]
}

// Match returns a matcher for use in switch statements.
func (sel Selection) Match() SelectionMatcher {
	return selectionMatcher{sel: &sel}
}

// SelectionMatcher destructures a Selection by cardinality.
type SelectionMatcher interface {
	None() SelectionMatcher
	One(**Element) SelectionMatcher
	Many(*[]*Element) SelectionMatcher
}

// selectionMatcher must stay comparable, as matchers are compared in
// switch statements.
type selectionMatcher struct {
	sel *Selection
}

func (m selectionMatcher) None() SelectionMatcher {
	if len(m.sel.elems) == 0 {
		return m
	}
	return nil
}

func (m selectionMatcher) One(e **Element) SelectionMatcher {
	if len(m.sel.elems) == 1 {
		*e = m.sel.elems[0]
		return m
	}
	return nil
}

func (m selectionMatcher) Many(es *[]*Element) SelectionMatcher {
	if len(m.sel.elems) > 1 {
		*es = m.sel.All()
		return m
	}
	return nil
}
