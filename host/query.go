package host

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selectors are compiled once per query string.
var selectorCache = struct {
	sync.Mutex
	m map[string]cascadia.Selector
}{m: make(map[string]cascadia.Selector)}

// Compile compiles a selector group, e.g. "div.note, #main > p".
func Compile(query string) (cascadia.Selector, error) {
	selectorCache.Lock()
	defer selectorCache.Unlock()
	if sel, ok := selectorCache.m[query]; ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, query, err)
	}
	selectorCache.m[query] = sel
	return sel, nil
}

// QuerySelectorAll returns all elements below n matching query, in document
// order. n itself is never part of the result.
func QuerySelectorAll(n *html.Node, query string) ([]*html.Node, error) {
	sel, err := Compile(query)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	var matches []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		matches = append(matches, sel.MatchAll(ch)...)
	}
	return matches, nil
}

// QuerySelector returns the first element below n matching query, or nil.
func QuerySelector(n *html.Node, query string) (*html.Node, error) {
	sel, err := Compile(query)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if m := sel.MatchFirst(ch); m != nil {
			return m, nil
		}
	}
	return nil, nil
}

// Matches reports wether element n matches query. Non-element nodes and
// invalid queries never match.
func Matches(n *html.Node, query string) bool {
	if !IsElement(n) {
		return false
	}
	sel, err := Compile(query)
	if err != nil {
		tracer().Debugf("match with invalid selector %q: %v", query, err)
		return false
	}
	return sel.Match(n)
}
