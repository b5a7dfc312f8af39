/*
Package host gives an HTML parse tree the capabilities of a DOM.

Element wrappers operate on a host document tree. We use the parse tree of
golang.org/x/net/html as host tree and add to it what a browser DOM would
offer: a schema of named node properties, a style object backed by the
"style" attribute, a class set backed by the "class" attribute, selector
queries (courtesy of github.com/andybalholm/cascadia), tree insertion and
removal with DOM hierarchy checks, and event listeners with bubbling.

This is not a browser: there is no layout, no scripting and no cascade
of style sheets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package host

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yadl.host'.
func tracer() tracing.Trace {
	return tracing.Select("yadl.host")
}

// Errors of host operations. Callers should match them with errors.Is.
var (
	ErrUnknownProperty      = errors.New("unknown property")
	ErrUnknownStyleProperty = errors.New("unknown style property")
	ErrReadOnlyProperty     = errors.New("read-only property")
	ErrInvalidValue         = errors.New("invalid value")
	ErrInvalidSelector      = errors.New("invalid selector")
	ErrHierarchy            = errors.New("hierarchy request error")
	ErrNotFound             = errors.New("node not found")
)
