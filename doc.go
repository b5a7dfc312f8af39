/*
Package yadl wraps the nodes of an HTML document tree.

Clients construct, query and mutate document nodes through a uniform
wrapper type, Element, instead of operating on the host tree directly.
Elements chain mutations, fire hooks when properties are set or children
are inserted, and answer selector queries.

    t := yadl.NewTree(host.NewDocument())
    list, _ := t.Create("ul#todo.open").Attach(nil)
    item, _ := t.Create("li.entry").Text("buy milk")
    list.Append(item)

Persistent Mode

A Tree may maintain a shadow tree of Elements, mirroring every structural
insertion made through the wrappers. In persistent mode, children and
selector queries are answered from the shadow tree, and wrapping the same
host node twice yields the same Element. Persistent mode is switched on by
bootstrapping a tree with Init, which materializes the shadow tree from the
existing document, and is switched off again explicitly with Teardown.

Trees are independent of each other. The package level functions Create,
Select, Wrap, SetDocument and Init operate on a default tree.

Concurrency

Trees and Elements are not safe for concurrent use. Host tree and shadow tree
are updated in two separate steps; there is no rollback if a step fails.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package yadl

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/yadl/hook"
	"github.com/npillmayer/yadl/host"
)

// tracer traces with key 'yadl.dom'.
func tracer() tracing.Trace {
	return tracing.Select("yadl.dom")
}

// ErrNotBacked is returned by operations needing a host node if an Element
// does not have one.
var ErrNotBacked = errors.New("element is not backed by a host node")

// ErrAlreadyMounted is returned when appending or attaching an Element which
// already has been mounted.
var ErrAlreadyMounted = errors.New("element already mounted")

// ErrInvalidArgument is returned for unusable arguments, e.g. a nil hook handler.
var ErrInvalidArgument = hook.ErrInvalidArgument

// Errors of the host tree, re-exported for convenience.
var (
	ErrUnknownProperty      = host.ErrUnknownProperty
	ErrUnknownStyleProperty = host.ErrUnknownStyleProperty
)

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("yadl: "+msg, msgargs...)
		panic(msg)
	}
}
