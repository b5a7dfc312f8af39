/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node carries a payload and an ordered
slice of children, and knows its parent. It is used as the storage of
shadow trees, i.e. trees of element wrappers mirroring the structure of an
HTML document.

Walkers

Clients search and traverse trees with a Walker. Walkers operate
synchronously and deliver nodes in document order (depth-first, pre-order).

   Collect(predicate)    // matching nodes, including the start node
   Size(node)            // number of nodes of a (sub-)tree

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yadl.tree'.
func tracer() tracing.Trace {
	return tracing.Select("yadl.tree")
}
