/*
Package hook implements registries of mutation hooks.

A hook is a handler registered for a key. Element wrappers fire hooks when
a property is set (key = property name), when a style property is set
(key = "style." + name) and when a child is inserted (key = NewChild).

A Registry is an ordered multimap: several handlers may be registered for the
same key, and registration order is preserved. Firing a key invokes the
first handler registered for it, and only that one. Later handlers for the
same key stay registered and become active once earlier ones are removed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hook

import (
	"errors"
	"fmt"
)

// NewChild is the key of hooks fired on child insertion.
const NewChild = "newChild"

// StylePrefix prefixes keys of hooks fired on style mutation.
const StylePrefix = "style."

// StyleKey returns the hook key for a style property.
func StyleKey(name string) string {
	return StylePrefix + name
}

// ErrInvalidArgument is returned for an empty key or a nil handler.
var ErrInvalidArgument = errors.New("invalid argument")

// Handler is called with the key it fired for and the new value. For
// NewChild hooks the value is the inserted child.
type Handler func(key string, value any)

type entry struct {
	key     string
	handler Handler
}

// Registry holds hooks in registration order. The zero value is an empty
// registry ready to use.
type Registry struct {
	entries []entry
}

// Add appends a handler for key.
func (r *Registry) Add(key string, handler Handler) error {
	if key == "" {
		return fmt.Errorf("%w: hook key must be a non-empty string", ErrInvalidArgument)
	}
	if handler == nil {
		return fmt.Errorf("%w: hook handler for %q is not a function", ErrInvalidArgument, key)
	}
	r.entries = append(r.entries, entry{key: key, handler: handler})
	return nil
}

// First returns the first handler registered for key.
func (r *Registry) First(key string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	for _, e := range r.entries {
		if e.key == key {
			return e.handler, true
		}
	}
	return nil, false
}

// Handlers returns all handlers for key, in registration order.
func (r *Registry) Handlers(key string) []Handler {
	if r == nil {
		return nil
	}
	var hs []Handler
	for _, e := range r.entries {
		if e.key == key {
			hs = append(hs, e.handler)
		}
	}
	return hs
}

// Fire invokes the first handler registered for key with (key, value).
// It reports whether a handler has been invoked.
//
// The handler runs synchronously. It may mutate the registry or the element
// it is attached to; there is no protection against recursion.
func (r *Registry) Fire(key string, value any) bool {
	h, ok := r.First(key)
	if !ok {
		return false
	}
	h(key, value)
	return true
}

// Remove drops every handler registered for key and returns their number.
func (r *Registry) Remove(key string) int {
	if r == nil {
		return 0
	}
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	n := len(r.entries) - len(kept)
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry{}
	}
	r.entries = kept
	return n
}

// Len is the number of registered hooks, counting duplicates.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Keys returns the distinct keys in order of first registration.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool, len(r.entries))
	var keys []string
	for _, e := range r.entries {
		if !seen[e.key] {
			seen[e.key] = true
			keys = append(keys, e.key)
		}
	}
	return keys
}
