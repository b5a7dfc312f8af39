/*
Package typestring parses compact, selector-like type strings.

A type string names the tag of an element to create, optionally followed by
an id and any number of classes:

    span#intro.note.wide

Grammar (informal):

    typestring := [ tag ] { '#' ident | '.' ident }

The first id wins, classes are collected in order of appearance with
duplicates preserved. An empty tag defaults to "div". Parsing never fails:
characters without a special meaning become part of identifiers, and empty
identifiers are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package typestring

import (
	"encoding/json"
	"strings"

	"github.com/npillmayer/yadl/maybe"
	"gopkg.in/yaml.v3"
)

// DefaultTag is the tag name used for type strings without a tag.
const DefaultTag = "div"

// Descriptor is the result of parsing a type string.
type Descriptor struct {
	TagName string              // tag of the element, never empty
	ID      maybe.Maybe[string] // id, if the type string carries one
	Classes []string            // classes in order of appearance; nil if none
}

// Parse parses a type string into a descriptor. See the package documentation
// for the grammar.
func Parse(raw string) Descriptor {
	d := Descriptor{ID: maybe.Nothing[string]()}
	raw = strings.TrimSpace(raw)
	end := strings.IndexAny(raw, "#.")
	if end < 0 {
		end = len(raw)
	}
	d.TagName = raw[:end]
	if d.TagName == "" {
		d.TagName = DefaultTag
	}
	hasID := false
	for rest := raw[end:]; rest != ""; {
		marker := rest[0]
		rest = rest[1:]
		n := strings.IndexAny(rest, "#.")
		if n < 0 {
			n = len(rest)
		}
		ident := rest[:n]
		rest = rest[n:]
		if ident == "" {
			continue
		}
		switch marker {
		case '#':
			if !hasID {
				d.ID = maybe.Just(ident)
				hasID = true
			}
		case '.':
			d.Classes = append(d.Classes, ident)
		}
	}
	return d
}

// HasID is a convenience predicate to check for the presence of an id.
func (d Descriptor) HasID() bool {
	if d.ID == nil {
		return false
	}
	_, ok := d.ID.Get()
	return ok
}

// IDValue returns the id or the empty string.
func (d Descriptor) IDValue() string {
	if d.ID == nil {
		return ""
	}
	id, _ := d.ID.Get()
	return id
}

// String renders the canonical type string for d.
func (d Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.TagName)
	if d.ID != nil {
		var id string
		switch m := d.ID.Match(); m {
		case m.Just(&id):
			b.WriteByte('#')
			b.WriteString(id)
		case m.Nothing():
		}
	}
	for _, c := range d.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// Equal compares two descriptors. A nil and an empty class list are equal.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.TagName != other.TagName || d.HasID() != other.HasID() || d.IDValue() != other.IDValue() {
		return false
	}
	if len(d.Classes) != len(other.Classes) {
		return false
	}
	for i := range d.Classes {
		if d.Classes[i] != other.Classes[i] {
			return false
		}
	}
	return true
}

// --- Serialization ---------------------------------------------------------

// wire is the exact object shape {tagName, id?, classes?} of a descriptor.
type wire struct {
	TagName string   `json:"tagName" yaml:"tagName"`
	ID      *string  `json:"id,omitempty" yaml:"id,omitempty"`
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`
}

func (d Descriptor) toWire() wire {
	w := wire{TagName: d.TagName, Classes: d.Classes}
	if d.HasID() {
		id := d.IDValue()
		w.ID = &id
	}
	return w
}

func (d *Descriptor) fromWire(w wire) {
	d.TagName = w.TagName
	d.ID = maybe.FromPointer(w.ID)
	d.Classes = nil
	if len(w.Classes) > 0 {
		d.Classes = w.Classes
	}
}

// MarshalJSON omits absent keys.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toWire())
}

// UnmarshalJSON reads the shape produced by MarshalJSON.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.fromWire(w)
	return nil
}

// MarshalYAML omits absent keys (interface yaml.Marshaler).
func (d Descriptor) MarshalYAML() (interface{}, error) {
	return d.toWire(), nil
}

// UnmarshalYAML reads the shape produced by MarshalYAML.
func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	var w wire
	if err := value.Decode(&w); err != nil {
		return err
	}
	d.fromWire(w)
	return nil
}
