package host

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/yadl/style"
	"golang.org/x/net/html"
)

// StyleDeclaration is the style object of an element. It is backed by the
// element's "style" attribute: every mutation is written back immediately.
//
// Property names may be given in CSS spelling ("background-color") or in DOM
// spelling ("backgroundColor"). Only names known to package style are
// accepted.
type StyleDeclaration struct {
	node  *html.Node
	decls []*css.Declaration
}

// StyleOf returns the style object of element n. A malformed style attribute
// results in an empty style object.
func StyleOf(n *html.Node) *StyleDeclaration {
	sd := &StyleDeclaration{node: n}
	if text, ok := Attr(n, "style"); ok && strings.TrimSpace(text) != "" {
		// the parser drops the value of an unterminated last declaration
		if text = strings.TrimSpace(text); !strings.HasSuffix(text, ";") {
			text += ";"
		}
		decls, err := parser.ParseDeclarations(text)
		if err != nil {
			tracer().Errorf("cannot parse style attribute %q: %v", text, err)
		} else {
			sd.decls = decls
		}
	}
	return sd
}

// Get returns the value of a style property, or "" if it is not set.
func (sd *StyleDeclaration) Get(name string) (string, error) {
	key, err := sd.styleKey(name)
	if err != nil {
		return "", err
	}
	if d := sd.find(key); d != nil {
		return d.Value, nil
	}
	return "", nil
}

// IsImportant reports wether a style property is marked "!important".
func (sd *StyleDeclaration) IsImportant(name string) bool {
	d := sd.find(style.CSSName(name))
	return d != nil && d.Important
}

// Set sets a style property. An empty value removes the property.
// A value ending in "!important" marks the property as important.
func (sd *StyleDeclaration) Set(name, value string) error {
	key, err := sd.styleKey(name)
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	important := false
	if v := strings.TrimSuffix(value, "!important"); v != value {
		value, important = strings.TrimSpace(v), true
	}
	if value == "" {
		sd.remove(key)
	} else if d := sd.find(key); d != nil {
		d.Value, d.Important = value, important
	} else {
		sd.decls = append(sd.decls, &css.Declaration{Property: key, Value: value, Important: important})
	}
	sd.writeBack()
	return nil
}

// Remove removes a style property and returns its former value.
func (sd *StyleDeclaration) Remove(name string) (string, error) {
	old, err := sd.Get(name)
	if err != nil {
		return "", err
	}
	sd.remove(style.CSSName(name))
	sd.writeBack()
	return old, nil
}

// Len is the number of properties set.
func (sd *StyleDeclaration) Len() int {
	return len(sd.decls)
}

// Names returns the CSS names of the properties set, in declaration order.
func (sd *StyleDeclaration) Names() []string {
	names := make([]string, len(sd.decls))
	for i, d := range sd.decls {
		names[i] = d.Property
	}
	return names
}

// CSSText serializes the declarations, e.g. "color: red; margin-top: 2px".
func (sd *StyleDeclaration) CSSText() string {
	parts := make([]string, len(sd.decls))
	for i, d := range sd.decls {
		parts[i] = d.Property + ": " + d.Value
		if d.Important {
			parts[i] += " !important"
		}
	}
	return strings.Join(parts, "; ")
}

func (sd *StyleDeclaration) find(key string) *css.Declaration {
	for _, d := range sd.decls {
		if d.Property == key {
			return d
		}
	}
	return nil
}

func (sd *StyleDeclaration) remove(key string) {
	kept := sd.decls[:0]
	for _, d := range sd.decls {
		if d.Property != key {
			kept = append(kept, d)
		}
	}
	sd.decls = kept
}

func (sd *StyleDeclaration) writeBack() {
	if len(sd.decls) == 0 {
		RemoveAttr(sd.node, "style")
		return
	}
	SetAttr(sd.node, "style", sd.CSSText())
}

// styleKey normalizes name to CSS spelling. Only elements have a style
// object; for other nodes every name is unknown.
func (sd *StyleDeclaration) styleKey(name string) (string, error) {
	if !IsElement(sd.node) {
		return "", fmt.Errorf("%w: %s has no style object", ErrUnknownStyleProperty, nodeLabel(sd.node))
	}
	if !style.IsKnownProperty(name) {
		return "", fmt.Errorf("%w: %s is not defined in this style object", ErrUnknownStyleProperty, name)
	}
	return style.CSSName(name), nil
}
