/*
Package style knows about CSS style properties.

It holds the schema of style property names an element's style object
accepts, organised into property groups, and converts between the CSS
spelling of a property ("background-color") and its DOM spelling
("backgroundColor").

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGFont      = "Font"
	PGBox       = "Box"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin":                     PGMargins, // Margins
	"margin-top":                 PGMargins,
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding":                    PGPadding, // Padding
	"padding-top":                PGPadding,
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border":                     PGBorder, // Border
	"border-color":               PGBorder,
	"border-width":               PGBorder,
	"border-style":               PGBorder,
	"border-radius":              PGBorder,
	"border-top":                 PGBorder,
	"border-left":                PGBorder,
	"border-right":               PGBorder,
	"border-bottom":              PGBorder,
	"border-top-color":           PGBorder,
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"top":                        PGDimension,
	"right":                      PGDimension,
	"bottom":                     PGDimension,
	"left":                       PGDimension,
	"display":                    PGDisplay, // Display
	"float":                      PGDisplay,
	"clear":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"z-index":                    PGDisplay,
	"overflow":                   PGDisplay,
	"overflow-x":                 PGDisplay,
	"overflow-y":                 PGDisplay,
	"opacity":                    PGDisplay,
	"cursor":                     PGDisplay,
	"flow-into":                  PGRegion, // Region
	"flow-from":                  PGRegion,
	"color":                      PGColor, // Color
	"background":                 PGColor,
	"background-color":           PGColor,
	"background-image":           PGColor,
	"direction":                  PGText, // Text
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
	"overflow-wrap":              PGText,
	"hyphens":                    PGText,
	"text-align":                 PGText,
	"text-decoration":            PGText,
	"text-indent":                PGText,
	"text-transform":             PGText,
	"line-height":                PGText,
	"vertical-align":             PGText,
	"list-style":                 PGText,
	"list-style-type":            PGText,
	"list-style-position":        PGText,
	"list-style-image":           PGText,
	"quotes":                     PGText,
	"font":                       PGFont, // Font
	"font-family":                PGFont,
	"font-size":                  PGFont,
	"font-style":                 PGFont,
	"font-weight":                PGFont,
	"font-variant":               PGFont,
	"box-sizing":                 PGBox, // Box
	"flex":                       PGBox,
	"flex-direction":             PGBox,
	"flex-wrap":                  PGBox,
	"justify-content":            PGBox,
	"align-items":                PGBox,
	"gap":                        PGBox,
	"grid-template-columns":      PGBox,
	"grid-template-rows":         PGBox,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[CSSName(key)]
	if !found {
		groupname = PGX
	}
	return groupname
}

// IsKnownProperty is a predicate for property names of the schema. Names may
// be given in CSS or DOM spelling. Custom properties ("--name") are always known.
func IsKnownProperty(name string) bool {
	if strings.HasPrefix(name, "--") && len(name) > 2 {
		return true
	}
	_, found := groupNameFromPropertyKey[CSSName(name)]
	return found
}

// KnownProperties returns the CSS names of all properties of the schema, sorted.
func KnownProperties() []string {
	keys := make([]string, 0, len(groupNameFromPropertyKey))
	for k := range groupNameFromPropertyKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	key = CSSName(key)
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "position", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "text-align", "text-indent":
		return true
	}
	return false
}

// CSSName converts a DOM style name ("backgroundColor") into CSS spelling
// ("background-color"). Names already in CSS spelling are returned unchanged.
// Custom properties are never converted.
func CSSName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	if strings.IndexFunc(name, isUpper) < 0 {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if isUpper(r) {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DOMName converts a CSS style name ("background-color") into DOM spelling
// ("backgroundColor").
func DOMName(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
