package style

import "testing"

func TestNameConversion(t *testing.T) {
	cases := map[string]string{
		"backgroundColor":     "background-color",
		"color":               "color",
		"borderTopLeftRadius": "border-top-left-radius",
		"--main-bg":           "--main-bg",
	}
	for dom, css := range cases {
		if CSSName(dom) != css {
			t.Errorf("expected CSSName(%q) = %q, is %q", dom, css, CSSName(dom))
		}
		if dom != "--main-bg" && DOMName(css) != dom {
			t.Errorf("expected DOMName(%q) = %q, is %q", css, dom, DOMName(css))
		}
	}
}

func TestKnownProperties(t *testing.T) {
	for _, name := range []string{"color", "backgroundColor", "margin-top", "--x", "fontSize"} {
		if !IsKnownProperty(name) {
			t.Errorf("expected %q to be a known style property", name)
		}
	}
	for _, name := range []string{"colour", "", "--", "textContent"} {
		if IsKnownProperty(name) {
			t.Errorf("did not expect %q to be a known style property", name)
		}
	}
	if GroupNameFromPropertyKey("marginTop") != PGMargins {
		t.Errorf("expected marginTop to belong to group Margins, is %s",
			GroupNameFromPropertyKey("marginTop"))
	}
	if GroupNameFromPropertyKey("funny") != PGX {
		t.Error("expected unknown key to belong to group X")
	}
	if !IsCascading("fontFamily") || IsCascading("margin-top") {
		t.Error("expected font-family to cascade and margin-top not to")
	}
	if len(KnownProperties()) != len(groupNameFromPropertyKey) {
		t.Error("expected KnownProperties to list the whole schema")
	}
}
