/*
Package domdbg implements helpers to debug an element tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/yadl"
	"github.com/npillmayer/yadl/host"
	"github.com/npillmayer/yadl/style"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	TextTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
	style.PGColor,
}

// propertyGroup collects the inline styles of an element belonging to one
// style property group.
type propertyGroup struct {
	Name       string
	Properties []style.KeyValue
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root element,
// a Writer, and an optional list of style property groups.
// The diagram will include all inline styles belonging to one of the
// property groups.
//
// Children are resolved by Element.Children, i.e. a persistent tree is
// drawn from its shadow tree.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//     - Color
//
func ToGraphViz(root *yadl.Element, w io.Writer, styleGroups ...string) error {
	if root == nil || root.Node() == nil {
		return fmt.Errorf("%w: cannot draw element tree", yadl.ErrNotBacked)
	}
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.TextTmpl = template.Must(template.New("textnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(textNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if len(styleGroups) == 0 {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &grapher{w: w, dict: make(map[*html.Node]string, 256), params: &gparams}
	if err = g.nodes(root); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given an element and a testing.T, it will
// create a Graphiviz image of the element tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If the `dot` binary is not installed, the test is skipped.
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *yadl.Element, t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz dot not installed")
	}
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing element digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing element tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type grapher struct {
	w      io.Writer
	dict   map[*html.Node]string
	params *graphParamsType
}

type node struct {
	E    *yadl.Element
	Name string
}

type textnode struct {
	Text string
	Name string
}

type edge struct {
	N1, N2 string
}

func (g *grapher) name(n *html.Node) string {
	name := g.dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n] = name
	}
	return name
}

func (g *grapher) nodes(e *yadl.Element) error {
	name := g.name(e.Node())
	if err := g.params.NodeTmpl.Execute(g.w, &node{e, name}); err != nil {
		return err
	}
	if err := g.styles(e, name); err != nil {
		return err
	}
	if err := g.texts(e, name); err != nil {
		return err
	}
	for _, ch := range e.Children() {
		if err := g.nodes(ch); err != nil {
			return err
		}
		if err := g.params.EdgeTmpl.Execute(g.w, edge{name, g.name(ch.Node())}); err != nil {
			return err
		}
	}
	return nil
}

// texts draws the non-blank text children of e's host node.
func (g *grapher) texts(e *yadl.Element, name string) error {
	for ch := e.Node().FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.TextNode || strings.TrimSpace(ch.Data) == "" {
			continue
		}
		tname := g.name(ch)
		if err := g.params.TextTmpl.Execute(g.w, &textnode{ch.Data, tname}); err != nil {
			return err
		}
		if err := g.params.EdgeTmpl.Execute(g.w, edge{name, tname}); err != nil {
			return err
		}
	}
	return nil
}

func (g *grapher) styles(e *yadl.Element, name string) error {
	groups := groupStyles(e.Node())
	var prev *propertyGroup
	for _, s := range g.params.StyleGroups {
		pg := groups[s]
		if pg == nil {
			continue
		}
		if err := g.params.StylegroupTmpl.Execute(g.w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = g.params.PgedgeTmpl.Execute(g.w, pgedge{name, pg})
		} else {
			err = g.params.PgpgTmpl.Execute(g.w, []*propertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

// groupStyles sorts the inline styles of n into property groups.
func groupStyles(n *html.Node) map[string]*propertyGroup {
	if n.Type != html.ElementNode {
		return nil
	}
	sd := host.StyleOf(n)
	groups := make(map[string]*propertyGroup)
	for _, key := range sd.Names() {
		gname := style.GroupNameFromPropertyKey(key)
		pg := groups[gname]
		if pg == nil {
			pg = &propertyGroup{Name: gname}
			groups[gname] = pg
		}
		v, _ := sd.Get(key)
		pg.Properties = append(pg.Properties, style.KeyValue{Key: key, Value: style.Property(v)})
	}
	return groups
}

type pgedge struct {
	Name      string
	PropGroup *propertyGroup
}

func shortText(s string) string {
	r := "\"\\\""
	if len(s) > 10 {
		r += s[:10] + "...\\\"\""
	} else {
		r += s + "\\\"\""
	}
	r = strings.Replace(r, "\n", `\\n`, -1)
	r = strings.Replace(r, "\t", `\\t`, -1)
	r = strings.Replace(r, " ", "␣", -1)
	return r
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .E.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const textNodeTmpl = `{{ .Name }}	[ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
