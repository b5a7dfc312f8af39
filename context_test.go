package yadl

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yadl/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listDoc = `<html><body>
<ul id="list"><li class="a">1</li><li class="b">2</li><li class="b">3</li></ul>
</body></html>`

func parse(t *testing.T, s string) *host.Document {
	doc, err := host.ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestSelectCardinality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yadl.dom")
	defer teardown()
	//
	for _, persistent := range []bool{false, true} {
		tr := NewTree(parse(t, listDoc))
		if persistent {
			_, err := tr.Init(nil)
			require.NoError(t, err)
		}
		none, err := tr.Select("li.c")
		require.NoError(t, err)
		assert.True(t, none.Empty())
		//
		one, err := tr.Select("li.a")
		require.NoError(t, err)
		e, ok := one.One()
		require.True(t, ok, "persistent=%v", persistent)
		assert.Equal(t, "1", host.TextContent(e.Node()))
		//
		many, err := tr.Select("li.b")
		require.NoError(t, err)
		_, ok = many.One()
		assert.False(t, ok)
		require.Equal(t, 2, many.Len())
		assert.Equal(t, "2", host.TextContent(many.First().Node()))
		assert.Equal(t, "3", host.TextContent(many.All()[1].Node()))
	}
}

func TestSelectionMatch(t *testing.T) {
	tr := NewTree(parse(t, listDoc))
	classify := func(query string) string {
		sel, err := tr.Select(query)
		require.NoError(t, err)
		var e *Element
		var es []*Element
		switch m := sel.Match(); m {
		case m.None():
			return "none"
		case m.One(&e):
			return "one:" + e.String()
		case m.Many(&es):
			return "many:" + es[0].String()
		}
		return "?"
	}
	assert.Equal(t, "none", classify("p"))
	assert.Equal(t, "one:ul#list", classify("ul"))
	assert.Equal(t, "many:li.a", classify("li"))
}

func TestSelectInvalidQuery(t *testing.T) {
	tr := NewTree(nil)
	_, err := tr.Select("li[")
	assert.ErrorIs(t, err, host.ErrInvalidSelector)
	tr.Init(nil)
	_, err = tr.Select("li[")
	assert.ErrorIs(t, err, host.ErrInvalidSelector)
}

func TestPersistentSelectIncludesSelf(t *testing.T) {
	tr := NewTree(parse(t, listDoc))
	sel, _ := tr.Select("ul")
	ul, ok := sel.One()
	require.True(t, ok)
	self, _ := ul.Select("ul")
	assert.True(t, self.Empty(), "non-persistent select searches descendents only")
	//
	tr.Init(nil)
	sel, _ = tr.Select("ul")
	ul, ok = sel.One()
	require.True(t, ok)
	self, _ = ul.Select("ul")
	e, ok := self.One()
	require.True(t, ok)
	assert.Same(t, ul, e)
}

func TestPersistentSelectFallsBackToHostBelowLeaves(t *testing.T) {
	tr := NewTree(nil, Persistent())
	div := tr.Create("div")
	div.Attach(nil)
	_, err := div.Set("innerHTML", `<p class="late">x</p>`)
	require.NoError(t, err)
	sel, err := tr.Select("p.late")
	require.NoError(t, err)
	_, ok := sel.One()
	assert.True(t, ok)
}

func TestInitScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yadl.dom")
	defer teardown()
	//
	tr := NewTree(nil)
	root, err := tr.Init(parse(t, `<body><div id="x"><span></span></div></body>`))
	require.NoError(t, err)
	assert.Equal(t, "#document", root.TagName())
	assert.True(t, tr.IsPersistent())
	require.NotNil(t, tr.Body())
	assert.Equal(t, "body", tr.Body().TagName())
	//
	sel, err := tr.Select("#x")
	require.NoError(t, err)
	x, ok := sel.One()
	require.True(t, ok)
	children := x.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "span", children[0].TagName())
	assert.Same(t, x, children[0].Parent())
	assert.Same(t, x, tr.Wrap(x.Node()))
}

func TestInitTwiceRebuildsShadowTree(t *testing.T) {
	tr := NewTree(parse(t, listDoc))
	r1, err := tr.Init(nil)
	require.NoError(t, err)
	r2, err := tr.Init(nil)
	require.NoError(t, err)
	assert.NotSame(t, r1, r2)
	sel, _ := tr.Select("ul")
	ul, _ := sel.One()
	assert.Len(t, ul.Children(), 3)
}

func TestPersistentAttachTargetsBody(t *testing.T) {
	tr := NewTree(nil, Persistent())
	e := tr.Create("section")
	_, err := e.Attach(nil)
	require.NoError(t, err)
	children := tr.Body().Children()
	require.Len(t, children, 1)
	assert.Same(t, e, children[0])
	assert.Equal(t, tr.Document().Body(), e.Node().Parent)
}

func TestTeardownLeavesPersistentMode(t *testing.T) {
	tr := NewTree(parse(t, listDoc), Persistent())
	require.NotNil(t, tr.Root())
	tr.Teardown()
	assert.False(t, tr.IsPersistent())
	assert.Nil(t, tr.Root())
	assert.Nil(t, tr.Body())
	sel, err := tr.Select("li")
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Len())
	n := tr.Document().CreateElement("div")
	assert.NotSame(t, tr.Wrap(n), tr.Wrap(n))
}

func TestDefaultTree(t *testing.T) {
	defer func() {
		Teardown()
		SetDocument(host.NewDocument())
	}()
	SetDocument(parse(t, listDoc))
	sel, err := Select("li")
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Len())
	//
	_, err = Init(nil)
	require.NoError(t, err)
	assert.True(t, Default().IsPersistent())
	e := Create("li.d")
	sel, _ = Select("ul")
	ul, _ := sel.One()
	_, err = ul.Append(e)
	require.NoError(t, err)
	sel, _ = Select("li.d")
	d, ok := sel.One()
	require.True(t, ok)
	assert.Same(t, e, d)
	assert.Same(t, e, Wrap(e.Node()))
}

func TestPersistentTreeWithoutRoot(t *testing.T) {
	tr := NewTree(host.FromNode(nil), Persistent())
	assert.True(t, tr.IsPersistent())
	assert.Nil(t, tr.Root())
	assert.Nil(t, tr.Body())
	_, err := tr.Init(nil)
	assert.ErrorIs(t, err, ErrNotBacked)
}
