package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><ul id="list"><li class="a">one</li><li class="b">two</li></ul></body></html>`

func writePage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSelectHTML(t *testing.T) {
	out, err := run(t, "select", writePage(t), "li.b")
	require.NoError(t, err)
	assert.Equal(t, "<li class=\"b\">two</li>\n", out)
}

func TestSelectPersistentTree(t *testing.T) {
	out, err := run(t, "select", writePage(t), "ul", "--persistent", "--format", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "ul#list")
	assert.Contains(t, out, "li.a")
	assert.Contains(t, out, "li.b")
}

func TestSelectDot(t *testing.T) {
	out, err := run(t, "select", writePage(t), "#list", "-f", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
}

func TestSelectErrors(t *testing.T) {
	path := writePage(t)
	_, err := run(t, "select", path, "li", "--format", "pdf")
	assert.Error(t, err)
	_, err = run(t, "select", path, "li[")
	assert.Error(t, err)
	_, err = run(t, "select", filepath.Join(t.TempDir(), "missing.html"), "li")
	assert.Error(t, err)
}

func TestTypeYAML(t *testing.T) {
	out, err := run(t, "type", "span#x.a")
	require.NoError(t, err)
	assert.Equal(t, "tagName: span\nid: x\nclasses:\n    - a\n", out)
}

func TestTypeJSON(t *testing.T) {
	out, err := run(t, "type", ".a", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tagName":"div","classes":["a"]}`, out)
}

func TestTree(t *testing.T) {
	out, err := run(t, "--trace", "Debug", "tree", writePage(t))
	require.NoError(t, err)
	for _, want := range []string{"#document", "html", "body", "ul#list"} {
		assert.Contains(t, out, want)
	}
}
