package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() *Node[string] {
	// a
	// ├── b
	// │   ├── d
	// │   └── e
	// └── c
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	d, e := NewNode("d"), NewNode("e")
	a.AddChild(b).AddChild(c)
	b.AddChild(d).AddChild(e)
	return a
}

func payloads(nodes []*Node[string]) []string {
	r := make([]string, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

func TestNodeAddAndIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yadl.tree")
	defer teardown()
	//
	root := buildTestTree()
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	b := root.Children()[0]
	if b.Parent() != root {
		t.Errorf("expected parent of b to be root, is %v", b.Parent())
	}
	b.Isolate()
	if root.ChildCount() != 1 || b.Parent() != nil {
		t.Errorf("expected b to be isolated from root, isn't: %v", root)
	}
	if c := root.Children()[0]; c.Payload != "c" {
		t.Errorf("expected remaining child to be c, is %s", c.Payload)
	}
}

func TestNodeMoveBetweenParents(t *testing.T) {
	root := buildTestTree()
	b, c := root.Children()[0], root.Children()[1]
	d := b.Children()[0]
	c.AddChild(d)
	if b.ChildCount() != 1 {
		t.Errorf("expected d to have left b, b has %d children", b.ChildCount())
	}
	if d.Parent() != c || c.Children()[0] != d {
		t.Errorf("expected d to be first child of c, isn't")
	}
}

func TestNodeRemoveChildren(t *testing.T) {
	root := buildTestTree()
	b := root.Children()[0]
	root.RemoveChildren()
	if root.ChildCount() != 0 || b.Parent() != nil {
		t.Errorf("expected children to become roots")
	}
	if b.ChildCount() != 2 {
		t.Errorf("expected b to keep its children, has %d", b.ChildCount())
	}
}

func TestWalkerCollectPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yadl.tree")
	defer teardown()
	//
	w := NewWalker(buildTestTree())
	nodes, err := w.Collect(Whatever[string]())
	if err != nil {
		t.Fatal(err)
	}
	got := payloads(nodes)
	want := []string{"a", "b", "d", "e", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, have %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected pre-order %v, have %v", want, got)
			break
		}
	}
	leafs, _ := w.Collect(NodeIsLeaf[string]())
	if p := payloads(leafs); len(p) != 3 || p[0] != "d" || p[2] != "c" {
		t.Errorf("expected leafs [d e c], have %v", p)
	}
}

func TestWalkerErrors(t *testing.T) {
	root := buildTestTree()
	var nilWalker *Walker[string]
	if _, err := nilWalker.Collect(Whatever[string]()); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, have %v", err)
	}
	if NewWalker[string](nil) != nil {
		t.Errorf("expected walker for nil node to be nil")
	}
	if _, err := NewWalker(root).Collect(nil); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, have %v", err)
	}
	stop := errors.New("stop")
	count := 0
	nodes, err := NewWalker(root).Collect(func(n *Node[string]) (bool, error) {
		count++
		if n.Payload == "d" {
			return true, stop
		}
		return false, nil
	})
	if !errors.Is(err, stop) || count != 3 || len(nodes) != 1 {
		t.Errorf("expected traversal to stop at d after 3 nodes, visited %d, err=%v", count, err)
	}
	if Size(root) != 5 || Size[string](nil) != 0 {
		t.Errorf("expected tree size 5, is %d", Size(root))
	}
}
