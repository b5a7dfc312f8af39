package yadl

import (
	tp "github.com/xlab/treeprint"
)

// Print returns a textual dump of the element tree below e, as seen by
// Children (i.e., the shadow tree in persistent mode).
func (e *Element) Print() string {
	p := tp.New()
	ppt(p, e)
	return p.String()
}

func ppt(p tp.Tree, e *Element) {
	children := e.Children()
	if len(children) == 0 {
		p.AddNode(e.String())
		return
	}
	branch := p.AddBranch(e.String())
	for _, ch := range children {
		ppt(branch, ch)
	}
}
