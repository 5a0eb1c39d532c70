package pinview

import (
	"fmt"
	"strconv"

	"github.com/xlab/treeprint"
)

// Tree returns a printable outline of the builder tree: one branch per
// nested builder (labelled with its tag and builder id) and one leaf per
// other content item. It does not build anything and records nothing.
func (b *Builder) Tree() string {
	tree := treeprint.New()
	b.outline(tree.AddBranch(b.label()))
	return tree.String()
}

func (b *Builder) label() string {
	return fmt.Sprintf("<%s> %s", b.FullTag(), b.BuilderID())
}

func (b *Builder) outline(branch treeprint.Tree) {
	for _, item := range b.content.items {
		switch v := item.(type) {
		case interface{ Base() *Builder }:
			child := v.Base()
			child.outline(branch.AddBranch(child.label()))
		case string:
			branch.AddNode(strconv.Quote(v))
		default:
			branch.AddNode(fmt.Sprintf("%T", v))
		}
	}
}
