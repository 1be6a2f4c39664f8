package shdoc

// Node is a single element of a rendered Sh-Data tree. Text holds escaped
// character data and is meaningful for leaf nodes only; an element never
// carries both text and children.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Append adds c as the last child, preserving the fixed schema order the
// renderer builds in.
func (n *Node) Append(c *Node) {
	n.Children = append(n.Children, c)
}

// Child returns the first child with the given element name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Remove drops the first child with the given element name and reports
// whether anything was removed.
func (n *Node) Remove(name string) bool {
	for i, c := range n.Children {
		if c.Name == name {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Document is a complete rendered Sh-Data tree.
type Document struct {
	Root *Node
}
