package formatter

import (
	"strings"

	"github.com/imscore/sh-profile/shdoc"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// AssemblyError reports an internally inconsistent document tree: a contract
// violation between renderer and assembler. It indicates a defect in the
// schema table or the renderer, never a data problem, and must be surfaced
// loudly by the caller.
type AssemblyError struct {
	Path string
	Msg  string
}

func (e *AssemblyError) Error() string {
	return "document assembly failed at " + e.Path + ": " + e.Msg
}

// BuildXML audits doc against the Sh-Data schema contract and serializes it
// into a single well-formed UTF-8 XML string. The fixed element order is the
// tree order the renderer built in. Node text is assumed already escaped;
// the renderer is the only producer of these trees.
func BuildXML(doc *shdoc.Document) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, &AssemblyError{Path: shdoc.PathRoot, Msg: "empty document"}
	}
	if doc.Root.Name != shdoc.PathRoot {
		return nil, &AssemblyError{Path: doc.Root.Name, Msg: "root element must be " + shdoc.PathRoot}
	}
	if err := audit(doc.Root, shdoc.PathRoot); err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	writeNode(&b, doc.Root)
	return []byte(b.String()), nil
}

// audit walks the tree and verifies that every required child named by the
// policy table is present under each rendered parent, and that no element
// mixes text with children.
func audit(n *shdoc.Node, path string) error {
	if n.Text != "" && len(n.Children) > 0 {
		return &AssemblyError{Path: path, Msg: "element carries both text and children"}
	}
	for _, name := range shdoc.RequiredChildren(path) {
		if n.Child(name) == nil {
			return &AssemblyError{Path: path, Msg: "required child " + name + " is missing"}
		}
	}
	for _, c := range n.Children {
		if c.Name == "" {
			return &AssemblyError{Path: path, Msg: "child element with empty name"}
		}
		if err := audit(c, path+"/"+c.Name); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(b *strings.Builder, n *shdoc.Node) {
	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("<")
		b.WriteString(n.Name)
		b.WriteString("/>")
		return
	}
	b.WriteString("<")
	b.WriteString(n.Name)
	b.WriteString(">")
	if len(n.Children) > 0 {
		for _, c := range n.Children {
			writeNode(b, c)
		}
	} else {
		b.WriteString(n.Text)
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteString(">")
}
