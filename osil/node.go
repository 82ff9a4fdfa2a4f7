package osil

import (
	"encoding/xml"
	"strconv"
)

// Node is one element of the nonlinear-expression tree written into the
// problem document. The tag is the element name; attributes hold the literal
// value for number nodes, the column index for variable nodes, and an
// optional folded scalar coefficient.
type Node struct {
	Tag      string
	Idx      string // "idx" attribute, variable nodes only
	Coef     string // "coef" attribute, variable nodes with a folded scalar
	Value    string // "value" attribute, number nodes only
	Children []*Node
}

func newNode(tag string) *Node { return &Node{Tag: tag} }

func numberNode(v float64) *Node {
	return &Node{Tag: "number", Value: formatFloat(v)}
}

func variableNode(idx int) *Node {
	return &Node{Tag: "variable", Idx: strconv.Itoa(idx)}
}

// append adds child as the last child of n and returns it.
func (n *Node) append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// MarshalXML writes n with its tag as the element name, ignoring the name
// suggested by the caller.
func (n *Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	if n.Idx != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "idx"}, Value: n.Idx})
	}
	if n.Coef != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "coef"}, Value: n.Coef})
	}
	if n.Value != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "value"}, Value: n.Value})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.MarshalXML(e, start); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// formatFloat renders v the way all numeric attributes and list elements of
// the interchange documents are written.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
