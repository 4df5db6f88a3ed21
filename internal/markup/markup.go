// Package markup wraps antchfx/xmlquery in a small nil-safe node facade.
// The renderer only needs document-order traversal, attribute lookup and
// text-node queries, so nothing xmlquery-specific leaks out of this package.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Node is a read-only view over a parsed markup node.
type Node struct {
	node *xmlquery.Node
}

// maxTextDepth caps recursive text collection so malformed markup cannot
// recurse without bound.
const maxTextDepth = 64

var (
	classExpr  = xpath.MustCompile(".//*[@class]")
	headerExpr = xpath.MustCompile(".//header")
	bodyExpr   = xpath.MustCompile(".//body")
)

// Parse parses a chapter's body markup and returns its root node.
func Parse(src string) (*Node, error) {
	root, err := xmlquery.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return &Node{node: root}, nil
}

// declRe matches XML prologue and doctype-like declarations that sometimes
// appear embedded in footnote label/content fragments and that xmlquery
// rejects mid-document.
var declRe = regexp.MustCompile(`<[?!][^>]*>`)

// ParseFragment parses a markup fragment such as a footnote label or body.
// The fragment is stripped of declaration noise and wrapped in a paragraph
// so a bare top-level text run still ends up inside the tree.
func ParseFragment(src string) (*Node, error) {
	src = declRe.ReplaceAllString(src, "")
	return Parse("<p>" + src + "</p>")
}

// Body returns the document's body container node, or nil if absent.
func (n *Node) Body() *Node {
	return n.queryFirst(bodyExpr)
}

// Header returns the first header descendant, or nil.
func (n *Node) Header() *Node {
	return n.queryFirst(headerExpr)
}

func (n *Node) queryFirst(expr *xpath.Expr) *Node {
	if n == nil || n.node == nil {
		return nil
	}
	found := xmlquery.QuerySelector(n.node, expr)
	if found == nil {
		return nil
	}
	return &Node{node: found}
}

// Name returns the element name, or "" for non-elements.
func (n *Node) Name() string {
	if n == nil || n.node == nil || n.node.Type != xmlquery.ElementNode {
		return ""
	}
	return n.node.Data
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n != nil && n.node != nil &&
		(n.node.Type == xmlquery.TextNode || n.node.Type == xmlquery.CharDataNode)
}

// Text returns the node's direct text: the node's own data for a text node,
// otherwise the concatenated data of its immediate text-node children.
func (n *Node) Text() string {
	if n == nil || n.node == nil {
		return ""
	}
	if n.IsText() {
		return n.node.Data
	}
	var sb strings.Builder
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(name string) string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.SelectAttr(name)
}

// Class returns the node's class attribute.
func (n *Node) Class() string { return n.Attr("class") }

// ID returns the node's id attribute.
func (n *Node) ID() string { return n.Attr("id") }

// Children returns all direct children, text nodes included.
func (n *Node) Children() []*Node {
	if n == nil || n.node == nil {
		return nil
	}
	var out []*Node
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, &Node{node: c})
	}
	return out
}

// DescendantsByClass returns every descendant element whose class attribute
// equals class, in document order.
func (n *Node) DescendantsByClass(class string) []*Node {
	if n == nil || n.node == nil {
		return nil
	}
	var out []*Node
	for _, found := range xmlquery.QuerySelectorAll(n.node, classExpr) {
		if found.SelectAttr("class") == class {
			out = append(out, &Node{node: found})
		}
	}
	return out
}

// DescendantByClass returns the first descendant with the given class, or nil.
func (n *Node) DescendantByClass(class string) *Node {
	nodes := n.DescendantsByClass(class)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// DescendantByID returns the first descendant element with the given id
// attribute, or nil.
func (n *Node) DescendantByID(id string) *Node {
	if n == nil || n.node == nil {
		return nil
	}
	found := xmlquery.FindOne(n.node, fmt.Sprintf(".//*[@id=%q]", id))
	if found == nil {
		return nil
	}
	return &Node{node: found}
}

// CollectText concatenates every text-node descendant depth-first, in
// document order, with no separators.
func (n *Node) CollectText() string {
	var sb strings.Builder
	collectText(n, &sb, 0)
	return sb.String()
}

func collectText(n *Node, sb *strings.Builder, depth int) {
	if n == nil || n.node == nil || depth > maxTextDepth {
		return
	}
	if n.IsText() {
		sb.WriteString(n.node.Data)
	}
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		collectText(&Node{node: c}, sb, depth+1)
	}
}
