// Package dom provides the small element model the validation layer operates
// on. It wraps golang.org/x/net/html nodes with the handful of operations the
// rest of the module needs: attribute access, class toggling, text content,
// and descendant queries. Anything richer belongs to the host page.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Element wraps a node in a parsed document. The zero value is not usable;
// obtain elements through Parse and the query helpers.
type Element struct {
	node *html.Node
}

// Parse reads an HTML document and returns its root element. The root wraps
// the document node, so queries from it cover the whole page.
func Parse(r io.Reader) (*Element, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Element{node: node}, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(markup string) (*Element, error) {
	return Parse(strings.NewReader(markup))
}

// Tag returns the lowercase tag name, or "" for non-element nodes such as the
// document root.
func (e *Element) Tag() string {
	if e == nil || e.node == nil || e.node.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(e.node.Data)
}

// Attr returns the value of the named attribute and whether it is present.
// Attribute names are matched case-insensitively.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.node == nil {
		return "", false
	}
	for _, attr := range e.node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	if e == nil || e.node == nil {
		return
	}
	for i, attr := range e.node.Attr {
		if strings.EqualFold(attr.Key, name) {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: strings.ToLower(name), Val: value})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	if e == nil || e.node == nil {
		return
	}
	kept := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if !strings.EqualFold(attr.Key, name) {
			kept = append(kept, attr)
		}
	}
	e.node.Attr = kept
}

// Text returns the concatenated text content of the element's descendants.
func (e *Element) Text() string {
	if e == nil || e.node == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(e.node)
	return b.String()
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	if e == nil || e.node == nil {
		return
	}
	for e.node.FirstChild != nil {
		e.node.RemoveChild(e.node.FirstChild)
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	if e == nil || e.node == nil || e.node.Parent == nil {
		return nil
	}
	return &Element{node: e.node.Parent}
}

// Find returns every descendant element matching the predicate, in document
// order. The receiver itself is not considered.
func (e *Element) Find(match func(*Element) bool) []*Element {
	var out []*Element
	e.walkDescendants(func(el *Element) bool {
		if match(el) {
			out = append(out, el)
		}
		return false
	})
	return out
}

// FindFirst returns the first descendant element matching the predicate in
// document order, or nil when nothing matches.
func (e *Element) FindFirst(match func(*Element) bool) *Element {
	var found *Element
	e.walkDescendants(func(el *Element) bool {
		if match(el) {
			found = el
			return true
		}
		return false
	})
	return found
}

// walkDescendants visits descendant element nodes depth-first; the visitor
// returns true to stop the walk.
func (e *Element) walkDescendants(visit func(*Element) bool) {
	if e == nil || e.node == nil {
		return
	}
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode {
				if visit(&Element{node: child}) {
					return true
				}
			}
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(e.node)
}

// Render serializes the element's subtree back to HTML.
func (e *Element) Render(w io.Writer) error {
	if e == nil || e.node == nil {
		return fmt.Errorf("dom: render: element is nil")
	}
	if err := html.Render(w, e.node); err != nil {
		return fmt.Errorf("dom: render: %w", err)
	}
	return nil
}
