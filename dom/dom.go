// Package dom implements the bank client document on top of an HTML node tree.
//
// Templates are <template> elements: their content is never visible to
// element lookups, and is copied in the document by Mount and SetRows.
package dom

import (
	_ "embed"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/bank"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed index.html
var index string

// Document is an HTML document the bank client renders into.
type Document struct {
	root *html.Node
}

// check that a Document is a valid bank view.
var _ bank.View = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Default returns a new copy of the bank client document.
func Default() *Document {
	d, err := Parse(strings.NewReader(index))
	if err != nil {
		// the embedded document is part of the program.
		panic(err)
	}
	return d
}

// element returns the element with the given id, outside of any template.
func (d *Document) element(id bank.ElementID) (*html.Node, error) {
	if n := find(d.root, func(n *html.Node) bool { return attr(n, "id") == string(id) }, false); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("element %q: %w", id, bank.ErrNoElement)
}

// template returns the <template> element with the given id.
func (d *Document) template(id string) (*html.Node, error) {
	if n := find(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Template && attr(n, "id") == id }, false); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("template %q: %w", id, bank.ErrNoElement)
}

// Mount replaces the content of the "app" element with a copy of the template.
func (d *Document) Mount(template string) error {
	tpl, err := d.template(template)
	if err != nil {
		return err
	}
	app, err := d.element(bank.AppRoot)
	if err != nil {
		return err
	}
	removeChildren(app)
	for c := tpl.FirstChild; c != nil; c = c.NextSibling {
		app.AppendChild(clone(c))
	}
	return nil
}

// SetText replaces the content of the element with text.
func (d *Document) SetText(id bank.ElementID, text string) error {
	n, err := d.element(id)
	if err != nil {
		return err
	}
	setText(n, text)
	return nil
}

// SetRows replaces the content of the element with one copy of the row
// template per row. The first <tr> of the template receives the cells.
func (d *Document) SetRows(id bank.ElementID, template string, rows [][]string) error {
	container, err := d.element(id)
	if err != nil {
		return err
	}
	tpl, err := d.template(template)
	if err != nil {
		return err
	}

	var fragment []*html.Node
	for _, row := range rows {
		var tr *html.Node
		for c := tpl.FirstChild; c != nil; c = c.NextSibling {
			n := clone(c)
			if tr == nil {
				tr = find(n, func(n *html.Node) bool { return n.DataAtom == atom.Tr }, true)
			}
			fragment = append(fragment, n)
		}
		if tr == nil {
			return fmt.Errorf("row template %q has no <tr>: %w", template, bank.ErrNoElement)
		}
		for i, cell := range children(tr) {
			if i >= len(row) {
				break
			}
			setText(cell, row[i])
		}
	}

	removeChildren(container)
	for _, n := range fragment {
		container.AppendChild(n)
	}
	return nil
}

// Form returns the values of the named controls inside the form.
func (d *Document) Form(id bank.ElementID) (map[string]string, error) {
	form, err := d.element(id)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string)
	for n := range controls(form) {
		if n.DataAtom == atom.Textarea {
			values[attr(n, "name")] = textContent(n)
			continue
		}
		values[attr(n, "name")] = attr(n, "value")
	}
	return values, nil
}

// SetFormValue sets the value of the named control inside the form, as if
// the user typed it.
func (d *Document) SetFormValue(id bank.ElementID, name, value string) error {
	form, err := d.element(id)
	if err != nil {
		return err
	}
	for n := range controls(form) {
		if attr(n, "name") != name {
			continue
		}
		if n.DataAtom == atom.Textarea {
			setText(n, value)
		} else {
			setAttr(n, "value", value)
		}
		return nil
	}
	return fmt.Errorf("control %q in %q: %w", name, id, bank.ErrNoElement)
}

// Text returns the text content of the element.
func (d *Document) Text(id bank.ElementID) (string, error) {
	n, err := d.element(id)
	if err != nil {
		return "", err
	}
	return textContent(n), nil
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderElement writes the content of the element as HTML.
func (d *Document) RenderElement(w io.Writer, id bank.ElementID) error {
	n, err := d.element(id)
	if err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// controls iterates over the named form controls below n.
func controls(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(n *html.Node) bool {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode {
					continue
				}
				switch c.DataAtom {
				case atom.Input, atom.Select, atom.Textarea:
					if attr(c, "name") != "" && !yield(c) {
						return false
					}
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

// find returns the first element, in document order, below n (n included)
// that matches. Template content is only searched when inTemplates is true.
func find(n *html.Node, match func(*html.Node) bool, inTemplates bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	if n.DataAtom == atom.Template && n.Type == html.ElementNode && !inTemplates {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := find(c, match, inTemplates); m != nil {
			return m
		}
	}
	return nil
}

// children returns the element children of n.
func children(n *html.Node) []*html.Node {
	var res []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			res = append(res, c)
		}
	}
	return res
}

// clone returns a deep copy of n, detached from any tree.
func clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for k := n.FirstChild; k != nil; k = k.NextSibling {
		c.AppendChild(clone(k))
	}
	return c
}

// removeChildren removes all the children of n.
func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

func setText(n *html.Node, text string) {
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
