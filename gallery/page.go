package gallery

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page builds a minimal document whose body holds an empty
// #mascot-container element.
func Page(title string) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	t := element(atom.Title)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)

	body := element(atom.Body)
	container := element(atom.Div)
	container.Attr = []html.Attribute{{Key: "id", Val: ContainerID}}
	body.AppendChild(container)

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	return doc
}

// WritePage writes a complete page with the given mascots rendered into it.
func WritePage(w io.Writer, title string, mascots []Mascot) error {
	doc := Page(title)
	if err := Render(doc, mascots); err != nil {
		return err
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("gallery: render: %w", err)
	}
	return nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
