// Package gallery appends a fixed list of mascot images into an HTML
// container element.
//
// The document is handled as a golang.org/x/net/html node tree, so the same
// code serves server-side page generation and tests:
//
//	doc, _ := html.Parse(strings.NewReader(page))
//	if err := gallery.Render(doc, gallery.Mascots); err != nil {
//		// the page has no #mascot-container
//	}
//	html.Render(w, doc)
package gallery

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ContainerID is the id of the element mascots are appended into.
const ContainerID = "mascot-container"

// ImageClass is the class applied to every mascot image.
const ImageClass = "mascot-img"

// ErrNoContainer is returned when the document has no element with
// ContainerID.
var ErrNoContainer = errors.New("gallery: no #" + ContainerID + " element")

// Mascot is a named image.
type Mascot struct {
	Name string
	URL  string
}

// Mascots is the stock gallery, in display order.
var Mascots = []Mascot{
	{Name: "Original Octocat", URL: "https://octodex.github.com/images/original.png"},
	{Name: "Supportcat", URL: "https://octodex.github.com/images/supportcat.png"},
	{Name: "Professortocat", URL: "https://octodex.github.com/images/Professortocat_v2.png"},
}

// Render appends one <img> per mascot to the #mascot-container element of
// doc, in list order. Each image gets the mascot URL as src, its name as alt
// and title, and ImageClass as class. Existing children are left in place.
func Render(doc *html.Node, mascots []Mascot) error {
	container := FindByID(doc, ContainerID)
	if container == nil {
		return ErrNoContainer
	}
	for _, m := range mascots {
		container.AppendChild(imageNode(m))
	}
	return nil
}

// RenderHTML parses a document from r, renders the mascots into it and
// writes the result to w.
func RenderHTML(r io.Reader, w io.Writer, mascots []Mascot) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("gallery: parse: %w", err)
	}
	if err := Render(doc, mascots); err != nil {
		return err
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("gallery: render: %w", err)
	}
	return nil
}

// FindByID returns the first element in n's subtree, n included, whose id
// attribute equals id, or nil.
func FindByID(n *html.Node, id string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Images returns the <img> children of container in document order.
func Images(container *html.Node) []*html.Node {
	var imgs []*html.Node
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Img {
			imgs = append(imgs, c)
		}
	}
	return imgs
}

// Attr returns the value of the named attribute of n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func imageNode(m Mascot) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     "img",
		Attr: []html.Attribute{
			{Key: "src", Val: m.URL},
			{Key: "alt", Val: m.Name},
			{Key: "title", Val: m.Name},
			{Key: "class", Val: ImageClass},
		},
	}
}
