package document

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Position is the horizontal placement of an embedded image.
type Position string

const (
	PositionStart  Position = "start"
	PositionCenter Position = "center"
	PositionEnd    Position = "end"
)

// ValidPositions contains all valid image positions.
var ValidPositions = []Position{PositionStart, PositionCenter, PositionEnd}

// IsValidPosition checks if a position is valid.
func IsValidPosition(p Position) bool {
	for _, v := range ValidPositions {
		if p == v {
			return true
		}
	}
	return false
}

// Image is the custom block node for embedded images. On top of the
// standard src/alt/title attributes it carries layout metadata: Position
// (default start) and Width in pixels (0 means natural width). Both must
// survive every serialization round-trip.
type Image struct {
	Src      string
	Alt      string
	Title    string
	Position Position
	Width    int
}

func (*Image) Kind() Kind { return KindImage }

func (img *Image) attrs() map[string]any {
	attrs := map[string]any{"src": img.Src}
	if img.Alt != "" {
		attrs["alt"] = img.Alt
	}
	if img.Title != "" {
		attrs["title"] = img.Title
	}
	if img.Position != "" {
		attrs["position"] = string(img.Position)
	}
	if img.Width > 0 {
		attrs["width"] = img.Width
	}
	return attrs
}

func imageFromAttrs(attrs map[string]any) *Image {
	img := &Image{
		Src:      stringAttr(attrs, "src"),
		Alt:      stringAttr(attrs, "alt"),
		Title:    stringAttr(attrs, "title"),
		Position: Position(stringAttr(attrs, "position")),
		Width:    intAttr(attrs, "width", 0),
	}
	if img.Position == "" {
		img.Position = PositionStart
	}
	return img
}

var positionClasses = map[Position]string{
	PositionStart:  "flex justify-start",
	PositionCenter: "flex justify-center",
	PositionEnd:    "flex justify-end",
}

// HTML renders the image as markup. Position and Width are encoded as
// data-position and data-width attributes on the wrapper so they can be
// decoded back identically; generic img tags do not carry them.
func (img *Image) HTML() string {
	class, ok := positionClasses[img.Position]
	if !ok {
		class = positionClasses[PositionStart]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s my-4" data-position="%s"`, class, html.EscapeString(string(img.Position)))
	if img.Width > 0 {
		fmt.Fprintf(&b, ` data-width="%d"`, img.Width)
	}
	b.WriteString(">")

	fmt.Fprintf(&b, `<img src="%s"`, html.EscapeString(img.Src))
	if img.Alt != "" {
		fmt.Fprintf(&b, ` alt="%s"`, html.EscapeString(img.Alt))
	}
	if img.Title != "" {
		fmt.Fprintf(&b, ` title="%s"`, html.EscapeString(img.Title))
	}
	if img.Width > 0 {
		fmt.Fprintf(&b, ` style="width: %dpx;"`, img.Width)
	}
	b.WriteString("></div>")

	return b.String()
}

// ParseImageHTML decodes an image node from markup produced by HTML. The
// data attributes are read from the img tag itself or its wrapper, and a
// missing position decodes to start.
func ParseImageHTML(markup string) (*Image, error) {
	root, err := xhtml.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse image markup: %w", err)
	}

	imgNode := findElement(root, "img")
	if imgNode == nil {
		return nil, fmt.Errorf("parse image markup: no img tag found")
	}

	img := &Image{
		Src:      nodeAttr(imgNode, "src"),
		Alt:      nodeAttr(imgNode, "alt"),
		Title:    nodeAttr(imgNode, "title"),
		Position: PositionStart,
	}

	position := nodeAttr(imgNode, "data-position")
	if position == "" && imgNode.Parent != nil {
		position = nodeAttr(imgNode.Parent, "data-position")
	}
	if position != "" {
		img.Position = Position(position)
	}

	width := nodeAttr(imgNode, "data-width")
	if width == "" && imgNode.Parent != nil {
		width = nodeAttr(imgNode.Parent, "data-width")
	}
	if width != "" {
		w, err := strconv.Atoi(width)
		if err != nil {
			return nil, fmt.Errorf("parse image markup: invalid data-width %q", width)
		}
		img.Width = w
	}

	return img, nil
}

func findElement(n *xhtml.Node, tag string) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func nodeAttr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
