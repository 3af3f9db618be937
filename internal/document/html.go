package document

import (
	"fmt"
	"html"
	"strings"
)

// HTML renders the document as markup for the reader-facing pages. The
// output mirrors what the editor renders: semantic block tags, strong/em
// for marks, and the image node's data-attribute form.
func (d Document) HTML() string {
	var b strings.Builder
	for _, n := range d.Content {
		renderNode(&b, n)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Paragraph:
		b.WriteString("<p>")
		renderNodes(b, v.Content)
		b.WriteString("</p>")
	case *Heading:
		level := v.Level
		if level < 1 || level > 6 {
			level = 1
		}
		fmt.Fprintf(b, "<h%d>", level)
		renderNodes(b, v.Content)
		fmt.Fprintf(b, "</h%d>", level)
	case *BulletList:
		b.WriteString("<ul>")
		renderNodes(b, v.Content)
		b.WriteString("</ul>")
	case *OrderedList:
		b.WriteString("<ol>")
		renderNodes(b, v.Content)
		b.WriteString("</ol>")
	case *ListItem:
		b.WriteString("<li>")
		renderNodes(b, v.Content)
		b.WriteString("</li>")
	case *Text:
		renderText(b, v)
	case *Image:
		b.WriteString(v.HTML())
	}
}

func renderNodes(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		renderNode(b, n)
	}
}

func renderText(b *strings.Builder, t *Text) {
	open, close := markTags(t.Marks)
	b.WriteString(open)
	b.WriteString(html.EscapeString(t.Text))
	b.WriteString(close)
}

func markTags(marks []MarkType) (string, string) {
	var open, close strings.Builder
	for _, m := range marks {
		switch m {
		case MarkBold:
			open.WriteString("<strong>")
		case MarkItalic:
			open.WriteString("<em>")
		}
	}
	// Closing tags in reverse order of opening
	for i := len(marks) - 1; i >= 0; i-- {
		switch marks[i] {
		case MarkBold:
			close.WriteString("</strong>")
		case MarkItalic:
			close.WriteString("</em>")
		}
	}
	return open.String(), close.String()
}
