package document

import "strings"

// Paragraph is a block of inline content.
type Paragraph struct {
	Content []Node
}

func (*Paragraph) Kind() Kind { return KindParagraph }

// Heading is a section heading. Level is constrained per calling context:
// the new-article flow allows 1-3, the editor flow allows 1-4.
type Heading struct {
	Level   int
	Content []Node
}

func (*Heading) Kind() Kind { return KindHeading }

// BulletList is an unordered list of list items.
type BulletList struct {
	Content []Node
}

func (*BulletList) Kind() Kind { return KindBulletList }

// OrderedList is a numbered list of list items.
type OrderedList struct {
	Content []Node
}

func (*OrderedList) Kind() Kind { return KindOrderedList }

// ListItem is one entry of a bullet or ordered list.
type ListItem struct {
	Content []Node
}

func (*ListItem) Kind() Kind { return KindListItem }

// Text carries literal string content plus zero or more formatting marks.
type Text struct {
	Text  string
	Marks []MarkType
}

func (*Text) Kind() Kind { return KindText }

// children returns the child nodes of a block node, or nil for leaves.
func children(n Node) []Node {
	switch v := n.(type) {
	case *Paragraph:
		return v.Content
	case *Heading:
		return v.Content
	case *BulletList:
		return v.Content
	case *OrderedList:
		return v.Content
	case *ListItem:
		return v.Content
	default:
		return nil
	}
}

// PlainText extracts the text content of the document: depth-first, text
// nodes yield their literal text, block nodes join their children's text
// with a single space. Pure, used for previews only.
func (d Document) PlainText() string {
	parts := make([]string, 0, len(d.Content))
	for _, n := range d.Content {
		parts = append(parts, plainText(n))
	}
	return strings.Join(parts, " ")
}

func plainText(n Node) string {
	if t, ok := n.(*Text); ok {
		return t.Text
	}
	kids := children(n)
	if len(kids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(kids))
	for _, c := range kids {
		parts = append(parts, plainText(c))
	}
	return strings.Join(parts, " ")
}

// Preview returns the document's plain text truncated to limit runes, with
// a trailing ellipsis when truncated.
func (d Document) Preview(limit int) string {
	text := d.PlainText()
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
