// Package document implements the typed content tree produced by the
// rich-text editor. The wire format is the editor's JSON: a root "doc" node
// holding an ordered sequence of block nodes, each tagged with a "type"
// field from a closed vocabulary.
package document

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a node type in the content tree.
type Kind string

const (
	KindDoc         Kind = "doc"
	KindParagraph   Kind = "paragraph"
	KindHeading     Kind = "heading"
	KindBulletList  Kind = "bulletList"
	KindOrderedList Kind = "orderedList"
	KindListItem    Kind = "listItem"
	KindText        Kind = "text"
	KindImage       Kind = "positionableImage"
)

// MarkType is an inline formatting mark on a text node.
type MarkType string

const (
	MarkBold   MarkType = "bold"
	MarkItalic MarkType = "italic"
)

// Node is a single node in the content tree.
type Node interface {
	Kind() Kind
}

// Document is the root of a content tree.
type Document struct {
	Content []Node
}

// New returns an empty document: a single empty paragraph, matching what
// the editor produces when authoring starts.
func New() Document {
	return Document{Content: []Node{&Paragraph{}}}
}

// envelope is the generic JSON shape shared by all node kinds.
type envelope struct {
	Type    Kind              `json:"type"`
	Attrs   map[string]any    `json:"attrs,omitempty"`
	Text    string            `json:"text,omitempty"`
	Marks   []markEnvelope    `json:"marks,omitempty"`
	Content []json.RawMessage `json:"content,omitempty"`
}

type markEnvelope struct {
	Type MarkType `json:"type"`
}

// MarshalJSON serializes the document in the editor's wire format.
func (d Document) MarshalJSON() ([]byte, error) {
	env := envelope{Type: KindDoc}
	content, err := marshalNodes(d.Content)
	if err != nil {
		return nil, err
	}
	env.Content = content
	return json.Marshal(env)
}

// UnmarshalJSON parses the editor's wire format. Unknown node types are
// rejected so malformed content never reaches the repository.
func (d *Document) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if env.Type != KindDoc {
		return fmt.Errorf("parse document: root node must be %q, got %q", KindDoc, env.Type)
	}
	content, err := unmarshalNodes(env.Content)
	if err != nil {
		return err
	}
	d.Content = content
	return nil
}

func marshalNodes(nodes []Node) ([]json.RawMessage, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]json.RawMessage, 0, len(nodes))
	for _, n := range nodes {
		b, err := marshalNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func marshalNode(n Node) ([]byte, error) {
	env := envelope{Type: n.Kind()}

	switch v := n.(type) {
	case *Paragraph:
		content, err := marshalNodes(v.Content)
		if err != nil {
			return nil, err
		}
		env.Content = content
	case *Heading:
		env.Attrs = map[string]any{"level": v.Level}
		content, err := marshalNodes(v.Content)
		if err != nil {
			return nil, err
		}
		env.Content = content
	case *BulletList:
		content, err := marshalNodes(v.Content)
		if err != nil {
			return nil, err
		}
		env.Content = content
	case *OrderedList:
		content, err := marshalNodes(v.Content)
		if err != nil {
			return nil, err
		}
		env.Content = content
	case *ListItem:
		content, err := marshalNodes(v.Content)
		if err != nil {
			return nil, err
		}
		env.Content = content
	case *Text:
		env.Text = v.Text
		for _, m := range v.Marks {
			env.Marks = append(env.Marks, markEnvelope{Type: m})
		}
	case *Image:
		env.Attrs = v.attrs()
	default:
		return nil, fmt.Errorf("marshal node: unsupported node type %T", n)
	}

	return json.Marshal(env)
}

func unmarshalNodes(raw []json.RawMessage) ([]Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	nodes := make([]Node, 0, len(raw))
	for _, r := range raw {
		n, err := unmarshalNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func unmarshalNode(data json.RawMessage) (Node, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse node: %w", err)
	}

	switch env.Type {
	case KindParagraph:
		content, err := unmarshalNodes(env.Content)
		if err != nil {
			return nil, err
		}
		return &Paragraph{Content: content}, nil
	case KindHeading:
		content, err := unmarshalNodes(env.Content)
		if err != nil {
			return nil, err
		}
		return &Heading{Level: intAttr(env.Attrs, "level", 1), Content: content}, nil
	case KindBulletList:
		content, err := unmarshalNodes(env.Content)
		if err != nil {
			return nil, err
		}
		return &BulletList{Content: content}, nil
	case KindOrderedList:
		content, err := unmarshalNodes(env.Content)
		if err != nil {
			return nil, err
		}
		return &OrderedList{Content: content}, nil
	case KindListItem:
		content, err := unmarshalNodes(env.Content)
		if err != nil {
			return nil, err
		}
		return &ListItem{Content: content}, nil
	case KindText:
		t := &Text{Text: env.Text}
		for _, m := range env.Marks {
			t.Marks = append(t.Marks, m.Type)
		}
		return t, nil
	case KindImage:
		return imageFromAttrs(env.Attrs), nil
	default:
		return nil, fmt.Errorf("parse node: unknown node type %q", env.Type)
	}
}

func intAttr(attrs map[string]any, key string, fallback int) int {
	v, ok := attrs[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}

func stringAttr(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}
