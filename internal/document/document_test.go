package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := Document{
		Content: []Node{
			&Heading{Level: 2, Content: []Node{
				&Text{Text: "Intro"},
			}},
			&Paragraph{Content: []Node{
				&Text{Text: "Hello "},
				&Text{Text: "world", Marks: []MarkType{MarkBold, MarkItalic}},
			}},
			&BulletList{Content: []Node{
				&ListItem{Content: []Node{
					&Paragraph{Content: []Node{&Text{Text: "first"}}},
				}},
				&ListItem{Content: []Node{
					&Paragraph{Content: []Node{&Text{Text: "second"}}},
				}},
			}},
			&Image{Src: "https://cdn.example.com/a.png", Alt: "diagram", Position: PositionCenter, Width: 400},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Content, 4)

	heading, ok := decoded.Content[0].(*Heading)
	require.True(t, ok)
	assert.Equal(t, 2, heading.Level)

	para, ok := decoded.Content[1].(*Paragraph)
	require.True(t, ok)
	require.Len(t, para.Content, 2)
	bold, ok := para.Content[1].(*Text)
	require.True(t, ok)
	assert.Equal(t, "world", bold.Text)
	assert.Equal(t, []MarkType{MarkBold, MarkItalic}, bold.Marks)

	list, ok := decoded.Content[2].(*BulletList)
	require.True(t, ok)
	assert.Len(t, list.Content, 2)

	img, ok := decoded.Content[3].(*Image)
	require.True(t, ok)
	assert.Equal(t, PositionCenter, img.Position)
	assert.Equal(t, 400, img.Width)
}

func TestDocument_UnmarshalWireFormat(t *testing.T) {
	// Exactly what the editor sends on save
	raw := `{
		"type": "doc",
		"content": [
			{"type": "heading", "attrs": {"level": 1}, "content": [{"type": "text", "text": "Title"}]},
			{"type": "paragraph", "content": [{"type": "text", "text": "Body"}]},
			{"type": "positionableImage", "attrs": {"src": "https://cdn.example.com/x.png"}}
		]
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.Len(t, doc.Content, 3)

	img, ok := doc.Content[2].(*Image)
	require.True(t, ok)
	assert.Equal(t, PositionStart, img.Position, "omitted position must default to start")
	assert.Equal(t, 0, img.Width)
}

func TestDocument_UnmarshalRejectsUnknownNodeType(t *testing.T) {
	raw := `{"type": "doc", "content": [{"type": "codeBlock", "content": []}]}`
	var doc Document
	err := json.Unmarshal([]byte(raw), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node type")
}

func TestDocument_UnmarshalRejectsNonDocRoot(t *testing.T) {
	raw := `{"type": "paragraph", "content": []}`
	var doc Document
	err := json.Unmarshal([]byte(raw), &doc)
	require.Error(t, err)
}

func TestDocument_PlainText(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "single paragraph with single text node",
			doc: Document{Content: []Node{
				&Paragraph{Content: []Node{&Text{Text: "abc"}}},
			}},
			want: "abc",
		},
		{
			name: "empty document",
			doc:  Document{},
			want: "",
		},
		{
			name: "children joined with single space",
			doc: Document{Content: []Node{
				&Paragraph{Content: []Node{
					&Text{Text: "one"},
					&Text{Text: "two"},
				}},
				&Paragraph{Content: []Node{&Text{Text: "three"}}},
			}},
			want: "one two three",
		},
		{
			name: "image nodes contribute nothing",
			doc: Document{Content: []Node{
				&Image{Src: "https://cdn.example.com/a.png"},
			}},
			want: "",
		},
		{
			name: "nested list content",
			doc: Document{Content: []Node{
				&BulletList{Content: []Node{
					&ListItem{Content: []Node{
						&Paragraph{Content: []Node{&Text{Text: "item"}}},
					}},
				}},
			}},
			want: "item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.PlainText())
		})
	}
}

func TestDocument_Preview(t *testing.T) {
	long := make([]rune, 0, 250)
	for i := 0; i < 250; i++ {
		long = append(long, 'x')
	}
	doc := Document{Content: []Node{
		&Paragraph{Content: []Node{&Text{Text: string(long)}}},
	}}

	preview := doc.Preview(200)
	assert.Len(t, []rune(preview), 203)
	assert.Equal(t, "...", preview[len(preview)-3:])

	short := Document{Content: []Node{
		&Paragraph{Content: []Node{&Text{Text: "short"}}},
	}}
	assert.Equal(t, "short", short.Preview(200))
}

func TestNew(t *testing.T) {
	doc := New()
	require.Len(t, doc.Content, 1)
	_, ok := doc.Content[0].(*Paragraph)
	assert.True(t, ok)
	assert.Equal(t, "", doc.PlainText())
}
