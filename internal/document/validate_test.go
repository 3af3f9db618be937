package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	textPara := &Paragraph{Content: []Node{&Text{Text: "hello"}}}

	t.Run("valid document passes", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Heading{Level: 2, Content: []Node{&Text{Text: "h"}}},
			textPara,
			&Image{Src: "https://cdn.example.com/a.png", Position: PositionStart},
		}}
		assert.NoError(t, doc.Validate(EditorOptions()))
	})

	t.Run("empty document rejected", func(t *testing.T) {
		doc := Document{}
		require.Error(t, doc.Validate(EditorOptions()))
	})

	t.Run("heading level 4 allowed in editor flow only", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Heading{Level: 4, Content: []Node{&Text{Text: "deep"}}},
		}}
		assert.NoError(t, doc.Validate(EditorOptions()))
		assert.Error(t, doc.Validate(NewArticleOptions()))
	})

	t.Run("heading level outside both sets rejected", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Heading{Level: 5, Content: []Node{&Text{Text: "h"}}},
		}}
		assert.Error(t, doc.Validate(EditorOptions()))
	})

	t.Run("image without src rejected", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Image{Position: PositionCenter},
		}}
		assert.Error(t, doc.Validate(EditorOptions()))
	})

	t.Run("image with bogus position rejected", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Image{Src: "a.png", Position: Position("middle")},
		}}
		assert.Error(t, doc.Validate(EditorOptions()))
	})

	t.Run("unknown mark rejected", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Paragraph{Content: []Node{&Text{Text: "x", Marks: []MarkType{"underline"}}}},
		}}
		assert.Error(t, doc.Validate(EditorOptions()))
	})

	t.Run("nested violations found", func(t *testing.T) {
		doc := Document{Content: []Node{
			&BulletList{Content: []Node{
				&ListItem{Content: []Node{
					&Heading{Level: 6, Content: []Node{&Text{Text: "too deep"}}},
				}},
			}},
		}}
		assert.Error(t, doc.Validate(EditorOptions()))
	})
}

func TestDocument_HTML(t *testing.T) {
	doc := Document{Content: []Node{
		&Heading{Level: 1, Content: []Node{&Text{Text: "Title"}}},
		&Paragraph{Content: []Node{
			&Text{Text: "plain "},
			&Text{Text: "bold", Marks: []MarkType{MarkBold}},
			&Text{Text: " & ", Marks: nil},
			&Text{Text: "both", Marks: []MarkType{MarkBold, MarkItalic}},
		}},
		&OrderedList{Content: []Node{
			&ListItem{Content: []Node{&Paragraph{Content: []Node{&Text{Text: "one"}}}}},
		}},
	}}

	got := doc.HTML()
	assert.Equal(t,
		"<h1>Title</h1>"+
			"<p>plain <strong>bold</strong> &amp; <strong><em>both</em></strong></p>"+
			"<ol><li><p>one</p></li></ol>",
		got)
}
