package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_JSONRoundTrip(t *testing.T) {
	t.Run("position and width survive", func(t *testing.T) {
		doc := Document{Content: []Node{
			&Image{Src: "https://cdn.example.com/a.png", Position: PositionCenter, Width: 400},
		}}

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var decoded Document
		require.NoError(t, json.Unmarshal(data, &decoded))

		img, ok := decoded.Content[0].(*Image)
		require.True(t, ok)
		assert.Equal(t, PositionCenter, img.Position)
		assert.Equal(t, 400, img.Width)
	})

	t.Run("omitted position defaults to start", func(t *testing.T) {
		raw := `{"type": "doc", "content": [{"type": "positionableImage", "attrs": {"src": "https://cdn.example.com/a.png", "width": 250}}]}`

		var decoded Document
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))

		img, ok := decoded.Content[0].(*Image)
		require.True(t, ok)
		assert.Equal(t, PositionStart, img.Position)
		assert.Equal(t, 250, img.Width)
	})
}

func TestImage_HTMLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		img  Image
	}{
		{
			name: "center with width",
			img:  Image{Src: "https://cdn.example.com/a.png", Alt: "diagram", Title: "Diagram", Position: PositionCenter, Width: 400},
		},
		{
			name: "end without width",
			img:  Image{Src: "https://cdn.example.com/b.jpg", Position: PositionEnd},
		},
		{
			name: "start minimal",
			img:  Image{Src: "/uploads/c.png", Position: PositionStart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := tt.img.HTML()
			decoded, err := ParseImageHTML(markup)
			require.NoError(t, err)
			assert.Equal(t, tt.img.Src, decoded.Src)
			assert.Equal(t, tt.img.Alt, decoded.Alt)
			assert.Equal(t, tt.img.Title, decoded.Title)
			assert.Equal(t, tt.img.Position, decoded.Position, "position must round-trip losslessly")
			assert.Equal(t, tt.img.Width, decoded.Width, "width must round-trip losslessly")
		})
	}
}

func TestParseImageHTML(t *testing.T) {
	t.Run("reads data attributes from wrapper", func(t *testing.T) {
		markup := `<div data-position="center" data-width="300"><img src="https://cdn.example.com/a.png"></div>`
		img, err := ParseImageHTML(markup)
		require.NoError(t, err)
		assert.Equal(t, PositionCenter, img.Position)
		assert.Equal(t, 300, img.Width)
	})

	t.Run("plain img tag defaults to start", func(t *testing.T) {
		img, err := ParseImageHTML(`<img src="https://cdn.example.com/a.png" alt="x">`)
		require.NoError(t, err)
		assert.Equal(t, PositionStart, img.Position)
		assert.Equal(t, 0, img.Width)
		assert.Equal(t, "x", img.Alt)
	})

	t.Run("missing img tag fails", func(t *testing.T) {
		_, err := ParseImageHTML(`<div>no image here</div>`)
		require.Error(t, err)
	})

	t.Run("bad width fails", func(t *testing.T) {
		_, err := ParseImageHTML(`<img src="a.png" data-width="wide">`)
		require.Error(t, err)
	})
}
