package document

import "fmt"

// ValidateOptions configures per-context constraints. The allowed heading
// levels differ between calling contexts and must be honored per context,
// not unified.
type ValidateOptions struct {
	HeadingLevels []int
}

// NewArticleOptions is the constraint set for the new-article flow.
func NewArticleOptions() ValidateOptions {
	return ValidateOptions{HeadingLevels: []int{1, 2, 3}}
}

// EditorOptions is the constraint set for the editor flow.
func EditorOptions() ValidateOptions {
	return ValidateOptions{HeadingLevels: []int{1, 2, 3, 4}}
}

// Validate checks the tree against the node vocabulary's attribute
// constraints. An empty document is rejected: authoring always starts from
// at least one paragraph.
func (d Document) Validate(opts ValidateOptions) error {
	if len(d.Content) == 0 {
		return fmt.Errorf("document has no content")
	}
	for _, n := range d.Content {
		if err := validateNode(n, opts); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n Node, opts ValidateOptions) error {
	switch v := n.(type) {
	case *Heading:
		if !containsLevel(opts.HeadingLevels, v.Level) {
			return fmt.Errorf("heading level %d not allowed (allowed: %v)", v.Level, opts.HeadingLevels)
		}
	case *Text:
		for _, m := range v.Marks {
			if m != MarkBold && m != MarkItalic {
				return fmt.Errorf("unknown mark type %q", m)
			}
		}
	case *Image:
		if v.Src == "" {
			return fmt.Errorf("image node requires src")
		}
		if !IsValidPosition(v.Position) {
			return fmt.Errorf("invalid image position %q", v.Position)
		}
		if v.Width < 0 {
			return fmt.Errorf("image width must be positive, got %d", v.Width)
		}
	}

	for _, c := range children(n) {
		if err := validateNode(c, opts); err != nil {
			return err
		}
	}
	return nil
}

func containsLevel(levels []int, level int) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
