package formscrape

// Element holds the attributes shared by every extracted record.
// A nil field means the attribute was absent from the markup.
type Element struct {
	ID    *string `json:"id,omitempty"`
	Class *string `json:"class,omitempty"` // raw attribute value, not split
	Name  *string `json:"name,omitempty"`
}

// TextInput represents an <input type="text"> or <input type="hidden">.
type TextInput struct {
	Element
	Text      *string `json:"text,omitempty"`
	MaxLength *string `json:"maxLength,omitempty"`

	// Label is reserved and always empty.
	Label string `json:"label"`

	// IsEnabled is always true, even when a disabled attribute is present.
	// Consumers rely on the constant; see Disabled for the real state.
	IsEnabled bool `json:"isEnabled"`

	// Disabled reports whether a disabled attribute is present.
	Disabled bool `json:"disabled"`
}

// Checkbox represents an <input type="checkbox">.
type Checkbox struct {
	Element
	IsChecked bool `json:"isChecked"`
	IsEnabled bool `json:"isEnabled"` // presence of the disabled attribute

	// Text is the trimmed text of the node that follows the checkbox.
	// This is a positional heuristic, not a label association, and is nil
	// when the checkbox has no following sibling.
	Text *string `json:"text,omitempty"`
}

// ComboBox represents a <select> element.
type ComboBox struct {
	Element
	Items []ComboItem `json:"items"`
}

// ComboItem represents an <option> of a ComboBox, in document order.
type ComboItem struct {
	Option     string  `json:"option"`
	Value      *string `json:"value,omitempty"`
	IsSelected bool    `json:"isSelected"`
}

// Link represents an <a> element.
type Link struct {
	Element
	Href *string `json:"href,omitempty"`
	Text string  `json:"text"` // trimmed inner markup, not re-parsed
}

// Image represents an <img> element.
type Image struct {
	Element
	Src *string `json:"src,omitempty"`
	Alt *string `json:"alt,omitempty"`
}

// Grid is the normalized representation of a <table>.
type Grid struct {
	Element
	Head  GridHead `json:"head"`
	Lines []Line   `json:"lines"`
}

// GridHead holds the header cells of a grid.
type GridHead struct {
	Columns []ColumnHead `json:"columns"`
}

// ColumnHead is a single header cell.
type ColumnHead struct {
	Text     string  `json:"text"`
	ID       *string `json:"id,omitempty"`
	Position int     `json:"position"`
}

// Line is a body row of a grid.
type Line struct {
	LineNumber int      `json:"lineNumber"`
	Class      *string  `json:"class,omitempty"`
	Columns    []Column `json:"columns"`
}

// Column is a single body cell. Only its trimmed text is kept.
type Column struct {
	Text string `json:"text"`
}

// String returns a pointer to s. Useful for building expected records.
func String(s string) *string {
	return &s
}

// StringValue returns the value of p, or "" when p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
