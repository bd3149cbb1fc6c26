package formscrape

// ComponentKind identifies a kind of form element.
type ComponentKind string

// Supported component kinds.
const (
	KindInputText     ComponentKind = "input-text"
	KindInputCheckbox ComponentKind = "input-checkbox"
	KindInputHidden   ComponentKind = "input-hidden"
	KindComboBox      ComponentKind = "combo-box"
	KindDataGrid      ComponentKind = "data-grid"
	KindLinkButton    ComponentKind = "link-button"
	KindImage         ComponentKind = "image"
)

// ComponentKinds returns all supported kinds in a stable order.
func ComponentKinds() []ComponentKind {
	return []ComponentKind{
		KindInputText,
		KindInputCheckbox,
		KindInputHidden,
		KindComboBox,
		KindDataGrid,
		KindLinkButton,
		KindImage,
	}
}

// ParseComponentKind returns the kind named by s.
// Returns EINVALID if s does not name a supported kind.
func ParseComponentKind(s string) (ComponentKind, error) {
	for _, k := range ComponentKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", Errorf(EINVALID, "unknown component kind %q", s)
}

// ComponentResponse holds the records of a single component kind.
// Only the field matching the requested kind is populated; a nil field
// means the kind was not requested or nothing matched.
type ComponentResponse struct {
	Kind        ComponentKind `json:"kind"`
	InputTexts  []TextInput   `json:"inputTexts,omitempty"`
	InputHidden []TextInput   `json:"inputHidden,omitempty"`
	Checkboxes  []Checkbox    `json:"checkboxes,omitempty"`
	ComboBoxes  []ComboBox    `json:"comboBoxes,omitempty"`
	Grids       []Grid        `json:"grids,omitempty"`
	LinkButtons []Link        `json:"linkButtons,omitempty"`
	Images      []Image       `json:"images,omitempty"`
}

// Len returns the number of records held for the response's kind.
func (r *ComponentResponse) Len() int {
	if r == nil {
		return 0
	}
	switch r.Kind {
	case KindInputText:
		return len(r.InputTexts)
	case KindInputHidden:
		return len(r.InputHidden)
	case KindInputCheckbox:
		return len(r.Checkboxes)
	case KindComboBox:
		return len(r.ComboBoxes)
	case KindDataGrid:
		return len(r.Grids)
	case KindLinkButton:
		return len(r.LinkButtons)
	case KindImage:
		return len(r.Images)
	}
	return 0
}

// ComponentExtractor extracts form components of one kind from HTML.
type ComponentExtractor interface {
	// ExtractComponents parses html and returns the records of kind.
	// Returns EINVALID for an unknown kind; the response is nil in that case.
	ExtractComponents(html string, kind ComponentKind) (*ComponentResponse, error)
}

// Sanitizer removes active content (scripts, inline handlers, stylesheets)
// from HTML before extraction.
type Sanitizer interface {
	Sanitize(html string) (string, error)
}
