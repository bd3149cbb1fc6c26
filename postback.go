package formscrape

import (
	"net/url"
	"strings"
)

// Postback field names used by server-rendered form frameworks.
const (
	FieldEventTarget        = "__EVENTTARGET"
	FieldEventArgument      = "__EVENTARGUMENT"
	FieldViewState          = "__VIEWSTATE"
	FieldEventValidation    = "__EVENTVALIDATION"
	FieldViewStateEncrypted = "__VIEWSTATEENCRYPTED"
)

// PostbackParameter is a single name/value pair of a postback.
type PostbackParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostbackParameters is an ordered set of postback fields.
type PostbackParameters struct {
	Params []PostbackParameter `json:"params"`
}

// Add appends a parameter, keeping insertion order.
func (p *PostbackParameters) Add(name, value string) {
	p.Params = append(p.Params, PostbackParameter{Name: name, Value: value})
}

// Get returns the value of the first parameter with the given name.
func (p *PostbackParameters) Get(name string) string {
	v, _ := p.Lookup(name)
	return v
}

// Lookup returns the value of the named parameter and whether it exists.
func (p *PostbackParameters) Lookup(name string) (string, bool) {
	for _, param := range p.Params {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

// Has reports whether the named parameter exists.
func (p *PostbackParameters) Has(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// Names returns parameter names in insertion order.
func (p *PostbackParameters) Names() []string {
	names := make([]string, 0, len(p.Params))
	for _, param := range p.Params {
		names = append(names, param.Name)
	}
	return names
}

// Values converts the parameters to url.Values.
func (p *PostbackParameters) Values() url.Values {
	v := make(url.Values, len(p.Params))
	for _, param := range p.Params {
		v.Add(param.Name, param.Value)
	}
	return v
}

// Encode returns the parameters form-encoded in insertion order,
// suitable as an application/x-www-form-urlencoded request body.
func (p *PostbackParameters) Encode() string {
	var b strings.Builder
	for i, param := range p.Params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

// PostbackScanner locates postback state fields in raw markup.
type PostbackScanner interface {
	// ViewState returns the __VIEWSTATE token, or "" when the page has none.
	// Returns EMALFORMED when the marker is present but its value cannot be read.
	ViewState(html string) (string, error)

	// EventValidation returns the __EVENTVALIDATION token, or "" when absent.
	EventValidation(html string) (string, error)

	// Parameters assembles the postback fields for replaying a request
	// that targets the given control.
	Parameters(html string, target string) (*PostbackParameters, error)
}
