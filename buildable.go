package pinview

// Buildable is implemented by everything that can render itself to markup.
//
// Css, Style, Attribute, Attribution, Content and Builder all implement it,
// and Content accepts any Buildable as an item, so user types can take part
// in a builder tree by implementing this single method.
type Buildable interface {
	Build() string
}

// BuildableFunc adapts a plain function to the Buildable interface.
type BuildableFunc func() string

// Build calls f.
func (f BuildableFunc) Build() string {
	return f()
}

// Raw is a pre-formatted fragment.
//
// As a content item it is emitted verbatim. As an attribute value it is
// rendered as name="value" without classification or placeholder
// substitution.
type Raw string

// Build returns the fragment unchanged.
func (r Raw) Build() string {
	return string(r)
}
