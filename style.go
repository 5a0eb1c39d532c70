package pinview

import (
	"errors"
	"fmt"
	"strings"
)

// Declaration is a single style property and its value.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered mapping of style properties to values.
//
// Adding a property that already exists overwrites its value in place, so
// the rendering order is the order in which properties were first added.
type Style struct {
	items []Declaration
	errs  []error
}

// NewStyle creates a Style from the given inputs. See Add for accepted input types.
func NewStyle(styles ...any) *Style {
	return (&Style{}).Add(styles...)
}

// Add merges style declarations. Each input may be a "prop:value;prop:value"
// string, a map[string]string or map[string]any (applied in key order,
// values formatted with fmt.Sprint, nil values skipped), a []Declaration,
// another *Style, or a producer (func(*Style) any, func(*Style), func() any,
// func() string).
//
// Malformed string declarations are skipped and reported through Err.
func (s *Style) Add(styles ...any) *Style {
	for _, style := range styles {
		for _, d := range s.parse(style) {
			s.set(d)
		}
	}
	return s
}

// Prepend places declarations before the existing ones.
//
// For a property present on both sides the prepended position wins and the
// existing value is kept.
func (s *Style) Prepend(styles ...any) *Style {
	front := &Style{}
	for _, style := range styles {
		for _, d := range s.parse(style) {
			front.set(d)
		}
	}
	for _, d := range s.items {
		front.set(d)
	}
	s.items = front.items
	return s
}

// Get returns the value of property.
func (s *Style) Get(property string) (string, bool) {
	if i := s.index(property); i >= 0 {
		return s.items[i].Value, true
	}
	return "", false
}

// IsEmpty reports whether there are no declarations.
func (s *Style) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes all declarations and any recorded parse errors.
func (s *Style) Clear() *Style {
	s.items = nil
	s.errs = nil
	return s
}

// Reset clears the style and adds styles.
func (s *Style) Reset(styles ...any) *Style {
	return s.Clear().Add(styles...)
}

// All returns a copy of the declarations in order.
func (s *Style) All() []Declaration {
	return append([]Declaration(nil), s.items...)
}

// Err returns the malformed declarations seen so far, joined, or nil.
func (s *Style) Err() error {
	return errors.Join(s.errs...)
}

// Build renders "prop:value;" pairs joined by a space.
func (s *Style) Build() string {
	parts := make([]string, 0, len(s.items))
	for _, d := range s.items {
		parts = append(parts, d.Property+":"+d.Value+";")
	}
	return strings.Join(parts, " ")
}

func (s *Style) String() string {
	return s.Build()
}

func (s *Style) set(d Declaration) {
	if i := s.index(d.Property); i >= 0 {
		s.items[i].Value = d.Value
		return
	}
	s.items = append(s.items, d)
}

func (s *Style) index(property string) int {
	for i, d := range s.items {
		if d.Property == property {
			return i
		}
	}
	return -1
}

func (s *Style) parse(style any) []Declaration {
	style, _ = produce(style, &Style{})
	if isNil(style) {
		return nil
	}

	switch v := style.(type) {
	case string:
		decls, err := ParseDeclarations(v)
		if err != nil {
			tracer().Errorf("style: %v", err)
			s.errs = append(s.errs, err)
		}
		return decls
	case map[string]string:
		decls := make([]Declaration, 0, len(v))
		for _, k := range sortedKeys(v) {
			decls = append(decls, Declaration{Property: k, Value: v[k]})
		}
		return decls
	case map[string]any:
		decls := make([]Declaration, 0, len(v))
		for _, k := range sortedKeys(v) {
			if isNil(v[k]) {
				continue
			}
			decls = append(decls, Declaration{Property: k, Value: fmt.Sprint(v[k])})
		}
		return decls
	case []Declaration:
		return v
	case *Style:
		s.errs = append(s.errs, v.errs...)
		return v.All()
	}
	return nil
}

// ParseDeclarations splits "prop:value;prop:value" into declarations.
//
// Segments are split on ';' and then on the first ':'; names and values are
// trimmed and blank segments ignored. A non-blank segment without ':' yields
// ErrInvalidDeclaration; the well-formed declarations are still returned.
func ParseDeclarations(text string) ([]Declaration, error) {
	var decls []Declaration
	var errs []error
	for _, segment := range strings.Split(text, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		property, value, ok := strings.Cut(segment, ":")
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidDeclaration, segment))
			continue
		}
		decls = append(decls, Declaration{
			Property: strings.TrimSpace(property),
			Value:    strings.Trim(value, " ;"),
		})
	}
	return decls, errors.Join(errs...)
}
