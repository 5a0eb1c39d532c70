package pinview

import (
	"regexp"
	"strings"
)

var cssSeparator = regexp.MustCompile(`[\s,]+`)

// Css is an ordered set of class names.
//
// Tokens keep the order in which they were first seen; adding a token that
// is already present is a no-op.
type Css struct {
	items []string
}

// NewCss creates a Css from the given inputs. See Add for accepted input types.
func NewCss(classes ...any) *Css {
	return (&Css{}).Add(classes...)
}

// Add appends class names. Each input may be a space or comma separated
// string, a []string, a []any of such inputs, another *Css, or a producer
// (func(*Css) any, func(*Css), func() any, func() string).
func (c *Css) Add(classes ...any) *Css {
	for _, class := range classes {
		c.items = appendUnique(c.items, c.parse(class)...)
	}
	return c
}

// Prepend places class names before the existing ones. Tokens already present
// keep their first occurrence, which is now the prepended one.
func (c *Css) Prepend(classes ...any) *Css {
	var tokens []string
	for _, class := range classes {
		tokens = append(tokens, c.parse(class)...)
	}
	if len(tokens) > 0 {
		c.items = appendUnique(appendUnique(nil, tokens...), c.items...)
	}
	return c
}

// Has reports whether class is in the set.
func (c *Css) Has(class string) bool {
	for _, item := range c.items {
		if item == class {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no classes.
func (c *Css) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear removes all classes.
func (c *Css) Clear() *Css {
	c.items = nil
	return c
}

// Reset clears the set and adds classes.
func (c *Css) Reset(classes ...any) *Css {
	return c.Clear().Add(classes...)
}

// All returns a copy of the class names in order.
func (c *Css) All() []string {
	return append([]string(nil), c.items...)
}

// Build joins the class names with a single space.
func (c *Css) Build() string {
	return strings.Join(c.items, " ")
}

func (c *Css) String() string {
	return c.Build()
}

func (c *Css) parse(class any) []string {
	class, _ = produce(class, &Css{})
	if isNil(class) {
		return nil
	}

	switch v := class.(type) {
	case string:
		return splitClasses(v)
	case []string:
		var out []string
		for _, s := range v {
			out = append(out, splitClasses(s)...)
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, c.parse(item)...)
		}
		return out
	case *Css:
		return v.All()
	}
	return nil
}

func splitClasses(s string) []string {
	var out []string
	for _, token := range cssSeparator.Split(s, -1) {
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// appendUnique appends tokens that are not yet in dst, in order.
func appendUnique(dst []string, tokens ...string) []string {
	seen := make(map[string]struct{}, len(dst)+len(tokens))
	for _, t := range dst {
		seen[t] = struct{}{}
	}
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		dst = append(dst, t)
	}
	return dst
}
