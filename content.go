package pinview

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Content is an ordered sequence of content items joined by a glue string.
//
// Items may be strings, Buildables (including nested Builders), templ
// components, or producers evaluated lazily at build time. nil items are
// dropped; empty strings are kept so that glue can produce blank lines.
type Content struct {
	items []any
	glue  string
}

// NewContent creates a Content from the given items. See Add for accepted
// item types.
func NewContent(items ...any) *Content {
	return (&Content{}).Add(items...)
}

// Add appends items. Slices and arrays of any element type are flattened;
// nil items (including typed nil pointers) are dropped.
//
// Producers are funcs without parameters or taking a fresh *Content, with
// at most one result; a *Content producer returning nothing or nil yields
// the fresh Content. They run on every Build. Other funcs are logged and
// skipped.
func (c *Content) Add(items ...any) *Content {
	c.items = append(c.items, flatten(items)...)
	return c
}

// Prepend inserts items before the existing ones, keeping their order.
func (c *Content) Prepend(items ...any) *Content {
	c.items = append(flatten(items), c.items...)
	return c
}

// Interpolation appends a "{{ expr }}" text interpolation.
func (c *Content) Interpolation(expr string) *Content {
	return c.Add("{{ " + expr + " }}")
}

// AddBlank appends an empty item.
func (c *Content) AddBlank() *Content {
	return c.Add("")
}

// Text appends untrusted text. Markup is stripped and the remainder is
// HTML escaped.
func (c *Content) Text(text string) *Content {
	return c.Add(textPolicy().Sanitize(text))
}

// Markdown appends the HTML rendering of a Markdown document. Rendering
// errors are logged and the source is appended as sanitized text instead.
func (c *Content) Markdown(source string) *Content {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		tracer().Errorf("content: markdown: %v", err)
		return c.Text(source)
	}
	return c.Add(strings.TrimSuffix(buf.String(), "\n"))
}

// Glue sets the string placed between built items.
func (c *Content) Glue(glue string) *Content {
	c.glue = glue
	return c
}

// GlueLines sets the glue to n newlines.
func (c *Content) GlueLines(n int) *Content {
	if n < 0 {
		n = 0
	}
	return c.Glue(strings.Repeat("\n", n))
}

// Linebreak sets the glue to a single newline.
func (c *Content) Linebreak() *Content {
	return c.GlueLines(1)
}

// Clear removes all items.
func (c *Content) Clear() *Content {
	c.items = nil
	return c
}

// IsEmpty reports whether there are no items.
func (c *Content) IsEmpty() bool {
	return len(c.items) == 0
}

// All returns a copy of the items in order.
func (c *Content) All() []any {
	return append([]any(nil), c.items...)
}

// Build renders each item and joins the results with the glue. Producers
// that yield nil are skipped.
func (c *Content) Build() string {
	parts := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if s, ok := renderItem(item); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, c.glue)
}

func (c *Content) String() string {
	return c.Build()
}

// renderItem converts a content item to markup. ok is false for nil results
// and for funcs that are not producers.
func renderItem(item any) (string, bool) {
	item, ok := call(item)
	if !ok || isNil(item) {
		return "", false
	}
	if reflect.TypeOf(item).Kind() == reflect.Func {
		tracer().Errorf("content: producer %T returned a func", item)
		return "", false
	}

	switch v := item.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case Buildable:
		return v.Build(), true
	case templ.Component:
		s, err := templ.ToGoHTML(context.Background(), v)
		if err != nil {
			tracer().Errorf("content: render templ component: %v", err)
			return "", false
		}
		return string(s), true
	case fmt.Stringer:
		return v.String(), true
	}
	if isSequence(reflect.ValueOf(item)) {
		return NewContent(item).Build(), true
	}
	return fmt.Sprint(item), true
}

var contentType = reflect.TypeOf(&Content{})

// call runs item if it is a producer. Besides the signatures known to
// produce, any func() T and func(*Content) T is called; a nil result of the
// latter falls back to the fresh Content. Other funcs are rejected.
func call(item any) (any, bool) {
	if fn, ok := item.(func() Buildable); ok {
		return fn(), true
	}
	if v, ok := produce(item, &Content{}); ok {
		return v, true
	}
	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.Func {
		return item, true
	}
	t := rv.Type()
	switch {
	case t.IsVariadic() || t.NumOut() > 1:
	case t.NumIn() == 0:
		return first(rv.Call(nil), nil), true
	case t.NumIn() == 1 && t.In(0) == contentType:
		fresh := &Content{}
		return first(rv.Call([]reflect.Value{reflect.ValueOf(fresh)}), fresh), true
	}
	tracer().Errorf("content: unsupported producer %T", item)
	return nil, false
}

// first returns the first result, or fallback when there is none or it is nil.
func first(out []reflect.Value, fallback *Content) any {
	if len(out) > 0 {
		if v := out[0].Interface(); !isNil(v) {
			return v
		}
	}
	if fallback == nil {
		return nil
	}
	return fallback
}

// isSequence reports whether v is a slice or array other than a byte string.
func isSequence(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

// flatten expands nested slices and arrays in order and drops nil items.
func flatten(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if isNil(item) {
			continue
		}
		switch v := item.(type) {
		case []any:
			out = append(out, flatten(v)...)
			continue
		case []string:
			for _, s := range v {
				out = append(out, s)
			}
			continue
		}
		rv := reflect.ValueOf(item)
		if !isSequence(rv) {
			out = append(out, item)
			continue
		}
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		out = append(out, flatten(elems)...)
	}
	return out
}

var (
	textPolicyOnce sync.Once
	strictPolicy   *bluemonday.Policy
)

func textPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
