// Package page loads YAML page descriptions into builder trees.
//
// A page is one root node. Nodes name either a catalog widget or a plain
// tag, and carry attributes, shorthand calls, content and children:
//
//	tag: el-dialog
//	attrs:
//	  title: Settings
//	  ":visible.sync": "*p.visible"
//	properties:
//	  visible: false
//	children:
//	  - widget: Button
//	    text: Close
//	    invoke: [primary, {onClick: close}]
package page

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"

	"github.com/pthm/pinview"
	"github.com/pthm/pinview/widgets"
)

// ErrInvalidPage is returned for pages that parse as YAML but do not
// describe a builder tree.
var ErrInvalidPage = errors.New("page: invalid page")

// tracer traces with key 'pinview.page'.
func tracer() tracing.Trace {
	return tracing.Select("pinview.page")
}

// Node is one element of a page.
type Node struct {
	Widget        string           `yaml:"widget,omitempty"`
	Tag           string           `yaml:"tag,omitempty"`
	Prefix        *string          `yaml:"prefix,omitempty"`
	ID            string           `yaml:"id,omitempty"`
	Closing       *bool            `yaml:"closing,omitempty"`
	Linebreak     *bool            `yaml:"linebreak,omitempty"`
	Class         Strings          `yaml:"class,omitempty"`
	Style         yaml.Node        `yaml:"style,omitempty"`
	Attrs         yaml.Node        `yaml:"attrs,omitempty"`
	Invoke        []yaml.Node      `yaml:"invoke,omitempty"`
	Properties    map[string]any   `yaml:"properties,omitempty"`
	Configs       map[string]any   `yaml:"configs,omitempty"`
	Ref           string           `yaml:"ref,omitempty"`
	Text          string           `yaml:"text,omitempty"`
	Interpolation string           `yaml:"interpolation,omitempty"`
	Markdown      string           `yaml:"markdown,omitempty"`
	Children      []*Node          `yaml:"children,omitempty"`
	Slots         map[string]*Slot `yaml:"slots,omitempty"`
}

// Slot is the content of a named slot.
type Slot struct {
	Prop     string  `yaml:"prop,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// Strings accepts a scalar or a sequence of scalars.
type Strings []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Strings) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = Strings{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	return fmt.Errorf("%w: line %d: expected a string or a list", ErrInvalidPage, value.Line)
}

// Loader builds pages with the widgets of a registry.
type Loader struct {
	registry *widgets.Registry
}

// NewLoader creates a loader. A nil registry uses the default catalog.
func NewLoader(registry *widgets.Registry) *Loader {
	if registry == nil {
		registry = widgets.NewRegistry(nil)
	}
	return &Loader{registry: registry}
}

// Load reads and builds the page at path.
func (l *Loader) Load(s *pinview.Session, path string) (*pinview.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("page: read %s: %w", path, err)
	}
	return l.Parse(s, data)
}

// Render loads the page at path and returns its markup. It fails on
// malformed style declarations anywhere in the tree.
func (l *Loader) Render(s *pinview.Session, path string) (string, error) {
	b, err := l.Load(s, path)
	if err != nil {
		return "", err
	}
	if err := b.Err(); err != nil {
		return "", err
	}
	return b.Build(), nil
}

// Parse builds the page described by data.
func (l *Loader) Parse(s *pinview.Session, data []byte) (*pinview.Builder, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("page: parse: %w", err)
	}
	return l.Build(s, &root)
}

// Build creates the builder tree for n. Builders are created depth first,
// so indexes follow document order.
func (l *Loader) Build(s *pinview.Session, n *Node) (*pinview.Builder, error) {
	b, err := l.create(s, n)
	if err != nil {
		return nil, err
	}

	if n.ID != "" {
		b.SetBuilderID(n.ID)
	}
	if n.Prefix != nil {
		b.SetTagPrefix(*n.Prefix)
	}
	if n.Closing != nil {
		b.Closing(*n.Closing)
	}
	if n.Linebreak != nil {
		b.Linebreak(*n.Linebreak)
	}
	if len(n.Class) > 0 {
		b.Css([]string(n.Class))
	}
	if err := applyStyle(b, &n.Style); err != nil {
		return nil, err
	}
	if err := applyAttrs(b, &n.Attrs); err != nil {
		return nil, err
	}
	for i := range n.Invoke {
		if err := applyInvoke(b, &n.Invoke[i]); err != nil {
			return nil, err
		}
	}
	for _, key := range sortedKeys(n.Properties) {
		b.Property(key, n.Properties[key])
	}
	for _, key := range sortedKeys(n.Configs) {
		b.Config(key, n.Configs[key])
	}
	if n.Ref != "" {
		b.Ref(n.Ref)
	}

	if n.Text != "" {
		b.Text(n.Text)
	}
	if n.Interpolation != "" {
		b.Interpolation(n.Interpolation)
	}
	if n.Markdown != "" {
		b.Markdown(n.Markdown)
	}
	for _, child := range n.Children {
		cb, err := l.Build(s, child)
		if err != nil {
			return nil, err
		}
		b.Add(cb)
	}
	for _, name := range sortedKeys(n.Slots) {
		slot := n.Slots[name]
		if slot == nil {
			continue
		}
		var items []any
		for _, child := range slot.Children {
			cb, err := l.Build(s, child)
			if err != nil {
				return nil, err
			}
			items = append(items, cb)
		}
		if slot.Prop != "" {
			b.Slot(name, items, slot.Prop)
		} else {
			b.Slot(name, items)
		}
	}
	return b, nil
}

func (l *Loader) create(s *pinview.Session, n *Node) (*pinview.Builder, error) {
	switch {
	case n.Widget != "" && n.Tag != "":
		return nil, fmt.Errorf("%w: node sets both widget %q and tag %q", ErrInvalidPage, n.Widget, n.Tag)
	case n.Widget != "":
		return l.registry.Build(s, n.Widget)
	case n.Tag != "":
		return pinview.New(s, n.Tag), nil
	}
	return nil, fmt.Errorf("%w: node needs a widget or a tag", ErrInvalidPage)
}

// applyStyle accepts "prop: value; ..." or a mapping kept in document order.
func applyStyle(b *pinview.Builder, node *yaml.Node) error {
	switch node.Kind {
	case 0:
		return nil
	case yaml.ScalarNode:
		b.Style(node.Value)
		return nil
	case yaml.MappingNode:
		decls := make([]pinview.Declaration, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			decls = append(decls, pinview.Declaration{
				Property: node.Content[i].Value,
				Value:    node.Content[i+1].Value,
			})
		}
		b.Style(decls)
		return nil
	}
	return fmt.Errorf("%w: line %d: style must be a string or a mapping", ErrInvalidPage, node.Line)
}

// applyAttrs sets attributes in document order. A null value is a bare flag.
func applyAttrs(b *pinview.Builder, node *yaml.Node) error {
	switch node.Kind {
	case 0:
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("%w: line %d: attrs must be a mapping", ErrInvalidPage, node.Line)
	}

	attrs := make(pinview.Attrs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidPage, node.Content[i+1].Line, err)
		}
		attrs = append(attrs, pinview.Attr{Name: node.Content[i].Value, Value: value})
	}
	b.Merge(attrs)
	return nil
}

// applyInvoke runs one shorthand call: "primary", {size_small: null},
// {onClick: save} or {onPageChange: [load, 1]}.
func applyInvoke(b *pinview.Builder, node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		b.Invoke(node.Value)
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			args, err := invokeArgs(node.Content[i+1])
			if err != nil {
				return err
			}
			b.Invoke(node.Content[i].Value, args...)
		}
		return nil
	}
	return fmt.Errorf("%w: line %d: invoke entries must be names or mappings", ErrInvalidPage, node.Line)
}

func invokeArgs(node *yaml.Node) ([]any, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind == yaml.SequenceNode {
		var args []any
		if err := node.Decode(&args); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidPage, node.Line, err)
		}
		return args, nil
	}
	var arg any
	if err := node.Decode(&arg); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidPage, node.Line, err)
	}
	return []any{arg}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
