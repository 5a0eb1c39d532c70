package pinview

import (
	"sort"
	"strings"
)

// Attr is one attribute entry. A nil Value is a bare flag.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered list of attribute entries.
type Attrs []Attr

// Rule is a literal placeholder substitution applied to attribute values at
// build time.
type Rule struct {
	Pattern     string
	Replacement string
}

// Attribute is an ordered mapping of attribute names to values, rendered
// through the Attribution classification policy.
//
// Keys are unique; setting an existing key overwrites its value without
// moving it. A placeholder table rewrites attribute values at build time so
// a value can refer to its builder's identity before that identity is known.
type Attribute struct {
	keys   []string
	values map[string]any
	rules  []Rule
}

// NewAttribute creates an Attribute from the given inputs. See Merge for
// accepted input types.
func NewAttribute(attributes ...any) *Attribute {
	return (&Attribute{}).Merge(attributes...)
}

// Set sets a single attribute. An empty name is ignored.
func (a *Attribute) Set(name string, value any) *Attribute {
	if name == "" {
		return a
	}
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
	return a
}

// Flag sets bare attributes that render without a value.
func (a *Attribute) Flag(names ...string) *Attribute {
	for _, name := range names {
		a.Set(name, nil)
	}
	return a
}

// Merge sets attributes in bulk. Each input may be Attrs, []Attr, Attr,
// map[string]any or map[string]string (applied in key order), []string
// (bare flags), another *Attribute, or a producer (func(*Attribute) any,
// func(*Attribute), func() any). nil inputs are ignored.
func (a *Attribute) Merge(attributes ...any) *Attribute {
	for _, attribute := range attributes {
		attribute, _ = produce(attribute, &Attribute{})
		if isNil(attribute) {
			continue
		}

		switch v := attribute.(type) {
		case Attrs:
			a.merge(v)
		case []Attr:
			a.merge(v)
		case Attr:
			a.Set(v.Name, v.Value)
		case map[string]any:
			for _, k := range sortedKeys(v) {
				a.Set(k, v[k])
			}
		case map[string]string:
			for _, k := range sortedKeys(v) {
				a.Set(k, v[k])
			}
		case []string:
			a.Flag(v...)
		case *Attribute:
			a.merge(v.All())
		}
	}
	return a
}

func (a *Attribute) merge(attrs []Attr) {
	for _, attr := range attrs {
		a.Set(attr.Name, attr.Value)
	}
}

// Get returns the value of name, or def when it is not set.
func (a *Attribute) Get(name string, def any) any {
	if v, ok := a.values[name]; ok && v != nil {
		return v
	}
	return def
}

// Has reports whether name is set, including as a bare flag.
func (a *Attribute) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Remove deletes name.
func (a *Attribute) Remove(name string) *Attribute {
	if _, ok := a.values[name]; !ok {
		return a
	}
	delete(a.values, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i:i], a.keys[i+1:]...)
			break
		}
	}
	return a
}

// IsEmpty reports whether no attribute is set.
func (a *Attribute) IsEmpty() bool {
	return len(a.keys) == 0
}

// Len returns the number of attributes.
func (a *Attribute) Len() int {
	return len(a.keys)
}

// Clear removes all attributes. The placeholder table is kept.
func (a *Attribute) Clear() *Attribute {
	a.keys = nil
	a.values = nil
	return a
}

// All returns the attributes in insertion order.
func (a *Attribute) All() Attrs {
	attrs := make(Attrs, 0, len(a.keys))
	for _, k := range a.keys {
		attrs = append(attrs, Attr{Name: k, Value: a.values[k]})
	}
	return attrs
}

// Placeholder registers substitution rules. New patterns are appended to the
// table; a pattern that is already registered keeps its position and takes
// the new replacement.
func (a *Attribute) Placeholder(rules ...Rule) *Attribute {
	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}
		replaced := false
		for i := range a.rules {
			if a.rules[i].Pattern == rule.Pattern {
				a.rules[i].Replacement = rule.Replacement
				replaced = true
				break
			}
		}
		if !replaced {
			a.rules = append(a.rules, rule)
		}
	}
	return a
}

// Placeholders returns the substitution table in registration order.
func (a *Attribute) Placeholders() []Rule {
	return append([]Rule(nil), a.rules...)
}

// Replace applies the placeholder table to s.
//
// Substitution is a single left-to-right pass over s: at each position the
// first registered pattern that matches wins, and replaced text is never
// rescanned, so an escaped marker can resolve to the literal marker text.
func (a *Attribute) Replace(s string) string {
	if r := a.replacer(); r != nil {
		return r.Replace(s)
	}
	return s
}

func (a *Attribute) replacer() *strings.Replacer {
	if len(a.rules) == 0 {
		return nil
	}
	pairs := make([]string, 0, len(a.rules)*2)
	for _, rule := range a.rules {
		pairs = append(pairs, rule.Pattern, rule.Replacement)
	}
	return strings.NewReplacer(pairs...)
}

// Build renders the attributes in insertion order, joined by a single space.
func (a *Attribute) Build() string {
	replace := a.replacer()
	parts := make([]string, 0, len(a.keys))
	for _, k := range a.keys {
		if s := NewAttribution(k, a.values[k]).render(replace); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (a *Attribute) String() string {
	return a.Build()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
