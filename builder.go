package pinview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Namespace segments of the keys a builder owns in the reactive store.
const (
	buildersNamespace = "builders"
	propertiesSegment = "properties"
	configsSegment    = "configs"
)

// Placeholder markers rewritten in attribute values at build time. Prefix a
// marker with a backslash to emit it literally.
const (
	PlaceholderSelf       = "*."
	PlaceholderProperties = "*p."
	PlaceholderConfigs    = "*c."
)

// Builder is one markup element.
//
// A Builder owns its classes, styles, attributes and content, plus a
// property bag exposed to the reactive store through v-bind and a config bag
// that is never rendered. Builders are created through a Session, which
// gives each one a unique index and records every Build.
//
//	s := pinview.NewSession()
//	dialog := pinview.New(s, "el-dialog", pinview.Attrs{{Name: ":visible", Value: "*.visible"}})
//	dialog.Css("wide").Add(pinview.New(s, "p", "Are you sure?"))
//	markup := dialog.Build()
//
// Widgets embed *Builder and seed defaults (tag prefix, base tag, shortcut
// table) through Options.
type Builder struct {
	session *Session
	index   int
	id      string
	kind    string

	baseTag   string
	tagPrefix string
	closing   bool
	linebreak bool
	buildable bool

	css       *Css
	style     *Style
	attribute *Attribute
	content   *Content

	properties map[string]any
	configs    map[string]any
	shortcuts  map[string]string
	ready      []func(*Builder)
}

// Option configures a Builder at construction.
type Option func(*Builder)

// WithClosing sets whether the element has a closing tag.
func WithClosing(closing bool) Option {
	return func(b *Builder) { b.closing = closing }
}

// WithLinebreak sets whether newlines separate the tags and content items.
func WithLinebreak(linebreak bool) Option {
	return func(b *Builder) { b.linebreak = linebreak }
}

// WithID sets an explicit builder id.
func WithID(id string) Option {
	return func(b *Builder) { b.id = id }
}

// WithPrefix sets the tag prefix.
func WithPrefix(prefix string) Option {
	return func(b *Builder) { b.tagPrefix = prefix }
}

// WithKind sets the kind name the automatic base tag is derived from.
func WithKind(kind string) Option {
	return func(b *Builder) { b.kind = kind }
}

// WithShortcuts merges a shortcut table mapping value aliases to attribute
// names, e.g. {"small": "size"}. See Invoke.
func WithShortcuts(shortcuts map[string]string) Option {
	return func(b *Builder) {
		for alias, key := range shortcuts {
			b.Shortcut(alias, key)
		}
	}
}

// WithAttributes seeds attributes before the payload is applied.
func WithAttributes(attributes ...any) Option {
	return func(b *Builder) { b.attribute.Merge(attributes...) }
}

// New creates a builder in session s.
//
// tag is the base tag; when empty it is derived from the builder kind
// ("builder" for a plain Builder). Option values in payload are applied
// first; the remaining items are applied in order by type: Attrs, []Attr,
// Attr, map[string]any, map[string]string and *Attribute set attributes,
// []string sets bare flags, a func(*Builder) is called with the builder, and
// anything else, including a bare string, is added as content.
//
// New panics if s is nil.
func New(s *Session, tag string, payload ...any) *Builder {
	if s == nil {
		panic("pinview: builder requires a session")
	}
	b := &Builder{
		session:   s,
		index:     s.nextIndex(),
		kind:      "Builder",
		baseTag:   tag,
		closing:   true,
		buildable: true,
		css:       &Css{},
		style:     &Style{},
		attribute: &Attribute{},
		content:   &Content{},
	}

	for _, item := range payload {
		if opt, ok := item.(Option); ok {
			opt(b)
		}
	}
	for _, item := range payload {
		switch v := item.(type) {
		case Option:
		case Attrs, []Attr, Attr, map[string]any, map[string]string, []string, *Attribute:
			b.attribute.Merge(v)
		case func(*Builder):
			v(b)
		default:
			b.content.Add(v)
		}
	}
	return b
}

// Base returns b. Types embedding *Builder inherit it, which lets a builder
// tree find nested widgets.
func (b *Builder) Base() *Builder {
	return b
}

// Session returns the session b belongs to.
func (b *Builder) Session() *Session {
	return b.session
}

// Index returns the session-unique index assigned at construction.
func (b *Builder) Index() int {
	return b.index
}

// Kind returns the kind name the automatic base tag is derived from.
func (b *Builder) Kind() string {
	return b.kind
}

// AutoBaseTag returns the kebab-cased kind name.
func (b *Builder) AutoBaseTag() string {
	return Kebab(b.kind)
}

// BaseTag returns the base tag, falling back to AutoBaseTag.
func (b *Builder) BaseTag() string {
	if b.baseTag != "" {
		return b.baseTag
	}
	return b.AutoBaseTag()
}

// SetBaseTag sets the base tag.
func (b *Builder) SetBaseTag(tag string) *Builder {
	b.baseTag = tag
	return b
}

// TagPrefix returns the tag prefix.
func (b *Builder) TagPrefix() string {
	return b.tagPrefix
}

// SetTagPrefix sets the tag prefix.
func (b *Builder) SetTagPrefix(prefix string) *Builder {
	b.tagPrefix = prefix
	return b
}

// FullTag returns the tag prefix followed by the base tag.
func (b *Builder) FullTag() string {
	return b.tagPrefix + b.BaseTag()
}

// Closing sets whether the element has a closing tag. Without one only the
// opening tag is emitted.
func (b *Builder) Closing(closing bool) *Builder {
	b.closing = closing
	return b
}

// IsClosing reports whether the element has a closing tag.
func (b *Builder) IsClosing() bool {
	return b.closing
}

// Linebreak sets whether newlines separate the tags and content items.
func (b *Builder) Linebreak(linebreak bool) *Builder {
	b.linebreak = linebreak
	return b
}

// HasLinebreak reports whether linebreaks are enabled.
func (b *Builder) HasLinebreak() bool {
	return b.linebreak
}

// Css adds classes. See Css.Add for accepted input types.
func (b *Builder) Css(classes ...any) *Builder {
	b.css.Add(classes...)
	return b
}

// Classes returns the builder's class set.
func (b *Builder) Classes() *Css {
	return b.css
}

// Style adds style declarations. See Style.Add for accepted input types.
func (b *Builder) Style(styles ...any) *Builder {
	b.style.Add(styles...)
	return b
}

// Styles returns the builder's style map.
func (b *Builder) Styles() *Style {
	return b.style
}

// Attribute returns the builder's attribute map.
func (b *Builder) Attribute() *Attribute {
	return b.attribute
}

// Content returns the builder's content sequence.
func (b *Builder) Content() *Content {
	return b.content
}

// Set sets one attribute.
func (b *Builder) Set(name string, value any) *Builder {
	b.attribute.Set(name, value)
	return b
}

// Merge sets attributes in bulk. See Attribute.Merge.
func (b *Builder) Merge(attributes ...any) *Builder {
	b.attribute.Merge(attributes...)
	return b
}

// Get returns an attribute value, or def when it is not set.
func (b *Builder) Get(name string, def any) any {
	return b.attribute.Get(name, def)
}

// Attributes returns all attributes in insertion order.
func (b *Builder) Attributes() Attrs {
	return b.attribute.All()
}

// Add appends content items. See Content.Add.
func (b *Builder) Add(items ...any) *Builder {
	b.content.Add(items...)
	return b
}

// Prepend inserts content items before the existing ones.
func (b *Builder) Prepend(items ...any) *Builder {
	b.content.Prepend(items...)
	return b
}

// Interpolation appends a "{{ expr }}" text interpolation.
func (b *Builder) Interpolation(expr string) *Builder {
	b.content.Interpolation(expr)
	return b
}

// Text appends sanitized, escaped text.
func (b *Builder) Text(text string) *Builder {
	b.content.Text(text)
	return b
}

// Markdown appends the HTML rendering of a Markdown document.
func (b *Builder) Markdown(source string) *Builder {
	b.content.Markdown(source)
	return b
}

// Slot appends a named slot: <template #name>content</template>, or
// <template #name="prop"> when prop is given. content may be a producer
// receiving a fresh *Content.
func (b *Builder) Slot(name string, content any, prop ...string) *Builder {
	content, _ = produce(content, &Content{})

	attr := Attr{Name: "#" + name}
	if len(prop) > 0 {
		attr.Value = prop[0]
	}
	return b.Add(New(b.session, "template", Attrs{attr}, content))
}

// Contents builds the content only.
func (b *Builder) Contents() string {
	return b.content.Build()
}

// SetBuildable switches rendering on or off. A builder that is not
// buildable builds to the empty string and is not recorded.
func (b *Builder) SetBuildable(buildable bool) *Builder {
	b.buildable = buildable
	return b
}

// IsBuildable reports whether the builder renders.
func (b *Builder) IsBuildable() bool {
	return b.buildable
}

// Property sets a value in the property bag. A non-empty property bag is
// bound to the element as a whole with v-bind, its values are never rendered
// as attributes.
func (b *Builder) Property(key string, value any) *Builder {
	if b.properties == nil {
		b.properties = make(map[string]any)
	}
	b.properties[key] = value
	return b
}

// PropertyValue returns a value from the property bag.
func (b *Builder) PropertyValue(key string) (any, bool) {
	v, ok := b.properties[key]
	return v, ok
}

// Properties returns a copy of the property bag.
func (b *Builder) Properties() map[string]any {
	return copyBag(b.properties)
}

// Config sets a build-time option in the config bag.
func (b *Builder) Config(key string, value any) *Builder {
	if b.configs == nil {
		b.configs = make(map[string]any)
	}
	b.configs[key] = value
	return b
}

// ConfigValue returns a value from the config bag.
func (b *Builder) ConfigValue(key string) (any, bool) {
	v, ok := b.configs[key]
	return v, ok
}

// Configs returns a copy of the config bag.
func (b *Builder) Configs() map[string]any {
	return copyBag(b.configs)
}

// BuilderID returns the explicit id, or comp_{index}_{full tag} with dashes
// replaced by underscores.
func (b *Builder) BuilderID() string {
	if b.id != "" {
		return b.id
	}
	return fmt.Sprintf("comp_%d_%s", b.index, strings.ReplaceAll(b.FullTag(), "-", "_"))
}

// SetBuilderID sets an explicit builder id.
func (b *Builder) SetBuilderID(id string) *Builder {
	b.id = id
	return b
}

// BuilderKey returns the builder's namespaced store key, optionally
// extended by a dotted path: builders.{id}[.path].
func (b *Builder) BuilderKey(path ...string) string {
	return joinPath(append([]string{buildersNamespace, b.BuilderID()}, path...)...)
}

// PropertyKey returns builders.{id}.properties[.key].
func (b *Builder) PropertyKey(key ...string) string {
	return b.BuilderKey(append([]string{propertiesSegment}, key...)...)
}

// ConfigKey returns builders.{id}.configs[.key].
func (b *Builder) ConfigKey(key ...string) string {
	return b.BuilderKey(append([]string{configsSegment}, key...)...)
}

// Ready registers a hook that runs at the start of every Build, before
// classes and styles are folded into the attributes.
func (b *Builder) Ready(fn func(*Builder)) *Builder {
	b.ready = append(b.ready, fn)
	return b
}

// Build renders the element.
//
// Build may be called repeatedly; each call that produces markup records b
// in its session. A builder switched off, before or by a Ready hook, builds
// to "" and is not recorded.
func (b *Builder) Build() string {
	if !b.buildable {
		return ""
	}
	for _, fn := range b.ready {
		fn(b)
	}
	if !b.buildable {
		return ""
	}
	b.session.record(b)

	if !b.css.IsEmpty() {
		b.attribute.Set("class", b.css.Build())
	}
	if !b.style.IsEmpty() {
		b.attribute.Set("style", b.style.Build())
	}
	if len(b.properties) > 0 {
		b.attribute.Set("v-bind", b.PropertyKey())
	}
	b.attribute.Placeholder(b.placeholders()...)

	if b.linebreak {
		b.content.Linebreak()
	}

	tag := b.FullTag()
	tracer().Debugf("build <%s> as %s", tag, b.BuilderID())

	var sb strings.Builder
	sb.WriteString("<" + tag)
	if !b.attribute.IsEmpty() {
		sb.WriteString(" " + b.attribute.Build())
	}
	sb.WriteString(">")
	if b.linebreak && !b.content.IsEmpty() {
		sb.WriteString("\n")
	}
	sb.WriteString(b.content.Build())
	if b.linebreak && b.closing {
		sb.WriteString("\n")
	}
	if b.closing {
		sb.WriteString("</" + tag + ">")
	}
	return sb.String()
}

func (b *Builder) String() string {
	return b.Build()
}

// placeholders returns the rules binding the markers to this builder's keys.
// Escaped markers come first so they win at the same position.
func (b *Builder) placeholders() []Rule {
	return []Rule{
		{Pattern: escapeMarker + PlaceholderSelf, Replacement: PlaceholderSelf},
		{Pattern: escapeMarker + PlaceholderProperties, Replacement: PlaceholderProperties},
		{Pattern: escapeMarker + PlaceholderConfigs, Replacement: PlaceholderConfigs},
		{Pattern: PlaceholderSelf, Replacement: b.BuilderKey() + "."},
		{Pattern: PlaceholderProperties, Replacement: b.PropertyKey() + "."},
		{Pattern: PlaceholderConfigs, Replacement: b.ConfigKey() + "."},
	}
}

// Render implements templ.Component. It fails without writing when a style
// declaration anywhere in the tree was malformed.
func (b *Builder) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.Build())
	return err
}

// Err reports malformed style declarations of b and of the builders nested
// in its content.
func (b *Builder) Err() error {
	errs := []error{b.style.Err()}
	for _, item := range b.content.items {
		if e, ok := item.(interface{ Err() error }); ok {
			errs = append(errs, e.Err())
		}
	}
	return errors.Join(errs...)
}

func copyBag(bag map[string]any) map[string]any {
	if len(bag) == 0 {
		return map[string]any{}
	}
	out := make(map[string]any, len(bag))
	for k, v := range bag {
		out[k] = v
	}
	return out
}
