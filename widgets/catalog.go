package widgets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"

	"github.com/pthm/pinview"
)

//go:embed catalog.yaml
var catalogYAML []byte

// tracer traces with key 'pinview.widgets'.
func tracer() tracing.Trace {
	return tracing.Select("pinview.widgets")
}

// Shortcut lists the value aliases of one attribute.
type Shortcut struct {
	Key     string   `yaml:"key"`
	Aliases []string `yaml:"aliases"`
}

// Spec describes one widget of the catalog.
type Spec struct {
	Name      string     `yaml:"name"`
	Tag       string     `yaml:"tag"`
	Prefix    *string    `yaml:"prefix,omitempty"`
	Closing   *bool      `yaml:"closing,omitempty"`
	Linebreak bool       `yaml:"linebreak,omitempty"`
	Shortcuts []Shortcut `yaml:"shortcuts,omitempty"`
	Flags     []string   `yaml:"flags,omitempty"`
	Props     []string   `yaml:"props,omitempty"`
}

// TagPrefix returns the tag prefix, pinview.ComponentPrefix unless set.
func (s Spec) TagPrefix() string {
	if s.Prefix != nil {
		return *s.Prefix
	}
	return pinview.ComponentPrefix
}

// ShortcutTable flattens the shortcuts into alias -> attribute key.
func (s Spec) ShortcutTable() map[string]string {
	table := make(map[string]string)
	for _, sc := range s.Shortcuts {
		for _, alias := range sc.Aliases {
			table[alias] = sc.Key
		}
	}
	return table
}

// Options returns the builder options that seed this widget.
func (s Spec) Options() []any {
	opts := []any{
		pinview.WithKind(s.Name),
		pinview.WithPrefix(s.TagPrefix()),
		pinview.WithShortcuts(s.ShortcutTable()),
		pinview.WithLinebreak(s.Linebreak),
	}
	if s.Closing != nil {
		opts = append(opts, pinview.WithClosing(*s.Closing))
	}
	return opts
}

// Catalog is an ordered set of widget specs.
type Catalog struct {
	widgets []Spec
	index   map[string]int
}

type catalogFile struct {
	Widgets []Spec `yaml:"widgets"`
}

// ParseCatalog parses a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("widgets: parse catalog: %w", err)
	}

	c := &Catalog{index: make(map[string]int)}
	var errs []error
	for _, spec := range file.Widgets {
		name := normalize(spec.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("widgets: catalog entry without a name"))
			continue
		}
		if _, exists := c.index[name]; exists {
			errs = append(errs, fmt.Errorf("widgets: duplicate widget %q", spec.Name))
			continue
		}
		if err := validateSpec(spec); err != nil {
			errs = append(errs, err)
			continue
		}
		c.index[name] = len(c.widgets)
		c.widgets = append(c.widgets, spec)
	}
	if err := errors.Join(errs...); err != nil {
		tracer().Errorf("catalog: %v", err)
		return nil, err
	}
	return c, nil
}

func validateSpec(spec Spec) error {
	seen := make(map[string]string)
	for _, sc := range spec.Shortcuts {
		if sc.Key == "" {
			return fmt.Errorf("widgets: %s: shortcut without a key", spec.Name)
		}
		for _, alias := range sc.Aliases {
			if other, ok := seen[alias]; ok {
				return fmt.Errorf("widgets: %s: alias %q maps to both %q and %q", spec.Name, alias, other, sc.Key)
			}
			seen[alias] = sc.Key
		}
	}
	return nil
}

// LoadCatalog reads and parses a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("widgets: read catalog: %w", err)
	}
	return ParseCatalog(data)
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the embedded catalog the generated widgets use.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := ParseCatalog(catalogYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup returns the spec for name. Names match case-insensitively and in
// kebab case ("DatePicker", "date-picker").
func (c *Catalog) Lookup(name string) (Spec, bool) {
	i, ok := c.index[normalize(name)]
	if !ok {
		return Spec{}, false
	}
	return c.widgets[i], true
}

// Specs returns the specs in catalog order.
func (c *Catalog) Specs() []Spec {
	return append([]Spec(nil), c.widgets...)
}

// normalize maps widget names to their kebab-cased lower case form.
func normalize(name string) string {
	return strings.ToLower(pinview.Kebab(strings.TrimSpace(name)))
}
