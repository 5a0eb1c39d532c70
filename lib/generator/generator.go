// Package generator writes typed widget code from a widget catalog.
//
// For every catalog entry it emits <name>_gen.go holding the widget type, its
// constructor and one method per shortcut alias, flag and prop.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/pthm/pinview"
	"github.com/pthm/pinview/widgets"
)

const generatedSuffix = "_gen.go"

// tracer traces with key 'pinview.generator'.
func tracer() tracing.Trace {
	return tracing.Select("pinview.generator")
}

// Options configures the generator.
type Options struct {
	DryRun bool
	// Package is the package clause of generated files. Defaults to "widgets".
	Package string
	// Log receives one line per written or removed file. Defaults to os.Stdout.
	Log io.Writer
}

// Generator generates widget code.
type Generator struct {
	opts     Options
	reserved map[string]bool
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "widgets"
	}
	if opts.Log == nil {
		opts.Log = os.Stdout
	}
	return &Generator{
		opts:     opts,
		reserved: builderMethods(),
	}
}

// builderMethods returns the method names of *pinview.Builder. Generated
// methods must not shadow them.
func builderMethods() map[string]bool {
	t := reflect.TypeOf(&pinview.Builder{})
	names := make(map[string]bool, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names[t.Method(i).Name] = true
	}
	return names
}

// Generate writes one file per widget of catalog into dir.
func (g *Generator) Generate(catalog *widgets.Catalog, dir string) error {
	for _, spec := range catalog.Specs() {
		info, err := g.Describe(spec)
		if err != nil {
			return fmt.Errorf("widget %s: %w", spec.Name, err)
		}
		if err := g.generateWidget(dir, info); err != nil {
			return fmt.Errorf("widget %s: %w", spec.Name, err)
		}
	}
	return nil
}

// Clean removes generated files from dir.
func (g *Generator) Clean(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), generatedSuffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fmt.Fprintf(g.opts.Log, "removing %s\n", path)
		if !g.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}

// WidgetInfo holds what is generated for one widget.
type WidgetInfo struct {
	Spec      widgets.Spec
	TypeName  string // e.g. "Button"
	Tag       string // e.g. "button"
	Prefix    string // e.g. "el-"
	Shortcuts []Pair // alias -> key, sorted by alias
	Methods   []MethodInfo
}

// Pair is a sorted map entry.
type Pair struct {
	Key   string
	Value string
}

// MethodKind tells how a generated method touches the builder.
type MethodKind int

const (
	MethodAlias MethodKind = iota // Invoke(alias)
	MethodFlag                    // Set(attribute, true)
	MethodProp                    // Set(attribute, v)
)

// MethodInfo describes one generated method.
type MethodInfo struct {
	Name      string // Go method name
	Kind      MethodKind
	Alias     string // shortcut alias, for MethodAlias
	Attribute string // kebab-cased attribute name
	Value     string // attribute value set by an alias
}

// Describe resolves the type and method names generated for spec.
func (g *Generator) Describe(spec widgets.Spec) (*WidgetInfo, error) {
	typeName := exportName(spec.Name)
	if typeName == "" {
		return nil, fmt.Errorf("no type name")
	}
	info := &WidgetInfo{
		Spec:     spec,
		TypeName: typeName,
		Tag:      spec.Tag,
		Prefix:   spec.TagPrefix(),
	}

	table := spec.ShortcutTable()
	for _, alias := range sortedKeys(table) {
		info.Shortcuts = append(info.Shortcuts, Pair{Key: alias, Value: table[alias]})
	}

	used := make(map[string]bool)
	claim := func(candidates ...string) (string, error) {
		for _, name := range candidates {
			if name != "" && !g.reserved[name] && !used[name] {
				used[name] = true
				return name, nil
			}
		}
		return "", fmt.Errorf("no free method name among %v", candidates)
	}

	for _, sc := range spec.Shortcuts {
		for _, alias := range sc.Aliases {
			name, err := claim(exportName(alias), exportName(sc.Key)+exportName(alias))
			if err != nil {
				return nil, err
			}
			info.Methods = append(info.Methods, MethodInfo{
				Name:      name,
				Kind:      MethodAlias,
				Alias:     alias,
				Attribute: pinview.Kebab(sc.Key),
				Value:     alias,
			})
		}
	}
	for _, flag := range spec.Flags {
		name, err := claim(exportName(flag), "With"+exportName(flag))
		if err != nil {
			return nil, err
		}
		info.Methods = append(info.Methods, MethodInfo{
			Name:      name,
			Kind:      MethodFlag,
			Attribute: pinview.Kebab(flag),
		})
	}
	for _, prop := range spec.Props {
		name, err := claim(exportName(prop), "Set"+exportName(prop))
		if err != nil {
			return nil, err
		}
		info.Methods = append(info.Methods, MethodInfo{
			Name:      name,
			Kind:      MethodProp,
			Attribute: pinview.Kebab(prop),
		})
	}

	tracer().Debugf("generator: %s has %d methods", typeName, len(info.Methods))
	return info, nil
}

// exportName turns "show-password", "show_password" or "showPassword" into
// "ShowPassword".
func exportName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			upper = true
		case upper:
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fileName returns the generated file name for a widget type.
func fileName(typeName string) string {
	return strings.ReplaceAll(strings.ToLower(pinview.Kebab(typeName)), "-", "_") + generatedSuffix
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
