package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// generateWidget writes the *_gen.go file for a widget.
func (g *Generator) generateWidget(dir string, info *WidgetInfo) error {
	outputFile := filepath.Join(dir, fileName(info.TypeName))

	fmt.Fprintf(g.opts.Log, "generating %s\n", outputFile)

	if g.opts.DryRun {
		return nil
	}

	code, err := g.Render(info)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, code, 0644)
}

// Render returns the formatted source generated for info.
func (g *Generator) Render(info *WidgetInfo) ([]byte, error) {
	code, err := g.renderTemplate(info)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		tracer().Errorf("generator: unformatted source for %s:\n%s", info.TypeName, code)
		return nil, fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

// renderTemplate renders the generated code template.
func (g *Generator) renderTemplate(info *WidgetInfo) ([]byte, error) {
	tmpl, err := template.New("widget").Funcs(template.FuncMap{
		"lowerFirst": lowerFirst,
		"fullTag":    func(w *WidgetInfo) string { return w.Prefix + w.Tag },
	}).Parse(widgetTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Package string
		Widget  *WidgetInfo
		Alias   MethodKind
		Flag    MethodKind
		Prop    MethodKind
	}{
		Package: g.opts.Package,
		Widget:  info,
		Alias:   MethodAlias,
		Flag:    MethodFlag,
		Prop:    MethodProp,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

const widgetTemplate = `// Code generated by pinview generate. DO NOT EDIT.

package {{.Package}}

import "github.com/pthm/pinview"

{{- $w := .Widget}}
{{- $shortcuts := printf "%sShortcuts" (lowerFirst $w.TypeName)}}

// {{$w.TypeName}} is the {{fullTag $w}} widget.
type {{$w.TypeName}} struct {
	*pinview.Builder
}

{{if $w.Shortcuts -}}
var {{$shortcuts}} = map[string]string{
{{- range $w.Shortcuts}}
	{{printf "%q" .Key}}: {{printf "%q" .Value}},
{{- end}}
}
{{- end}}

// New{{$w.TypeName}} creates an {{fullTag $w}}. The payload is passed to pinview.New.
func New{{$w.TypeName}}(s *pinview.Session, payload ...any) *{{$w.TypeName}} {
	args := append([]any{
		pinview.WithKind({{printf "%q" $w.Spec.Name}}),
		pinview.WithPrefix({{printf "%q" $w.Prefix}}),
		{{- if $w.Shortcuts}}
		pinview.WithShortcuts({{$shortcuts}}),
		{{- end}}
		{{- if $w.Spec.Closing}}
		pinview.WithClosing({{$w.Spec.Closing}}),
		{{- end}}
		{{- if $w.Spec.Linebreak}}
		pinview.WithLinebreak(true),
		{{- end}}
	}, payload...)
	return &{{$w.TypeName}}{Builder: pinview.New(s, {{printf "%q" $w.Tag}}, args...)}
}
{{range $w.Methods}}
{{- if eq .Kind $.Alias}}
// {{.Name}} sets {{.Attribute}}="{{.Value}}".
func (w *{{$w.TypeName}}) {{.Name}}() *{{$w.TypeName}} {
	w.Invoke({{printf "%q" .Alias}})
	return w
}
{{else if eq .Kind $.Flag}}
// {{.Name}} binds :{{.Attribute}}="true".
func (w *{{$w.TypeName}}) {{.Name}}() *{{$w.TypeName}} {
	w.Set({{printf "%q" .Attribute}}, true)
	return w
}
{{else}}
// {{.Name}} sets the {{.Attribute}} attribute.
func (w *{{$w.TypeName}}) {{.Name}}(v any) *{{$w.TypeName}} {
	w.Set({{printf "%q" .Attribute}}, v)
	return w
}
{{end}}
{{- end}}`
