package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/pthm/pinview/widgets"
)

const testCatalog = `
widgets:
  - name: Button
    tag: button
    shortcuts:
      - key: size
        aliases: [small, mini]
      - key: type
        aliases: [primary, text]
    flags: [plain]
    props: [nativeType, text]
  - name: DatePicker
    tag: date-picker
    prefix: ""
    closing: false
    flags: [readonly]
`

func parseTestCatalog(t *testing.T) *widgets.Catalog {
	t.Helper()
	c, err := widgets.ParseCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	return c
}

func TestDescribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pinview.generator")
	defer teardown()

	c := parseTestCatalog(t)
	spec, _ := c.Lookup("Button")

	info, err := New(Options{}).Describe(spec)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}

	type method struct {
		Name      string
		Kind      MethodKind
		Attribute string
	}
	var got []method
	for _, m := range info.Methods {
		got = append(got, method{m.Name, m.Kind, m.Attribute})
	}
	want := []method{
		{"Small", MethodAlias, "size"},
		{"Mini", MethodAlias, "size"},
		{"Primary", MethodAlias, "type"},
		{"TypeText", MethodAlias, "type"}, // Text is a builder method
		{"Plain", MethodFlag, "plain"},
		{"NativeType", MethodProp, "native-type"},
		{"SetText", MethodProp, "text"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}

	wantShortcuts := []Pair{
		{"mini", "size"}, {"primary", "type"}, {"small", "size"}, {"text", "type"},
	}
	if diff := cmp.Diff(wantShortcuts, info.Shortcuts); diff != "" {
		t.Errorf("shortcuts mismatch (-want +got):\n%s", diff)
	}
}

func TestExportName(t *testing.T) {
	tests := map[string]string{
		"small":         "Small",
		"showPassword":  "ShowPassword",
		"show-password": "ShowPassword",
		"native_type":   "NativeType",
		"":              "",
	}
	for in, want := range tests {
		if got := exportName(in); got != want {
			t.Errorf("exportName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := fileName("DatePicker"); got != "date_picker_gen.go" {
		t.Errorf("fileName() = %q", got)
	}
}

func TestRender(t *testing.T) {
	g := New(Options{Package: "ui"})
	c := parseTestCatalog(t)

	spec, _ := c.Lookup("Button")
	info, err := g.Describe(spec)
	if err != nil {
		t.Fatal(err)
	}
	code, err := g.Render(info)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	src := string(code)
	for _, want := range []string{
		"// Code generated by pinview generate. DO NOT EDIT.",
		"package ui",
		"type Button struct {",
		"func NewButton(s *pinview.Session, payload ...any) *Button {",
		"pinview.WithShortcuts(buttonShortcuts)",
		`w.Invoke("small")`,
		"func (w *Button) TypeText() *Button {",
		`w.Set("plain", true)`,
		`func (w *Button) NativeType(v any) *Button {`,
		`w.Set("native-type", v)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q\n%s", want, src)
		}
	}

	spec, _ = c.Lookup("date-picker")
	info, err = g.Describe(spec)
	if err != nil {
		t.Fatal(err)
	}
	code, err = g.Render(info)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	src = string(code)
	if strings.Contains(src, "WithShortcuts") {
		t.Errorf("widget without shortcuts should not reference a table:\n%s", src)
	}
	for _, want := range []string{`pinview.WithPrefix("")`, "pinview.WithClosing(false)", "// DatePicker is the date-picker widget."} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q\n%s", want, src)
		}
	}
}

func TestGenerateAndClean(t *testing.T) {
	dir := t.TempDir()
	var log bytes.Buffer
	g := New(Options{Log: &log})

	if err := g.Generate(parseTestCatalog(t), dir); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, name := range []string{"button_gen.go", "date_picker_gen.go"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if !strings.Contains(log.String(), "generating") {
		t.Errorf("log = %q", log.String())
	}

	keep := filepath.Join(dir, "button.go")
	if err := os.WriteFile(keep, []byte("package widgets\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := g.Clean(dir); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "button.go" {
		t.Errorf("after Clean: %v", entries)
	}
}

func TestDryRun(t *testing.T) {
	dir := t.TempDir()
	var log bytes.Buffer
	g := New(Options{DryRun: true, Log: &log})

	if err := g.Generate(parseTestCatalog(t), dir); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("dry run wrote files: %v", entries)
	}
}

func TestEmbeddedCatalogIsCurrent(t *testing.T) {
	g := New(Options{})
	for _, spec := range widgets.DefaultCatalog().Specs() {
		info, err := g.Describe(spec)
		if err != nil {
			t.Fatalf("%s: %v", spec.Name, err)
		}
		code, err := g.Render(info)
		if err != nil {
			t.Fatalf("%s: %v", spec.Name, err)
		}
		onDisk, err := os.ReadFile(filepath.Join("..", "..", "widgets", fileName(info.TypeName)))
		if err != nil {
			t.Fatalf("%s: %v", spec.Name, err)
		}
		if diff := cmp.Diff(string(onDisk), string(code)); diff != "" {
			t.Errorf("%s is stale, run `pinview generate` (-disk +generated):\n%s", fileName(info.TypeName), diff)
		}
	}
}
