package page

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/pinview"
)

func TestParseWidget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pinview.page")
	defer teardown()

	s := pinview.NewSession()
	b, err := NewLoader(nil).Parse(s, []byte(`
widget: Button
text: Save
invoke:
  - primary
  - onClick: [save, 1]
  - size_mini: null
`))
	require.NoError(t, err)
	assert.Equal(t, `<el-button type="primary" @click="save(1)" size="mini">Save</el-button>`, b.Build())
}

func TestParseDialogPage(t *testing.T) {
	s := pinview.NewSession()
	b, err := NewLoader(nil).Parse(s, []byte(`
tag: el-dialog
attrs:
  title: Settings
  ":visible.sync": "*p.visible"
properties:
  visible: false
children:
  - widget: Button
    text: Close
    invoke: [primary, {onClick: close}]
`))
	require.NoError(t, err)
	assert.Equal(t, `<el-dialog title="Settings" :visible.sync="builders.comp_1_el_dialog.properties.visible"`+
		` v-bind="builders.comp_1_el_dialog.properties">`+
		`<el-button type="primary" @click="close">Close</el-button></el-dialog>`, b.Build())
}

func TestParseTree(t *testing.T) {
	s := pinview.NewSession()
	b, err := NewLoader(nil).Parse(s, []byte(`
tag: div
id: settings
attrs:
  ":visible.sync": "*p.visible"
  v-cloak: null
  ":count": 3
properties:
  visible: false
class: [panel, wide]
style:
  color: red
  margin: 0
children:
  - tag: span
    interpolation: title
  - tag: input
    closing: false
    attrs:
      disabled: true
`))
	require.NoError(t, err)

	want := `<div :visible.sync="builders.settings.properties.visible" v-cloak :count="3"` +
		` class="panel wide" style="color:red; margin:0;" v-bind="builders.settings.properties">` +
		`<span>{{ title }}</span><input :disabled="true"></div>`
	assert.Equal(t, want, b.Build())

	ids := []string{}
	for _, built := range s.Built() {
		ids = append(ids, built.BuilderID())
	}
	assert.Equal(t, []string{"settings", "comp_2_span", "comp_3_input"}, ids)
	assert.Equal(t, map[string]any{
		"settings": map[string]any{"properties": map[string]any{"visible": false}},
	}, s.State())
}

func TestParseSlotsAndStrings(t *testing.T) {
	s := pinview.NewSession()
	b, err := NewLoader(nil).Parse(s, []byte(`
tag: el-table-column
class: "name col"
style: "width: 10px"
slots:
  default:
    prop: scope
    children:
      - widget: Tag
        interpolation: scope.row.name
`))
	require.NoError(t, err)
	assert.Equal(t,
		`<el-table-column class="name col" style="width:10px;"><template #default="scope"><el-tag>{{ scope.row.name }}</el-tag></template></el-table-column>`,
		b.Build())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{"no tag", "text: hi", true},
		{"widget and tag", "widget: Button\ntag: div", true},
		{"bad attrs", "tag: div\nattrs: [a, b]", true},
		{"bad class", "tag: div\nclass: {a: b}", true},
		{"bad style", "tag: div\nstyle: [a]", true},
		{"bad invoke", "tag: div\ninvoke: [[a]]", true},
		{"bad child", "tag: div\nchildren:\n  - text: x", true},
		{"syntax", "tag: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).Parse(pinview.NewSession(), []byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidPage), "error: %v", err)
		})
	}
}

func TestUnknownWidget(t *testing.T) {
	_, err := NewLoader(nil).Parse(pinview.NewSession(), []byte("widget: Carousel"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Carousel")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widget: Link\ntext: Home\ninvoke: [primary]\n"), 0644))

	b, err := NewLoader(nil).Load(pinview.NewSession(), path)
	require.NoError(t, err)
	assert.Equal(t, `<el-link type="primary">Home</el-link>`, b.Build())

	_, err = NewLoader(nil).Load(pinview.NewSession(), filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
