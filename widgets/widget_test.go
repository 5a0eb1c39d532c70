package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm/pinview"
)

func TestButtonShortcuts(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *pinview.Session) *Button
		want  string
	}{
		{
			name:  "plain",
			build: func(s *pinview.Session) *Button { return NewButton(s, "Save") },
			want:  `<el-button>Save</el-button>`,
		},
		{
			name:  "alias methods",
			build: func(s *pinview.Session) *Button { return NewButton(s, "Save").Primary().Small() },
			want:  `<el-button type="primary" size="small">Save</el-button>`,
		},
		{
			name: "shorthand names",
			build: func(s *pinview.Session) *Button {
				b := NewButton(s, "Save")
				b.Invoke("sizeSmall")
				b.Invoke("type_text")
				return b
			},
			want: `<el-button size="small" type="text">Save</el-button>`,
		},
		{
			name:  "flags and props",
			build: func(s *pinview.Session) *Button { return NewButton(s).Plain().NativeType("submit").TypeText() },
			want:  `<el-button :plain="true" native-type="submit" type="text"></el-button>`,
		},
		{
			name: "later alias wins",
			build: func(s *pinview.Session) *Button {
				return NewButton(s, "x").Mini().Medium()
			},
			want: `<el-button size="medium">x</el-button>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pinview.NewSession()
			assert.Equal(t, tt.want, tt.build(s).Build())
		})
	}
}

func TestButtonEvents(t *testing.T) {
	s := pinview.NewSession()
	b := NewButton(s, "Next")
	b.Invoke("onClick", "next")
	assert.Equal(t, `<el-button @click="next">Next</el-button>`, b.Build())
	assert.Equal(t, "comp_1_el_button", b.BuilderID())
}

func TestWidgetsNest(t *testing.T) {
	s := pinview.NewSession()
	form := pinview.New(s, "el-form", pinview.WithLinebreak(true))
	form.Add(
		NewInput(s).Clearable().Placeholder("Name").VModel("form.name"),
		NewTag(s, "beta").Success().Plain(),
		NewLink(s, "Docs").Href("/docs").Underline(),
	)

	got := form.Build()
	for _, want := range []string{
		`<el-input :clearable="true" placeholder="Name" v-model="form.name"></el-input>`,
		`<el-tag type="success" effect="plain">beta</el-tag>`,
		`<el-link href="/docs" :underline="true">Docs</el-link>`,
	} {
		assert.Contains(t, got, want)
	}
	assert.True(t, strings.HasPrefix(got, "<el-form>\n"))
	assert.Len(t, s.Built(), 4)
}

func TestFromSpecOverrides(t *testing.T) {
	spec, _ := DefaultCatalog().Lookup("Tag")
	s := pinview.NewSession()
	b := FromSpec(s, spec, pinview.WithPrefix("x-"), "new")
	assert.Equal(t, `<x-tag>new</x-tag>`, b.Build())
	assert.Equal(t, "Tag", b.Kind())
}

func TestWidgetSliceContent(t *testing.T) {
	s := pinview.NewSession()
	buttons := []*Button{NewButton(s, "Cancel"), NewButton(s, "Save").Primary()}
	footer := pinview.New(s, "span", pinview.Attrs{{Name: "slot", Value: "footer"}}, buttons)
	assert.Equal(t,
		`<span slot="footer"><el-button>Cancel</el-button><el-button type="primary">Save</el-button></span>`,
		footer.Build())
}
