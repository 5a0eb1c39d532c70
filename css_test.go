package pinview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCssAdd(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Css
		want  []string
	}{
		{"dedup keeps first seen", func() *Css { return NewCss("m p").Add("m") }, []string{"m", "p"}},
		{"comma and space", func() *Css { return NewCss("a, b  c,d") }, []string{"a", "b", "c", "d"}},
		{"slice elements are split", func() *Css { return NewCss([]string{"a b", "c"}) }, []string{"a", "b", "c"}},
		{"other set", func() *Css { return NewCss("x", NewCss("y x z")) }, []string{"x", "y", "z"}},
		{"producer returning string", func() *Css { return NewCss(func() string { return "lazy" }) }, []string{"lazy"}},
		{"producer mutating fresh set", func() *Css {
			return NewCss("a", func(c *Css) { c.Add("b a") })
		}, []string{"a", "b"}},
		{"producer returning nil uses fresh set", func() *Css {
			return NewCss(func(c *Css) any { c.Add("f"); return nil })
		}, []string{"f"}},
		{"untyped slice", func() *Css { return NewCss([]any{"a b", 3, []string{"c"}, nil}) }, []string{"a", "b", "c"}},
		{"unsupported input ignored", func() *Css { return NewCss(42, nil, "ok") }, []string{"ok"}},
		{"blank string", func() *Css { return NewCss("   ") }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.build().All()); diff != "" {
				t.Errorf("All() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCssPrepend(t *testing.T) {
	c := NewCss("b c").Prepend("a c")
	if diff := cmp.Diff([]string{"a", "c", "b"}, c.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if got := c.Build(); got != "a c b" {
		t.Errorf("Build() = %q, want %q", got, "a c b")
	}
}

func TestCssQueries(t *testing.T) {
	c := NewCss("p m")
	if !c.Has("m") || c.Has("x") {
		t.Errorf("Has() wrong for %v", c.All())
	}
	if c.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if got := c.Reset("z").Build(); got != "z" {
		t.Errorf("Reset() = %q", got)
	}
	if !c.Clear().IsEmpty() || c.Build() != "" {
		t.Error("Clear() left classes")
	}
}
