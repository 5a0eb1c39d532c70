package pinview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributeFlag(t *testing.T) {
	if got := NewAttribute([]string{"disabled"}).Build(); got != "disabled" {
		t.Errorf("Build() = %q, want %q", got, "disabled")
	}
	a := NewAttribute().Flag("v-cloak", "v-pre").Set("id", "x")
	if got := a.Build(); got != `v-cloak v-pre id="x"` {
		t.Errorf("Build() = %q", got)
	}
	if !a.Has("v-cloak") {
		t.Error("Has() should see bare flags")
	}
	if got := a.Get("v-cloak", "def"); got != "def" {
		t.Errorf("Get() on a flag = %v, want the default", got)
	}
}

func TestAttributeSetOrder(t *testing.T) {
	a := NewAttribute().
		Set("b", "1").
		Set("a", "2").
		Set("b", "3").
		Set("", "ignored")
	if got := a.Build(); got != `b="3" a="2"` {
		t.Errorf("Build() = %q", got)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d", a.Len())
	}

	a.Remove("b").Remove("missing")
	if got := a.Build(); got != `a="2"` {
		t.Errorf("after Remove: %q", got)
	}
	if a.Clear(); !a.IsEmpty() || a.Build() != "" {
		t.Error("Clear() left attributes")
	}
}

func TestAttributeMerge(t *testing.T) {
	a := NewAttribute(
		Attrs{{Name: "type", Value: "button"}},
		Attr{Name: ":loading", Value: "busy"},
		map[string]string{"z": "1", "y": "2"},
		map[string]any{"count": 3},
		[]string{"plain"},
		nil,
		func(a *Attribute) { a.Set("late", "yes") },
		NewAttribute(Attr{Name: "from", Value: "other"}),
	)
	want := `type="button" :loading="busy" y="2" z="1" :count="3" plain late="yes" from="other"`
	if got := a.Build(); got != want {
		t.Errorf("Build() =\n  %s\nwant\n  %s", got, want)
	}

	wantAll := Attrs{{"type", "button"}, {":loading", "busy"}, {"y", "2"}, {"z", "1"}, {"count", 3}, {"plain", nil}, {"late", "yes"}, {"from", "other"}}
	if diff := cmp.Diff(wantAll, a.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributePlaceholder(t *testing.T) {
	a := NewAttribute().Placeholder(Rule{Pattern: "*.", Replacement: "builders.comp_1_div."})
	a.Set("visible", "*.visible")
	if got := a.Build(); got != `visible="builders.comp_1_div.visible"` {
		t.Errorf("Build() = %q", got)
	}

	a.Set("visible", "no markers here")
	if got := a.Build(); got != `visible="no markers here"` {
		t.Errorf("non-matching value changed: %q", got)
	}
}

func TestAttributePlaceholderOrder(t *testing.T) {
	a := NewAttribute().Placeholder(
		Rule{Pattern: `\*.`, Replacement: "*."},
		Rule{Pattern: "*.", Replacement: "self."},
	)
	a.Set("a", `*.x \*.y`)
	a.Set("b", Raw("*.raw"))
	if got := a.Build(); got != `a="self.x *.y" b="*.raw"` {
		t.Errorf("Build() = %q", got)
	}

	// re-registering keeps the position and takes the new replacement
	a.Placeholder(Rule{Pattern: "*.", Replacement: "other."}, Rule{Pattern: "", Replacement: "skip"})
	want := []Rule{{`\*.`, "*."}, {"*.", "other."}}
	if diff := cmp.Diff(want, a.Placeholders()); diff != "" {
		t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
	}
	if got := a.Replace("*.z"); got != "other.z" {
		t.Errorf("Replace() = %q", got)
	}

	a.Clear()
	if len(a.Placeholders()) != 2 {
		t.Error("Clear() should keep the placeholder table")
	}
}
