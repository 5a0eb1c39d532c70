package pinview

import (
	"context"
	"testing"
)

func TestTestBuild(t *testing.T) {
	s := NewSession()
	New(s, "p", "before").Build()

	dialog := New(s, "el-dialog", WithID("dlg")).
		Set(":visible.sync", "*p.visible").
		Property("visible", true).
		Add(New(s, "span", WithID("body"), "Hello").Config("mode", "x"))

	result, err := TestBuild(dialog)
	if err != nil {
		t.Fatalf("TestBuild() error: %v", err)
	}

	if !result.HTMLContains(`:visible.sync="builders.dlg.properties.visible"`) {
		t.Errorf("HTML = %s", result.HTML)
	}
	if !result.HTMLContainsAll("<el-dialog", "<span>Hello</span>", `v-bind="builders.dlg.properties"`) {
		t.Errorf("HTML = %s", result.HTML)
	}
	if !result.HTMLContainsAny("nope", "Hello") || result.HTMLContainsAny("nope", "never") {
		t.Error("HTMLContainsAny() wrong")
	}
	if !result.HasBuilder("dlg") || !result.HasBuilder("body") || result.HasBuilder("comp_1_p") {
		t.Errorf("Builders = %v", result.BuiltTags())
	}
	if got := result.BuiltTags(); len(got) != 2 || got[0] != "el-dialog" || got[1] != "span" {
		t.Errorf("BuiltTags() = %v", got)
	}
	if v, ok := result.StoreValue("builders.dlg.properties.visible"); !ok || v != true {
		t.Errorf("StoreValue() = %v, %v", v, ok)
	}
	if v, ok := result.StoreValue("builders.body.configs.mode"); !ok || v != "x" {
		t.Errorf("StoreValue() = %v, %v", v, ok)
	}
}

func TestTestBuildError(t *testing.T) {
	b := New(NewSession(), "div").Style("broken")
	if _, err := TestBuild(b); !IsInvalidDeclaration(err) {
		t.Errorf("TestBuild() err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TestBuildWithContext(ctx, New(NewSession(), "div")); err == nil {
		t.Error("TestBuildWithContext() should fail on a canceled context")
	}
}
