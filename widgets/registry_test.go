package widgets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pthm/pinview"
)

func TestRegistryBuild(t *testing.T) {
	reg := NewRegistry(nil)
	s := pinview.NewSession()

	b, err := reg.Build(s, "Button", "Go", pinview.Attrs{{Name: "size", Value: "mini"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b.Invoke("danger")

	want := `<el-button size="mini" type="danger">Go</el-button>`
	if got := b.Build(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if b.Kind() != "Button" {
		t.Errorf("Kind() = %q", b.Kind())
	}
}

func TestRegistryUnknown(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := reg.Build(pinview.NewSession(), "Carousel")
	if !errors.Is(err, ErrUnknownWidget) {
		t.Errorf("err = %v, want ErrUnknownWidget", err)
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Add("DatePicker", func(s *pinview.Session, payload ...any) *pinview.Builder {
		return pinview.NewComponent(s, "date-picker", payload...)
	})
	want := []string{"button", "date-picker", "input", "link", "tag"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	f, ok := reg.Lookup("date-picker")
	if !ok {
		t.Fatal("date-picker not registered")
	}
	if got := f(pinview.NewSession()).FullTag(); got != "el-date-picker" {
		t.Errorf("FullTag() = %q", got)
	}
}

func TestRegistryCollisionPanics(t *testing.T) {
	reg := NewRegistry(nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate widget")
		}
	}()
	reg.Add("button", func(s *pinview.Session, payload ...any) *pinview.Builder { return nil })
}

func TestRegistryEmptyNamePanics(t *testing.T) {
	reg := NewRegistry(nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty name")
		}
	}()
	reg.Add(" ", func(s *pinview.Session, payload ...any) *pinview.Builder { return nil })
}
