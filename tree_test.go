package pinview

import (
	"strings"
	"testing"
)

type card struct {
	*Builder
}

func TestTree(t *testing.T) {
	s := NewSession()
	inner := card{New(s, "section", WithID("inner"), "text")}
	root := New(s, "div", WithID("root"), inner, NewCss("a"), "tail")

	got := root.Tree()
	for _, want := range []string{"<div> root", "<section> inner", `"text"`, "*pinview.Css", `"tail"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Tree() missing %q:\n%s", want, got)
		}
	}
	if s.Len() != 0 {
		t.Error("Tree() must not build")
	}
}
