package pinview

import "testing"

func TestMemoryStore(t *testing.T) {
	var store Store = NewMemoryStore()

	if got := store.Get("missing", "def"); got != "def" {
		t.Errorf("Get() = %v, want default", got)
	}

	store.Set("a", 1)
	store.SetTrue("t")
	store.SetFalse("f")
	store.Toggle("t")
	store.Toggle("f")
	store.Toggle("new")
	store.Set("s", "text")
	store.Toggle("s")

	tests := map[string]any{"a": 1, "t": false, "f": true, "new": true, "s": true}
	for key, want := range tests {
		if got := store.Get(key, nil); got != want {
			t.Errorf("Get(%q) = %v, want %v", key, got, want)
		}
	}

	m := store.(*MemoryStore)
	if _, ok := m.Lookup("nope"); ok {
		t.Error("Lookup() found a missing key")
	}
	if v, ok := m.Lookup("a"); !ok || v != 1 {
		t.Errorf("Lookup(a) = %v, %v", v, ok)
	}
	if got := len(m.Keys()); got != 5 {
		t.Errorf("len(Keys()) = %d, want 5", got)
	}
}
