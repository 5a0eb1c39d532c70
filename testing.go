package pinview

import (
	"bytes"
	"context"
	"strings"
)

// TestResult holds the output of a build for testing.
//
// Provides convenience methods for asserting on markup, the builders the
// build recorded, and the resulting store state.
type TestResult struct {
	HTML     string
	Builders []*Builder
	Store    *MemoryStore
}

// TestBuild builds b through its templ.Component implementation and returns
// testable output. Only builds made by this call appear in Builders; the
// store is seeded from them.
//
//	result, err := pinview.TestBuild(dialog)
//	if !result.HTMLContains(`:visible="builders.`) {
//	    t.Fatal("missing visible binding")
//	}
func TestBuild(b *Builder) (*TestResult, error) {
	return TestBuildWithContext(context.Background(), b)
}

// TestBuildWithContext is TestBuild with a caller supplied context.
func TestBuildWithContext(ctx context.Context, b *Builder) (*TestResult, error) {
	before := b.session.Len()

	var buf bytes.Buffer
	if err := b.Render(ctx, &buf); err != nil {
		return nil, err
	}

	built := b.session.Built()[before:]
	store := NewMemoryStore()
	scoped := &Session{built: built}
	scoped.Seed(store)

	return &TestResult{
		HTML:     buf.String(),
		Builders: built,
		Store:    store,
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasBuilder checks if a builder with the given id was built.
func (r *TestResult) HasBuilder(id string) bool {
	for _, b := range r.Builders {
		if b.BuilderID() == id {
			return true
		}
	}
	return false
}

// BuiltTags returns the full tags of the recorded builds, in build order.
func (r *TestResult) BuiltTags() []string {
	tags := make([]string, 0, len(r.Builders))
	for _, b := range r.Builders {
		tags = append(tags, b.FullTag())
	}
	return tags
}

// StoreValue returns the seeded store value at key.
func (r *TestResult) StoreValue(key string) (any, bool) {
	return r.Store.Lookup(key)
}
