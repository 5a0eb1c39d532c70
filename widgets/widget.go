// Package widgets provides component builders for a Vue UI library.
//
// The typed widgets (Button, Input, Tag, Link) are generated from catalog.yaml
// and embed *pinview.Builder, so every builder operation stays available:
//
//	widgets.NewButton(s, "Save").Primary().Small().VClick("save")
//
// Widgets without a generated type are built through a Registry.
package widgets

import "github.com/pthm/pinview"

// FromSpec creates a builder seeded by spec. Options from the catalog come
// first so payload options and attributes override them.
func FromSpec(s *pinview.Session, spec Spec, payload ...any) *pinview.Builder {
	args := make([]any, 0, len(payload)+5)
	args = append(args, spec.Options()...)
	args = append(args, payload...)
	return pinview.New(s, spec.Tag, args...)
}
