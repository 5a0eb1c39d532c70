// Package pinview assembles Vue single-file-component template markup from
// fluent builder calls.
//
// A Builder is one element. It owns an ordered class set (Css), an ordered
// style map (Style), an ordered attribute map (Attribute) and a content
// sequence (Content), and renders all of them into one string:
//
//	s := pinview.NewSession()
//	button := pinview.NewComponent(s, "button", "Save").
//	    Css("wide").
//	    Invoke("type_primary").
//	    Invoke("onClick", "save", "*.form")
//	fmt.Println(button.Build())
//	// <el-button type="primary" @click="save(builders.comp_1_el_button.form)" class="wide">Save</el-button>
//
// # Bound properties
//
// Attribute values are classified as static attributes or bound properties.
// A ':' in front of the name or the value, or a non-string value (bool,
// number, slice, map), renders :name="value"; everything else renders
// name="value". Escape a leading ':' in a value as `\:`.
//
// # Builder identity
//
// Every builder gets an index from its Session and a builder id
// (comp_{index}_{tag} unless set explicitly). The id namespaces the
// builder's slot in the external reactive store: builders.{id}. Attribute
// values may refer to that slot before the id is known through placeholder
// markers, rewritten at build time:
//
//	*.   builders.{id}.
//	*p.  builders.{id}.properties.
//	*c.  builders.{id}.configs.
//
// A backslash in front of a marker emits the marker itself.
//
// A builder with a non-empty property bag binds the whole bag with
// v-bind="builders.{id}.properties"; Session.Seed writes the bags into a
// Store so the bound paths resolve on the front end.
//
// # Sessions
//
// The Session replaces process-wide counters: it numbers builders and keeps
// the append-only list of builds. Use one Session per render pass.
//
// # Shorthand calls
//
// Invoke applies the shorthand protocol by name: "size_small" or a
// registered shortcut alias sets an attribute to a literal, "onPageChange"
// binds an event handler, and any other name sets a kebab-cased attribute.
// The widgets package generates typed methods on top of it.
//
// pinview produces text only. It never parses HTML and never runs in a
// browser.
package pinview
