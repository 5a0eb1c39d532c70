package pinview

// ComponentPrefix is the tag prefix of UI library components.
const ComponentPrefix = "el-"

// NewComponent creates a builder for a UI library component: the tag is
// prefixed with ComponentPrefix and always closed. baseTag may be empty, in
// which case the kind name is used ("component" unless WithKind says
// otherwise).
//
//	pinview.NewComponent(s, "button", "Save").Build() // <el-button>Save</el-button>
//
// Payload follows the rules of New; options in payload override the
// component defaults.
func NewComponent(s *Session, baseTag string, payload ...any) *Builder {
	defaults := []any{WithPrefix(ComponentPrefix), WithKind("Component"), WithClosing(true)}
	return New(s, baseTag, append(defaults, payload...)...)
}
