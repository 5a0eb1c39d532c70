package pinview

// Store is the reactive key-value store the rendered markup binds to.
//
// Keys form a single flat, dotted namespace shared by the hosting view layer.
// Builders never call the store while rendering; they emit paths (v-bind
// targets, resolved placeholders) that the front-end runtime reads and
// writes. Session.Seed is the one place the core writes to a Store.
type Store interface {
	Get(key string, def any) any
	Set(key string, value any)
	SetTrue(key string)
	SetFalse(key string)
	Toggle(key string)
}

// Notifier shows transient success or error messages to the user. It is
// driven by the request layer around the builders, not by the builders
// themselves; FlashList is an in-memory implementation whose messages can be
// rendered with RenderFlashes.
type Notifier interface {
	Notify(level, message string)
}
