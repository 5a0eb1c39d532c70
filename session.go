package pinview

import "sync"

// Session is the render context shared by the builders of one render pass.
//
// It assigns every builder a unique ascending index and keeps an append-only
// list of the builders built so far, which the surrounding view layer uses
// to discover every builder that contributed to a page. Builders from
// different sessions never share indices, so independent render passes
// (for example concurrent requests) each use their own Session.
//
// Session is safe for concurrent use.
type Session struct {
	mu    sync.Mutex
	next  int
	built []*Builder
}

// NewSession creates an empty session. The first builder gets index 1.
func NewSession() *Session {
	return &Session{}
}

// nextIndex returns the next builder index.
func (s *Session) nextIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

// record appends b to the built list.
func (s *Session) record(b *Builder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.built = append(s.built, b)
}

// Built returns the builders built so far, in build order. A builder built
// several times appears several times.
func (s *Session) Built() []*Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Builder(nil), s.built...)
}

// Len returns the number of recorded builds.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.built)
}

// Reset clears the built list and restarts the index counter. Builders
// created before Reset keep their indices.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
	s.built = nil
}

// State returns the property and config bags of every built builder keyed
// by builder id. Builders without properties or configs are omitted.
//
//	{"comp_1_div": {"properties": {...}, "configs": {...}}}
func (s *Session) State() map[string]any {
	state := make(map[string]any)
	for _, b := range s.Built() {
		entry := make(map[string]any)
		if props := b.Properties(); len(props) > 0 {
			entry[propertiesSegment] = props
		}
		if configs := b.Configs(); len(configs) > 0 {
			entry[configsSegment] = configs
		}
		if len(entry) > 0 {
			state[b.BuilderID()] = entry
		}
	}
	return state
}

// Seed writes the property and config bags of every built builder into
// store under their namespaced keys, so that the markup's bound paths
// resolve once the store is handed to the front end.
func (s *Session) Seed(store Store) {
	for _, b := range s.Built() {
		for k, v := range b.Properties() {
			store.Set(b.PropertyKey(k), v)
		}
		for k, v := range b.Configs() {
			store.Set(b.ConfigKey(k), v)
		}
	}
}

// StateEncode implements encoding.Encodable.
func (s *Session) StateEncode() map[string]any {
	return s.State()
}
