package pinview

import (
	"html"
	"sync"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash represents a one-time notification message.
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// FlashList collects flashes. It implements Notifier.
//
//	flashes := &pinview.FlashList{}
//	flashes.Notify(pinview.FlashSuccess, "Saved!")
//	page.Add(pinview.RenderFlashes(s, flashes.Drain()))
type FlashList struct {
	mu      sync.Mutex
	flashes []Flash
}

// Notify records a flash.
func (l *FlashList) Notify(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flashes = append(l.flashes, Flash{Level: level, Message: message})
}

// Success records a success flash.
func (l *FlashList) Success(message string) {
	l.Notify(FlashSuccess, message)
}

// Error records an error flash.
func (l *FlashList) Error(message string) {
	l.Notify(FlashError, message)
}

// Drain returns the recorded flashes and empties the list.
func (l *FlashList) Drain() []Flash {
	l.mu.Lock()
	defer l.mu.Unlock()
	flashes := l.flashes
	l.flashes = nil
	return flashes
}

// RenderFlashes renders flashes as toast markup inside the #toasts
// container. Messages are escaped. Returns "" without flashes.
//
// The data-auto-dismiss attribute tells the front end how long (in
// milliseconds) a toast stays visible.
func RenderFlashes(s *Session, flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	container := New(s, "div", Attrs{{Name: "id", Value: "toasts"}})
	for _, f := range flashes {
		toast := New(s, "div", Attrs{{Name: "data-auto-dismiss", Value: "3000"}})
		toast.Css("toast", "toast-"+html.EscapeString(f.Level)).Text(f.Message)
		container.Add(toast)
	}
	return container.Build()
}

// ToastContainer returns the empty container that flashes are rendered into.
// Add it once to the page layout.
func ToastContainer(s *Session) *Builder {
	return New(s, "div", Attrs{{Name: "id", Value: "toasts"}}).Css("toast-container")
}
