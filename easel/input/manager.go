package input

import (
	"log/slog"
	"time"

	"github.com/valerio/go-easel/easel/input/action"
	"github.com/valerio/go-easel/easel/input/event"
)

const (
	// debounceDuration is the minimum time between two identical events
	debounceDuration = 300 * time.Millisecond
)

// Manager dispatches actions to the callbacks registered for them. The frame
// loop and the backends register; backends trigger from their key events.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	now           func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger runs the callbacks of an action, in registration order. Repeated
// events closer than the debounce interval are dropped. It reports whether
// the event was dispatched.
func (m *Manager) Trigger(act action.Action, evt event.Type) bool {
	now := m.now()
	if m.lastTriggered[act] == nil {
		m.lastTriggered[act] = make(map[event.Type]time.Time)
	}
	if last, ok := m.lastTriggered[act][evt]; ok && now.Sub(last) < debounceDuration {
		return false
	}
	m.lastTriggered[act][evt] = now

	callbacks := m.handlers[act][evt]
	if len(callbacks) == 0 {
		slog.Debug("No handler for action", "action", act)
		return false
	}

	for _, callback := range callbacks {
		callback()
	}
	return true
}

// TriggerKey maps a key through DefaultKeyMap and triggers its action.
func (m *Manager) TriggerKey(key string, evt event.Type) bool {
	act, ok := GetDefaultMapping(key)
	if !ok {
		return false
	}
	return m.Trigger(act, evt)
}
