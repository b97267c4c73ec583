package repl

import (
	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/owner"
)

// Manager is the ordered registry of windows with one active window.
//
// ActiveIndex is -1 exactly when the registry is empty; otherwise it is a
// valid index.
type Manager struct {
	windows []*Window
	active  int

	log   *logging.Logger
	guard *owner.Guard
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the manager's logger.
func WithManagerLogger(l *logging.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager creates an empty registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		active: -1,
		log:    logging.Null(),
		guard:  owner.Named("repl.Manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.WithComponent("repl.manager")
	return m
}

// Add appends w. It returns false for a nil window or when a window with
// the same name is already registered. The first window becomes active.
func (m *Manager) Add(w *Window) bool {
	defer m.guard.Enter("Add")()
	return m.add(w)
}

func (m *Manager) add(w *Window) bool {
	if w == nil {
		return false
	}
	if m.index(w.name) >= 0 {
		m.log.Debug("window %q already registered", w.name)
		return false
	}
	m.windows = append(m.windows, w)
	if m.active < 0 {
		m.active = 0
	}
	m.log.Debug("added window %q (%d total)", w.name, len(m.windows))
	return true
}

// Attach adds w and makes it active without requesting a clear.
func (m *Manager) Attach(w *Window) bool {
	defer m.guard.Enter("Attach")()

	if !m.add(w) {
		return false
	}
	m.active = len(m.windows) - 1
	return true
}

// Remove unregisters w. It returns false if w is not registered.
func (m *Manager) Remove(w *Window) bool {
	defer m.guard.Enter("Remove")()

	for i, cur := range m.windows {
		if cur == w {
			m.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveAt unregisters the window at index. It returns false when index is
// out of range.
func (m *Manager) RemoveAt(index int) bool {
	defer m.guard.Enter("RemoveAt")()

	if index < 0 || index >= len(m.windows) {
		return false
	}
	m.removeAt(index)
	return true
}

func (m *Manager) removeAt(index int) {
	name := m.windows[index].name
	m.windows = append(m.windows[:index], m.windows[index+1:]...)

	if index <= m.active {
		m.active--
	}
	if m.active < 0 && len(m.windows) > 0 {
		m.active = 0
	}
	if len(m.windows) == 0 {
		m.active = -1
	}
	m.log.Debug("removed window %q, active=%d", name, m.active)
}

// Switch makes the window at index active. Both the previous and the new
// active window are marked as requiring a console clear.
func (m *Manager) Switch(index int) bool {
	defer m.guard.Enter("Switch")()

	if index < 0 || index >= len(m.windows) {
		return false
	}
	if m.active >= 0 {
		m.windows[m.active].requireClear()
	}
	m.active = index
	m.windows[index].requireClear()
	m.log.Debug("switched to window %q", m.windows[index].name)
	return true
}

// SwitchByName makes the named window active.
func (m *Manager) SwitchByName(name string) bool {
	i := m.Index(name)
	if i < 0 {
		return false
	}
	return m.Switch(i)
}

// Index returns the index of the window with exactly this name, or -1.
func (m *Manager) Index(name string) int {
	return m.index(name)
}

func (m *Manager) index(name string) int {
	for i, w := range m.windows {
		if w.name == name {
			return i
		}
	}
	return -1
}

// Active returns the active window, or nil when the registry is empty.
func (m *Manager) Active() *Window {
	if m.active < 0 || m.active >= len(m.windows) {
		return nil
	}
	return m.windows[m.active]
}

// ActiveIndex returns the index of the active window, or -1.
func (m *Manager) ActiveIndex() int { return m.active }

// Get returns the window at index, or nil.
func (m *Manager) Get(index int) *Window {
	if index < 0 || index >= len(m.windows) {
		return nil
	}
	return m.windows[index]
}

// Windows returns the registered windows in order.
func (m *Manager) Windows() []*Window {
	out := make([]*Window, len(m.windows))
	copy(out, m.windows)
	return out
}

// Len returns the number of registered windows.
func (m *Manager) Len() int { return len(m.windows) }
