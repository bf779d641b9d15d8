package capture

import "log"

// Manager tracks the active capture method and tells the capture subsystem
// to reinitialize when it changes. The actual frame grabbing lives behind
// OnMethodChanged; this layer only owns the selection.
type Manager struct {
	methods MethodList
	active  Method

	// OnMethodChanged is invoked after every ChangeMethod call, including
	// re-selection of the current method (a capture device swap needs a
	// reinitialization of the same backend).
	OnMethodChanged func(Method)
}

// NewManager creates a capture manager over a method registry.
func NewManager(methods MethodList) *Manager {
	manager := &Manager{methods: methods}
	if len(methods) > 0 {
		manager.active = methods[0]
	}
	return manager
}

// Methods returns the ordered method registry.
func (m *Manager) Methods() MethodList {
	return m.methods
}

// Active returns the currently selected capture method.
func (m *Manager) Active() Method {
	return m.active
}

// ChangeMethod selects a capture method by identifier and signals the
// capture subsystem. Unknown identifiers fall back to the first entry.
func (m *Manager) ChangeMethod(id string) Method {
	method, ok := m.methods.ByID(id)
	if !ok {
		if len(m.methods) == 0 {
			return Method{}
		}
		log.Printf("Unknown capture method %q, falling back to %s", id, m.methods[0].ID)
		method = m.methods[0]
	}

	m.active = method
	if m.OnMethodChanged != nil {
		m.OnMethodChanged(method)
	}
	return method
}
