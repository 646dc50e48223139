package engine

import (
	"errors"
	"sync"

	"github.com/kview-dev/kview/pkg/dom"
)

// ErrShutdown is returned by a Manager after Shutdown.
var ErrShutdown = errors.New("engine: manager is shut down")

// Manager is the process-wide owner of the patch engine. It initializes
// lazily on first use and hands out one Patcher per document.
type Manager struct {
	mu       sync.Mutex
	modules  []ModuleFactory
	patchers map[*dom.Document]*Patcher
	inits    int
	shutdown bool
}

// NewManager creates a manager that builds patchers with the given modules.
// With no modules, DefaultModules is used.
func NewManager(modules ...ModuleFactory) *Manager {
	if len(modules) == 0 {
		modules = DefaultModules()
	}
	return &Manager{modules: modules}
}

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the process-wide manager.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

func (m *Manager) init() {
	if m.patchers == nil {
		m.patchers = make(map[*dom.Document]*Patcher)
		m.inits++
	}
}

// Patcher returns the patcher bound to doc, creating it on first use.
func (m *Manager) Patcher(doc *dom.Document) (*Patcher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shutdown {
		return nil, ErrShutdown
	}
	m.init()
	p, ok := m.patchers[doc]
	if !ok {
		p = Init(doc, m.modules...)
		m.patchers[doc] = p
	}
	return p, nil
}

// Release forgets the patcher bound to doc.
func (m *Manager) Release(doc *dom.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.patchers, doc)
}

// Initialized reports whether the manager has been used.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.patchers != nil
}

// Shutdown drops every patcher. Later calls to Patcher fail.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patchers = nil
	m.shutdown = true
}
