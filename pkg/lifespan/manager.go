package lifespan

import (
	"context"

	"mercator-hq/ganymede/pkg/app"
)

// Hook is a scoped resource active only while the server is running. Start is
// called before the server launches, Stop after it returns.
type Hook interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Factory builds a Hook from the application at entry time.
type Factory func(application *app.Application) (Hook, error)

// Manager is a capability contributed by the application: either an
// already-prepared hook or a factory that needs the application to produce
// one. The variant is fixed at construction and resolved exactly once when
// the lifespan scope is entered.
type Manager struct {
	name    string
	hook    Hook
	factory Factory
}

// Prepared wraps an already-built hook.
func Prepared(name string, h Hook) Manager {
	return Manager{name: name, hook: h}
}

// FromFactory wraps a factory invoked with the application at entry time.
func FromFactory(name string, f Factory) Manager {
	return Manager{name: name, factory: f}
}

// Name returns the manager's display name.
func (m Manager) Name() string {
	return m.name
}

func (m Manager) resolve(application *app.Application) (Hook, error) {
	if m.hook != nil {
		return m.hook, nil
	}
	return m.factory(application)
}
