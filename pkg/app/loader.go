package app

// Loader produces an Application. It is either already resolved or wraps a
// factory that builds the application on demand; the variant is fixed at
// construction so callers never inspect types at load time.
type Loader struct {
	app     *Application
	factory func() (*Application, error)
}

// Resolved returns a Loader for an already-built application.
func Resolved(a *Application) Loader {
	return Loader{app: a}
}

// FromFactory returns a Loader that builds the application when loaded.
func FromFactory(factory func() (*Application, error)) Loader {
	return Loader{factory: factory}
}

// Load normalizes the loader to a resolved application. Factories are invoked
// at most once; subsequent calls return the same application.
func (l *Loader) Load() (*Application, error) {
	if l.app != nil {
		return l.app, nil
	}
	a, err := l.factory()
	if err != nil {
		return nil, err
	}
	l.app = a
	return a, nil
}
