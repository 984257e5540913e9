package lifespan

import "fmt"

// Error reports a lifespan hook that failed to start or stop.
type Error struct {
	// Phase is "start" or "stop".
	Phase string

	// Hook is the name of the failing manager.
	Hook string

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lifespan hook %q failed to %s: %v", e.Hook, e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
