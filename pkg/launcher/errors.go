package launcher

import "fmt"

// MissingDependencyError indicates the server runtime executable is not
// installed.
type MissingDependencyError struct {
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s is not installed; install the %s server runtime to use this command", e.Dependency, e.Dependency)
}

// LaunchError indicates the server process exited with a non-zero status.
// Launches are never retried; the exit code is surfaced to the operator.
type LaunchError struct {
	Code int
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("server process exited with code %d", e.Code)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
