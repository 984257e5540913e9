package lifespan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mercator-hq/ganymede/pkg/app"
)

// State is the supervisor's position in its lifecycle.
type State int

const (
	// StateIdle means no hooks have been started.
	StateIdle State = iota
	// StateEntering means hooks are being started in registration order.
	StateEntering
	// StateActive means all hooks are running and control has yielded to
	// the launch strategy.
	StateActive
	// StateExiting means hooks are being stopped in reverse order.
	StateExiting
	// StateClosed is terminal; the supervisor cannot be reused.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEntering:
		return "entering"
	case StateActive:
		return "active"
	case StateExiting:
		return "exiting"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type entry struct {
	name string
	hook Hook
}

// Supervisor brackets the server's active lifetime with the application's
// lifespan hooks. Hooks start in registration order and stop in strict
// reverse order; a hook that fails to stop never prevents stop attempts on
// the remaining hooks. The supervisor drives one launch and is then closed.
type Supervisor struct {
	logger  *slog.Logger
	state   State
	entered []entry
}

// NewSupervisor creates a Supervisor in the idle state.
func NewSupervisor(logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Supervisor{logger: logger}
}

// State returns the supervisor's current state.
func (s *Supervisor) State() State {
	return s.state
}

// Enter starts every manager in registration order, resolving factory
// managers with the application first. If any hook fails to start, the hooks
// already started are stopped in reverse order before the failure is
// returned; no hook is started twice and none leaks.
func (s *Supervisor) Enter(ctx context.Context, application *app.Application, managers []Manager) error {
	if s.state != StateIdle {
		return fmt.Errorf("lifespan supervisor cannot enter from state %s", s.state)
	}
	s.state = StateEntering

	for i, m := range managers {
		name := m.Name()
		if name == "" {
			name = fmt.Sprintf("hook-%d", i)
		}

		hook, err := m.resolve(application)
		if err != nil {
			s.unwind(ctx)
			return &Error{Phase: "start", Hook: name, Err: err}
		}

		s.logger.Debug("starting lifespan hook", "hook", name)
		if err := hook.Start(ctx); err != nil {
			s.unwind(ctx)
			return &Error{Phase: "start", Hook: name, Err: err}
		}
		s.entered = append(s.entered, entry{name: name, hook: hook})
	}

	s.state = StateActive
	return nil
}

// Exit stops every started hook in reverse order. Every pending stop is
// attempted even when earlier ones fail; the failures are combined and
// returned together. Exit transitions the supervisor to its terminal state.
func (s *Supervisor) Exit(ctx context.Context) error {
	if s.state != StateActive {
		return fmt.Errorf("lifespan supervisor cannot exit from state %s", s.state)
	}
	s.state = StateExiting

	var errs []error
	for i := len(s.entered) - 1; i >= 0; i-- {
		e := s.entered[i]
		s.logger.Debug("stopping lifespan hook", "hook", e.name)
		if err := e.hook.Stop(ctx); err != nil {
			s.logger.Error("lifespan hook failed to stop", "hook", e.name, "error", err)
			errs = append(errs, &Error{Phase: "stop", Hook: e.name, Err: err})
		}
	}
	s.entered = nil
	s.state = StateClosed

	return errors.Join(errs...)
}

// unwind stops already-started hooks after a partial Enter, in reverse order.
// Stop failures during unwind are logged, not returned; the start failure is
// the error that surfaces.
func (s *Supervisor) unwind(ctx context.Context) {
	s.state = StateExiting
	for i := len(s.entered) - 1; i >= 0; i-- {
		e := s.entered[i]
		if err := e.hook.Stop(ctx); err != nil {
			s.logger.Error("lifespan hook failed to stop during unwind", "hook", e.name, "error", err)
		}
	}
	s.entered = nil
	s.state = StateClosed
}

// Run executes fn inside the lifespan scope: Enter, fn, then Exit regardless
// of fn's outcome. The error from fn and any stop failures are combined.
func (s *Supervisor) Run(ctx context.Context, application *app.Application, managers []Manager, fn func(ctx context.Context) error) error {
	if err := s.Enter(ctx, application, managers); err != nil {
		return err
	}
	runErr := fn(ctx)
	return errors.Join(runErr, s.Exit(ctx))
}
