package lifespan

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"mercator-hq/ganymede/pkg/app"
)

// CommandHook runs a command when the lifespan scope is entered and another
// when it exits. It backs the hooks declared in the application manifest
// (migrations, cache warmup, sidecar setup). Either command may be empty.
type CommandHook struct {
	StartCmd []string
	StopCmd  []string
	Dir      string
}

// Start runs the hook's start command, if any, and waits for it.
func (h *CommandHook) Start(ctx context.Context) error {
	return h.runCommand(ctx, h.StartCmd)
}

// Stop runs the hook's stop command, if any, and waits for it.
func (h *CommandHook) Stop(ctx context.Context) error {
	return h.runCommand(ctx, h.StopCmd)
}

func (h *CommandHook) runCommand(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = h.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", argv[0], err)
	}
	return nil
}

// ManagersFromSpecs converts the manifest's hook declarations into managers,
// preserving declaration order.
func ManagersFromSpecs(specs []app.HookSpec) []Manager {
	managers := make([]Manager, 0, len(specs))
	for _, spec := range specs {
		managers = append(managers, Prepared(spec.Name, &CommandHook{
			StartCmd: spec.Start,
			StopCmd:  spec.Stop,
			Dir:      spec.Dir,
		}))
	}
	return managers
}
