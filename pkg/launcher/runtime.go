package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"mercator-hq/ganymede/pkg/config"
)

// RuntimeBinary is the name of the Hyperion server runtime executable.
const RuntimeBinary = "hyperion"

// ServeOptions is the bind target and TLS material handed to the runtime for
// an attached serve. Exactly one bind source is meaningful: FD when set, else
// UDS when set, else Host/Port.
type ServeOptions struct {
	AppPath  string
	Host     string
	Port     int
	FD       int
	UDS      string
	Factory  bool
	CertPath string
	KeyPath  string
}

// Runtime is the server runtime as seen by the launch strategist. Serve runs
// the runtime attached to the current process and blocks until the server
// stops; any error propagates raw. Exec runs the runtime as a child process
// with a fully marshalled argument vector and reports a non-zero exit as a
// LaunchError.
type Runtime interface {
	Serve(ctx context.Context, opts ServeOptions) error
	Exec(ctx context.Context, appPath string, argv []string, extraEnv []string) error
}

// Hyperion is the production Runtime backed by the hyperion executable.
type Hyperion struct {
	// Path is the resolved location of the executable.
	Path string
}

// FindRuntime locates the Hyperion executable on PATH. It returns a
// MissingDependencyError when the runtime is not installed.
func FindRuntime() (*Hyperion, error) {
	path, err := exec.LookPath(RuntimeBinary)
	if err != nil {
		return nil, &MissingDependencyError{Dependency: RuntimeBinary}
	}
	return &Hyperion{Path: path}, nil
}

// Serve runs the runtime attached to the current process: inherited stdio,
// same process group, blocking until the server stops. The interrupt that
// stops the server reaches the runtime directly through the foreground
// process group; the launcher installs no handlers of its own.
func (h *Hyperion) Serve(ctx context.Context, opts ServeOptions) error {
	argv := append([]string{opts.AppPath}, MarshalArgs(serveArgs(opts))...)

	cmd := exec.CommandContext(ctx, h.Path, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Exec runs the runtime as a child process and waits for it to exit.
func (h *Hyperion) Exec(ctx context.Context, appPath string, argv []string, extraEnv []string) error {
	cmd := exec.CommandContext(ctx, h.Path, append([]string{appPath}, argv...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extraEnv...)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &LaunchError{Code: exitErr.ExitCode(), Err: err}
		}
		return err
	}
	return nil
}

// serveArgs builds the attached-serve argument set. The bind target comes
// from exactly one source, in fd > uds > host/port precedence.
func serveArgs(opts ServeOptions) []Arg {
	var args []Arg
	switch {
	case opts.FD != config.FDUnset:
		args = append(args, Arg{"fd", opts.FD})
	case opts.UDS != "":
		args = append(args, Arg{"uds", opts.UDS})
	default:
		args = append(args, Arg{"host", opts.Host}, Arg{"port", opts.Port})
	}
	args = append(args, Arg{"factory", opts.Factory})
	if opts.CertPath != "" {
		args = append(args, Arg{"ssl-certfile", opts.CertPath})
	}
	if opts.KeyPath != "" {
		args = append(args, Arg{"ssl-keyfile", opts.KeyPath})
	}
	return args
}
