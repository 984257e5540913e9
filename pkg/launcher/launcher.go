package launcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"mercator-hq/ganymede/pkg/config"
)

// Strategy is the execution strategy chosen for one launch.
type Strategy int

const (
	// StrategyDirect runs the server runtime attached to the current
	// process. Eligible only for a single worker without reload.
	StrategyDirect Strategy = iota
	// StrategySubprocess delegates to a child process with a fully
	// elaborated flag set. Required for multiple workers or reload.
	StrategySubprocess
)

func (s Strategy) String() string {
	if s == StrategyDirect {
		return "direct"
	}
	return "subprocess"
}

// Plan is the launch decision for one invocation: the chosen strategy plus
// the argument set for whichever path was picked. It is derived from the
// RunConfig and exists only for the duration of one launch.
type Plan struct {
	Strategy Strategy
	Serve    ServeOptions
	Args     []Arg
}

// ChooseStrategy picks the execution strategy: direct for a single worker
// without reload, subprocess otherwise.
func ChooseStrategy(cfg *config.RunConfig) Strategy {
	if cfg.Workers == 1 && !cfg.Reload {
		return StrategyDirect
	}
	return StrategySubprocess
}

// PlanLaunch derives the launch plan from a resolved run configuration.
func PlanLaunch(cfg *config.RunConfig) Plan {
	plan := Plan{Strategy: ChooseStrategy(cfg)}

	if plan.Strategy == StrategyDirect {
		plan.Serve = ServeOptions{
			AppPath:  cfg.AppPath,
			Host:     cfg.Host,
			Port:     cfg.Port,
			FD:       cfg.FD,
			UDS:      cfg.UDS,
			Factory:  cfg.Factory,
			CertPath: cfg.CertPath,
			KeyPath:  cfg.KeyPath,
		}
		return plan
	}

	plan.Args = subprocessArgs(cfg)
	return plan
}

// subprocessArgs assembles the child process option set. Order is fixed:
// reload, host, port, workers, factory, then the conditional extras.
func subprocessArgs(cfg *config.RunConfig) []Arg {
	args := []Arg{
		{"reload", cfg.Reload},
		{"host", cfg.Host},
		{"port", cfg.Port},
		{"workers", cfg.Workers},
		{"factory", cfg.Factory},
	}
	if cfg.FD != config.FDUnset {
		args = append(args, Arg{"fd", cfg.FD})
	}
	if cfg.UDS != "" {
		args = append(args, Arg{"uds", cfg.UDS})
	}
	if len(cfg.ReloadDirs) > 0 {
		args = append(args, Arg{"reload-dir", cfg.ReloadDirs})
	}
	if cfg.CertPath != "" {
		args = append(args, Arg{"ssl-certfile", cfg.CertPath})
	}
	if cfg.KeyPath != "" {
		args = append(args, Arg{"ssl-keyfile", cfg.KeyPath})
	}
	return args
}

// Launcher executes a launch plan against a server runtime.
type Launcher struct {
	Runtime Runtime
	Logger  *slog.Logger
}

// NewLauncher creates a Launcher for the given runtime.
func NewLauncher(rt Runtime, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{Runtime: rt, Logger: logger}
}

// Launch derives the plan for cfg and runs it, blocking until the server
// stops. Direct launches propagate the runtime's error unchanged; subprocess
// launches surface a non-zero child exit as a LaunchError and are never
// retried.
func (l *Launcher) Launch(ctx context.Context, cfg *config.RunConfig) error {
	plan := PlanLaunch(cfg)
	launchID := uuid.NewString()

	l.Logger.Info("launching server",
		"launch_id", launchID,
		"strategy", plan.Strategy.String(),
		"app", cfg.AppPath,
		"workers", cfg.Workers,
		"reload", cfg.Reload,
	)

	if plan.Strategy == StrategyDirect {
		return l.Runtime.Serve(ctx, plan.Serve)
	}

	if DebuggerAttached() {
		l.Logger.Warn("debugger detected; breakpoints might not work correctly inside route handlers when running with --reload or --web-concurrency")
	}

	extraEnv := []string{fmt.Sprintf("GANYMEDE_LAUNCH_ID=%s", launchID)}
	return l.Runtime.Exec(ctx, cfg.AppPath, MarshalArgs(plan.Args), extraEnv)
}
