package launcher

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"mercator-hq/ganymede/pkg/config"
)

// fakeRuntime records what the launcher asked for.
type fakeRuntime struct {
	served    bool
	serveOpts ServeOptions
	serveErr  error

	execed   bool
	appPath  string
	argv     []string
	extraEnv []string
	execErr  error
}

func (f *fakeRuntime) Serve(ctx context.Context, opts ServeOptions) error {
	f.served = true
	f.serveOpts = opts
	return f.serveErr
}

func (f *fakeRuntime) Exec(ctx context.Context, appPath string, argv []string, extraEnv []string) error {
	f.execed = true
	f.appPath = appPath
	f.argv = argv
	f.extraEnv = extraEnv
	return f.execErr
}

func baseConfig() *config.RunConfig {
	return &config.RunConfig{
		AppPath: "./cmd/shop",
		Host:    config.DefaultHost,
		Port:    config.DefaultPort,
		Workers: 1,
		FD:      config.FDUnset,
	}
}

func TestChooseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		reload  bool
		want    Strategy
	}{
		{"single worker no reload", 1, false, StrategyDirect},
		{"multiple workers", 4, false, StrategySubprocess},
		{"reload", 1, true, StrategySubprocess},
		{"both", 4, true, StrategySubprocess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Workers = tt.workers
			cfg.Reload = tt.reload
			if got := ChooseStrategy(cfg); got != tt.want {
				t.Errorf("ChooseStrategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLaunchDirect(t *testing.T) {
	cfg := baseConfig()
	cfg.CertPath = "cert.pem"
	cfg.KeyPath = "key.pem"

	rt := &fakeRuntime{}
	l := NewLauncher(rt, nil)
	if err := l.Launch(context.Background(), cfg); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	if !rt.served {
		t.Fatal("direct strategy should call Serve")
	}
	if rt.execed {
		t.Error("direct strategy must not spawn a subprocess")
	}
	if rt.serveOpts.Host != config.DefaultHost || rt.serveOpts.Port != config.DefaultPort {
		t.Errorf("ServeOptions bind = %s:%d", rt.serveOpts.Host, rt.serveOpts.Port)
	}
	if rt.serveOpts.CertPath != "cert.pem" || rt.serveOpts.KeyPath != "key.pem" {
		t.Error("ServeOptions should carry the resolved TLS paths")
	}
}

func TestLaunchDirectPropagatesError(t *testing.T) {
	serveErr := errors.New("bind failed")
	rt := &fakeRuntime{serveErr: serveErr}
	l := NewLauncher(rt, nil)

	if err := l.Launch(context.Background(), baseConfig()); !errors.Is(err, serveErr) {
		t.Errorf("Launch() error = %v, want %v", err, serveErr)
	}
}

func TestLaunchSubprocessArgs(t *testing.T) {
	cfg := baseConfig()
	cfg.Port = 9000
	cfg.Workers = 4

	rt := &fakeRuntime{}
	l := NewLauncher(rt, nil)
	if err := l.Launch(context.Background(), cfg); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	if !rt.execed {
		t.Fatal("multi-worker launch should use the subprocess strategy")
	}
	if rt.appPath != "./cmd/shop" {
		t.Errorf("appPath = %q, want %q", rt.appPath, "./cmd/shop")
	}
	if !slices.Contains(rt.argv, "--port=9000") {
		t.Errorf("argv %v should include --port=9000", rt.argv)
	}
	if !slices.Contains(rt.argv, "--workers=4") {
		t.Errorf("argv %v should include --workers=4", rt.argv)
	}
	if slices.Contains(rt.argv, "--reload") {
		t.Errorf("argv %v must not include --reload", rt.argv)
	}
}

func TestLaunchSubprocessReloadDirs(t *testing.T) {
	cfg := baseConfig()
	cfg.Reload = true
	cfg.ReloadDirs = []string{"a", "b"}

	rt := &fakeRuntime{}
	l := NewLauncher(rt, nil)
	if err := l.Launch(context.Background(), cfg); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	for _, want := range []string{"--reload", "--reload-dir=a", "--reload-dir=b"} {
		if !slices.Contains(rt.argv, want) {
			t.Errorf("argv %v should include %s", rt.argv, want)
		}
	}
}

func TestLaunchSubprocessPropagatesLaunchError(t *testing.T) {
	cfg := baseConfig()
	cfg.Workers = 2

	rt := &fakeRuntime{execErr: &LaunchError{Code: 3}}
	l := NewLauncher(rt, nil)

	err := l.Launch(context.Background(), cfg)
	var lErr *LaunchError
	if !errors.As(err, &lErr) {
		t.Fatalf("Launch() error = %v, want *LaunchError", err)
	}
	if lErr.Code != 3 {
		t.Errorf("Code = %d, want 3", lErr.Code)
	}
}

func TestLaunchSubprocessExportsLaunchID(t *testing.T) {
	cfg := baseConfig()
	cfg.Workers = 2

	rt := &fakeRuntime{}
	l := NewLauncher(rt, nil)
	if err := l.Launch(context.Background(), cfg); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	found := false
	for _, kv := range rt.extraEnv {
		if strings.HasPrefix(kv, "GANYMEDE_LAUNCH_ID=") && len(kv) > len("GANYMEDE_LAUNCH_ID=") {
			found = true
		}
	}
	if !found {
		t.Errorf("extraEnv %v should carry GANYMEDE_LAUNCH_ID", rt.extraEnv)
	}
}

func TestPlanLaunchBindSource(t *testing.T) {
	// Exactly one bind source reaches the runtime, fd > uds > host/port.
	fd := baseConfig()
	fd.FD = 3
	fd.UDS = ""
	plan := PlanLaunch(fd)
	args := MarshalArgs(serveArgs(plan.Serve))
	if !slices.Contains(args, "--fd=3") {
		t.Errorf("args %v should bind to fd", args)
	}
	if slices.Contains(args, "--host=127.0.0.1") {
		t.Errorf("args %v must not also bind to host", args)
	}

	uds := baseConfig()
	uds.UDS = "/tmp/app.sock"
	plan = PlanLaunch(uds)
	args = MarshalArgs(serveArgs(plan.Serve))
	if !slices.Contains(args, "--uds=/tmp/app.sock") {
		t.Errorf("args %v should bind to uds", args)
	}

	hp := baseConfig()
	plan = PlanLaunch(hp)
	args = MarshalArgs(serveArgs(plan.Serve))
	if !slices.Contains(args, "--host=127.0.0.1") || !slices.Contains(args, "--port=8000") {
		t.Errorf("args %v should bind to host/port", args)
	}
}

func TestSubprocessArgOrder(t *testing.T) {
	cfg := baseConfig()
	cfg.Workers = 4
	cfg.CertPath = "cert.pem"
	cfg.KeyPath = "key.pem"

	got := MarshalArgs(subprocessArgs(cfg))
	want := []string{
		"--host=127.0.0.1",
		"--port=8000",
		"--workers=4",
		"--ssl-certfile=cert.pem",
		"--ssl-keyfile=key.pem",
	}
	if !slices.Equal(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestFindRuntimeMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := FindRuntime()
	var depErr *MissingDependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("FindRuntime() error = %v, want *MissingDependencyError", err)
	}
	if depErr.Dependency != RuntimeBinary {
		t.Errorf("Dependency = %q, want %q", depErr.Dependency, RuntimeBinary)
	}
}
