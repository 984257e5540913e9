package config

import (
	"reflect"
	"testing"

	"mercator-hq/ganymede/pkg/app"
)

func defaultFlags() *Flags {
	return &Flags{
		Host:    DefaultHost,
		Port:    DefaultPort,
		Workers: DefaultWorkers,
		FD:      FDUnset,
	}
}

func emptyEnviron() *Environ {
	return &Environ{FD: FDUnset}
}

func TestResolveDefaults(t *testing.T) {
	application := &app.Application{Path: "./cmd/shop"}

	cfg := Resolve(defaultFlags(), emptyEnviron(), application)

	if cfg.AppPath != "./cmd/shop" {
		t.Errorf("AppPath = %q, want %q", cfg.AppPath, "./cmd/shop")
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Host, DefaultHost)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", cfg.Workers, DefaultWorkers)
	}
	if cfg.FD != FDUnset {
		t.Errorf("FD = %d, want unset", cfg.FD)
	}
	if cfg.Reload || cfg.Debug || cfg.BreakOnError || cfg.CreateSelfSignedCert {
		t.Error("boolean fields should default to false")
	}
}

func TestResolveEnvironmentWinsOverFlags(t *testing.T) {
	flags := defaultFlags()
	flags.Host = "10.0.0.1"
	flags.Port = 9999

	env := emptyEnviron()
	env.Host = "0.0.0.0"
	env.Port = 8080
	env.Workers = 4

	cfg := Resolve(flags, env, &app.Application{Path: "./cmd/shop"})

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want environment value %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want environment value 8080", cfg.Port)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want environment value 4", cfg.Workers)
	}
}

func TestResolveManifestWinsOverFlags(t *testing.T) {
	flags := defaultFlags()
	application := &app.Application{
		Path: "./cmd/shop",
		Server: app.ServerSettings{
			Host: "0.0.0.0",
			Port: 9000,
		},
	}

	cfg := Resolve(flags, emptyEnviron(), application)

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want manifest value %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want manifest value 9000", cfg.Port)
	}
}

func TestResolveEnvironmentWinsOverManifest(t *testing.T) {
	env := emptyEnviron()
	env.Port = 8080

	application := &app.Application{
		Path:   "./cmd/shop",
		Server: app.ServerSettings{Port: 9000},
	}

	cfg := Resolve(defaultFlags(), env, application)

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want environment value 8080", cfg.Port)
	}
}

func TestResolveEnablingBooleansAreORMerged(t *testing.T) {
	// A lower-priority source can never un-set an enabling flag.
	flags := defaultFlags()
	flags.Debug = true
	flags.Reload = true

	env := emptyEnviron()
	env.BreakOnError = true

	application := &app.Application{Path: "./cmd/shop"}

	cfg := Resolve(flags, env, application)

	if !cfg.Debug {
		t.Error("Debug from flags should survive unset environment")
	}
	if !cfg.Reload {
		t.Error("Reload from flags should survive unset environment")
	}
	if !cfg.BreakOnError {
		t.Error("BreakOnError from environment should be enabled")
	}
}

func TestResolveReloadImpliedByReloadDirs(t *testing.T) {
	flags := defaultFlags()
	flags.ReloadDirs = []string{"./internal", "./templates"}

	cfg := Resolve(flags, emptyEnviron(), &app.Application{Path: "./cmd/shop"})

	if !cfg.Reload {
		t.Error("non-empty reload dirs should imply reload")
	}
	if !reflect.DeepEqual(cfg.ReloadDirs, []string{"./internal", "./templates"}) {
		t.Errorf("ReloadDirs = %v", cfg.ReloadDirs)
	}
}

func TestResolveReloadDirsPrecedence(t *testing.T) {
	flags := defaultFlags()
	flags.ReloadDirs = []string{"./from-flags"}

	env := emptyEnviron()
	env.ReloadDirs = []string{"./from-env"}

	cfg := Resolve(flags, env, &app.Application{Path: "./cmd/shop"})

	if !reflect.DeepEqual(cfg.ReloadDirs, []string{"./from-env"}) {
		t.Errorf("ReloadDirs = %v, want environment value", cfg.ReloadDirs)
	}
}

func TestResolveFDPrecedence(t *testing.T) {
	flags := defaultFlags()
	flags.FD = 3

	env := emptyEnviron()
	env.FD = 5

	cfg := Resolve(flags, env, &app.Application{Path: "./cmd/shop"})
	if cfg.FD != 5 {
		t.Errorf("FD = %d, want environment value 5", cfg.FD)
	}

	cfg = Resolve(flags, emptyEnviron(), &app.Application{Path: "./cmd/shop"})
	if cfg.FD != 3 {
		t.Errorf("FD = %d, want flag value 3", cfg.FD)
	}
}

func TestApplyCopiesDebugFlagsToApplication(t *testing.T) {
	application := &app.Application{Path: "./cmd/shop"}
	cfg := &RunConfig{Debug: true, BreakOnError: true}

	Apply(cfg, application)

	if !application.Debug {
		t.Error("Apply should enable application debug mode")
	}
	if !application.BreakOnError {
		t.Error("Apply should enable application break-on-error")
	}
}

func TestApplyNeverDisables(t *testing.T) {
	application := &app.Application{Path: "./cmd/shop", Debug: true}

	Apply(&RunConfig{}, application)

	if !application.Debug {
		t.Error("Apply must not un-set application debug mode")
	}
}
