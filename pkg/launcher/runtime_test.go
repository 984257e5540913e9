//go:build !windows

package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// installFakeRuntime puts a hyperion script on PATH that exits with the given
// code.
func installFakeRuntime(t *testing.T, exitCode string) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\nexit " + exitCode + "\n"
	if err := os.WriteFile(filepath.Join(dir, RuntimeBinary), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

func TestFindRuntimeResolvesPath(t *testing.T) {
	installFakeRuntime(t, "0")

	rt, err := FindRuntime()
	if err != nil {
		t.Fatalf("FindRuntime() error: %v", err)
	}
	if filepath.Base(rt.Path) != RuntimeBinary {
		t.Errorf("Path = %q, want a %s executable", rt.Path, RuntimeBinary)
	}
}

func TestHyperionExecCleanExit(t *testing.T) {
	installFakeRuntime(t, "0")

	rt, err := FindRuntime()
	if err != nil {
		t.Fatal(err)
	}
	if err := rt.Exec(context.Background(), "./cmd/shop", []string{"--workers=2"}, nil); err != nil {
		t.Errorf("Exec() error: %v", err)
	}
}

func TestHyperionExecNonZeroExit(t *testing.T) {
	installFakeRuntime(t, "7")

	rt, err := FindRuntime()
	if err != nil {
		t.Fatal(err)
	}

	err = rt.Exec(context.Background(), "./cmd/shop", nil, nil)
	var lErr *LaunchError
	if !errors.As(err, &lErr) {
		t.Fatalf("Exec() error = %v, want *LaunchError", err)
	}
	if lErr.Code != 7 {
		t.Errorf("Code = %d, want 7", lErr.Code)
	}
}

func TestHyperionServeCleanExit(t *testing.T) {
	installFakeRuntime(t, "0")

	rt, err := FindRuntime()
	if err != nil {
		t.Fatal(err)
	}

	opts := ServeOptions{AppPath: "./cmd/shop", Host: "127.0.0.1", Port: 8000, FD: -1}
	if err := rt.Serve(context.Background(), opts); err != nil {
		t.Errorf("Serve() error: %v", err)
	}
}
