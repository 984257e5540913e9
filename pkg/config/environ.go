package config

import (
	"os"
	"strconv"
	"strings"
)

// Environ holds the GANYMEDE_* environment values relevant to a launch. Zero
// values mean the variable was unset, except FD which uses FDUnset.
type Environ struct {
	AppPath              string
	Host                 string
	Port                 int
	Workers              int
	Reload               bool
	ReloadDirs           []string
	FD                   int
	UDS                  string
	Debug                bool
	BreakOnError         bool
	CertPath             string
	KeyPath              string
	CreateSelfSignedCert bool
}

// ReadEnviron reads the launcher's environment variables. Unparseable numeric
// or boolean values are ignored, matching flag-level validation downstream.
func ReadEnviron() *Environ {
	env := &Environ{FD: FDUnset}

	env.AppPath = os.Getenv("GANYMEDE_APP")
	env.Host = os.Getenv("GANYMEDE_HOST")
	if val := os.Getenv("GANYMEDE_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			env.Port = i
		}
	}
	if val := os.Getenv("GANYMEDE_WEB_CONCURRENCY"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			env.Workers = i
		}
	}
	if val := os.Getenv("GANYMEDE_RELOAD"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			env.Reload = b
		}
	}
	if val := os.Getenv("GANYMEDE_RELOAD_DIRS"); val != "" {
		for _, dir := range strings.Split(val, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				env.ReloadDirs = append(env.ReloadDirs, dir)
			}
		}
	}
	if val := os.Getenv("GANYMEDE_FD"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			env.FD = i
		}
	}
	env.UDS = os.Getenv("GANYMEDE_UDS")
	if val := os.Getenv("GANYMEDE_DEBUG"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			env.Debug = b
		}
	}
	if val := os.Getenv("GANYMEDE_PDB"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			env.BreakOnError = b
		}
	}
	env.CertPath = os.Getenv("GANYMEDE_SSL_CERT_PATH")
	env.KeyPath = os.Getenv("GANYMEDE_SSL_KEY_PATH")
	if val := os.Getenv("GANYMEDE_CREATE_SELF_SIGNED_CERT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			env.CreateSelfSignedCert = b
		}
	}

	return env
}
