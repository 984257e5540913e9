package config

import "mercator-hq/ganymede/pkg/app"

// Resolve merges the three configuration sources into one RunConfig.
//
// Scalar fields take the first non-empty value in priority order: environment
// variable, then manifest value, then flag value (which carries the hard
// default when the flag was not given). Enabling booleans (debug, pdb,
// reload, create-self-signed-cert) are instead OR-merged across all sources:
// any source switching the behavior on wins, and a lower-priority source can
// never switch it back off. Reload is additionally implied by a non-empty
// reload directory list from any source.
//
// Resolution cannot fail; Validate reports inconsistent combinations.
func Resolve(flags *Flags, env *Environ, application *app.Application) *RunConfig {
	cfg := &RunConfig{
		AppPath: application.Path,
		Factory: application.Factory,
	}

	cfg.Host = firstString(env.Host, application.Server.Host, flags.Host, DefaultHost)
	cfg.Port = firstInt(env.Port, application.Server.Port, flags.Port, DefaultPort)
	cfg.Workers = firstInt(env.Workers, application.Server.Workers, flags.Workers, DefaultWorkers)
	cfg.UDS = firstString(env.UDS, application.Server.UDS, flags.UDS, "")
	cfg.CertPath = firstString(env.CertPath, application.Server.CertPath, flags.CertPath, "")
	cfg.KeyPath = firstString(env.KeyPath, application.Server.KeyPath, flags.KeyPath, "")

	cfg.FD = FDUnset
	if env.FD != FDUnset {
		cfg.FD = env.FD
	} else if flags.FD != FDUnset {
		cfg.FD = flags.FD
	}

	cfg.ReloadDirs = env.ReloadDirs
	if len(cfg.ReloadDirs) == 0 {
		cfg.ReloadDirs = application.Server.ReloadDirs
	}
	if len(cfg.ReloadDirs) == 0 {
		cfg.ReloadDirs = flags.ReloadDirs
	}

	cfg.Reload = env.Reload || application.Server.Reload || flags.Reload || len(cfg.ReloadDirs) > 0
	cfg.Debug = env.Debug || application.Debug || flags.Debug
	cfg.BreakOnError = env.BreakOnError || application.BreakOnError || flags.BreakOnError
	cfg.CreateSelfSignedCert = env.CreateSelfSignedCert ||
		application.Server.CreateSelfSignedCert || flags.CreateSelfSignedCert

	return cfg
}

// Apply copies the resolved debug flags back onto the application so that
// downstream consumers read them from the descriptor rather than from ambient
// process state.
func Apply(cfg *RunConfig, application *app.Application) {
	if cfg.Debug {
		application.Debug = true
	}
	if cfg.BreakOnError {
		application.BreakOnError = true
	}
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
