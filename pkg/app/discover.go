package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mercator-hq/ganymede/pkg/cli"
)

// manifestNames are the canonical manifest locations searched, in order, when
// no manifest path is given explicitly.
var manifestNames = []string{"ganymede.yaml", "app.yaml", "application.yaml"}

// LoadManifest parses an application manifest from the given path.
func LoadManifest(path string) (*Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read application manifest %q: %w", path, err)
	}

	var a Application
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse application manifest %q: %w", path, err)
	}

	return &a, nil
}

// Discover locates and loads the application descriptor.
//
// The manifest is taken from manifestPath when non-empty, otherwise from the
// first canonical manifest name found in the working directory. A missing
// manifest is not an error as long as an application path is known from
// appPath (the --app flag or GANYMEDE_APP); in that case a minimal descriptor
// is synthesized. appPath, when set, always overrides the manifest's serve
// target.
func Discover(manifestPath, appPath string) (*Application, error) {
	var a *Application

	if manifestPath != "" {
		loaded, err := LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		a = loaded
	} else {
		for _, name := range manifestNames {
			if _, err := os.Stat(name); err != nil {
				continue
			}
			loaded, err := LoadManifest(name)
			if err != nil {
				return nil, err
			}
			a = loaded
			break
		}
	}

	if a == nil {
		a = &Application{}
	}
	if appPath != "" {
		a.Path = appPath
	}
	if a.Path == "" {
		return nil, cli.NewConfigError("app", "no application found; pass --app, set GANYMEDE_APP, or add a ganymede.yaml manifest")
	}
	if a.Name == "" {
		a.Name = a.Path
	}

	return a, nil
}
