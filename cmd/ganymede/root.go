package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/launcher"
)

var (
	// Global flags
	manifestFile string
	appPath      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "ganymede",
	Short: "Ganymede - application server launcher for Mercator",
	Long: `Ganymede launches and supervises Mercator application servers.

It resolves run-time configuration from command-line flags, GANYMEDE_*
environment variables, and the application manifest, provisions TLS material
(including self-signed certificates for development), runs the application's
lifespan hooks around the server's active lifetime, and hands off to the
Hyperion server runtime either attached to the current process or as a child
process with elaborated flags.

The application is discovered from --app, the GANYMEDE_APP environment
variable, or a manifest at one of the canonical paths: ganymede.yaml,
app.yaml, application.yaml.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. A failed subprocess launch exits with the
// child's status; every other error exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var launchErr *launcher.LaunchError
		if errors.As(err, &launchErr) && launchErr.Code > 0 {
			os.Exit(launchErr.Code)
		}
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "config", "c", "", "application manifest path (default: autodiscover)")
	rootCmd.PersistentFlags().StringVarP(&appPath, "app", "a", "", "serve target passed to the server runtime")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
