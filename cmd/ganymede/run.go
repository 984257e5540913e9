package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/app"
	"mercator-hq/ganymede/pkg/certs"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/launcher"
	"mercator-hq/ganymede/pkg/lifespan"
)

var runFlags struct {
	reload               bool
	reloadDirs           []string
	port                 int
	workers              int
	host                 string
	fd                   int
	uds                  string
	debug                bool
	pdb                  bool
	certPath             string
	keyPath              string
	createSelfSignedCert bool
	logLevel             string
	dryRun               bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the application server; requires the hyperion runtime",
	Long: `Run the application server.

The application is discovered from --app, the GANYMEDE_APP environment
variable, or a manifest at one of the canonical paths (ganymede.yaml,
app.yaml, application.yaml). Flags are merged with GANYMEDE_* environment
variables and manifest settings into one effective run configuration.

A single worker without reload runs the Hyperion runtime attached to the
current process. Multiple workers or --reload delegate to a child process
with elaborated flags.

Examples:
  # Run the discovered application
  ganymede run

  # Run with reload, watching extra directories
  ganymede run --reload --reload-dir ./templates

  # Run four workers on all interfaces
  ganymede run --host 0.0.0.0 --port 9000 --web-concurrency 4

  # Serve TLS with a generated development certificate
  ganymede run --create-self-signed-cert

  # Validate the effective configuration without launching
  ganymede run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runFlags.reload, "reload", "r", false, "reload server on changes")
	runCmd.Flags().StringArrayVarP(&runFlags.reloadDirs, "reload-dir", "R", nil, "directories to watch for file changes (implies --reload)")
	runCmd.Flags().IntVarP(&runFlags.port, "port", "p", config.DefaultPort, "serve under this port")
	runCmd.Flags().IntVarP(&runFlags.workers, "web-concurrency", "W", config.DefaultWorkers, "the number of HTTP workers to launch")
	runCmd.Flags().StringVarP(&runFlags.host, "host", "H", config.DefaultHost, "serve under this host")
	runCmd.Flags().IntVarP(&runFlags.fd, "fd", "F", config.FDUnset, "bind to a socket from this file descriptor")
	runCmd.Flags().StringVarP(&runFlags.uds, "uds", "U", "", "bind to a UNIX domain socket")
	runCmd.Flags().BoolVarP(&runFlags.debug, "debug", "d", false, "run app in debug mode")
	runCmd.Flags().BoolVarP(&runFlags.pdb, "pdb", "P", false, "drop into the debugger on an exception")
	runCmd.Flags().StringVar(&runFlags.certPath, "ssl-certfile", "", "location of the SSL cert file")
	runCmd.Flags().StringVar(&runFlags.keyPath, "ssl-keyfile", "", "location of the SSL key file")
	runCmd.Flags().BoolVar(&runFlags.createSelfSignedCert, "create-self-signed-cert", false, "create a self-signed certificate and key if not found at the specified locations")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate the effective configuration without launching")
}

func runServer(cmd *cobra.Command, args []string) error {
	env := config.ReadEnviron()

	// --app beats GANYMEDE_APP as the serve target override.
	target := appPath
	if target == "" {
		target = env.AppPath
	}

	discovered, err := app.Discover(manifestFile, target)
	if err != nil {
		return err
	}
	loader := app.Resolved(discovered)
	application, err := loader.Load()
	if err != nil {
		return err
	}

	flags := &config.Flags{
		Host:                 runFlags.host,
		Port:                 runFlags.port,
		Workers:              runFlags.workers,
		Reload:               runFlags.reload,
		ReloadDirs:           runFlags.reloadDirs,
		FD:                   runFlags.fd,
		UDS:                  runFlags.uds,
		Debug:                runFlags.debug,
		BreakOnError:         runFlags.pdb,
		CertPath:             runFlags.certPath,
		KeyPath:              runFlags.keyPath,
		CreateSelfSignedCert: runFlags.createSelfSignedCert,
	}

	cfg := config.Resolve(flags, env, application)
	config.Apply(cfg, application)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	initLogging(cfg)

	// Resolve TLS material before anything starts.
	if cfg.CreateSelfSignedCert {
		cfg.CertPath, cfg.KeyPath, err = certs.EnsureSelfSigned(cfg.CertPath, cfg.KeyPath, cfg.Host)
	} else {
		cfg.CertPath, cfg.KeyPath, err = certs.ValidateFiles(cfg.CertPath, cfg.KeyPath)
	}
	if err != nil {
		return err
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	runtime, err := launcher.FindRuntime()
	if err != nil {
		return err
	}

	printBanner(application, cfg)

	managers := lifespan.ManagersFromSpecs(application.Lifespan)

	// Interrupts belong to the server runtime while it is attached.
	restore := cli.DeferInterrupts()
	defer restore()

	supervisor := lifespan.NewSupervisor(slog.Default())
	l := launcher.NewLauncher(runtime, slog.Default())

	err = supervisor.Run(cmd.Context(), application, managers, func(ctx context.Context) error {
		return l.Launch(ctx, cfg)
	})
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

func initLogging(cfg *config.RunConfig) {
	var logLevel slog.Level
	switch runFlags.logLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
		if verbose || cfg.Debug {
			logLevel = slog.LevelDebug
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

func printBanner(application *app.Application, cfg *config.RunConfig) {
	fmt.Printf("Ganymede v%s\n", Version)
	fmt.Printf("✓ Application: %s\n", application.Name)

	switch {
	case cfg.FD != config.FDUnset:
		fmt.Printf("✓ Binding to file descriptor %d\n", cfg.FD)
	case cfg.UDS != "":
		fmt.Printf("✓ Binding to unix socket %s\n", cfg.UDS)
	default:
		scheme := "http"
		if cfg.CertPath != "" {
			scheme = "https"
		}
		fmt.Printf("✓ Serving on %s://%s:%d\n", scheme, cfg.Host, cfg.Port)
	}

	if cfg.Workers > 1 {
		fmt.Printf("✓ Workers: %d\n", cfg.Workers)
	}
	if cfg.Reload {
		fmt.Println("✓ Reload enabled")
	}
	if cfg.Debug {
		fmt.Println("✓ Debug mode enabled")
	}
	if len(application.Lifespan) > 0 {
		fmt.Printf("✓ Lifespan hooks: %d\n", len(application.Lifespan))
	}
}
