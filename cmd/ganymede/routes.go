package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/app"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
)

var routesFormat string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Display information about the application's routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := discoverApplication()
		if err != nil {
			return err
		}

		if cli.OutputFormat(routesFormat) == cli.FormatJSON {
			formatter := cli.NewFormatter(cli.FormatJSON)
			return formatter.FormatTo(os.Stdout, application.Routes)
		}

		renderRoutes(os.Stdout, application.Routes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)

	routesCmd.Flags().StringVar(&routesFormat, "format", "text", "output format (text, json)")
}

// discoverApplication loads the application descriptor the same way the run
// command does, minus flag merging.
func discoverApplication() (*app.Application, error) {
	env := config.ReadEnviron()
	target := appPath
	if target == "" {
		target = env.AppPath
	}
	return app.Discover(manifestFile, target)
}

func renderRoutes(w io.Writer, routes []app.Route) {
	sorted := make([]app.Route, len(routes))
	copy(sorted, routes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	for _, route := range sorted {
		kind := route.Kind
		if kind == "" {
			kind = "http"
		}
		fmt.Fprintf(w, "%s (%s)\n", route.Path, strings.ToUpper(kind))

		switch {
		case route.Handler != "" && len(route.Methods) > 0:
			fmt.Fprintf(w, "  %s %s\n", route.Handler, strings.Join(route.Methods, ", "))
		case route.Handler != "":
			fmt.Fprintf(w, "  %s\n", route.Handler)
		}
	}
}
