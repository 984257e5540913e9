package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/cli"
)

var infoFormat string

// appInfo is the info command's output shape.
type appInfo struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Factory       bool   `json:"factory"`
	Debug         bool   `json:"debug"`
	Routes        int    `json:"routes"`
	LifespanHooks int    `json:"lifespan_hooks"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about the detected application",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := discoverApplication()
		if err != nil {
			return err
		}

		info := appInfo{
			Name:          application.Name,
			Path:          application.Path,
			Factory:       application.Factory,
			Debug:         application.Debug,
			Routes:        len(application.Routes),
			LifespanHooks: len(application.Lifespan),
		}

		if cli.OutputFormat(infoFormat) == cli.FormatJSON {
			formatter := cli.NewFormatter(cli.FormatJSON)
			return formatter.FormatTo(os.Stdout, info)
		}

		fmt.Printf("Application: %s\n", info.Name)
		fmt.Printf("  Path: %s\n", info.Path)
		fmt.Printf("  Factory: %t\n", info.Factory)
		fmt.Printf("  Debug: %t\n", info.Debug)
		fmt.Printf("  Routes: %d\n", info.Routes)
		fmt.Printf("  Lifespan hooks: %d\n", info.LifespanHooks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&infoFormat, "format", "text", "output format (text, json)")
}
