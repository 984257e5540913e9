package main

import (
	"github.com/spf13/cobra"
)

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Manage development TLS certificates",
	Long: `Manage the TLS certificates used by the run command.

The certs command provides standalone access to the TLS provisioner: the
same validation and self-signed generation that the run command performs
with --ssl-certfile/--ssl-keyfile and --create-self-signed-cert.

Subcommands:
  generate - Generate a self-signed certificate and key pair
  validate - Validate an existing certificate and key pair

Examples:
  # Generate a development certificate for localhost
  ganymede certs generate

  # Generate for a specific host at explicit paths
  ganymede certs generate --host app.local --cert certs/cert.pem --key certs/key.pem

  # Validate a certificate and key pair
  ganymede certs validate --cert cert.pem --key key.pem`,
}

func init() {
	rootCmd.AddCommand(certsCmd)
}
