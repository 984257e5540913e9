package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/certs"
)

var certsGenerateFlags struct {
	host     string
	certPath string
	keyPath  string
}

var certsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a self-signed certificate and key",
	Long: `Generate a self-signed TLS certificate for development.

The certificate is valid for the given host plus the localhost fallback
names (localhost, 127.0.0.1). Generation is idempotent: when both target
files already exist they are left untouched.

⚠️  Self-signed certificates are for development only. For production, use
certificates from a trusted Certificate Authority.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		certPath, keyPath, err := certs.EnsureSelfSigned(
			certsGenerateFlags.certPath,
			certsGenerateFlags.keyPath,
			certsGenerateFlags.host,
		)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Certificate: %s\n", certPath)
		fmt.Printf("✓ Private key: %s\n", keyPath)
		return nil
	},
}

func init() {
	certsCmd.AddCommand(certsGenerateCmd)

	certsGenerateCmd.Flags().StringVar(&certsGenerateFlags.host, "host", "localhost", "hostname or IP the certificate covers")
	certsGenerateCmd.Flags().StringVar(&certsGenerateFlags.certPath, "cert", "", "certificate output path (default "+certs.DefaultCertName+")")
	certsGenerateCmd.Flags().StringVar(&certsGenerateFlags.keyPath, "key", "", "private key output path (default "+certs.DefaultKeyName+")")
}
