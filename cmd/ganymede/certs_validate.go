package main

import (
	"crypto/tls"
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/certs"
)

var certsValidateFlags struct {
	certPath string
	keyPath  string
}

var certsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a certificate and key pair",
	Long: `Validate a TLS certificate and private key.

This command applies the same checks the run command performs on
--ssl-certfile/--ssl-keyfile: both paths must be supplied together and both
files must exist. The pair is additionally loaded to verify that the key
matches the certificate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		certPath, keyPath, err := certs.ValidateFiles(certsValidateFlags.certPath, certsValidateFlags.keyPath)
		if err != nil {
			return err
		}

		if _, err := tls.LoadX509KeyPair(certPath, keyPath); err != nil {
			fmt.Println("✗ Certificate and key do NOT match")
			return err
		}

		fmt.Println("✓ Certificate and key match")
		return nil
	},
}

func init() {
	certsCmd.AddCommand(certsValidateCmd)

	certsValidateCmd.Flags().StringVar(&certsValidateFlags.certPath, "cert", "", "certificate file (required)")
	certsValidateCmd.Flags().StringVar(&certsValidateFlags.keyPath, "key", "", "private key file (required)")

	_ = certsValidateCmd.MarkFlagRequired("cert")
	_ = certsValidateCmd.MarkFlagRequired("key")
}
