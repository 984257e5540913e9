// Package certs validates and provisions the TLS material used by a server
// launch. Certificate and key paths are always handled as a pair: both
// supplied, both generated, or both absent — never partially valid.
package certs

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"

	"mercator-hq/ganymede/pkg/cli"
)

// Default filenames used when self-signed material is requested without
// explicit paths.
const (
	DefaultCertName = "cert.pem"
	DefaultKeyName  = "key.pem"
)

// Self-signed generation parameters. The key signs its own certificate, so
// the pair is always internally consistent.
const (
	selfSignedKeyBits  = 2048
	selfSignedValidity = 365 * 24 * time.Hour
	selfSignedOrg      = "Ganymede Development"
)

// ValidateFiles checks externally supplied TLS paths. Both empty passes
// through unchanged; exactly one supplied, or a supplied path missing on
// disk, is a configuration error.
func ValidateFiles(certPath, keyPath string) (string, string, error) {
	if certPath == "" && keyPath == "" {
		return "", "", nil
	}
	if certPath == "" {
		return "", "", cli.NewConfigError("ssl-certfile", "ssl-keyfile was given without ssl-certfile")
	}
	if keyPath == "" {
		return "", "", cli.NewConfigError("ssl-keyfile", "ssl-certfile was given without ssl-keyfile")
	}
	if _, err := os.Stat(certPath); err != nil {
		return "", "", cli.NewConfigError("ssl-certfile", fmt.Sprintf("file %q does not exist", certPath))
	}
	if _, err := os.Stat(keyPath); err != nil {
		return "", "", cli.NewConfigError("ssl-keyfile", fmt.Sprintf("file %q does not exist", keyPath))
	}
	return certPath, keyPath, nil
}

// EnsureSelfSigned returns a certificate/key pair for local development,
// generating it if needed. When both target files already exist they are
// returned unchanged; generation is never repeated over existing material.
// Empty paths fall back to DefaultCertName and DefaultKeyName in the working
// directory.
//
// The generated certificate is valid for host plus the localhost fallback
// subject names, so a TLS-terminating server accepts it regardless of which
// local address the client dials.
func EnsureSelfSigned(certPath, keyPath, host string) (string, string, error) {
	if certPath == "" {
		certPath = DefaultCertName
	}
	if keyPath == "" {
		keyPath = DefaultKeyName
	}

	_, certErr := os.Stat(certPath)
	_, keyErr := os.Stat(keyPath)
	if certErr == nil && keyErr == nil {
		return certPath, keyPath, nil
	}
	if certErr == nil || keyErr == nil {
		field, lone, missing := "ssl-certfile", certPath, keyPath
		if certErr != nil {
			field, lone, missing = "ssl-keyfile", keyPath, certPath
		}
		return "", "", cli.NewConfigError(field,
			fmt.Sprintf("refusing to generate over a partial pair: %q exists without %q", lone, missing))
	}

	if err := generateSelfSigned(certPath, keyPath, host); err != nil {
		return "", "", err
	}
	return certPath, keyPath, nil
}

func generateSelfSigned(certPath, keyPath, host string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, selfSignedKeyBits)
	if err != nil {
		return fmt.Errorf("failed to generate private key: %w", err)
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("failed to generate serial number: %w", err)
	}

	dnsNames, ipAddresses := subjectNames(host)

	notBefore := time.Now()
	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{selfSignedOrg},
			CommonName:   host,
		},
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(selfSignedValidity),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              dnsNames,
		IPAddresses:           ipAddresses,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	// The pair reaches disk together or not at all: a failure on either file
	// removes whatever was already written.
	if err := writeCertFile(certPath, derBytes); err != nil {
		return err
	}
	if err := writeKeyFile(keyPath, privateKey); err != nil {
		os.Remove(certPath)
		return err
	}

	return nil
}

func writeCertFile(path string, derBytes []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create certificate file: %w", err)
	}
	if err := pem.Encode(f, &pem.Block{Type: "CERTIFICATE", Bytes: derBytes}); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write certificate: %w", err)
	}
	return f.Close()
}

// writeKeyFile writes the private key with restricted permissions (0600).
func writeKeyFile(path string, privateKey *rsa.PrivateKey) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	privateKeyBytes := x509.MarshalPKCS1PrivateKey(privateKey)
	if err := pem.Encode(f, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: privateKeyBytes}); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write private key: %w", err)
	}
	return f.Close()
}

// subjectNames builds the SAN lists for host plus the localhost fallbacks.
func subjectNames(host string) ([]string, []net.IP) {
	dnsNames := []string{"localhost"}
	ipAddresses := []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}

	if ip := net.ParseIP(host); ip != nil {
		if !ip.Equal(net.ParseIP("127.0.0.1")) && !ip.Equal(net.ParseIP("::1")) {
			ipAddresses = append(ipAddresses, ip)
		}
	} else if host != "" && host != "localhost" {
		dnsNames = append(dnsNames, host)
	}

	return dnsNames, ipAddresses
}
