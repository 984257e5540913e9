package config

// Default values for run configuration fields.
const (
	// DefaultHost is the default bind host.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the default bind port.
	DefaultPort = 8000

	// DefaultWorkers is the default worker count. A single worker keeps the
	// direct launch strategy eligible.
	DefaultWorkers = 1

	// FDUnset marks an absent file descriptor bind.
	FDUnset = -1
)
