package config

// RunConfig is the effective run configuration for one server launch. It is
// produced once per invocation by Resolve and treated as read-only from the
// moment the launcher starts.
type RunConfig struct {
	// AppPath is the serve target handed to the server runtime.
	AppPath string

	// Host is the bind host. Ignored when FD or UDS is set.
	Host string

	// Port is the bind port. Ignored when FD or UDS is set.
	Port int

	// Workers is the number of server workers. Values above one force the
	// subprocess launch strategy.
	Workers int

	// Reload enables file-watching reload in the server runtime and forces
	// the subprocess launch strategy.
	Reload bool

	// ReloadDirs are extra directories the runtime watches for changes.
	// A non-empty list implies Reload.
	ReloadDirs []string

	// FD is an inherited socket file descriptor to bind to, or FDUnset.
	FD int

	// UDS is a unix domain socket path to bind to, or empty.
	UDS string

	// Factory indicates AppPath names an application factory.
	Factory bool

	// CertPath and KeyPath are the TLS material locations. Both set or both
	// empty after provisioning.
	CertPath string
	KeyPath  string

	// CreateSelfSignedCert synthesizes TLS material when the files at
	// CertPath/KeyPath are missing.
	CreateSelfSignedCert bool

	// Debug enables the application's debug mode.
	Debug bool

	// BreakOnError makes the application drop into its debugger on an
	// unhandled error.
	BreakOnError bool
}

// Flags holds the raw values parsed from the run command's flags. Flag values
// are the lowest-priority configuration source above the hard defaults.
type Flags struct {
	Host                 string
	Port                 int
	Workers              int
	Reload               bool
	ReloadDirs           []string
	FD                   int
	UDS                  string
	Debug                bool
	BreakOnError         bool
	CertPath             string
	KeyPath              string
	CreateSelfSignedCert bool
}
