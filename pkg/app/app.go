package app

// Application describes a Mercator application to be served by the Hyperion
// runtime. It is built from the application manifest plus any programmatic
// overrides, and is treated as read-only once the launcher starts.
type Application struct {
	// Name is a human-readable application name used in banners and logs.
	Name string `yaml:"name"`

	// Path is the serve target handed to the server runtime, in the form
	// the runtime expects (e.g. "./cmd/app" or "pkg/web:NewApp").
	Path string `yaml:"app"`

	// Factory indicates that Path names an application factory rather than
	// an application instance.
	Factory bool `yaml:"factory"`

	// Debug enables the application's debug mode. It is OR-merged with the
	// --debug flag and GANYMEDE_DEBUG during resolution.
	Debug bool `yaml:"debug"`

	// BreakOnError makes the application drop into its debugger when an
	// unhandled error escapes a handler.
	BreakOnError bool `yaml:"break_on_error"`

	// Server holds the serve settings declared in the manifest. They take
	// precedence over command-line flags but not environment variables.
	Server ServerSettings `yaml:"server"`

	// Routes is the application's declared route table, used by the routes
	// and info commands. The launcher never interprets it.
	Routes []Route `yaml:"routes"`

	// Lifespan lists the hooks to run around the server's active lifetime,
	// in registration order.
	Lifespan []HookSpec `yaml:"lifespan"`
}

// ServerSettings are the manifest-declared serve settings.
type ServerSettings struct {
	Host                 string   `yaml:"host"`
	Port                 int      `yaml:"port"`
	Workers              int      `yaml:"workers"`
	Reload               bool     `yaml:"reload"`
	ReloadDirs           []string `yaml:"reload_dirs"`
	UDS                  string   `yaml:"uds"`
	CertPath             string   `yaml:"ssl_certfile"`
	KeyPath              string   `yaml:"ssl_keyfile"`
	CreateSelfSignedCert bool     `yaml:"create_self_signed_cert"`
}

// Route is one entry in the application's declared route table.
type Route struct {
	// Path is the route path, e.g. "/users/{id}".
	Path string `yaml:"path" json:"path"`

	// Kind is "http", "websocket", or "mount". Empty means "http".
	Kind string `yaml:"kind" json:"kind"`

	// Methods lists the HTTP methods handled on this path. Ignored for
	// non-HTTP routes.
	Methods []string `yaml:"methods" json:"methods,omitempty"`

	// Handler is the name of the handler serving this route.
	Handler string `yaml:"handler" json:"handler"`
}

// HookSpec declares a manifest-defined lifespan hook. Start runs when the
// lifespan scope is entered, Stop when it exits. Either may be empty.
type HookSpec struct {
	Name  string   `yaml:"name"`
	Start []string `yaml:"start"`
	Stop  []string `yaml:"stop"`
	Dir   string   `yaml:"dir"`
}
