// Ganymede is the launcher CLI for Mercator application servers.
//
// It resolves run-time configuration from flags, environment variables, and
// the application manifest, provisions TLS material, runs the application's
// lifespan hooks, and launches the Hyperion server runtime.
//
// Usage:
//
//	# Run the application discovered from ganymede.yaml
//	ganymede run
//
//	# Run with four workers on a custom port
//	ganymede run --port 9000 --web-concurrency 4
//
//	# Run with file-watching reload and a self-signed dev certificate
//	ganymede run --reload --create-self-signed-cert
//
//	# Show the application's route table
//	ganymede routes
//
//	# Show version information
//	ganymede version
package main

func main() {
	Execute()
}
