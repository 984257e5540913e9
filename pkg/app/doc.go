// Package app models the application as seen by the launcher: where the
// server runtime should find it, which routes it exposes, and which lifespan
// work must bracket the server's lifetime.
//
// A launch target is resolved from an explicit application path, the
// GANYMEDE_APP environment variable, or a manifest file discovered in the
// working directory (ganymede.yaml, app.yaml, or application.yaml, in that
// order). The resolved Application carries the server settings, route table,
// and lifespan hook declarations the rest of the launcher consumes.
package app
