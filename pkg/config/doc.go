/*
Package config resolves the effective run configuration for a server launch.

Three sources are merged, in priority order: values discovered from the
application context (GANYMEDE_* environment variables, then the application
manifest), command-line flag values, and hard defaults. Scalar fields take the
first non-empty value; enabling booleans are OR-merged so that any source
switching a behavior on wins.

The resolved RunConfig is validated once and then treated as immutable for the
remainder of the launch.
*/
package config
