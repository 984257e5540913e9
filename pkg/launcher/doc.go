/*
Package launcher decides how a resolved run configuration becomes a running
server and performs the launch.

Two strategies exist. The direct strategy runs the Hyperion runtime attached
to the current process and blocks for the server's entire lifetime; it is
chosen for a single worker without reload. The subprocess strategy marshals
the configuration into the runtime's flag vocabulary and waits on a child
process; it is forced by multiple workers or file-watching reload, and a
non-zero child exit surfaces as a LaunchError.

The launcher introduces no parallelism of its own: a single control thread
blocks inside whichever strategy was chosen, and cancellation arrives as an
external process signal handled by the runtime.
*/
package launcher
