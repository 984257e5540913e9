//go:build !linux

package launcher

// DebuggerAttached reports whether a debugger is attached to the current
// process. Detection is only implemented on Linux.
func DebuggerAttached() bool {
	return false
}
