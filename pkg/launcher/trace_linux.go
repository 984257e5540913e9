//go:build linux

package launcher

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// DebuggerAttached reports whether a debugger or tracer is attached to the
// current process, read from the TracerPid field of /proc/self/status.
func DebuggerAttached() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:")))
		return err == nil && pid != 0
	}
	return false
}
