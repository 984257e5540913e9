package cli

import (
	"os"
	"os/signal"
)

// DeferInterrupts makes the launcher ignore SIGINT while a server process is
// attached to the terminal. The interrupt is delivered to the whole foreground
// process group, and the server runtime owns the translation of the signal
// into a clean shutdown; the launcher must stay alive until the runtime
// returns so that lifespan hooks are released.
//
// The returned function restores default interrupt handling.
func DeferInterrupts() func() {
	signal.Ignore(os.Interrupt)
	return func() {
		signal.Reset(os.Interrupt)
	}
}
