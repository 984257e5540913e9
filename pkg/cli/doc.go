/*
Package cli provides command-line interface utilities for Ganymede.

The cli package includes output formatters, typed command errors, and signal
helpers used by the ganymede command.

Output Formatting:

The cli package supports text and JSON output for displaying command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

While a server runtime is attached to the terminal, interrupts belong to the
runtime rather than the launcher:

	restore := cli.DeferInterrupts()
	defer restore()
*/
package cli
