package cmd

import "strings"

// buildRemoteCommand assembles the single line dispatched to the remote
// shell. `stty -echo` stops the remote terminal from reflecting the command
// back into the output stream; `exec` replaces the shell with cec-ctl so
// signal and exit semantics belong to the target process.
func buildRemoteCommand(args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, remoteBinary)
	for _, a := range args {
		parts = append(parts, shellQuote(a))
	}
	return "stty -echo; exec " + strings.Join(parts, " ")
}
