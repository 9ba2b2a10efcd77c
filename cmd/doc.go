// Package cmd implements the cec-ssh command-line interface.
//
// cec-ssh runs a single cec-ctl invocation on a remote host over an
// interactive SSH shell and streams the remote output back to the local
// terminal. A local interrupt (Ctrl+C) is forwarded to the remote process
// instead of killing the local one.
//
// New contributors should start by reading rootCmd.go to see how cobra is
// wired, resolveConfig.go for config file discovery, and sessionBridge.go
// for the session lifecycle: connect, open a PTY shell, drain the login
// banner, dispatch the echo-suppressed command, then stream output while
// watching connection liveness until shutdown.
package cmd
