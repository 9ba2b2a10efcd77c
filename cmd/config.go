package cmd

import "time"

// connectionConfig holds the remote connection parameters loaded once from
// the JSON config file. It is immutable for the process lifetime.
type connectionConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// Optional transport settings
	KeyFile       string
	Passphrase    string
	KnownHosts    string
	StrictHostKey bool

	// Timeout bounds the TCP connect. Zero means no bound: a hung network
	// connect blocks until the operator kills the process.
	Timeout time.Duration
}
