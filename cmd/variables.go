package cmd

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// remoteBinary is the fixed program executed on the remote host. Everything
// on the local command line (other than --config) becomes its arguments.
const remoteBinary = "cec-ctl"

// configFileName is the fixed filename probed during config discovery.
const configFileName = "cec-ssh.json"

// Allow tests to stub config resolution, transport construction and dialing
var (
	resolveConfigFunc = resolveConfig
	newTransportFunc  = newTransport
	dialSSHFunc       = dialSSH
)
