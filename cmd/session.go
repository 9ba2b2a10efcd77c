package cmd

import "io"

// shellChannel is the interactive stream of an open remote shell. The bridge
// is the sole reader; writers are the one-shot command dispatch and the
// occasional interrupt forward, never active at the same time.
type shellChannel interface {
	io.Reader
	io.Writer
}

// sshSession is the transport capability the bridge orchestrates. Concrete
// implementations own connection state; the bridge only sequences calls.
type sshSession interface {
	connect() error
	openShell(term string, cols, rows int) (shellChannel, error)
	isConnected() bool
	disconnect() error
}
