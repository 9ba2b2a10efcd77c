package cmd

import (
	"io"
	"os"
	"time"
)

// Fixed PTY geometry for the remote shell.
const (
	shellTerm = "xterm"
	shellCols = 80
	shellRows = 24
)

// sessionBridge owns one remote session from connect to closed. The
// lifecycle is strictly linear: connect, open shell, drain the login banner,
// dispatch the echo-suppressed command, stream output while monitoring
// liveness, then shut down within a bounded grace period. Any fatal error
// jumps straight to shutdown; nothing is ever retried.
type sessionBridge struct {
	transport sshSession
	stdout    io.Writer

	settleDelay   time.Duration // wait for banner/MOTD output to begin
	drainPoll     time.Duration // interval between drain emptiness checks
	livenessPoll  time.Duration // interval between connection checks
	shutdownGrace time.Duration // bound on waiting for the reader to exit
}

func newSessionBridge(transport sshSession, stdout io.Writer) *sessionBridge {
	return &sessionBridge{
		transport:     transport,
		stdout:        stdout,
		settleDelay:   300 * time.Millisecond,
		drainPoll:     50 * time.Millisecond,
		livenessPoll:  200 * time.Millisecond,
		shutdownGrace: 2 * time.Second,
	}
}

// run executes one command on the remote host and streams its output to the
// bridge's stdout. The interrupts channel may be nil; when set, each received
// signal is forwarded to the remote side as an interrupt byte. run returns
// nil for a normally closed session regardless of the remote command's own
// exit status.
func (b *sessionBridge) run(command string, interrupts <-chan os.Signal) error {
	if err := b.transport.connect(); err != nil {
		return codedErrorf(exitConnectFailed, "ssh connection failed: %w", err)
	}
	defer func() {
		if b.transport.isConnected() {
			_ = b.transport.disconnect()
		}
	}()

	ch, err := b.transport.openShell(shellTerm, shellCols, shellRows)
	if err != nil {
		return codedErrorf(exitShellOpenFailed, "failed to open remote shell: %w", err)
	}

	// Sole reader of the channel for the rest of the session. Chunks flow
	// first into the drain, then into the output streamer.
	chunks := make(chan []byte, 16)
	go pumpChannel(ch, chunks)

	b.drainBanner(chunks)

	// Exactly one dispatch write. A failure here is fatal and skips straight
	// to the deferred disconnect.
	if _, err := io.WriteString(ch, command+"\n"); err != nil {
		return codedErrorf(exitDispatchFailed, "failed to dispatch remote command: %w", err)
	}

	cancel := make(chan struct{})
	first := make(chan struct{}, 2)
	readerDone := make(chan struct{})

	// Output reader: forward remote bytes verbatim until end-of-stream,
	// cancellation, or a local write error.
	go func() {
		defer close(readerDone)
		for {
			select {
			case <-cancel:
				return
			case chunk, ok := <-chunks:
				if !ok {
					first <- struct{}{}
					return
				}
				if _, err := b.stdout.Write(chunk); err != nil {
					first <- struct{}{}
					return
				}
			}
		}
	}()

	// Liveness monitor: stop as soon as the transport reports disconnected.
	go func() {
		ticker := time.NewTicker(b.livenessPoll)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				if !b.transport.isConnected() {
					first <- struct{}{}
					return
				}
			}
		}
	}()

	if interrupts != nil {
		go forwardInterrupts(interrupts, ch, cancel)
	}

	// First loop to finish ends the useful work; cancellation is raised once
	// and the reader gets a bounded window to observe it. The deferred
	// disconnect is the backstop that terminates everything else.
	<-first
	close(cancel)

	select {
	case <-readerDone:
	case <-time.After(b.shutdownGrace):
	}
	return nil
}

// drainBanner discards login banner/MOTD noise before the command is sent.
// Remote shells may emit an unbounded, unpredictable amount of text on
// login; none of it may leak into the real output stream. After an initial
// settle delay, chunks are discarded until the stream has been quiet for two
// consecutive polls. Read errors surface as a closed chunk channel and are
// swallowed here: draining is best-effort and never blocks the exec step.
func (b *sessionBridge) drainBanner(chunks <-chan []byte) {
	time.Sleep(b.settleDelay)
	empty := 0
	for empty < 2 {
		select {
		case _, ok := <-chunks:
			if !ok {
				return
			}
			empty = 0
		case <-time.After(b.drainPoll):
			empty++
		}
	}
}

// pumpChannel reads bounded chunks from the shell channel into chunks,
// closing it on any read error or EOF.
func pumpChannel(ch io.Reader, chunks chan<- []byte) {
	defer close(chunks)
	for {
		buf := make([]byte, 4096)
		n, err := ch.Read(buf)
		if n > 0 {
			chunks <- buf[:n]
		}
		if err != nil {
			return
		}
	}
}
