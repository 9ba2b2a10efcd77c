package cmd

import (
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/crypto/ssh"
)

// sshTransport implements the sshSession capability over
// golang.org/x/crypto/ssh. Liveness is tracked by watching client.Wait in a
// goroutine; the flag flips as soon as the underlying connection dies.
type sshTransport struct {
	cfg    *connectionConfig
	client *ssh.Client
	sess   *ssh.Session
	alive  atomic.Bool
}

func newTransport(cfg *connectionConfig) sshSession {
	return &sshTransport{cfg: cfg}
}

func (t *sshTransport) connect() error {
	client, err := dialSSHFunc(t.cfg)
	if err != nil {
		return err
	}
	t.client = client
	t.alive.Store(true)
	go func() {
		_ = client.Wait()
		t.alive.Store(false)
	}()
	return nil
}

func (t *sshTransport) isConnected() bool {
	return t.alive.Load()
}

// disconnect tears down the shell session (if open) and the client. Safe to
// call after the connection already died; errors are the caller's to ignore.
func (t *sshTransport) disconnect() error {
	if t.sess != nil {
		_ = t.sess.Close()
		t.sess = nil
	}
	if t.client == nil {
		return nil
	}
	t.alive.Store(false)
	return t.client.Close()
}

// shellStream bundles the combined remote output with the shell's stdin.
type shellStream struct {
	io.Reader
	io.Writer
}

// openShell requests an interactive PTY session. Remote stdout and stderr are
// merged into one stream through an io.Pipe; the pipe's write end closes when
// the remote shell exits, which surfaces as EOF to the sole reader.
func (t *sshTransport) openShell(term string, cols, rows int) (shellChannel, error) {
	if t.client == nil {
		return nil, errors.New("not connected")
	}
	s, err := t.client.NewSession()
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	s.Stdout = pw
	s.Stderr = pw

	stdin, err := s.StdinPipe()
	if err != nil {
		_ = pw.Close()
		_ = s.Close()
		return nil, err
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,     // disable echo to avoid command-echo noise
		ssh.TTY_OP_ISPEED: 14400, // input speed = 14.4kbaud
		ssh.TTY_OP_OSPEED: 14400, // output speed = 14.4kbaud
	}
	if err := s.RequestPty(term, rows, cols, modes); err != nil {
		_ = stdin.Close()
		_ = pw.Close()
		_ = s.Close()
		return nil, err
	}

	if err := s.Shell(); err != nil {
		_ = stdin.Close()
		_ = pw.Close()
		_ = s.Close()
		return nil, err
	}

	go func() {
		_ = s.Wait()
		_ = pw.Close()
	}()

	t.sess = s
	return &shellStream{Reader: pr, Writer: stdin}, nil
}
