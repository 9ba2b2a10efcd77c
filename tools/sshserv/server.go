// Package sshserv provides a minimal SSH server for tests. It emulates the
// part of a real host cec-ssh depends on: password auth, a PTY shell session
// that prints a login banner, then reads one command line and replies with
// canned output before closing the stream.
package sshserv

import (
	"bufio"
	"crypto/rand"
	"crypto/rsa"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// Options configures the behavior of the test server.
type Options struct {
	User     string // accepted username
	Password string // accepted password
	Banner   string // written to the shell before any command is read
	Output   string // written in response to the first command line
}

// Start launches the test SSH server on listenAddr (e.g., 127.0.0.1:20322).
// Returns a stop function that closes the listener and waits for shutdown.
func Start(listenAddr string, opts Options) (func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{
			PasswordCallback: func(meta ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
				if meta.User() == opts.User && string(pass) == opts.Password {
					return nil, nil
				}
				return nil, errAuth
			},
		}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg, opts)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return stop, nil
}

var errAuth = &authError{}

type authError struct{}

func (*authError) Error() string { return "authentication failed" }

func handleConn(raw net.Conn, cfg *ssh.ServerConfig, opts Options) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer func() { _ = sc.Close() }()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, chReqs, opts)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request, opts Options) {
	for req := range in {
		switch req.Type {
		case "pty-req":
			_ = req.Reply(true, nil)
		case "shell":
			_ = req.Reply(true, nil)
			emulateShell(ch, opts)
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

// emulateShell writes the banner, waits for one command line, answers with
// the canned output, and closes the channel so the client sees EOF.
func emulateShell(ch ssh.Channel, opts Options) {
	defer func() { _ = ch.Close() }()
	if opts.Banner != "" {
		_, _ = ch.Write([]byte(opts.Banner))
	}
	br := bufio.NewReader(ch)
	if _, err := br.ReadString('\n'); err != nil {
		return
	}
	if opts.Output != "" {
		_, _ = ch.Write([]byte(opts.Output))
	}
	_, _ = ch.SendRequest("exit-status", false, []byte{0, 0, 0, 0})
}
