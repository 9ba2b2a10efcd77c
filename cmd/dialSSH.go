package cmd

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// dialSSH establishes an SSH client connection using the resolved config.
// Auth methods are tried in order: private key, password, ssh-agent.
func dialSSH(cfg *connectionConfig) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	if cfg.KeyFile != "" {
		signer, err := loadSigner(cfg.KeyFile, cfg.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if cfg.Password != "" {
		auths = append(auths, ssh.Password(cfg.Password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	var hostKeyCB ssh.HostKeyCallback
	if cfg.StrictHostKey {
		// Fail closed when verification is requested but no file is usable
		if _, err := os.Stat(cfg.KnownHosts); err != nil {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict_host_key is enabled", cfg.KnownHosts)
		}
		cb, err := knownhosts.New(cfg.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("known_hosts: %w", err)
		}
		hostKeyCB = cb
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	clientCfg := &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         cfg.Timeout,
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	// Use explicit net.Dialer for connection timeout. A zero timeout keeps
	// the connect unbounded, matching the documented default.
	d := net.Dialer{Timeout: cfg.Timeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, clientCfg)
	if err != nil {
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
