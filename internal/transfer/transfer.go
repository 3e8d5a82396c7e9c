// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package transfer copies files to and from remote hosts over SSH/SFTP.
package transfer

import (
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/jacktogon/gotools/internal/logging"
)

// Options configures a remote connection.
type Options struct {
	Host string // host or host:port, defaults to port 22
	User string

	// KeyFile is the path to a private key. When empty or when key auth is
	// rejected, the SSH agent is tried as a fallback.
	KeyFile string

	// KnownHostsFile verifies the remote host key. Empty falls back to
	// ~/.ssh/known_hosts unless Insecure is set.
	KnownHostsFile string

	// Insecure skips host key verification entirely.
	Insecure bool

	Timeout time.Duration
}

// Client is an open SSH connection with an SFTP session on top.
type Client struct {
	client *ssh.Client
	sftp   *sftp.Client
}

// Dial connects to the remote host. Key file authentication is tried first;
// an auth failure falls back to the SSH agent.
func Dial(opts Options) (*Client, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("remote host must not be empty")
	}
	if opts.User == "" {
		return nil, fmt.Errorf("remote user must not be empty")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	hostKeyCallback, err := hostKeyChecker(opts)
	if err != nil {
		return nil, err
	}

	addr := opts.Host
	if _, _, err := net.SplitHostPort(opts.Host); err != nil {
		addr = net.JoinHostPort(opts.Host, "22")
	}

	var keyErr error
	if opts.KeyFile != "" {
		keyBytes, err := os.ReadFile(opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key %s: %w", opts.KeyFile, err)
		}
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse private key: %w", err)
		}

		config := &ssh.ClientConfig{
			User:            opts.User,
			Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
			HostKeyCallback: hostKeyCallback,
			Timeout:         opts.Timeout,
		}
		client, err := ssh.Dial("tcp", addr, config)
		if err == nil {
			return newClient(client)
		}
		// Anything but an auth failure is a hard error.
		if !strings.Contains(err.Error(), "unable to authenticate") {
			return nil, fmt.Errorf("connection with key file failed: %w", err)
		}
		keyErr = err
		logging.Debugf("transfer: key auth rejected, trying agent: %v", err)
	}

	agentClient := getSSHAgent()
	if agentClient == nil {
		if keyErr != nil {
			return nil, fmt.Errorf("key authentication failed and no SSH agent available for fallback: %w", keyErr)
		}
		return nil, fmt.Errorf("no authentication method available (no key file given and no ssh agent found)")
	}

	config := &ssh.ClientConfig{
		User:            opts.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeysCallback(agentClient.Signers)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         opts.Timeout,
	}
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("connection with ssh agent failed: %w", err)
	}
	return newClient(client)
}

func newClient(client *ssh.Client) (*Client, error) {
	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create sftp client: %w", err)
	}
	return &Client{client: client, sftp: sftpClient}, nil
}

func hostKeyChecker(opts Options) (ssh.HostKeyCallback, error) {
	if opts.Insecure {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	file := opts.KnownHostsFile
	if file == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory for known_hosts: %w", err)
		}
		file = filepath.Join(home, ".ssh", "known_hosts")
	}
	cb, err := knownhosts.New(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load known_hosts %s: %w", file, err)
	}
	return cb, nil
}

// Push uploads a local file to remotePath. The upload goes to a temporary
// name next to the target and is renamed into place so readers never see a
// partial file.
func (c *Client) Push(localPath, remotePath string, perm os.FileMode) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file %s: %w", localPath, err)
	}
	defer src.Close()

	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		_ = c.sftp.MkdirAll(dir)
	}

	tmpPath := fmt.Sprintf("%s.gotools.%d", remotePath, time.Now().UnixNano())
	dst, err := c.sftp.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file on remote: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = c.sftp.Remove(tmpPath)
		return fmt.Errorf("failed to write to temporary file on remote: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = c.sftp.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file on remote: %w", err)
	}

	if perm != 0 {
		if err := c.sftp.Chmod(tmpPath, perm); err != nil {
			_ = c.sftp.Remove(tmpPath)
			return fmt.Errorf("failed to chmod temporary file: %w", err)
		}
	}

	if err := c.sftp.Rename(tmpPath, remotePath); err != nil {
		_ = c.sftp.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s into place: %w", remotePath, err)
	}
	return nil
}

// Fetch downloads a remote file to localPath, creating parent directories as
// needed.
func (c *Client) Fetch(remotePath, localPath string) error {
	src, err := c.sftp.Open(remotePath)
	if err != nil {
		return fmt.Errorf("failed to open remote file %s: %w", remotePath, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("failed to create local directory: %w", err)
	}
	dst, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to read from remote file %s: %w", remotePath, err)
	}
	return dst.Close()
}

// Close shuts down the SFTP session and the SSH connection.
func (c *Client) Close() {
	if c.sftp != nil {
		_ = c.sftp.Close()
	}
	if c.client != nil {
		_ = c.client.Close()
	}
}
