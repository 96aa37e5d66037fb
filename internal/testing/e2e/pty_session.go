package e2e

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

// SessionConfig describes a binary to run under a pseudo terminal.
type SessionConfig struct {
	Command string
	Args    []string
	Env     []string
	WorkDir string

	Rows uint16
	Cols uint16

	// Timeout bounds the whole session
	Timeout time.Duration
}

// Session runs a command attached to a pty and records everything it writes.
type Session struct {
	config *SessionConfig
	cmd    *exec.Cmd
	ptmx   *os.File
	cancel context.CancelFunc

	mu     sync.RWMutex
	output bytes.Buffer

	done    chan struct{}
	waitErr error
}

// ErrSessionExited is returned when input is sent to a finished session.
var ErrSessionExited = errors.New("session exited")

// StartSession starts config.Command under a pty of the configured size
func StartSession(config *SessionConfig) (*Session, error) {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Rows == 0 {
		config.Rows = 40
	}
	if config.Cols == 0 {
		config.Cols = 120
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	cmd.Dir = config.WorkDir
	cmd.Env = append(os.Environ(), config.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: config.Rows, Cols: config.Cols})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}

	s := &Session{
		config: config,
		cmd:    cmd,
		ptmx:   ptmx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.capture()
	go func() {
		s.waitErr = cmd.Wait()
		close(s.done)
	}()
	return s, nil
}

func (s *Session) capture() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.output.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKey writes a single key press to the pty.
func (s *Session) SendKey(key byte) error {
	select {
	case <-s.done:
		return ErrSessionExited
	default:
	}
	_, err := s.ptmx.Write([]byte{key})
	return err
}

// Output returns the raw bytes written so far.
func (s *Session) Output() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.output.String()
}

// Screen replays the output onto a virtual screen of the session's size.
func (s *Session) Screen() *Screen {
	return ParseScreen(s.Output(), int(s.config.Rows), int(s.config.Cols))
}

// WaitForScreen polls until the rendered screen contains text.
func (s *Session) WaitForScreen(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Screen().ContainsText(text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for %q, screen:\n%s", text, s.Screen().Render())
}

// WaitForOutput polls until the raw output contains text.
func (s *Session) WaitForOutput(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.Output(), text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for output %q", text)
}

// WaitExit waits for the process to exit on its own.
func (s *Session) WaitExit(timeout time.Duration) error {
	select {
	case <-s.done:
		return s.waitErr
	case <-time.After(timeout):
		return fmt.Errorf("process still running after %v", timeout)
	}
}

// Close kills the process if it is still running and releases the pty.
func (s *Session) Close() error {
	select {
	case <-s.done:
	default:
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		<-s.done
	}
	s.cancel()
	return s.ptmx.Close()
}
