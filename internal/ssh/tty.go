// Package ssh adapts gliderlabs SSH sessions to tcell terminals.
package ssh

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrClosed is returned by reads and writes after Close.
var ErrClosed = errors.New("ssh: session tty closed")

// SessionTty implements tcell.Tty on top of one SSH session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func()

	done      chan struct{}
	closeOnce sync.Once
}

// NewSessionTty wraps s. pty holds the initial window size and winCh
// delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
		done:    make(chan struct{}),
	}
}

func (t *SessionTty) closed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *SessionTty) Read(b []byte) (int, error) {
	if t.closed() {
		return 0, ErrClosed
	}
	return t.session.Read(b)
}

func (t *SessionTty) Write(b []byte) (int, error) {
	if t.closed() {
		return 0, ErrClosed
	}
	return t.session.Write(b)
}

// Close stops resize delivery and closes the session channel. Safe to call
// more than once.
func (t *SessionTty) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		err = t.session.Close()
	})
	return err
}

// Start, Stop and Drain are no-ops: the channel is owned by the server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last reported terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts forwarding window changes until the
// channel closes or the tty does.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-t.done:
				return
			case win, ok := <-t.winCh:
				if !ok {
					return
				}
				t.mu.Lock()
				t.window = win
				fn := t.cb
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}
	}()
}
