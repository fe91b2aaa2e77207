// delve-server serves one solo dungeon per SSH connection. Build:
//
//	go build -o delve-server ./cmd/server
//
// Usage:
//
//	./delve-server [-config delve.yaml] [-port 2222] [-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"delve/internal/config"
	"delve/internal/game"
	"delve/internal/logger"
	internalssh "delve/internal/ssh"
	"delve/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds the player name taken from the SSH user.
const maxNameBytes = 16

// allowedTerms lists the TERM values passed through to terminfo lookup.
// Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML/TOML/JSON config file")
	port := flag.Int("port", 0, "SSH server port (overrides server.port)")
	keyFile := flag.String("key", "", "Path to the PEM-encoded host key (overrides server.host_key)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry disabled")
		} else {
			defer func() { _ = shutdown(ctx) }()
		}
	}

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey)
	if err != nil {
		logger.Log.WithError(err).Fatal("host key")
	}
	h := &handler{cfg: cfg}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port can play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Log.WithField("port", cfg.Server.Port).Info("delve SSH server listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	cfg    *config.Config
	active atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks until the game ends or the client disconnects.
func (h *handler) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintf(s, "This game requires a PTY. Connect with: ssh -t -p %d <host>\n", h.cfg.Server.Port)
		return
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = "anonymous"
	}
	log := logger.Log.WithFields(logrus.Fields{
		"user":   name,
		"remote": s.RemoteAddr().String(),
	})

	tty := internalssh.NewSessionTty(s, pty, winCh)
	screen, err := newScreen(tty, sessionTerm(s.Environ(), pty.Term))
	if err != nil {
		log.WithError(err).Warn("terminal setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// A disconnect unblocks PollEvent by finalising the screen.
	ctx := s.Context()
	go func() {
		<-ctx.Done()
		fini()
	}()

	seed := game.ResolveSeed(h.cfg.Seed)
	g, err := game.New(ctx, screen, h.cfg, seed)
	if err != nil {
		log.WithError(err).Error("game setup failed")
		return
	}

	n := h.active.Add(1)
	log.WithFields(logrus.Fields{"seed": seed, "active": n}).Info("session started")
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Warn("game ended with error")
	}
	n = h.active.Add(-1)
	log.WithFields(logrus.Fields{
		"turns":  g.Engine().Stats().Turns,
		"active": n,
	}).Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// newScreen builds and initialises a tcell screen on tty for the given TERM.
func newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// sessionTerm picks the terminal type from the session environment, then the
// pty request, falling back to xterm-256color for anything not allow-listed.
func sessionTerm(environ []string, ptyTerm string) string {
	term := ptyTerm
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			term = v
			break
		}
	}
	if !allowedTerms[term] {
		return "xterm-256color"
	}
	return term
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	logger.Log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; a fresh key is generated next start otherwise.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "delve server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Log.WithError(err).Warn("host key not persisted")
		}
	}
	return signer, nil
}
