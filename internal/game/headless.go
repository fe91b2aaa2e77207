package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"delve/internal/config"
	"delve/internal/render"
)

// RunScript plays one action per non-empty script line against a fresh
// dungeon and writes the final frame to out. Lines starting with '#' are
// comments. Playback stops early on quit.
func RunScript(ctx context.Context, cfg *config.Config, seed int64, script io.Reader, out io.Writer) (*Engine, error) {
	gen, opts, err := buildOptions(cfg, seed)
	if err != nil {
		return nil, err
	}
	e := NewEngine(ctx, gen, opts)
	defer e.Close()
	txt := render.NewText(out, cfg.Map.Width, cfg.Map.Height, render.DefaultPalette)
	started := time.Now()

	sc := bufio.NewScanner(script)
	line := 0
	for sc.Scan() {
		line++
		word := strings.TrimSpace(sc.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		a, err := ParseAction(word)
		if err != nil {
			return e, fmt.Errorf("script line %d: %w", line, err)
		}
		if a == ActionToggleDisplayMode {
			txt.ToggleFullscreen()
		}
		if e.Step(ctx, a) == OutcomeExit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return e, fmt.Errorf("read script: %w", err)
	}

	presentText(txt, e)
	if cfg.RunLog.Enabled {
		_ = saveRunLog(buildRunLog(newRunID(), seed, started, e))
	}
	return e, nil
}

// RunPlain writes the opening frame of a fresh dungeon to out.
func RunPlain(ctx context.Context, cfg *config.Config, seed int64, out io.Writer) error {
	gen, opts, err := buildOptions(cfg, seed)
	if err != nil {
		return err
	}
	e := NewEngine(ctx, gen, opts)
	defer e.Close()
	presentText(render.NewText(out, cfg.Map.Width, cfg.Map.Height, render.DefaultPalette), e)
	return nil
}

func presentText(txt *render.Text, e *Engine) {
	render.DrawFrame(txt, e.World(), e.Map(), e.FOV(), render.DefaultPalette)
	txt.SetStatus(statusLines(e, 3))
	txt.Present()
}
