package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/config"
)

// setupLogging sends logs to --log when given. Otherwise the terminal
// frontend discards them, since stderr shares the tty with the screen.
func (a *App) setupLogging() error {
	var w io.Writer = os.Stderr
	switch {
	case a.cfg.LogPath != "":
		f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		a.logFile = f
		w = f
	case a.cfg.Frontend == config.FrontendTerminal:
		w = io.Discard
	}

	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return nil
}
