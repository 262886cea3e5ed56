package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepick/pkg/config"
)

// session carries what every command needs: the configuration and a
// context holding the logger.
type session struct {
	ctx   context.Context
	cfg   *config.Config
	close func() error
}

func newSession(ctx context.Context) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	s := &session{ctx: ctx, cfg: cfg, close: func() error { return nil }}

	if path := cfg.LogPath(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		s.ctx = ctxlog.NewJSONLogger(ctx, f, &slog.HandlerOptions{Level: cfg.Level()})
		s.close = f.Close
	}
	return s, nil
}

func (s *session) Close() {
	_ = s.close()
}
