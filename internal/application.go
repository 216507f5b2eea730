package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tree-hangman/internal/entity"
	"github.com/rocketscienceinc/tree-hangman/transport/console"
)

// RunApp - plays one game of hangman reading guesses from in and writing the transcript to out.
func RunApp(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	game := entity.NewGame(entity.DefaultSecret)
	log.Debug("Starting game", "length", len([]rune(game.Secret())), "max_tries", entity.MaxTries)

	if err := console.New(logger, in, out).Play(ctx, game); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Debug("Game finished", "status", game.Status(), "incorrect", game.IncorrectCount())

	return nil
}
