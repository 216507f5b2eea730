package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tree-hangman/internal/apperror"
	"github.com/rocketscienceinc/tree-hangman/internal/entity"
	"github.com/rocketscienceinc/tree-hangman/internal/hangman"
)

const prompt = "Enter a letter: "

type game interface {
	ProcessGuess(raw string) (*entity.GuessOutcome, error)
	IsOver() bool
	IsLost() bool
	Revealed() string
	Secret() string
}

// Console plays one game over a line-based reader and writer.
type Console struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Play - runs the guessing loop until the game is won or lost.
func (that *Console) Play(ctx context.Context, game game) error {
	if err := that.println("Welcome to Hangman!"); err != nil {
		return err
	}

	if err := that.println("Guess the sentence: " + game.Revealed()); err != nil {
		return err
	}

	for !game.IsOver() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.print(prompt); err != nil {
			return err
		}

		line, err := that.readLine()
		if err != nil {
			return err
		}

		outcome, err := game.ProcessGuess(line)
		if err != nil {
			return fmt.Errorf("failed process guess: %w", err)
		}

		that.logger.Debug("guess processed",
			"letter", string(outcome.Letter),
			"result", outcome.Result,
			"incorrect", outcome.IncorrectCount,
		)

		if err = that.printOutcome(outcome); err != nil {
			return err
		}
	}

	return that.printResult(game)
}

func (that *Console) printOutcome(outcome *entity.GuessOutcome) error {
	if outcome.Result == entity.Hit {
		return that.println("Good guess! Current sentence: " + outcome.Revealed)
	}

	if err := that.println(fmt.Sprintf("Wrong guess! You have %d tries left.", outcome.RemainingTries)); err != nil {
		return err
	}

	if err := that.println(hangman.Header); err != nil {
		return err
	}

	for _, line := range hangman.RenderArt(outcome.IncorrectCount) {
		if err := that.println(line); err != nil {
			return err
		}
	}

	return nil
}

func (that *Console) printResult(game game) error {
	if game.IsLost() {
		that.logger.Debug("game lost", "secret", game.Secret())

		return that.println("Game over! The sentence was: " + game.Secret())
	}

	that.logger.Debug("game won", "secret", game.Secret())

	return that.println("Congratulations! You've revealed the sentence: " + game.Revealed())
}

func (that *Console) readLine() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", apperror.ErrInputClosed
}

func (that *Console) print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Console) println(text string) error {
	return that.print(text + "\n")
}
