package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tree-hangman/internal/apperror"
	"github.com/rocketscienceinc/tree-hangman/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	out := &bytes.Buffer{}

	return New(logger, strings.NewReader(input), out), out
}

func TestConsole_Play(t *testing.T) {
	t.Run("Lost game transcript", func(t *testing.T) {
		// Given: one hit followed by six letters that are not in the secret
		console, out := newTestConsole("h\nz\nq\nx\nj\nv\nk\n")
		game := entity.NewGame(entity.DefaultSecret)

		// When: playing the game
		err := console.Play(context.Background(), game)
		require.NoError(t, err)

		// Then: the output follows the game step by step
		transcript := out.String()
		assert.True(t, strings.HasPrefix(transcript,
			"Welcome to Hangman!\n"+
				"Guess the sentence: ______________\n"+
				"Enter a letter: Good guess! Current sentence: H_____________\n"+
				"Enter a letter: Wrong guess! You have 5 tries left.\n"+
				"Tree and Hangman:\n"+
				"  🌳\n"+
				"      | \n"+
				"      O \n"+
				"Enter a letter: "), transcript)
		assert.True(t, strings.HasSuffix(transcript,
			"Wrong guess! You have 0 tries left.\n"+
				"Tree and Hangman:\n"+
				"  🌳\n"+
				"      | \n"+
				"      O \n"+
				"     /|\\ \n"+
				"     / \\ \n"+
				"Game over! The sentence was: HIDDEN MESSAGE\n"), transcript)
		assert.Equal(t, 7, strings.Count(transcript, prompt))
		assert.Equal(t, 6, strings.Count(transcript, "Tree and Hangman:"))
		assert.True(t, game.IsLost())
	})

	t.Run("Won game transcript", func(t *testing.T) {
		// Given: every distinct letter of the secret
		console, out := newTestConsole("H\nI\nD\nE\nN\nM\nS\nA\nG\n")
		game := entity.NewGame(entity.DefaultSecret)

		// When: playing the game
		err := console.Play(context.Background(), game)
		require.NoError(t, err)

		// Then: the game ends with the congratulations line and no art
		transcript := out.String()
		assert.True(t, strings.HasSuffix(transcript,
			"Enter a letter: Good guess! Current sentence: HIDDEN MESSAGE\n"+
				"Congratulations! You've revealed the sentence: HIDDEN MESSAGE\n"), transcript)
		assert.NotContains(t, transcript, "Wrong guess!")
		assert.NotContains(t, transcript, "Tree and Hangman:")
		assert.True(t, game.IsWon())
	})

	t.Run("Only the first character of a line counts", func(t *testing.T) {
		// Given: whole words typed instead of letters
		console, out := newTestConsole("hello\nzebra\n")
		game := entity.NewGame(entity.DefaultSecret)

		// When: the input runs out before the game ends
		err := console.Play(context.Background(), game)

		// Then: H was a hit and Z a miss
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Contains(t, out.String(), "Good guess! Current sentence: H_____________\n")
		assert.Contains(t, out.String(), "Wrong guess! You have 5 tries left.\n")
	})

	t.Run("Empty line is fatal", func(t *testing.T) {
		// Given: an empty line after a valid guess
		console, out := newTestConsole("h\n\nz\n")
		game := entity.NewGame(entity.DefaultSecret)

		// When: playing the game
		err := console.Play(context.Background(), game)

		// Then: the loop stops with ErrEmptyInput and nothing after it is read
		require.ErrorIs(t, err, apperror.ErrEmptyInput)
		assert.NotContains(t, out.String(), "Wrong guess!")
		assert.Equal(t, 0, game.IncorrectCount())
	})

	t.Run("Closed input is fatal", func(t *testing.T) {
		console, _ := newTestConsole("")
		game := entity.NewGame(entity.DefaultSecret)

		err := console.Play(context.Background(), game)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Canceled context stops the loop", func(t *testing.T) {
		// Given: a context that is already canceled
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		console, out := newTestConsole("h\n")
		game := entity.NewGame(entity.DefaultSecret)

		// When: playing the game
		err := console.Play(ctx, game)

		// Then: no guess is read
		require.ErrorIs(t, err, context.Canceled)
		assert.NotContains(t, out.String(), prompt)
	})
}
