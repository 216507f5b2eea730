package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tree-hangman/internal/apperror"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MaxTries      = 6
	DefaultSecret = "HIDDEN MESSAGE"

	HiddenMark = '_'
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

type GuessResult string

const (
	Hit  GuessResult = "hit"
	Miss GuessResult = "miss"
)

// GuessOutcome is what a single guess did to the game.
type GuessOutcome struct {
	Letter         rune
	Result         GuessResult
	Revealed       string
	IncorrectCount int
	RemainingTries int
}

// Game is one session: the secret sentence, what the player has revealed so far
// and how many wrong guesses have been made.
type Game struct {
	secret         []rune
	revealed       []rune
	incorrectCount int
	status         string
}

func NewGame(secret string) *Game {
	upper := []rune(toUpper(secret))

	revealed := make([]rune, len(upper))
	for i := range revealed {
		revealed[i] = HiddenMark
	}

	return &Game{
		secret:   upper,
		revealed: revealed,
		status:   StatusOngoing,
	}
}

// NormalizeGuess - returns the uppercased first character of a line of input.
func NormalizeGuess(raw string) (rune, error) {
	if raw == "" {
		return 0, apperror.ErrEmptyInput
	}

	letter, _ := utf8.DecodeRuneInString(toUpper(raw))

	return letter, nil
}

func (that *Game) ProcessGuess(raw string) (*GuessOutcome, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	letter, err := NormalizeGuess(raw)
	if err != nil {
		return nil, err
	}

	outcome := &GuessOutcome{Letter: letter}

	if that.reveal(letter) {
		that.revealRemainingIfLettersDone()
		outcome.Result = Hit
	} else {
		that.incorrectCount++
		outcome.Result = Miss
	}

	that.UpdateGameState()

	outcome.Revealed = that.Revealed()
	outcome.IncorrectCount = that.incorrectCount
	outcome.RemainingTries = that.RemainingTries()

	return outcome, nil
}

// reveal uncovers every position holding letter and reports whether there was any.
func (that *Game) reveal(letter rune) bool {
	found := false
	for i, r := range that.secret {
		if r == letter {
			that.revealed[i] = r
			found = true
		}
	}

	return found
}

// revealRemainingIfLettersDone uncovers spaces and punctuation once every letter is known,
// otherwise a sentence with a space could never be completed.
func (that *Game) revealRemainingIfLettersDone() {
	for i, r := range that.secret {
		if unicode.IsLetter(r) && that.revealed[i] != r {
			return
		}
	}

	copy(that.revealed, that.secret)
}

func (that *Game) UpdateGameState() {
	switch {
	case that.IsLost():
		that.status = StatusLost
	case that.IsWon():
		that.status = StatusWon
	default:
		that.status = StatusOngoing
	}
}

func (that *Game) IsWon() bool {
	return !strings.ContainsRune(string(that.revealed), HiddenMark)
}

func (that *Game) IsLost() bool {
	return that.incorrectCount >= MaxTries
}

func (that *Game) IsOver() bool {
	return that.IsLost() || that.IsWon()
}

func (that *Game) ConfirmOngoingState() error {
	if that.status == StatusWon || that.status == StatusLost {
		return apperror.ErrGameFinished
	}

	return nil
}

func (that *Game) Secret() string {
	return string(that.secret)
}

func (that *Game) Revealed() string {
	return string(that.revealed)
}

func (that *Game) IncorrectCount() int {
	return that.incorrectCount
}

func (that *Game) RemainingTries() int {
	return MaxTries - that.incorrectCount
}

func (that *Game) Status() string {
	return that.status
}

func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
