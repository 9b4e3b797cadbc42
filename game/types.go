// Package game defines session states, turn verdicts, tunable options and
// error definitions for the guessing game.
package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/borderline/allpaths"
)

// Sentinel errors for session construction and play.
var (
	// ErrNoPaths is returned when a session is created over an empty PathSet.
	ErrNoPaths = errors.New("game: path set is empty")

	// ErrSessionOver is returned by Submit once the session is terminal.
	ErrSessionOver = errors.New("game: session already ended")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("game: invalid option supplied")

	// ErrNoViablePair is returned by RandomPair when the graph has no
	// distinct, non-adjacent vertex pair to play with.
	ErrNoViablePair = errors.New("game: no viable source/target pair")
)

// DefaultMistakeBudget is the number of wrong guesses that ends a session.
const DefaultMistakeBudget = 3

// State is the lifecycle phase of a Session.
type State int

const (
	// StateInProgress accepts further guesses.
	StateInProgress State = iota

	// StateWon means the guess set matched a full trimmed path.
	StateWon

	// StateLost means the mistake budget was exhausted.
	StateLost
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Verdict classifies a single submitted guess.
type Verdict int

const (
	// VerdictOnTrack means the guess lies on at least one remaining path.
	VerdictOnTrack Verdict = iota

	// VerdictWon means the guess completed a path.
	VerdictWon

	// VerdictMistake means the guess lies on no remaining path.
	VerdictMistake
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictOnTrack:
		return "on track"
	case VerdictWon:
		return "won"
	case VerdictMistake:
		return "mistake"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Turn reports the outcome of one Submit call.
type Turn struct {
	// Guess is the submitted label, verbatim.
	Guess string

	// State is the session state after evaluating the guess.
	State State

	// Verdict classifies this guess.
	Verdict Verdict

	// Note carries the informational source/target message, if any.
	Note string

	// Display is the progressive disclosure line: the partial path while
	// on track, or the complete winning path on a win.
	Display string

	// Mistakes and Budget snapshot the mistake counter after this turn.
	Mistakes int
	Budget   int

	// Distance is the shortest-path length in edges, set on terminal turns.
	Distance int

	// Revealed holds the winning path on StateWon, or the entire PathSet
	// on StateLost. Nil while in progress.
	Revealed allpaths.PathSet
}

// Option configures a Session via functional arguments.
type Option func(*Options)

// Options holds session parameters.
type Options struct {
	// Budget is the number of mistakes that loses the session.
	Budget int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard three-mistake budget.
func DefaultOptions() Options {
	return Options{Budget: DefaultMistakeBudget}
}

// WithMistakeBudget overrides the mistake budget.
// A budget below one is invalid and surfaces as ErrOptionViolation.
func WithMistakeBudget(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: mistake budget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Budget = n
	}
}
