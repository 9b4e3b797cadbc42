package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/borderline/allpaths"
	"github.com/katalvlaran/borderline/core"
	"github.com/katalvlaran/borderline/present"
)

// Session is one interactive game over a fixed (source, target) query.
// It owns its PathSet copy and is mutated turn by turn; it is not safe
// for concurrent Submit calls and is not meant to be shared.
type Session struct {
	id     string
	source string
	target string

	full      allpaths.PathSet // as enumerated, source..target inclusive
	remaining []allpaths.Path  // trimmed (target cut off) paths still consistent with guesses

	guesses  present.Known
	mistakes int
	budget   int
	state    State
}

// NewSession builds an in-progress session over the enumerated paths.
// Each path must run source..target inclusive, as returned by
// allpaths.Enumerate; the target is trimmed off internally so guessing
// it is never required to win.
func NewSession(source, target string, paths allpaths.PathSet, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	s := &Session{
		id:        uuid.NewString(),
		source:    source,
		target:    target,
		full:      make(allpaths.PathSet, 0, len(paths)),
		remaining: make([]allpaths.Path, 0, len(paths)),
		guesses:   present.NewKnown(),
		budget:    o.Budget,
		state:     StateInProgress,
	}
	for _, p := range paths {
		own := append(allpaths.Path(nil), p...)
		s.full = append(s.full, own)
		s.remaining = append(s.remaining, own[:len(own)-1])
	}

	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Source returns the fixed source label.
func (s *Session) Source() string { return s.source }

// Target returns the fixed target label.
func (s *Session) Target() string { return s.target }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Mistakes returns the mistakes made so far.
func (s *Session) Mistakes() int { return s.mistakes }

// Budget returns the mistake budget.
func (s *Session) Budget() int { return s.budget }

// Distance returns the shortest-path length in edges.
func (s *Session) Distance() int { return len(s.full[0]) - 1 }

// Submit evaluates one guessed label and advances the state machine.
// Returns ErrSessionOver once the session is terminal.
func (s *Session) Submit(guess string) (*Turn, error) {
	if s.state != StateInProgress {
		return nil, ErrSessionOver
	}

	turn := &Turn{Guess: guess, Budget: s.budget}
	switch guess {
	case s.source:
		turn.Note = fmt.Sprintf("%s is the source", guess)
	case s.target:
		turn.Note = fmt.Sprintf("%s is the target", guess)
	}

	// The literal source/target note is informational only; the guess
	// still runs through the win / on-track / mistake evaluation.
	s.guesses.Add(guess)

	if winning, ok := s.winningPath(); ok {
		s.state = StateWon
		turn.State = StateWon
		turn.Verdict = VerdictWon
		turn.Display = winning.String()
		turn.Distance = len(winning) - 1
		turn.Mistakes = s.mistakes
		turn.Revealed = allpaths.PathSet{winning}

		return turn, nil
	}

	if s.onTrack() {
		s.narrow()
		turn.State = StateInProgress
		turn.Verdict = VerdictOnTrack
		turn.Display = s.display()
		turn.Mistakes = s.mistakes

		return turn, nil
	}

	// Wrong guesses do not persist in the guess set.
	s.guesses.Remove(guess)
	s.mistakes++
	turn.Verdict = VerdictMistake
	turn.Mistakes = s.mistakes
	if s.mistakes >= s.budget {
		s.state = StateLost
		turn.State = StateLost
		turn.Distance = s.Distance()
		turn.Revealed = append(allpaths.PathSet(nil), s.full...)

		return turn, nil
	}
	turn.State = StateInProgress

	return turn, nil
}

// winningPath reports whether the guess set exactly covers one of the
// remaining trimmed paths; the returned path has the target re-appended.
func (s *Session) winningPath() (allpaths.Path, bool) {
	for _, p := range s.remaining {
		if s.guesses.Equals(p) {
			winning := make(allpaths.Path, 0, len(p)+1)
			winning = append(winning, p...)
			winning = append(winning, s.target)

			return winning, true
		}
	}

	return nil, false
}

// display renders the lexicographically-first remaining path with the
// source always visible and the trimmed-off target re-appended as a
// hidden tail, e.g. "X -> Y -> ...".
func (s *Session) display() string {
	rep := make(allpaths.Path, 0, len(s.remaining[0])+1)
	rep = append(rep, s.remaining[0]...)
	rep = append(rep, s.target)

	shown := present.NewKnown(s.source)
	for label := range s.guesses {
		shown.Add(label)
	}

	return present.Partial(rep, shown)
}

// onTrack reports whether the guess set is a subset of any remaining path.
func (s *Session) onTrack() bool {
	for _, p := range s.remaining {
		if s.guesses.SubsetOf(p) {
			return true
		}
	}

	return false
}

// narrow drops every remaining path that no longer contains the guess set.
// Relative order is preserved, so remaining[0] stays the
// lexicographically-first survivor of the original sorted PathSet.
func (s *Session) narrow() {
	kept := s.remaining[:0]
	for _, p := range s.remaining {
		if s.guesses.SubsetOf(p) {
			kept = append(kept, p)
		}
	}
	s.remaining = kept
}

// RandomPair picks a random source and a random target that is neither
// the source itself nor one of its direct neighbors, so a game is never
// decided by the trivial one-edge path. Returns ErrNoViablePair when the
// graph cannot supply such a pair.
func RandomPair(g *core.Graph, rng *rand.Rand) (source, target string, err error) {
	if g == nil {
		return "", "", ErrNoViablePair
	}
	ids := g.VertexIDs()
	for _, si := range rng.Perm(len(ids)) {
		src := ids[si]
		neighbors, nerr := g.NeighborIDs(src)
		if nerr != nil {
			return "", "", nerr
		}
		adjacent := present.NewKnown(neighbors...)
		candidates := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != src && !adjacent.Has(id) {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) > 0 {
			return src, candidates[rng.Intn(len(candidates))], nil
		}
	}

	return "", "", ErrNoViablePair
}
