package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/borderline/allpaths"
	"github.com/katalvlaran/borderline/core"
	"github.com/katalvlaran/borderline/game"
)

// SessionSuite exercises the guessing state machine end to end.
type SessionSuite struct {
	suite.Suite
}

// enumerate builds a graph from edges and returns the enumeration result.
func (s *SessionSuite) enumerate(edges [][2]string, source, target string) *allpaths.Result {
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(s.T(), g.AddEdge(e[0], e[1]))
	}
	res, err := allpaths.Enumerate(g, source, target)
	require.NoError(s.T(), err)

	return res
}

// TestLinearChain plays the X-Y-Z chain to a zero-mistake win.
func (s *SessionSuite) TestLinearChain() {
	res := s.enumerate([][2]string{{"X", "Y"}, {"Y", "Z"}}, "X", "Z")
	require.Equal(s.T(), 2, res.Distance)
	require.Len(s.T(), res.Paths, 1)

	sess, err := game.NewSession("X", "Z", res.Paths)
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.StateInProgress, sess.State())
	require.NotEmpty(s.T(), sess.ID())

	turn, err := sess.Submit("Y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictOnTrack, turn.Verdict)
	require.Equal(s.T(), "X -> Y -> ...", turn.Display)
	require.Zero(s.T(), turn.Mistakes)

	// re-submitting an accepted guess is idempotent
	turn, err = sess.Submit("Y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictOnTrack, turn.Verdict)
	require.Equal(s.T(), "X -> Y -> ...", turn.Display)
	require.Equal(s.T(), game.StateInProgress, sess.State())

	// guessing the source completes the trimmed path {X, Y}
	turn, err = sess.Submit("X")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "X is the source", turn.Note)
	require.Equal(s.T(), game.VerdictWon, turn.Verdict)
	require.Equal(s.T(), game.StateWon, turn.State)
	require.Equal(s.T(), "X -> Y -> Z", turn.Display)
	require.Zero(s.T(), turn.Mistakes)
	require.Equal(s.T(), 2, turn.Distance)
	require.Equal(s.T(), allpaths.PathSet{{"X", "Y", "Z"}}, turn.Revealed)

	_, err = sess.Submit("Y")
	require.ErrorIs(s.T(), err, game.ErrSessionOver)
}

// TestMistakeBudget loses after three wrong guesses and reveals the set.
func (s *SessionSuite) TestMistakeBudget() {
	res := s.enumerate([][2]string{{"X", "Y"}, {"Y", "Z"}}, "X", "Z")
	sess, err := game.NewSession("X", "Z", res.Paths)
	require.NoError(s.T(), err)

	for i, wrong := range []string{"Narnia", "Mordor", "Oz"} {
		turn, serr := sess.Submit(wrong)
		require.NoError(s.T(), serr)
		require.Equal(s.T(), game.VerdictMistake, turn.Verdict)
		require.Equal(s.T(), i+1, turn.Mistakes)
	}
	require.Equal(s.T(), game.StateLost, sess.State())

	_, err = sess.Submit("Y")
	require.ErrorIs(s.T(), err, game.ErrSessionOver)
}

// TestLossRevealsFullPathSet checks the terminal reveal carries every
// enumerated path and the distance.
func (s *SessionSuite) TestLossRevealsFullPathSet() {
	res := s.enumerate([][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}}, "A", "D")
	sess, err := game.NewSession("A", "D", res.Paths, game.WithMistakeBudget(1))
	require.NoError(s.T(), err)

	turn, err := sess.Submit("Elsewhere")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.StateLost, turn.State)
	require.Equal(s.T(), 2, turn.Distance)
	require.Equal(s.T(), allpaths.PathSet{{"A", "B", "D"}, {"A", "C", "D"}}, turn.Revealed)
}

// TestWrongGuessDoesNotPersist: a mistake must not poison later subset checks.
func (s *SessionSuite) TestWrongGuessDoesNotPersist() {
	res := s.enumerate([][2]string{{"X", "Y"}, {"Y", "Z"}}, "X", "Z")
	sess, err := game.NewSession("X", "Z", res.Paths)
	require.NoError(s.T(), err)

	turn, err := sess.Submit("Narnia")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictMistake, turn.Verdict)

	turn, err = sess.Submit("Y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictOnTrack, turn.Verdict)
	require.Equal(s.T(), 1, turn.Mistakes)
}

// TestNarrowing drives a two-path diamond down to a single survivor.
func (s *SessionSuite) TestNarrowing() {
	res := s.enumerate(
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}},
		"A", "E",
	)
	require.Equal(s.T(), allpaths.PathSet{{"A", "B", "D", "E"}, {"A", "C", "D", "E"}}, res.Paths)

	sess, err := game.NewSession("A", "E", res.Paths)
	require.NoError(s.T(), err)

	// D is on both paths: no narrowing, first path is the representative.
	turn, err := sess.Submit("D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictOnTrack, turn.Verdict)
	require.Equal(s.T(), "A -> ... -> D -> ...", turn.Display)

	// C survives only on the second path; it becomes the representative.
	turn, err = sess.Submit("C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictOnTrack, turn.Verdict)
	require.Equal(s.T(), "A -> C -> D -> ...", turn.Display)

	// B was eliminated along with the first path.
	turn, err = sess.Submit("B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictMistake, turn.Verdict)
	require.Equal(s.T(), 1, turn.Mistakes)

	// completing {A, C, D} wins with the target re-appended
	turn, err = sess.Submit("A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), game.VerdictWon, turn.Verdict)
	require.Equal(s.T(), "A -> C -> D -> E", turn.Display)
	require.Equal(s.T(), 1, turn.Mistakes)
}

// TestTargetGuess emits the informational note and still evaluates.
func (s *SessionSuite) TestTargetGuess() {
	res := s.enumerate([][2]string{{"X", "Y"}, {"Y", "Z"}}, "X", "Z")
	sess, err := game.NewSession("X", "Z", res.Paths)
	require.NoError(s.T(), err)

	turn, err := sess.Submit("Z")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Z is the target", turn.Note)
	// the target is trimmed off every path, so it can never be on track
	require.Equal(s.T(), game.VerdictMistake, turn.Verdict)
}

// TestConstruction covers option and input validation.
func (s *SessionSuite) TestConstruction() {
	res := s.enumerate([][2]string{{"X", "Y"}, {"Y", "Z"}}, "X", "Z")

	_, err := game.NewSession("X", "Z", nil)
	require.ErrorIs(s.T(), err, game.ErrNoPaths)

	_, err = game.NewSession("X", "Z", res.Paths, game.WithMistakeBudget(0))
	require.ErrorIs(s.T(), err, game.ErrOptionViolation)

	sess, err := game.NewSession("X", "Z", res.Paths, game.WithMistakeBudget(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, sess.Budget())
	require.Equal(s.T(), 2, sess.Distance())
	require.Equal(s.T(), "X", sess.Source())
	require.Equal(s.T(), "Z", sess.Target())
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// TestRandomPair_Properties asserts the pair is distinct and non-adjacent.
func TestRandomPair_Properties(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		source, target, err := game.RandomPair(g, rng)
		if err != nil {
			t.Fatalf("RandomPair: %v", err)
		}
		if source == target {
			t.Fatalf("source == target == %q", source)
		}
		if g.HasEdge(source, target) {
			t.Fatalf("pair %q-%q is adjacent", source, target)
		}
	}
}

// TestRandomPair_NoViablePair rejects graphs where every pair is adjacent.
func TestRandomPair_NoViablePair(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("A", "C")

	if _, _, err := game.RandomPair(g, rand.New(rand.NewSource(1))); !errors.Is(err, game.ErrNoViablePair) {
		t.Errorf("want ErrNoViablePair, got %v", err)
	}
}
