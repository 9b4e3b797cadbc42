// Package game implements the interactive narrowing-down session played
// over an enumerated shortest-path set.
//
// What
//
//   - Session: one game instance holding the source, the target, the full
//     PathSet, the guess set and a mistake budget. The state machine has
//     three states: StateInProgress, StateWon, StateLost.
//   - Submit evaluates one guess synchronously and returns a Turn
//     describing the outcome; no terminal I/O happens here, which keeps
//     the machine testable in isolation.
//   - RandomPair picks a source and a non-adjacent target for the CLI
//     game mode.
//
// Rules per guess G
//
//  1. Win: some remaining trimmed path (source + interior, target cut
//     off) has exactly the guess set as its node set: StateWon; the
//     winning path is revealed with the target re-appended.
//  2. On track: the guess set is a subset of at least one remaining
//     path: the remaining set narrows to those supersets and the
//     lexicographically-first survivor is displayed with unguessed nodes
//     collapsed ("A -> ... -> D").
//  3. Mistake: otherwise the mistake count grows, G is dropped from the
//     guess set, and reaching the budget ends the session in StateLost
//     with the full PathSet revealed.
//
// Guessing the literal source or target label attaches an informational
// note to the Turn but still runs the normal evaluation. Re-submitting an
// already-accepted guess is an idempotent on-track turn: the guess set is
// unchanged and the narrowing is a no-op.
//
// Terminal states accept no further guesses; Submit returns ErrSessionOver.
package game
