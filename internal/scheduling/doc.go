// Package scheduling implements the spaced-repetition scheduling engine:
// retention estimation, mastery evaluation, interval calculation and the
// next-review-date scheduler.
//
// Every function in this package is pure and total. Out-of-range inputs are
// clamped to the nearest defined band rather than rejected, so there are no
// error returns. Callers own all state; the engine retains nothing between
// calls.
package scheduling
