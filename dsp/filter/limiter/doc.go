// Package limiter provides the amplitude limiter, a single-sample spike
// rejector: a new reading is accepted only when it lies within Limit of
// the previous one.
package limiter
