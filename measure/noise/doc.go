// Package noise measures how much a filter smooths an 8-bit stream.
//
// [Compare] relates a raw stream to its filtered counterpart: variance and
// step roughness before and after, direction reversals, the share of
// energy left in the upper half of the spectrum, correlation and the
// largest per-sample deviation.
package noise
