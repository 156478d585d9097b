// Package buffer provides the fixed-capacity sample window shared by all
// window-based filters, plus a scratch pool for one-shot statistics.
//
// A [Window] is created and owned by the caller. Its length is fixed at
// construction to a value in [MinSize, MaxSize]; filters borrow it and, for
// sliding variants, shift its contents, but never resize it. Index 0 holds
// the oldest sample and index Len()-1 the newest.
package buffer
