// Package average provides rounded integer averaging filters over a
// [buffer.Window].
//
// [Mean] only reads its window. [Sliding], [Clamped] and [Weighted] shift the
// window left by one slot on every call, store the new sample in the newest
// slot and then average; the window contents are permanently updated.
//
// All divisions round half up: (sum + N/2) / N.
package average
