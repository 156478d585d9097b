// Package time provides statistics of 8-bit sample streams: moments,
// extremes and measures of small-scale jitter such as step and toggle
// counts.
package time
