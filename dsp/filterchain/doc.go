// Package filterchain drives the sample filters as a stream: it owns one
// window per window-based stage, pre-fills it with the first sample it sees
// and passes every new reading through an ordered list of stages.
//
// Stages are built by name from a [Registry]; [DefaultRegistry] knows every
// filter in dsp/filter. A Chain is not safe for concurrent use.
package filterchain
