// Package stacktrace shortens Java-style exception stack traces to the
// lines that matter.
//
// A trace is viewed as a sequence of "singular" segments: the top-level
// exception plus every "Caused by:" / "Suppressed:" section. Within each
// segment the header line is always kept, every line up to the first
// relevant frame is kept, and from there on runs of irrelevant frames are
// collapsed into a single "\t..." marker, always leaving one line of
// context after each relevant run. Relevance is decided by a Matcher;
// the stock matcher is a set of literal package prefixes such as
// "com.plain.analytics.v2.utils.test.".
//
// Shortening never fails: with no prefixes configured, or on any internal
// error, the full unmodified text is returned and the problem is logged.
package stacktrace
