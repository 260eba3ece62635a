// Package djia fetches Dow Jones opening values from the public geohashing
// mirrors.
//
// Mirrors serve the value as a trimmed plain-text body at
// <base><YYYY/MM/DD>. The client walks a fixed, ordered list of mirrors
// and returns the first successful response; a timeout or a non-200
// status just advances to the next mirror. There are no retries and no
// parallel requests, so worst-case latency is bounded by
// len(sources) x timeout.
package djia
