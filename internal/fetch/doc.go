// Package fetch is the boundary between the parsing core and the network.
// It loads pages over HTTP with a per-request timeout, retries transient
// failures with exponential backoff, and paces requests with a politeness
// delay so yearly pages are not hammered in a tight loop.
package fetch
