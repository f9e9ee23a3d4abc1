// Package server owns the transport server lifecycle: construction from
// configuration, signal-driven graceful shutdown, and the run loop.
package server
