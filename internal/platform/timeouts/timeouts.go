// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TrackerFetch caps one round of daily-feed requests to the upstream tracker.
const TrackerFetch = 10 * time.Second

// ReferenceLoad caps the one-time reference table load at startup.
const ReferenceLoad = 30 * time.Second
