// Package timeouts defines the timeout constants shared by the console
// process, so HTTP serving and storage calls use one set of durations.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Request caps the storage work done while serving one console request.
const Request = 2 * time.Second
