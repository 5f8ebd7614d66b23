// Package config provides centralized timeout constants for the application.
//
// These values are tuned for a chat web UI: the user is watching a typing
// indicator, so a turn should resolve in a few seconds even when an LLM
// provider is slow and the chain has to fall through to the local classifier.
package config

import "time"

// Turn processing timeouts
const (
	// TurnProcessing is the timeout for handling a single dialogue turn,
	// including NLU classification and session persistence.
	TurnProcessing = 15 * time.Second

	// NLUClassify is the per-provider timeout for one classification call.
	// Kept short so a dead provider falls through to the next tier quickly.
	NLUClassify = 6 * time.Second
)

// HTTP server timeouts
const (
	// HTTPRead is the HTTP server read timeout. Chat payloads are small.
	HTTPRead = 10 * time.Second

	// HTTPWrite accommodates TurnProcessing plus response serialization.
	HTTPWrite = 20 * time.Second

	// HTTPIdle is the idle timeout for keep-alive connections.
	HTTPIdle = 120 * time.Second
)

// Storage timeouts
const (
	// SQLiteBusyTimeout is how long SQLite waits on a locked database
	// before returning SQLITE_BUSY.
	SQLiteBusyTimeout = 5 * time.Second

	// SessionJanitorInterval is how often stale sessions are purged.
	SessionJanitorInterval = 1 * time.Hour
)

// Rate limiter housekeeping
const (
	// RateLimiterCleanupInterval is how often inactive per-session
	// token buckets are evicted.
	RateLimiterCleanupInterval = 5 * time.Minute
)
