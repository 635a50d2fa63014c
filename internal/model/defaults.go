package model

import "time"

// Shared defaults used by both the shell and the placeholder API binaries.
const (
	DefaultTheme        = "light"
	DefaultSectionID    = "dashboard"
	DefaultParentSelect = "activate"
	DefaultMinDelay     = 500 * time.Millisecond
	DefaultMaxDelay     = 1500 * time.Millisecond
	DefaultFailureRate  = 0.10
	DefaultHelloURL     = "http://127.0.0.1:8000"
	DefaultHelloTimeout = time.Second
	DefaultAPIAddr      = "127.0.0.1:8000"
)
