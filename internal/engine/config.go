package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	HistoryPath          string // SQLite analysis history; empty = $HOME/.go_resume/history.db
	HistoryEnabled       bool   // record a history row per scored analysis
	MaxResumeChars       int    // cap on ingested resume text passed to the core
	MaxJobChars          int    // cap on job description text passed to the core
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (match, resumeserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
