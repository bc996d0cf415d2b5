// Package model defines shared data structures.
package model

import "time"

// Config defines tone practice settings.
type Config struct {
	Questions  int
	Voice      string
	BankPath   string
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
	WeakWindow int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Voice       string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionStats captures a completed practice session.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Voice      string
	Questions  int
	Score      int
	DurationMs int64
}

// ToneStats stores per-tone answer counts for a session.
type ToneStats struct {
	Tone      int
	Correct   int
	Incorrect int
}

// ToneAggregate aggregates tone stats across sessions.
type ToneAggregate struct {
	Tone      int
	Correct   int
	Incorrect int
}

// SessionAggregate summarizes a session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Questions  int
	Score      int
	DurationMs int64
}
