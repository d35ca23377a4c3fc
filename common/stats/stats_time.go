package stats

import (
	"time"
)

// Defines the calls we make to the stdlib time package. Allows for overriding in tests.
type StatsTime interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type defaultStatsTime struct{}

func (s *defaultStatsTime) Now() time.Time                  { return time.Now() }
func (s *defaultStatsTime) Since(t time.Time) time.Duration { return time.Since(t) }

func DefaultStatsTime() StatsTime { return &defaultStatsTime{} }

// Returns a fixed clock that advances by step on every call to Now().
type testStatsTime struct {
	now  time.Time
	step time.Duration
}

func (s *testStatsTime) Now() time.Time {
	s.now = s.now.Add(s.step)
	return s.now
}
func (s *testStatsTime) Since(t time.Time) time.Duration { return s.Now().Sub(t) }

func NewTestTime(start time.Time, step time.Duration) StatsTime {
	return &testStatsTime{start, step}
}
