// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package planner schedules topics for spaced revision. The i-th topic
// (zero based) is due (i+1)*interval days after today.
package planner

import (
	"time"

	"github.com/pdiddy/studyaids/pkg/types"
)

// DefaultIntervalDays is the spacing between consecutive topics.
const DefaultIntervalDays = 2

// Plan schedules topics two days apart starting two days after today.
// An empty topic list yields an empty, non-nil schedule.
func Plan(topics []string, today time.Time) []types.RevisionEntry {
	return schedule(topics, today, DefaultIntervalDays)
}

// Planner wraps Plan with a configurable interval and clock.
type Planner struct {
	// IntervalDays is the spacing between topics; zero or less means
	// DefaultIntervalDays.
	IntervalDays int

	// Now supplies today's date; nil means time.Now.
	Now func() time.Time
}

// Plan schedules topics from the planner's current date.
func (p Planner) Plan(topics []string) []types.RevisionEntry {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	interval := p.IntervalDays
	if interval <= 0 {
		interval = DefaultIntervalDays
	}
	return schedule(topics, now(), interval)
}

func schedule(topics []string, today time.Time, interval int) []types.RevisionEntry {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	entries := make([]types.RevisionEntry, 0, len(topics))
	for i, topic := range topics {
		entries = append(entries, types.RevisionEntry{
			Topic:    topic,
			ReviseOn: day.AddDate(0, 0, (i+1)*interval).Format(types.DateLayout),
		})
	}
	return entries
}
