package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Bucket
		ok       bool
	}{
		{"overdue", "overdue", BucketOverdue, true},
		{"today", "today", BucketToday, true},
		{"week", "week", BucketWeek, true},
		{"two weeks", "two_weeks", BucketTwoWeeks, true},
		{"later", "later", BucketLater, true},
		{"empty token", "", "", false},
		{"unknown token", "next_month", "", false},
		{"wrong case", "Week", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, ok := ParseBucket(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, bucket)
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	today := date("2026-03-10")

	tests := []struct {
		name     string
		due      string
		expected Bucket
	}{
		{"yesterday is overdue", "2026-03-09", BucketOverdue},
		{"long past is overdue", "2025-01-01", BucketOverdue},
		{"same day is today", "2026-03-10", BucketToday},
		{"tomorrow is week", "2026-03-11", BucketWeek},
		{"day 7 is week", "2026-03-17", BucketWeek},
		{"day 8 is two weeks", "2026-03-18", BucketTwoWeeks},
		{"day 14 is two weeks", "2026-03-24", BucketTwoWeeks},
		{"day 15 is later", "2026-03-25", BucketLater},
		{"far future is later", "2027-01-01", BucketLater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{ID: 1, Title: "t", DueDate: date(tt.due)}
			overview := Classify(today, []*Task{task})

			assert.Equal(t, 1, overview.Total())
			buckets := map[Bucket][]*Task{
				BucketOverdue:  overview.Overdue,
				BucketToday:    overview.Today,
				BucketWeek:     overview.Week,
				BucketTwoWeeks: overview.TwoWeeks,
				BucketLater:    overview.Later,
			}
			assert.Len(t, buckets[tt.expected], 1, "task should land in %s", tt.expected)
		})
	}
}

func TestClassify_ExcludesDoneTasks(t *testing.T) {
	today := date("2026-03-10")
	tasks := []*Task{
		{ID: 1, DueDate: date("2026-03-09"), IsDone: true},
		{ID: 2, DueDate: date("2026-03-10"), IsDone: false},
	}

	overview := Classify(today, tasks)

	assert.Equal(t, 1, overview.Total())
	assert.Empty(t, overview.Overdue)
	assert.Len(t, overview.Today, 1)
}

func TestClassify_EveryTaskLandsInExactlyOneBucket(t *testing.T) {
	today := date("2026-03-10")
	var tasks []*Task
	for i := -20; i <= 20; i++ {
		tasks = append(tasks, &Task{
			ID:      int64(i + 21),
			DueDate: DateOnly(today).AddDate(0, 0, i),
		})
	}

	overview := Classify(today, tasks)
	assert.Equal(t, len(tasks), overview.Total())

	seen := make(map[int64]int)
	for _, bucket := range [][]*Task{
		overview.Overdue, overview.Today, overview.Week, overview.TwoWeeks, overview.Later,
	} {
		for _, task := range bucket {
			seen[task.ID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %d appears %d times", id, count)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	overview := Classify(date("2026-03-10"), nil)
	assert.Equal(t, 0, overview.Total())
}

func TestMatchesRange_WindowBoundaries(t *testing.T) {
	today := date("2026-03-10")

	tests := []struct {
		name    string
		due     string
		bucket  Bucket
		matches bool
	}{
		{"overdue excludes today", "2026-03-10", BucketOverdue, false},
		{"overdue includes yesterday", "2026-03-09", BucketOverdue, true},
		{"today exact", "2026-03-10", BucketToday, true},
		{"today excludes tomorrow", "2026-03-11", BucketToday, false},
		{"week includes today", "2026-03-10", BucketWeek, true},
		{"week includes day 7", "2026-03-17", BucketWeek, true},
		{"week excludes day 8", "2026-03-18", BucketWeek, false},
		{"week excludes yesterday", "2026-03-09", BucketWeek, false},
		{"two weeks includes today", "2026-03-10", BucketTwoWeeks, true},
		{"two weeks includes day 14", "2026-03-24", BucketTwoWeeks, true},
		{"two weeks excludes day 15", "2026-03-25", BucketTwoWeeks, false},
		{"later excludes day 14", "2026-03-24", BucketLater, false},
		{"later includes day 15", "2026-03-25", BucketLater, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{DueDate: date(tt.due)}
			assert.Equal(t, tt.matches, MatchesRange(task, tt.bucket, today))
		})
	}
}

func TestMatchesRange_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC)
	task := &Task{DueDate: time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)}

	assert.True(t, MatchesRange(task, BucketToday, today))
	assert.False(t, MatchesRange(task, BucketOverdue, today))
}
