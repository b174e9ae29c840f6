package domain

import (
	"time"
)

// Bucket is one of the five urgency classes assigned to a not-done task
// based on how many days remain until its due date.
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketWeek     Bucket = "week"
	BucketTwoWeeks Bucket = "two_weeks"
	BucketLater    Bucket = "later"
)

// ParseBucket parses a range token from a request. Unknown or empty tokens
// report ok=false and callers treat that as "no range restriction".
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(s) {
	case BucketOverdue, BucketToday, BucketWeek, BucketTwoWeeks, BucketLater:
		return Bucket(s), true
	default:
		return "", false
	}
}

// Overview holds not-done tasks partitioned into the five urgency buckets.
// The buckets are disjoint and together cover every not-done input task.
type Overview struct {
	Overdue  []*Task
	Today    []*Task
	Week     []*Task
	TwoWeeks []*Task
	Later    []*Task
}

// Total returns the number of tasks across all buckets.
func (o Overview) Total() int {
	return len(o.Overdue) + len(o.Today) + len(o.Week) + len(o.TwoWeeks) + len(o.Later)
}

// Classify partitions the not-done tasks into urgency buckets relative to
// today. Done tasks are excluded before bucketing. A task due exactly today
// always lands in Today; the overdue test is strictly before today.
func Classify(today time.Time, tasks []*Task) Overview {
	var o Overview
	for _, t := range tasks {
		if t.IsDone {
			continue
		}
		switch delta := DaysUntil(t.DueDate, today); {
		case delta < 0:
			o.Overdue = append(o.Overdue, t)
		case delta == 0:
			o.Today = append(o.Today, t)
		case delta <= 7:
			o.Week = append(o.Week, t)
		case delta <= 14:
			o.TwoWeeks = append(o.TwoWeeks, t)
		default:
			o.Later = append(o.Later, t)
		}
	}
	return o
}

// MatchesRange reports whether the task's due date falls inside the bucket's
// request-level date window. The week and two_weeks windows start at today
// (non-strict), unlike Classify where today is its own bucket; both behaviors
// are user-visible and kept as-is.
func MatchesRange(t *Task, b Bucket, today time.Time) bool {
	due := DateOnly(t.DueDate)
	day := DateOnly(today)
	switch b {
	case BucketOverdue:
		return due.Before(day)
	case BucketToday:
		return due.Equal(day)
	case BucketWeek:
		return !due.Before(day) && !due.After(day.AddDate(0, 0, 7))
	case BucketTwoWeeks:
		return !due.Before(day) && !due.After(day.AddDate(0, 0, 14))
	case BucketLater:
		return due.After(day.AddDate(0, 0, 14))
	default:
		return false
	}
}
