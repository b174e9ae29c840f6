package domain

import (
	"sort"
	"time"
)

// Filter represents the request-level list filters. Zero values mean no
// restriction. Range holds the raw token from the request; tokens that do not
// parse as a bucket behave as if no range were supplied.
type Filter struct {
	Subject  string
	Range    string
	ShowDone bool
}

// ApplyFilter computes the ordered task list for the given filters:
// exact subject match, then the bucket date window (which restricts to
// not-done tasks and overrides ShowDone), otherwise the ShowDone rule.
// The result is sorted ascending by due date, ties kept in input order.
func ApplyFilter(tasks []*Task, f Filter, today time.Time) []*Task {
	result := make([]*Task, 0, len(tasks))
	bucket, hasRange := ParseBucket(f.Range)

	for _, t := range tasks {
		if f.Subject != "" && t.Subject != f.Subject {
			continue
		}
		if hasRange {
			if t.IsDone || !MatchesRange(t, bucket, today) {
				continue
			}
		} else if !f.ShowDone && t.IsDone {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DueDate.Before(result[j].DueDate)
	})
	return result
}

// Subjects returns the distinct subject values in use, alphabetically ordered.
func Subjects(tasks []*Task) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, t := range tasks {
		if t.Subject == "" || seen[t.Subject] {
			continue
		}
		seen[t.Subject] = true
		subjects = append(subjects, t.Subject)
	}
	sort.Strings(subjects)
	return subjects
}
