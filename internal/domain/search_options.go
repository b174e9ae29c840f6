package domain

import "time"

// SearchOptions represents store-level search criteria for tasks.
// This is a domain model that mirrors the database search options
// but belongs to the domain layer for proper separation of concerns.
type SearchOptions struct {
	Subject *string
	Done    *bool
	DueFrom *time.Time
	DueTo   *time.Time
	OwnerID *int64
}
