package sqlite

import "time"

// Task represents a task row in the tasks table.
type Task struct {
	ID          int64
	Title       string
	TaskType    string
	Subject     string
	DueDate     time.Time // date component only
	Description string
	IsDone      bool
	Priority    string
	OwnerID     *int64 // Using pointer to allow NULL values
}

// User represents a row in the users table.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
