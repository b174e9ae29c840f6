package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dueDate string
	var description sql.NullString
	var ownerID sql.NullInt64

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.TaskType,
		&task.Subject,
		&dueDate,
		&description,
		&task.IsDone,
		&task.Priority,
		&ownerID,
	)
	if err != nil {
		return nil, err
	}

	task.DueDate, err = ParseDateFromDB(dueDate)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		task.Description = description.String
	}
	if ownerID.Valid {
		task.OwnerID = &ownerID.Int64
	}

	return task, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanUser scans a single user from a database row
func ScanUser(scanner Scanner) (*User, error) {
	user := &User{}
	err := scanner.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ScanUsers scans multiple users from database rows
func ScanUsers(rows Rows) ([]*User, error) {
	var users []*User
	for rows.Next() {
		user, err := ScanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
