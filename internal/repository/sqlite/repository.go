package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"deadline-tracker/internal/errors"
	"deadline-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible task search parameters.
// Nil fields mean the dimension is unrestricted.
type SearchOptions struct {
	Subject *string
	Done    *bool
	DueFrom *time.Time
	DueTo   *time.Time
	OwnerID *int64
}

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	SearchTasks(ctx context.Context, opts SearchOptions) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

const taskColumns = "id, title, task_type, subject, due_date, description, is_done, priority, owner_id"

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, task_type, subject, due_date, description, is_done, priority, owner_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Title, task.TaskType, task.Subject, FormatDateForDB(task.DueDate),
		task.Description, task.IsDone, task.Priority, nullableID(task.OwnerID))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns)
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by due date, insertion order on ties
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks ORDER BY due_date ASC, id ASC`, taskColumns)
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, task_type = ?, subject = ?, due_date = ?, description = ?, is_done = ?, priority = ?, owner_id = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Title, task.TaskType, task.Subject, FormatDateForDB(task.DueDate),
		task.Description, task.IsDone, task.Priority, nullableID(task.OwnerID), task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// SearchTasks searches for tasks based on the provided options
func (r *SQLiteRepository) SearchTasks(ctx context.Context, opts SearchOptions) ([]*Task, error) {
	var conditions []string
	var args []interface{}

	if opts.Subject != nil {
		conditions = append(conditions, "subject = ?")
		args = append(args, *opts.Subject)
	}
	if opts.Done != nil {
		conditions = append(conditions, "is_done = ?")
		args = append(args, *opts.Done)
	}
	if opts.DueFrom != nil {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, FormatDatePtrForDB(opts.DueFrom))
	}
	if opts.DueTo != nil {
		conditions = append(conditions, "due_date <= ?")
		args = append(args, FormatDatePtrForDB(opts.DueTo))
	}
	if opts.OwnerID != nil {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, *opts.OwnerID)
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks`, taskColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY due_date ASC, id ASC"

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// CreateUser creates a new user
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, user.Username, user.PasswordHash)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUser retrieves a user by ID
func (r *SQLiteRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", fmt.Sprintf("%d", id), id)
}

// GetUserByUsername retrieves a user by username
func (r *SQLiteRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", username, username)
}

// nullableID converts an optional owner id into a driver-friendly value
func nullableID(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
