package api

import (
	"context"
	"fmt"
	"time"

	"deadline-tracker/internal/auth"
	"deadline-tracker/internal/domain"
	"deadline-tracker/internal/errors"
	"deadline-tracker/internal/repository/sqlite"
	"deadline-tracker/internal/validation"
)

// Scope restricts task visibility to a single owner. The zero value is the
// unscoped view used when ownership is disabled: all tasks are visible.
type Scope struct {
	OwnerID *int64
}

// ScopeForUser returns a scope restricted to the given user id.
func ScopeForUser(id int64) Scope {
	return Scope{OwnerID: &id}
}

// API defines the interface for all task and user operations.
type API interface {
	// Task operations
	AddTask(ctx context.Context, scope Scope, input validation.TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, scope Scope, id int64) (*domain.Task, error)
	EditTask(ctx context.Context, scope Scope, id int64, input validation.TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, scope Scope, id int64) error
	MarkDone(ctx context.Context, scope Scope, id int64) error
	MarkUndone(ctx context.Context, scope Scope, id int64) error

	// Query operations
	ListFiltered(ctx context.Context, scope Scope, filter domain.Filter) ([]*domain.Task, error)
	Dashboard(ctx context.Context, scope Scope) (*domain.Overview, error)
	Subjects(ctx context.Context, scope Scope) ([]string, error)

	// User operations (per-user auth mode only)
	RegisterUser(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	userValidator *validation.UserValidator
	hasher        *auth.PasswordHasher
	now           func() time.Time
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return NewWithClock(repo, time.Now)
}

// NewWithClock creates a new API instance with an injected clock.
// The clock supplies "today" for the dashboard and range filters.
func NewWithClock(repo sqlite.Repository, now func() time.Time) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		userValidator: validation.NewUserValidator(),
		hasher:        auth.NewPasswordHasher(),
		now:           now,
	}
}

// AddTask validates and normalizes the input and creates a task. The id and
// is_done fields are never supplied by the caller; is_done starts false.
func (a *apiImpl) AddTask(ctx context.Context, scope Scope, input validation.TaskInput) (*domain.Task, error) {
	fields, err := a.taskValidator.ValidateInput(input)
	if err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{
		Title:       fields.Title,
		TaskType:    fields.TaskType,
		Subject:     fields.Subject,
		DueDate:     fields.DueDate,
		Description: fields.Description,
		Priority:    fields.Priority,
		OwnerID:     scope.OwnerID,
	}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by its ID within the scope.
func (a *apiImpl) GetTask(ctx context.Context, scope Scope, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := a.fetchScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// EditTask validates the input and updates every field except id and is_done.
func (a *apiImpl) EditTask(ctx context.Context, scope Scope, id int64, input validation.TaskInput) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}
	fields, err := a.taskValidator.ValidateInput(input)
	if err != nil {
		return nil, err
	}

	dbTask, err := a.fetchScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	dbTask.Title = fields.Title
	dbTask.TaskType = fields.TaskType
	dbTask.Subject = fields.Subject
	dbTask.DueDate = fields.DueDate
	dbTask.Description = fields.Description
	dbTask.Priority = fields.Priority

	if err := a.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// DeleteTask deletes a task by ID within the scope.
func (a *apiImpl) DeleteTask(ctx context.Context, scope Scope, id int64) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	if _, err := a.fetchScoped(ctx, scope, id); err != nil {
		return err
	}
	return a.repo.DeleteTask(ctx, id)
}

// fetchScoped retrieves a task and enforces the ownership boundary: acting
// on another owner's task is a permission error, not a not-found.
func (a *apiImpl) fetchScoped(ctx context.Context, scope Scope, id int64) (*sqlite.Task, error) {
	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope.OwnerID != nil {
		if dbTask.OwnerID == nil || *dbTask.OwnerID != *scope.OwnerID {
			return nil, errors.NewPermissionError("access", fmt.Sprintf("task %d", id))
		}
	}
	return dbTask, nil
}

// listScoped retrieves all tasks visible in the scope, ordered by due date.
func (a *apiImpl) listScoped(ctx context.Context, scope Scope) ([]*sqlite.Task, error) {
	if scope.OwnerID != nil {
		return a.repo.SearchTasks(ctx, sqlite.SearchOptions{OwnerID: scope.OwnerID})
	}
	return a.repo.ListTasks(ctx)
}
