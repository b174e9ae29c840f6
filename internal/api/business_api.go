package api

import (
	"context"

	"deadline-tracker/internal/domain"
)

// MarkDone sets is_done on a task. No other field is touched.
func (a *apiImpl) MarkDone(ctx context.Context, scope Scope, id int64) error {
	return a.setDone(ctx, scope, id, true)
}

// MarkUndone clears is_done on a task. No other field is touched.
func (a *apiImpl) MarkUndone(ctx context.Context, scope Scope, id int64) error {
	return a.setDone(ctx, scope, id, false)
}

func (a *apiImpl) setDone(ctx context.Context, scope Scope, id int64, done bool) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	dbTask, err := a.fetchScoped(ctx, scope, id)
	if err != nil {
		return err
	}

	dbTask.IsDone = done
	return a.repo.UpdateTask(ctx, dbTask)
}

// ListFiltered computes the ordered task list for the request filters.
// "Today" is re-read from the clock on every call, never cached.
func (a *apiImpl) ListFiltered(ctx context.Context, scope Scope, filter domain.Filter) ([]*domain.Task, error) {
	dbTasks, err := a.listScoped(ctx, scope)
	if err != nil {
		return nil, err
	}

	tasks := a.mapper.Task.FromDatabaseSlice(dbTasks)
	return domain.ApplyFilter(tasks, filter, a.now()), nil
}

// Dashboard buckets the outstanding tasks in scope into the five urgency
// groups relative to today.
func (a *apiImpl) Dashboard(ctx context.Context, scope Scope) (*domain.Overview, error) {
	notDone := false
	opts := domain.SearchOptions{Done: &notDone, OwnerID: scope.OwnerID}

	dbTasks, err := a.repo.SearchTasks(ctx, a.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, err
	}

	tasks := a.mapper.Task.FromDatabaseSlice(dbTasks)
	overview := domain.Classify(a.now(), tasks)
	return &overview, nil
}

// Subjects returns the distinct subject values in scope, alphabetically
// ordered, for populating a filter selector. Recomputed per request.
func (a *apiImpl) Subjects(ctx context.Context, scope Scope) ([]string, error) {
	dbTasks, err := a.listScoped(ctx, scope)
	if err != nil {
		return nil, err
	}

	return domain.Subjects(a.mapper.Task.FromDatabaseSlice(dbTasks)), nil
}
