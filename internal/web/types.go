package web

import (
	"time"

	"deadline-tracker/internal/domain"
	"deadline-tracker/internal/repository/sqlite"
)

// TaskRequest carries the task form fields for add and edit.
type TaskRequest struct {
	Title       string `json:"title" form:"title"`
	TaskType    string `json:"task_type" form:"task_type"`
	Subject     string `json:"subject" form:"subject"`
	DueDate     string `json:"due_date" form:"due_date"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority"`
}

// CredentialsRequest carries the login and registration form fields.
type CredentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TaskResponse is the wire representation of a task. Due dates are rendered
// as YYYY-MM-DD; IsOverdue and IsSoon are display highlights computed
// against today at render time.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	TaskType    string `json:"task_type"`
	Subject     string `json:"subject"`
	DueDate     string `json:"due_date"`
	Description string `json:"description,omitempty"`
	IsDone      bool   `json:"is_done"`
	Priority    string `json:"priority"`
	IsOverdue   bool   `json:"is_overdue"`
	IsSoon      bool   `json:"is_soon"`
}

// ListResponse is the payload of the task list view.
type ListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	ShowDone bool           `json:"show_done"`
	Subject  string         `json:"subject,omitempty"`
	Range    string         `json:"range,omitempty"`
}

// OverviewResponse is the payload of the dashboard view.
type OverviewResponse struct {
	Overdue  []TaskResponse `json:"overdue"`
	Today    []TaskResponse `json:"today"`
	Week     []TaskResponse `json:"week"`
	TwoWeeks []TaskResponse `json:"two_weeks"`
	Later    []TaskResponse `json:"later"`
}

// SubjectsResponse is the payload of the subject selector view.
type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toTaskResponse(t *domain.Task, today time.Time) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		TaskType:    t.TaskType,
		Subject:     t.Subject,
		DueDate:     t.DueDate.Format(sqlite.DateLayout),
		Description: t.Description,
		IsDone:      t.IsDone,
		Priority:    t.Priority,
		IsOverdue:   t.IsOverdue(today),
		IsSoon:      t.IsSoon(today),
	}
}

func toTaskResponses(tasks []*domain.Task, today time.Time) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = toTaskResponse(t, today)
	}
	return responses
}
