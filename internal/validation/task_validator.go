package validation

import (
	"time"

	"deadline-tracker/internal/domain"
)

// TaskInput holds the raw form fields for task creation and editing.
type TaskInput struct {
	Title       string
	TaskType    string
	Subject     string
	DueDate     string
	Description string
	Priority    string
}

// TaskFields holds the normalized result of a validated TaskInput.
type TaskFields struct {
	Title       string
	TaskType    string
	Subject     string
	DueDate     time.Time
	Description string
	Priority    string
}

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateInput validates and normalizes the raw task form fields: all text
// is trimmed, a blank priority defaults to required, and the due date must
// parse as an exact YYYY-MM-DD calendar date.
func (tv *TaskValidator) ValidateInput(input TaskInput) (TaskFields, error) {
	validationError := NewValidationError()

	fields := TaskFields{
		Title:       tv.validator.TrimAndValidateString(input.Title),
		TaskType:    tv.validator.TrimAndValidateString(input.TaskType),
		Subject:     tv.validator.TrimAndValidateString(input.Subject),
		Description: tv.validator.TrimAndValidateString(input.Description),
		Priority:    tv.validator.TrimAndValidateString(input.Priority),
	}

	if !tv.validator.IsNonEmptyString(fields.Title) {
		validationError.AddRequiredError("title")
	} else if !tv.validator.IsValidStringLength(fields.Title, 1, 200) {
		validationError.AddInvalidLengthError("title", fields.Title, 1, 200)
	}

	if !tv.validator.IsNonEmptyString(fields.TaskType) {
		validationError.AddRequiredError("task_type")
	} else if !tv.validator.IsValidStringLength(fields.TaskType, 1, 50) {
		validationError.AddInvalidLengthError("task_type", fields.TaskType, 1, 50)
	}

	if !tv.validator.IsNonEmptyString(fields.Subject) {
		validationError.AddRequiredError("subject")
	} else if !tv.validator.IsValidStringLength(fields.Subject, 1, 100) {
		validationError.AddInvalidLengthError("subject", fields.Subject, 1, 100)
	}

	switch fields.Priority {
	case "":
		fields.Priority = domain.PriorityRequired
	case domain.PriorityRequired, domain.PriorityOptional:
	default:
		validationError.AddInvalidValueError("priority", fields.Priority,
			"must be one of: required, optional")
	}

	if !tv.validator.IsNonEmptyString(input.DueDate) {
		validationError.AddRequiredError("due_date")
	} else {
		dueDate, err := tv.validator.ParseDueDate(input.DueDate)
		if err != nil {
			validationError.AddInvalidFormatError("due_date", input.DueDate, DueDateFormat)
		} else {
			fields.DueDate = dueDate
		}
	}

	if validationError.HasErrors() {
		return TaskFields{}, validationError
	}

	return fields, nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
