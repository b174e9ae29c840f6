package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"deadline-tracker/internal/domain"
	"deadline-tracker/internal/errors"
	"deadline-tracker/internal/logging"
	"deadline-tracker/internal/validation"
)

// handleList serves the task list. Query parameters: show_done ("1" includes
// completed tasks when no range filter is active), subject (exact match),
// range (bucket token, overrides show_done; unknown tokens are ignored).
func (s *Server) handleList(c *fiber.Ctx) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	filter := domain.Filter{
		Subject:  c.Query("subject"),
		Range:    c.Query("range"),
		ShowDone: c.Query("show_done") == "1",
	}

	tasks, err := s.api.ListFiltered(c.UserContext(), scope, filter)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(ListResponse{
		Tasks:    toTaskResponses(tasks, s.now()),
		ShowDone: filter.ShowDone,
		Subject:  filter.Subject,
		Range:    filter.Range,
	})
}

// handleDashboard serves the bucketed overview of outstanding tasks.
func (s *Server) handleDashboard(c *fiber.Ctx) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	overview, err := s.api.Dashboard(c.UserContext(), scope)
	if err != nil {
		return s.renderError(c, err)
	}

	today := s.now()
	return c.JSON(OverviewResponse{
		Overdue:  toTaskResponses(overview.Overdue, today),
		Today:    toTaskResponses(overview.Today, today),
		Week:     toTaskResponses(overview.Week, today),
		TwoWeeks: toTaskResponses(overview.TwoWeeks, today),
		Later:    toTaskResponses(overview.Later, today),
	})
}

// handleSubjects serves the distinct subject values for the filter selector.
func (s *Server) handleSubjects(c *fiber.Ctx) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	subjects, err := s.api.Subjects(c.UserContext(), scope)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(SubjectsResponse{Subjects: subjects})
}

// handleAdd creates a task from the submitted form and redirects to the list.
func (s *Server) handleAdd(c *fiber.Ctx) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if _, err := s.api.AddTask(c.UserContext(), scope, taskInput(req)); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// handleEdit updates a task from the submitted form and redirects to the list.
func (s *Server) handleEdit(c *fiber.Ctx) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	id, err := parseID(c)
	if err != nil {
		return s.renderError(c, err)
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if _, err := s.api.EditTask(c.UserContext(), scope, id, taskInput(req)); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// handleDone marks a task done and redirects to the list.
func (s *Server) handleDone(c *fiber.Ctx) error {
	return s.setDone(c, true)
}

// handleUndo marks a task not done and redirects to the list.
func (s *Server) handleUndo(c *fiber.Ctx) error {
	return s.setDone(c, false)
}

func (s *Server) setDone(c *fiber.Ctx, done bool) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	id, err := parseID(c)
	if err != nil {
		return s.renderError(c, err)
	}

	if done {
		err = s.api.MarkDone(c.UserContext(), scope, id)
	} else {
		err = s.api.MarkUndone(c.UserContext(), scope, id)
	}
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// handleDelete removes a task and redirects to the list.
func (s *Server) handleDelete(c *fiber.Ctx) error {
	scope, err := s.requestScope(c)
	if err != nil {
		return s.renderError(c, err)
	}

	id, err := parseID(c)
	if err != nil {
		return s.renderError(c, err)
	}

	if err := s.api.DeleteTask(c.UserContext(), scope, id); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func taskInput(req TaskRequest) validation.TaskInput {
	return validation.TaskInput{
		Title:       req.Title,
		TaskType:    req.TaskType,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		Description: req.Description,
		Priority:    req.Priority,
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", c.Params("id"), "must be an integer")
	}
	return id, nil
}

// renderError maps application errors onto the HTTP surface. Acting on
// another owner's task redirects silently to the list view instead of
// surfacing an error, matching the permissive fallback of the original flow.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_failed",
			Message: validationErr.GetUserFriendlyMessage(),
		})
	}

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeNotFound:
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: errors.GetUserMessage(err),
			})
		case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_input",
				Message: errors.GetUserMessage(err),
			})
		case errors.ErrorTypePermission:
			return c.Redirect("/", fiber.StatusSeeOther)
		case errors.ErrorTypeUnauthenticated:
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthenticated",
				Message: errors.GetUserMessage(err),
			})
		}
	}

	if errors.ShouldLogError(err) {
		logging.Debugf("request failed: %v\n", err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal",
		Message: errors.GetUserMessage(err),
	})
}
