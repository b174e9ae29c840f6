package web

import (
	"github.com/gofiber/fiber/v2"

	"deadline-tracker/internal/config"
)

// handleLoginForm tells an unauthenticated client what the login endpoint
// expects. The HTML form itself is rendered by the front end.
func (s *Server) handleLoginForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"action": "/login",
		"fields": []string{"username", "password"},
	})
}

// handleLogin authenticates the submitted credentials and establishes a
// session. Wrong credentials return a user-visible message and leave the
// session unauthenticated.
func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	sess, err := s.store.Get(c)
	if err != nil {
		return s.renderError(c, err)
	}

	switch s.cfg.Auth.Mode {
	case config.AuthModeShared:
		if !s.shared.Verify(req.Username, req.Password) {
			return s.loginFailed(c)
		}
	case config.AuthModeUsers:
		user, err := s.api.Authenticate(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return s.loginFailed(c)
		}
		sess.Set(sessionUserIDKey, user.ID)
	}

	sess.Set(sessionAuthenticatedKey, true)
	if err := sess.Save(); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) loginFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error:   "unauthenticated",
		Message: "Wrong username or password",
	})
}

// handleLogout destroys the session and returns to the login form.
func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return s.renderError(c, err)
	}
	if err := sess.Destroy(); err != nil {
		return s.renderError(c, err)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// handleRegister creates a new account in per-user mode. A taken username
// returns a user-visible message and writes nothing.
func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if _, err := s.api.RegisterUser(c.UserContext(), req.Username, req.Password); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}
