package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/auth"
	"deadline-tracker/internal/config"
)

// Server wires the HTTP routes to the API facade. All request state
// (session store, shared credential, config) hangs off this struct;
// nothing lives in package globals.
type Server struct {
	app    *fiber.App
	api    api.API
	cfg    *config.Config
	store  *session.Store
	shared *auth.SharedCredential
	now    func() time.Time
}

// NewServer creates the web server for the configured auth mode.
func NewServer(apiInstance api.API, cfg *config.Config) (*Server, error) {
	s := &Server{
		api: apiInstance,
		cfg: cfg,
		now: time.Now,
	}

	if cfg.Auth.Mode != config.AuthModeNone {
		s.store = session.New(session.Config{
			Expiration:     cfg.Server.SessionExpiry,
			CookieHTTPOnly: true,
		})
	}

	if cfg.Auth.Mode == config.AuthModeShared {
		shared, err := auth.NewSharedCredential(cfg.Auth.SharedUsername, cfg.Auth.SharedPassword)
		if err != nil {
			return nil, err
		}
		s.shared = shared
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "deadline-tracker",
		DisableStartupMessage: true,
	})
	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the route table. The session guard runs before
// dispatch for every route not on its allow-list.
func (s *Server) registerRoutes() {
	s.app.Get("/healthz", s.handleHealth)

	if s.cfg.Auth.Mode != config.AuthModeNone {
		s.app.Get("/login", s.handleLoginForm)
		s.app.Post("/login", s.handleLogin)
		s.app.Get("/logout", s.handleLogout)
	}
	if s.cfg.Auth.Mode == config.AuthModeUsers {
		s.app.Post("/register", s.handleRegister)
	}

	s.app.Use(s.sessionGuard())

	s.app.Get("/", s.handleList)
	s.app.Get("/dashboard", s.handleDashboard)
	s.app.Get("/subjects", s.handleSubjects)
	s.app.Post("/add", s.handleAdd)
	s.app.Post("/edit/:id", s.handleEdit)
	s.app.Get("/done/:id", s.handleDone)
	s.app.Get("/undo/:id", s.handleUndo)
	s.app.Post("/delete/:id", s.handleDelete)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the configured address and blocks.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
