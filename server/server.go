// Package server provides the read-only status API for operators.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/qotd"
)

//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings
//go:generate moq -out mocks/leaderboards.go -pkg mocks -skip-ensure -fmt goimports . Leaderboards
//go:generate moq -out mocks/guilds.go -pkg mocks -skip-ensure -fmt goimports . Guilds
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	cfg       Config
	settings  Settings
	boards    Leaderboards
	guilds    Guilds
	scheduler Scheduler
	started   time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Settings reads guild settings
type Settings interface {
	Settings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
	Config(ctx context.Context, guildID string) (map[string]any, error)
}

// Leaderboards reads guild-wide social summaries
type Leaderboards interface {
	Links(ctx context.Context, guildID string) (*domain.LinkLeaderboard, error)
	Slaps(ctx context.Context, guildID string) (*domain.SlapLeaderboard, error)
}

// Guilds lists guilds the bot is in
type Guilds interface {
	Guilds(ctx context.Context) ([]string, error)
}

// Scheduler reports the question of the day loop state
type Scheduler interface {
	Status() qotd.Status
}

// Config holds server parameters
type Config struct {
	Listen   string
	Timeout  time.Duration
	Password string // basic auth for guild endpoints, disabled when empty
	Version  string
	Debug    bool
}

// Deps are the read sides served by the API
type Deps struct {
	Settings     Settings
	Leaderboards Leaderboards
	Guilds       Guilds
	Scheduler    Scheduler
}

// New initializes a new server instance
func New(cfg Config, deps Deps) *Server {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	s := &Server{
		cfg:       cfg,
		settings:  deps.Settings,
		boards:    deps.Leaderboards,
		guilds:    deps.Guilds,
		scheduler: deps.Scheduler,
		started:   time.Now(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting status server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Timeout,
		ReadTimeout:       s.cfg.Timeout,
		WriteTimeout:      s.cfg.Timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down status server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("guildbot", "umputun", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.Group().Route(func(g *routegroup.Bundle) {
			if s.cfg.Password != "" {
				g.Use(rest.BasicAuthWithUserPasswd("admin", s.cfg.Password))
			}
			g.HandleFunc("GET /guilds", s.guildsHandler)
			g.HandleFunc("GET /guilds/{id}/settings", s.settingsHandler)
			g.HandleFunc("GET /guilds/{id}/links", s.linksHandler)
			g.HandleFunc("GET /guilds/{id}/slaps", s.slapsHandler)
		})
	})
}
