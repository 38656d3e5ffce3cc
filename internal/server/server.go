// Package server is the HTTP and websocket host for a selector switch.
package server

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"net/http"
	"time"

	"github.com/alkime/selector/internal/config"
	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/pkg/channels"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Switch is the part of a selector the server exposes.
type Switch interface {
	SelectMode(target int) selector.Rotation
	SelectNextMode() selector.Rotation
	SelectPreviousMode() selector.Rotation
	SelectDefaultMode() selector.Rotation
	SetDialColors(colors []color.RGBA) error
	SetDialColorRange(start, end color.RGBA)
	SetColorForMode(mode int, c color.RGBA) bool
	SetModeCount(n int) error
	Snapshot() selector.Snapshot
	Subscribe(ch chan<- selector.Event) error
}

// Server represents the HTTP server.
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
	sw     Switch
	hub    *Hub
	events *channels.Broadcaster[selector.Event]
}

// New creates a new Server instance.
func New(cfg *config.Config, sw Switch, logger *slog.Logger) *Server {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("Failed to set trusted proxies", "error", err)
	}

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
		sw:     sw,
		hub:    NewHub(logger, HubConfig{}),
		events: channels.NewBroadcaster[selector.Event](),
	}

	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() *gin.Engine { return s.router }

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub { return s.hub }

// Start wires switch events into the websocket hub and the event log. Events
// fan out through a broadcaster so a slow websocket never delays the log.
// Everything stops with ctx.
func (s *Server) Start(ctx context.Context) error {
	wsFeed := make(chan selector.Event, 256)
	logFeed := make(chan selector.Event, 64)

	b := s.events
	if err := b.Subscribe(wsFeed); err != nil {
		return err
	}
	if err := b.SubscribeWithTimeout(logFeed, logSendTimeout); err != nil {
		return err
	}

	in, err := b.Run(ctx)
	if err != nil {
		return fmt.Errorf("start event broadcaster: %w", err)
	}

	if err := s.sw.Subscribe(in); err != nil {
		return fmt.Errorf("subscribe to switch: %w", err)
	}

	go s.hub.Run(ctx)
	go RunBroadcaster(ctx, s.hub, s.sw, wsFeed, s.logger)
	go logEvents(ctx, logFeed, s.logger)

	return nil
}

const logSendTimeout = 50 * time.Millisecond

// logEvents records state changes; knob frames are too frequent to log.
func logEvents(ctx context.Context, src <-chan selector.Event, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-src:
			if ev.Kind == selector.KnobMoved && !ev.Done {
				continue
			}
			logger.Info("switch event", "kind", ev.Kind, "mode", ev.Mode, "angle", ev.Angle)
		}
	}
}

// Run starts the event pipeline and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, s *Server) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + s.config.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "port", s.config.Port)
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errC; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.events.Wait()
	for i, st := range s.events.Stats() {
		if st.Dropped > 0 {
			s.logger.Warn("switch events dropped", "feed", i, "dropped", st.Dropped)
		}
	}

	return nil
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ws", s.handleWS)

	api := s.router.Group("/api/v1/selector")
	{
		api.GET("", s.handleGetState)
		api.POST("/mode", s.handleSelectMode)
		api.POST("/next", s.handleStep(Switch.SelectNextMode))
		api.POST("/previous", s.handleStep(Switch.SelectPreviousMode))
		api.POST("/default", s.handleStep(Switch.SelectDefaultMode))
		api.PUT("/colors", s.handleSetColors)
		api.PUT("/colors/:index", s.handleSetColor)
		api.PUT("/count", s.handleSetCount)
	}

	if s.config.StaticDir != "" {
		s.router.Use(static.Serve("/", static.LocalFile(s.config.StaticDir, false)))
		s.logger.Debug("Serving static files", "dir", s.config.StaticDir)
	}
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "selector",
	})
}
