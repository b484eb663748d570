// Package httpapi exposes the redaction service over HTTP: health
// probing, one-shot batch submission, artifact retrieval and batch
// teardown.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkveil/inkveil/internal/logging"
	"github.com/inkveil/inkveil/internal/server/artifacts"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewHTTPServer wires the routes and middleware for the development
// server. The browser client runs on a different origin, so CORS is
// wide open here.
func NewHTTPServer(addr string, logger logging.Logger, store *artifacts.Store, maxUploadBytes int64, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	h := &handler{store: store, logger: logger, maxUploadBytes: maxUploadBytes}
	engine := newRouter(h, debug)

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: engine},
		logger:     logger,
	}
}

func newRouter(h *handler, debug bool) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	if debug {
		engine.Use(gin.Logger())
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", h.health)
	engine.POST("/redact-multi", h.redactMulti)
	engine.POST("/clear-all", h.clearAll)
	engine.GET("/files/:name", h.getFile)

	return engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.httpServer.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
