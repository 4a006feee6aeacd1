package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type DashboardHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	address         string
	shutdownTimeout time.Duration
}

func NewDashboardHttpServer(router *Router, muxRouter *mux.Router, address string, shutdownTimeout time.Duration) *DashboardHttpServer {
	return &DashboardHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		address:         address,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *DashboardHttpServer) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		log.Fatalf("[DashboardHttpServer] %v", err)
	}
}

// Run serves until ctx is done.
func (s *DashboardHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[DashboardHttpServer] Starting server on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[DashboardHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("[DashboardHttpServer] Server exiting")
	return nil
}
