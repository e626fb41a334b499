package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/remiblancher/qoid/internal/api/router"
	"github.com/remiblancher/qoid/pkg/audit"
)

// Server serves the lookup API.
type Server struct {
	cfg     *Config
	version string
	out     io.Writer
	srv     *http.Server

	// ready receives the bound address once the listener is open.
	ready chan string
}

// New creates a new Server.
func New(cfg *Config, version string) *Server {
	return &Server{
		cfg:     cfg,
		version: version,
		out:     os.Stdout,
		ready:   make(chan string, 1),
	}
}

// SetOutput redirects the startup banner.
func (s *Server) SetOutput(w io.Writer) {
	s.out = w
}

// Ready returns a channel that yields the listen address once the server
// accepts connections.
func (s *Server) Ready() <-chan string {
	return s.ready
}

// Handler returns the HTTP handler served by Start.
func (s *Server) Handler() http.Handler {
	return router.New(&router.Config{
		Version: s.version,
		Table:   s.cfg.Table,
	})
}

// Start listens and serves until ctx is cancelled, SIGINT or SIGTERM
// arrives, or the listener fails. Shutdown is graceful, bounded by
// ShutdownTimeout.
func (s *Server) Start(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address(), err)
	}
	addr := ln.Addr().String()

	s.srv = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	if err := audit.LogServerStarted(addr, s.cfg.Table); err != nil {
		_ = ln.Close()
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		if s.cfg.TLSEnabled() {
			errChan <- s.srv.ServeTLS(ln, s.cfg.TLSCert, s.cfg.TLSKey)
		} else {
			errChan <- s.srv.Serve(ln)
		}
	}()

	s.printStartupInfo(addr)
	s.ready <- addr

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var reason string
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = audit.LogServerStopped(addr, err.Error())
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	case <-ctx.Done():
		log.Println("Context cancelled, shutting down...")
	}

	if err := s.shutdown(); err != nil {
		reason = err.Error()
	}
	if err := audit.LogServerStopped(addr, reason); err != nil {
		return err
	}
	if reason != "" {
		return fmt.Errorf("shutdown error: %s", reason)
	}
	return nil
}

// shutdown gracefully stops the server.
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server stopped gracefully")
	return nil
}

// printStartupInfo prints server startup information.
func (s *Server) printStartupInfo(addr string) {
	scheme := "http"
	if s.cfg.TLSEnabled() {
		scheme = "https"
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "qoid Lookup Server")
	fmt.Fprintln(s.out, "==================")
	fmt.Fprintf(s.out, "  Version:  %s\n", s.version)
	fmt.Fprintf(s.out, "  Address:  %s://%s\n", scheme, addr)
	fmt.Fprintf(s.out, "  Table:    %s\n", s.cfg.Table)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Endpoints:")
	fmt.Fprintln(s.out, "  GET  /health                                - Health check")
	fmt.Fprintln(s.out, "  GET  /ready                                 - Readiness check")
	fmt.Fprintln(s.out, "  GET  /api/openapi.yaml                      - OpenAPI specification")
	fmt.Fprintln(s.out, "  GET  /api/v1/tables[/{table}]               - Tables")
	fmt.Fprintln(s.out, "  GET  /api/v1/[tables/{table}/]oids/{oid}    - Lookup by OID")
	fmt.Fprintln(s.out, "  GET  /api/v1/[tables/{table}/]names/{name}  - Lookup by name")
	fmt.Fprintln(s.out, "  GET  /api/v1/[tables/{table}/]resolve/{oid} - Resolve OID")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Use Ctrl+C to stop")
	fmt.Fprintln(s.out)
}
