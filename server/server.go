package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/ker0olos/sift/config/modules"
	"github.com/ker0olos/sift/pkg/accesslog"
	"go.uber.org/zap"
)

type Server struct {
	api      *API
	cfg      *modules.ServerConfig
	s        *http.Server
	listener net.Listener
	log      *zap.SugaredLogger
}

type Options struct {
	AccessLog accesslog.AccessLogger
}

func NewServer(cfg modules.ServerConfig, routes []modules.RouteConfig, opts Options) *Server {
	log := zap.S().Named("server")
	api := &API{
		routes:       routes,
		maxBodySize:  cfg.MaxBodySize,
		accessLogger: opts.AccessLog,
		log:          log,
	}
	readTimeout, writeTimeout := cfg.Timeouts()
	s := &http.Server{
		Handler:      api.Handler(),
		Addr:         cfg.Listen,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	return &Server{
		api: api,
		cfg: &cfg,
		s:   s,
		log: log,
	}
}

func (s *Server) Name() string {
	return "server"
}

// Handler exposes the routed handler without a listener.
func (s *Server) Handler() http.Handler {
	return s.s.Handler
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.Listen
	}
	return s.listener.Addr().String()
}

func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}

	if s.cfg.TLS.Enabled() {
		cert, err := tls.LoadX509KeyPair(s.cfg.TLS.Cert, s.cfg.TLS.Key)
		if err != nil {
			_ = listener.Close()
			return err
		}
		listener = tls.NewListener(listener, &tls.Config{Certificates: []tls.Certificate{cert}})
	}
	s.listener = listener

	go func() {
		if err := s.s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("failed to serve: %v", err)
		}
	}()

	s.log.Infow(fmt.Sprintf(`listening on address "%s"`, s.Addr()), "routes", len(s.api.routes))
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Infof("exiting")
	if err := s.s.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Infof("exit")
	return nil
}
