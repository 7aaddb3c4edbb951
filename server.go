package mdpreview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-barry/mdpreview/core"
	"github.com/pkg/browser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultConfigPath = "mdpreview.yml"

type RuntimeConfig struct {
	// File is the optional Markdown file named on the command line. It is
	// only checked for existence; the server always serves from Root.
	File       string
	ConfigPath string
	// RequireConfig turns a missing config file into an error instead of a
	// fallback to defaults.
	RequireConfig bool
	// Port overrides the configured port when non-zero.
	Port      int
	NoBrowser bool
}

var openBrowser = browser.OpenURL

// Server owns the listening socket, configuration and router of one preview
// server. Several servers may live in one process.
type Server struct {
	config     core.Config
	router     *core.Router
	logger     *zap.Logger
	httpServer *http.Server
}

func New(config core.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer, err := core.NewRenderer(config)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	router, err := core.NewRouter(config, renderer)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config: config,
		router: router,
		logger: logger,
	}
	s.httpServer = &http.Server{
		Addr:    s.Addr(),
		Handler: s.Handler(),
	}
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return core.LogRequests(s.logger, core.Serialize(s.router))
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.config.Port)
}

func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.Addr(), err)
	}
	return ln, nil
}

// Serve answers requests on ln until ctx is cancelled, then stops accepting
// connections and waits for the request in flight to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			fmt.Println("\nShutting down server...")
		}
		s.logger.Debug("shutting down", zap.String("addr", ln.Addr().String()))
		return s.httpServer.Shutdown(context.Background())
	})

	return g.Wait()
}

func (s *Server) Close() error {
	return s.router.Close()
}

// CheckFile fails with core.ErrNotFound when path does not exist.
func CheckFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w", path, core.ErrNotFound)
	}
	return nil
}

var Start = func(cfg RuntimeConfig) error {
	if cfg.File != "" {
		if err := CheckFile(cfg.File); err != nil {
			return err
		}
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	load := core.LoadConfig
	if cfg.RequireConfig {
		load = core.ReadConfig
	}
	config, err := load(configPath)
	if err != nil {
		return err
	}
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}

	logger, err := core.NewLogger(config)
	if err != nil {
		return err
	}
	defer logger.Sync()

	srv, err := New(config, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	fmt.Printf("Starting markdown preview server on %s\n", srv.URL())
	fmt.Println("Press Ctrl+C to stop")

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	if config.ShouldOpenBrowser() && !cfg.NoBrowser {
		if err := openBrowser(srv.URL()); err != nil {
			logger.Warn("could not open browser", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, ln)
}
