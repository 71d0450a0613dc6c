package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"eisenhower-task-management/config"
	"eisenhower-task-management/internal/classifier"
	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/session"
	"eisenhower-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	config     *config.Config
	sessions   *session.Manager
	classifier classifier.Classifier
	bus        *event.Bus
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *config.Config
	Sessions   *session.Manager
	Classifier classifier.Classifier
	Bus        *event.Bus
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		sessions:    cfg.Sessions,
		classifier:  cfg.Classifier,
		bus:         cfg.Bus,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.classifier == nil {
		return errors.New("classifier is required")
	}
	if srv.bus == nil {
		return errors.New("event bus is required")
	}
	return nil
}
