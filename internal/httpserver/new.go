package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"steaminvest/pkg/log"
	"steaminvest/pkg/steammarket"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain dependencies
	postgresDB     *sql.DB
	prices         steammarket.PriceSource
	lookupInterval time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB     *sql.DB
	Prices         steammarket.PriceSource
	LookupInterval time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		prices:         cfg.Prices,
		lookupInterval: cfg.LookupInterval,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.prices == nil {
		return errors.New("price source is required")
	}
	return nil
}
