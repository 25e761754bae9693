package postgre

import (
	"database/sql"
	"fmt"

	"steaminvest/internal/inventory/repository"
	"steaminvest/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the inventory domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("inventory/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/postgre.%s", method)
}
