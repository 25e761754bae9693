package http

import (
	"steaminvest/internal/inventory"
	"steaminvest/pkg/log"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Search(c interface{})
	Stats(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
}

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
