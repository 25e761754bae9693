package http

import (
	"steaminvest/internal/refresh"
	"steaminvest/internal/refresh/delivery/ws"
	"steaminvest/pkg/log"
)

// Handler is the public interface for the refresh HTTP delivery layer.
type Handler interface {
	RefreshOne(c interface{})
	RefreshAll(c interface{})
	Status(c interface{})
}

type handler struct {
	l   log.Logger
	uc  refresh.UseCase
	hub *ws.Hub
}

// New creates a new HTTP handler for the refresh domain. Bulk run progress
// is forwarded to hub.
func New(l log.Logger, uc refresh.UseCase, hub *ws.Hub) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		hub: hub,
	}
}
