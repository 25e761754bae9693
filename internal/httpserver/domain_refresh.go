package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"steaminvest/internal/inventory/repository"
	refreshHTTP "steaminvest/internal/refresh/delivery/http"
	refreshWS "steaminvest/internal/refresh/delivery/ws"
	refreshUC "steaminvest/internal/refresh/usecase"
)

// setupRefreshDomain initializes the refresh domain, its websocket progress
// hub and registers both route sets.
func (srv HTTPServer) setupRefreshDomain(ctx context.Context, root *gin.RouterGroup, repo repository.Repository) error {
	hub := refreshWS.NewHub(srv.l)
	go hub.Run(ctx)

	uc := refreshUC.New(repo, srv.prices, srv.lookupInterval, srv.l)
	h := refreshHTTP.New(srv.l, uc, hub)

	// Registers /update and friends at the root.
	refreshHTTP.RegisterRoutes(root, h)
	root.GET("/ws/progress", hub.Handler)

	srv.l.Infof(ctx, "Refresh domain registered")
	return nil
}
