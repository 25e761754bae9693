package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryHTTP "steaminvest/internal/inventory/delivery/http"
	"steaminvest/internal/inventory/repository"
	inventoryRepo "steaminvest/internal/inventory/repository/postgre"
	inventoryUC "steaminvest/internal/inventory/usecase"
)

// setupRepository builds the shared item repository. Both domains write the
// same table, so they share one instance.
func (srv HTTPServer) setupRepository() repository.Repository {
	return inventoryRepo.New(srv.postgresDB, srv.l)
}

// setupInventoryDomain initializes the inventory domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv HTTPServer) setupInventoryDomain(ctx context.Context, root *gin.RouterGroup, repo repository.Repository) error {
	uc := inventoryUC.New(repo, srv.prices, srv.l)
	h := inventoryHTTP.New(srv.l, uc)

	// Registers /items and friends at the root.
	inventoryHTTP.RegisterRoutes(root, h)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}
