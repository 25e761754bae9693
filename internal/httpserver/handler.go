package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"steaminvest/internal/middleware"
	"steaminvest/internal/model"
)

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Cors())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context) error {
	root := srv.gin.Group("")

	repo := srv.setupRepository()

	if err := srv.setupInventoryDomain(ctx, root, repo); err != nil {
		return err
	}
	if err := srv.setupRefreshDomain(ctx, root, repo); err != nil {
		return err
	}

	return nil
}
