package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestaoweb/portal-documentos/internal/bootstrap"
	"github.com/gestaoweb/portal-documentos/internal/config"
	dbpkg "github.com/gestaoweb/portal-documentos/internal/db"
	infraRepo "github.com/gestaoweb/portal-documentos/internal/infra/repository"
	"github.com/gestaoweb/portal-documentos/internal/routes"
	"github.com/gestaoweb/portal-documentos/internal/session"
	"github.com/gestaoweb/portal-documentos/internal/storage"
)

func main() {

	ctx := context.Background()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	sessionStore := session.NewRedisStore(cfg)
	if err := sessionStore.Ping(ctx); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	sessions := session.NewManager(sessionStore, cfg)

	blobs, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect blob storage: %v", err)
	}

	if err := bootstrap.EnsureAdmin(ctx, cfg, infraRepo.NewPortalGormRepository(db)); err != nil {
		log.Fatalf("failed to bootstrap administrator: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "portal-documentos",
			"login": gin.H{
				"admin":   "/login/admin/",
				"cliente": "/login/cliente/",
			},
		})
	})

	routes.RegisterRoutes(r, db, sessions, blobs)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
