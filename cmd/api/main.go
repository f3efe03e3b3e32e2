package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"github.com/EspacoVitaServices/salon-scheduler/internal/config"
	dbpkg "github.com/EspacoVitaServices/salon-scheduler/internal/db"
	"github.com/EspacoVitaServices/salon-scheduler/internal/middleware"
	"github.com/EspacoVitaServices/salon-scheduler/internal/routes"
)

func main() {

	// valores monetários saem como número JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
