package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-booking/internal/db"
	"github.com/BruksfildServices01/appointment-booking/internal/logger"
	"github.com/BruksfildServices01/appointment-booking/internal/middleware"
	"github.com/BruksfildServices01/appointment-booking/internal/routes"
)

func main() {

	logger.Init()
	defer logger.Get().Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.Get().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
