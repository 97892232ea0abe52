package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"betenlace/constants"
	"betenlace/controllers"
	middlewares "betenlace/middleware"
)

func SetupRoutes(router *gin.Engine, ingestService controllers.IngestService) {
	router.Use(middlewares.RequestIDMiddleware(), middlewares.ErrorHandler())

	ingestController := controllers.NewIngestController(ingestService)
	admin := middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin)

	v1 := router.Group("/api/v1")
	v1.POST("/ingest/upload/:ingestor/account", admin, ingestController.UploadAccount)
	v1.POST("/ingest/upload/:ingestor/netrefer", admin, ingestController.UploadNetrefer)
	v1.GET("/ingest/status/:campaign", admin, ingestController.GetStatus)
	v1.POST("/ingest/watchdog", admin, ingestController.RunWatchdog)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
