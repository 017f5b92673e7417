package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chatcont39-glitch/educheck/internal/config"
	"github.com/chatcont39-glitch/educheck/internal/router"
	"github.com/chatcont39-glitch/educheck/internal/storage"
	"github.com/chatcont39-glitch/educheck/pkg/utils"
)

// maxRequestBodySize bounds save-pdf payloads: document bytes plus an
// embedded signature image, inflated by base64.
const maxRequestBodySize = 64 << 20

func main() {
	// Initialize Logger
	utils.InitLogger()

	cfg := config.Load()

	// Initialize the receipt storage area
	store, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		utils.LogError(err, "Failed to initialize storage")
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	utils.LogInfo("Storage initialized", map[string]interface{}{"dir": store.Dir()})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// Cap request bodies; receipts with signatures run to tens of megabytes
	engine.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)
		c.Next()
	})

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, store, cfg.StaticDir)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
