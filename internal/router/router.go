package router

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/chatcont39-glitch/educheck/internal/handlers"
	"github.com/chatcont39-glitch/educheck/internal/storage"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store storage.Store, staticDir string) {
	receiptHandler := handlers.NewReceiptHandler(store)

	api := engine.Group("/api")
	{
		api.POST("/save-pdf", receiptHandler.SavePDF)
		api.GET("/history", receiptHandler.History)
	}

	// Serve the built frontend bundle when configured, falling back to
	// index.html for client-side routes.
	if staticDir != "" {
		engine.NoRoute(func(c *gin.Context) {
			path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				c.File(path)
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
		})
	}
}
