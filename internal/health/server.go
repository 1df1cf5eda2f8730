// Package health serves the liveness endpoints the hosting platform polls,
// plus a manual trigger for a fetch cycle. Unrelated to the core pipeline.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface. trigger starts a fetch cycle; the
// endpoint replies immediately and the cycle runs in the background.
func NewRouter(trigger func()) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bot is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/trigger-fetch", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "started",
			"message": "Job fetch cycle started. Check logs for progress.",
		})
		go trigger()
	})

	return r
}
