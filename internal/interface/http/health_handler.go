package handlers

import "github.com/gin-gonic/gin"

// Health serves /healthz for liveness probes.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(200, gin.H{"status": "ok"})
}
