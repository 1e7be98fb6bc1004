package modules

import (
	"github.com/gin-gonic/gin"

	handlers "users-api/internal/interface/http"
)

// HealthModule exposes the liveness endpoint.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", handlers.Health)
}
