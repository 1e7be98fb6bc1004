package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "users-api/internal/interface/http"
	"users-api/internal/interface/middleware"
)

// UserModule registers the /users CRUD routes. Mutating routes carry a
// per-IP rate limit; reads are left unthrottled.
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP())

	users := rg.Group("/users")
	{
		users.GET("", m.Handler.ListUsers)
		users.GET("/:id", m.Handler.GetUserByID)
		users.POST("", writeLimiter, m.Handler.CreateUser)
		users.PUT("/:id", writeLimiter, m.Handler.UpdateUser)
		users.DELETE("/:id", writeLimiter, m.Handler.DeleteUser)
	}
}
