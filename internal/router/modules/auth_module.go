package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "authservice/internal/interface/http"
	"authservice/internal/interface/middleware"
)

type AuthModule struct {
	Handler         *handlers.AuthHandler
	RDB             *redis.Client
	LoginRateMax    int
	LoginRateWindow time.Duration
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, loginRateMax int, loginRateWindow time.Duration) *AuthModule {
	return &AuthModule{Handler: h, RDB: rdb, LoginRateMax: loginRateMax, LoginRateWindow: loginRateWindow}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.RDB, m.LoginRateMax, m.LoginRateWindow, middleware.KeyByIPAndPath())

	auth := rg.Group("/auth")
	auth.POST("/register", m.Handler.Register)
	auth.POST("/login", loginLimiter, m.Handler.Login)
	auth.POST("/logout", m.Handler.Logout)
	auth.GET("/me", m.Handler.Me)
}
