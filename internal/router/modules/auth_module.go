package modules

import (
	"github.com/gin-gonic/gin"

	handlers "authapi/internal/interface/http"
)

// AuthModule registers the credential endpoints.
// Public: POST /register, POST /login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
}
