package modules

import (
	"github.com/gin-gonic/gin"

	handlers "authapi/internal/interface/http"
)

// UserModule registers the read-only lookup endpoints. They require no
// token by contract: any caller can resolve a username or id to the public
// projection.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/user/id/:id", m.Handler.GetByID)
	rg.GET("/user/:username", m.Handler.GetByUsername)
}
