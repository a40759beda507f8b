package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"authapi/internal/application"
	"authapi/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetByUsername GET /user/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	pu, err := h.Svc.GetByUsername(c.Request.Context(), c.Param("username"))
	h.respond(c, pu, err)
}

// GetByID GET /user/id/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	pu, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	h.respond(c, pu, err)
}

func (h *UserHandler) respond(c *gin.Context, pu *application.PublicUser, err error) {
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.Message{Message: response.MsgUserNotFound})
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("user lookup failed")
		c.JSON(http.StatusInternalServerError, response.Message{Message: response.MsgInternalError})
		return
	}
	c.JSON(http.StatusOK, pu)
}
