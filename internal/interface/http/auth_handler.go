package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"authapi/internal/application"
	"authapi/pkg/response"
	"authapi/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("register payload rejected")
		c.JSON(http.StatusBadRequest, response.Message{Message: response.MsgInvalidRequest})
		return
	}

	if err := h.Svc.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		// Duplicate username and any other persistence failure collapse
		// into the same opaque response; the cause is logged server-side.
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("register failed")
		c.JSON(http.StatusInternalServerError, response.Message{Message: response.MsgInternalError})
		return
	}
	c.JSON(http.StatusCreated, response.Message{Message: response.MsgUserCreated})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("login payload rejected")
		c.JSON(http.StatusBadRequest, response.Message{Message: response.MsgInvalidRequest})
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Message{Message: response.MsgAuthFailed})
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("login failed")
		c.JSON(http.StatusInternalServerError, response.Message{Message: response.MsgInternalError})
		return
	}
	c.JSON(http.StatusOK, response.Token{Token: token})
}
