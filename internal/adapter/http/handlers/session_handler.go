package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler binds a device to a table. The device id travels in a
// cookie so a reload lands back on the same table.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
	cookie  string
	ttl     time.Duration
}

func NewSessionHandler(uc usecase.ISessionUseCase, cookie string, ttl time.Duration) *SessionHandler {
	return &SessionHandler{usecase: uc, cookie: cookie, ttl: ttl}
}

func (h *SessionHandler) Join(c *gin.Context) {
	var payload request.JoinSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	deviceID := h.deviceID(c)
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	session, err := h.usecase.Join(c.Request.Context(), deviceID, payload.AccessCode, payload.TableNumber)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie, deviceID, int(h.ttl.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Current(c *gin.Context) {
	deviceID := h.deviceID(c)
	if deviceID == "" {
		writeError(c, errNoSession)
		return
	}

	session, err := h.usecase.Current(c.Request.Context(), deviceID)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Leave clears the session (logout / restart).
func (h *SessionHandler) Leave(c *gin.Context) {
	deviceID := h.deviceID(c)
	if deviceID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.usecase.Leave(c.Request.Context(), deviceID); err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.SetCookie(h.cookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) deviceID(c *gin.Context) string {
	v, err := c.Cookie(h.cookie)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidAccessCode), errors.Is(err, usecase.ErrInvalidTableNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRestaurantNotFound):
		return pkg.NewDomainErrorSimple("RESTAURANT_NOT_FOUND", "Restaurant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return errNoSession
	default:
		return mapTableError(err)
	}
}
