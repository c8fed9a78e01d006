/**
* Name:        handler.go
* Description: gin HTTP handlers for the biodata API
* Workflow:    bind request -> call service -> JSON response or {"error": ...}
 */
package handler

import (
	"errors"
	"io"
	"net/http"

	"ShaadiBiodata/internal/apperr"
	"ShaadiBiodata/internal/auth"
	"ShaadiBiodata/internal/biodata"
	"ShaadiBiodata/internal/logger"
	"ShaadiBiodata/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	accounts *auth.Service
	tokens   *auth.TokenIssuer
	payments *payment.Service
	bios     *biodata.Generator
	upgrader websocket.Upgrader
}

func New(accounts *auth.Service, tokens *auth.TokenIssuer, payments *payment.Service, bios *biodata.Generator) *Handler {
	return &Handler{
		accounts: accounts,
		tokens:   tokens,
		payments: payments,
		bios:     bios,
		upgrader: websocket.Upgrader{
			// CORS already admits every origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email or password"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Registration successful"`
}

// Health godoc
// @Summary      Liveness probe
// @Tags         System
// @Produce      json
// @Success      200 {object} object{status=string}
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSON treats an empty body as an empty object so that field checks
// produce their own messages.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return false
	}
	return true
}

// respondError converts err into the JSON error body. Errors outside the
// apperr taxonomy are logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperr.From(err); ok {
		c.JSON(apperr.Status(appErr.Kind), ErrorResponse{Error: appErr.Message})
		return
	}
	logger.Log.Errorw("respondError(): unexpected error",
		"request_id", c.GetString("request_id"),
		"uri", c.Request.RequestURI,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
