package handler

import (
	"context"

	"ShaadiBiodata/internal/apperr"
	"ShaadiBiodata/internal/auth"
	"ShaadiBiodata/internal/logger"
	"ShaadiBiodata/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// maxDraftMessageSize bounds one incoming frame; larger frames close the session.
const maxDraftMessageSize = 4 << 10

// BioDraftMessage is sent back for every text frame the client writes.
type BioDraftMessage struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HandleBioDrafting godoc
// @Summary      Realtime biodata drafting (WebSocket)
// @Description  Upgrades to a WebSocket. Each text frame is treated as "info" and answered
// @Description  with {"result": ...} or {"error": ...}. Browsers cannot set headers on
// @Description  WebSocket requests, so the token is passed as a query parameter.
// @Tags         AI
// @Param        token query string true "bearer token from login"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse "no token"
// @Failure      403 {object} handler.ErrorResponse "invalid or expired token"
// @Router       /ws/ai/generate-bio [get]
func (h *Handler) HandleBioDrafting(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		respondError(c, middleware.ErrNoToken)
		return
	}
	claims, err := h.tokens.Validate(tokenString)
	if err != nil {
		respondError(c, auth.ErrInvalidToken)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		logger.Log.Warnw("HandleBioDrafting(): failed to upgrade", "user_id", claims.UserID, "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxDraftMessageSize)

	logger.Log.Infow("HandleBioDrafting(): session started", "user_id", claims.UserID)
	h.draftLoop(c.Request.Context(), conn, claims.UserID)
	logger.Log.Infow("HandleBioDrafting(): session ended", "user_id", claims.UserID)
}

func (h *Handler) draftLoop(ctx context.Context, conn *websocket.Conn, userID int) {
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Log.Debugw("draftLoop(): read failed", "user_id", userID, "error", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			logger.Log.Debugw("draftLoop(): ignoring non-text frame", "user_id", userID, "type", messageType)
			continue
		}

		reply := BioDraftMessage{}
		text, err := h.bios.Generate(ctx, string(message))
		if err != nil {
			reply.Error = "Internal server error"
			if appErr, ok := apperr.From(err); ok {
				reply.Error = appErr.Message
			}
		} else {
			reply.Result = text
		}

		if err := conn.WriteJSON(reply); err != nil {
			logger.Log.Debugw("draftLoop(): write failed", "user_id", userID, "error", err)
			return
		}
	}
}
