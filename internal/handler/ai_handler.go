package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenerateBioRequest struct {
	Info string `json:"info" example:"28 years old, engineer, loves painting and cooking"`
}

type GenerateBioResponse struct {
	Result string `json:"result"`
}

// GenerateBio godoc
// @Summary      Generate biodata
// @Description  Drafts a short marriage biodata from free text using the language model.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.GenerateBioRequest true "details about the user"
// @Success      200 {object} handler.GenerateBioResponse
// @Failure      400 {object} handler.ErrorResponse "missing info"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse "AI service not configured or failed"
// @Router       /api/ai/generate-bio [post]
func (h *Handler) GenerateBio(c *gin.Context) {
	var req GenerateBioRequest
	if !bindJSON(c, &req) {
		return
	}

	text, err := h.bios.Generate(c.Request.Context(), req.Info)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, GenerateBioResponse{Result: text})
}
