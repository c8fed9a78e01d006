package handler

import (
	"net/http"

	"ShaadiBiodata/internal/middleware"
	"ShaadiBiodata/internal/models"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" example:"Asha Verma"`
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	Message string             `json:"message" example:"Login successful"`
	Token   string             `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    models.UserProfile `json:"user"`
}

type ProfileResponse struct {
	UserID int    `json:"userId" example:"1"`
	Name   string `json:"name" example:"Asha Verma"`
	Email  string `json:"email" example:"asha@example.com"`
}

// Register godoc
// @Summary      Register
// @Description  Creates a new account. Emails are unique and case-sensitive.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.RegisterRequest true "new account"
// @Success      200 {object} handler.MessageResponse
// @Failure      400 {object} handler.ErrorResponse "missing fields or email already registered"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Registration successful"})
}

// Login godoc
// @Summary      Login
// @Description  Exchanges email and password for a bearer token valid for one hour.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "credentials"
// @Success      200 {object} handler.LoginResponse
// @Failure      400 {object} handler.ErrorResponse "missing fields"
// @Failure      401 {object} handler.ErrorResponse "invalid email or password"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    session.User.Profile(),
	})
}

// Profile godoc
// @Summary      Current user
// @Description  Echoes the identity embedded in the bearer token.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse "no token"
// @Failure      403 {object} handler.ErrorResponse "invalid or expired token"
// @Router       /api/auth/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
	})
}
