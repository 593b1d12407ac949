package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/contact-directory/internal/apperr"
	"github.com/harentsoaR/contact-directory/internal/dto"
	"github.com/harentsoaR/contact-directory/internal/middleware"
	"github.com/harentsoaR/contact-directory/internal/services"
)

func (h *Handler) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(services.MsgMissingFields), "")
		return
	}

	user, err := h.AuthSvc.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, services.MsgInternalServerFailure)
		return
	}

	// Only phone and role; the password never leaves the service.
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(services.MsgMissingCredentials), "")
		return
	}

	resp, err := h.AuthSvc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, services.MsgInternalServerFailure)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser echoes the claims of the bearer token.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Phone:     claims.Phone,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}
