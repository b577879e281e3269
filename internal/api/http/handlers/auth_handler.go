package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/change-adapter/internal/api/dto"
	"github.com/spec-kit/change-adapter/internal/service"
)

// AuthHandler exposes the token exchange endpoint.
type AuthHandler struct {
	tokens *service.TokenService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.APIKey == "" {
		return fiber.NewError(http.StatusBadRequest, "api_key required")
	}

	token, expiresAt, err := h.tokens.IssueToken(req.APIKey)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"auth": dto.TokenResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}
