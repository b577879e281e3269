package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/auth"
	"github.com/spec-kit/change-adapter/internal/config"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

// TokenService exchanges the orchestration host's API key for a bearer token.
type TokenService struct {
	cfg    config.AuthConfig
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewTokenService constructs the service.
func NewTokenService(cfg config.AuthConfig, logger *zap.Logger) *TokenService {
	return &TokenService{
		cfg:    cfg,
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		logger: logger,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *TokenService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// IssueToken validates the API key and returns an operator token.
func (s *TokenService) IssueToken(apiKey string) (string, time.Time, error) {
	if s.cfg.APIKeyHash == "" {
		s.logger.Warn("token requested but AUTH_API_KEY_HASH is not configured")
		return "", time.Time{}, apperrors.NewUnauthorized("api key auth not configured")
	}
	if err := auth.CompareAPIKey(s.cfg.APIKeyHash, apiKey); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid api key")
	}

	token, expiresAt, err := s.tokens.GenerateToken("orchestration-host", auth.RoleOperator)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, expiresAt, nil
}
