package services

import (
	"javajam_server/lib"
	"javajam_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// AuthService guards the manager-only surface (price updates). There is
// one shared manager credential, not a user table: the password is
// checked against the Argon2id hash from configuration and a short-lived
// session token is issued on success.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
	}
}

// Login verifies the manager password and returns a signed session
// token. Hash decode failures and wrong passwords both collapse to
// ErrInvalidCredentials so the response leaks nothing about the cause.
func (as *AuthService) Login(loginRequest *structs.LoginRequest) (string, error) {
	startTime := time.Now()

	valid, err := lib.VerifyPassword(loginRequest.Password, as.cfg.Auth.ManagerPasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify manager password hash", gecho.Field("error", err))
		return "", lib.ErrInvalidCredentials
	}
	if !valid {
		as.logger.Debug("Invalid manager password attempt")
		return "", lib.ErrInvalidCredentials
	}

	token, err := lib.GenerateManagerToken(as.cfg.Auth.TokenSecret, as.cfg.Auth.TokenExpiry)
	if err != nil {
		as.logger.Error("Failed to generate manager token", gecho.Field("error", err))
		return "", err
	}

	as.logger.Debug("Manager logged in",
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()))
	return token, nil
}

// ValidateToken parses a session token and confirms it belongs to the
// manager role and has not expired.
func (as *AuthService) ValidateToken(tokenStr string) (*structs.AuthClaims, error) {
	claims, err := lib.ParseToken(tokenStr, as.cfg.Auth.TokenSecret)
	if err != nil {
		return nil, lib.ErrInvalidToken
	}

	if claims.Role != lib.RoleManager {
		as.logger.Warn("Token with unexpected role", gecho.Field("role", claims.Role))
		return nil, lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		return nil, lib.ErrInvalidToken
	}

	return claims, nil
}

func (as *AuthService) TokenExpiry() time.Duration {
	return as.cfg.Auth.TokenExpiry
}
