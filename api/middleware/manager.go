package middleware

import (
	"javajam_server/services"
	"javajam_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	cacheService *services.CacheService
	authService  *services.AuthService
}

func NewMiddleware(
	cfg *structs.Config,
	logger *gecho.Logger,
	cacheService *services.CacheService,
	authService *services.AuthService,
) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		cacheService: cacheService,
		authService:  authService,
	}
}
