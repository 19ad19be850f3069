package auth

import (
	"javajam_server/lib"
	"javajam_server/structs"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleLogin verifies the manager password and sets the session cookie.
// There is a single manager account; the request carries only a password.
func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract login request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	if body.Password == "" {
		gecho.BadRequest(w, gecho.WithMessage("Password is required"), gecho.Send())
		return
	}

	token, err := arm.authService.Login(body)
	if err != nil {
		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	expiry := time.Now().Add(arm.authService.TokenExpiry())
	lib.SetCookie(lib.AccessCookieName, token, expiry, w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(map[string]any{
			"role":       lib.RoleManager,
			"expires_at": expiry,
		}),
		gecho.Send(),
	)
}
