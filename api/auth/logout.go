package auth

import (
	"javajam_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleLogout clears the session cookie. Tokens are short-lived and not
// tracked server-side, so there is nothing to revoke.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if claims, err := lib.ExtractClaims(r, arm.cfg.Auth.TokenSecret); err == nil {
		arm.logger.Info("Manager logged out", gecho.Field("session", claims.Jti.String()))
	}

	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
