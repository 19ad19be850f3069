package lib

import (
	"javajam_server/config"
	"net/http"
	"time"
)

// SetCookie sets a secure, HttpOnly cookie for session usage.
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	secure := false

	if config.IsProduction() {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		Path:     "/",
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	})
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser.
func ClearCookie(key string, w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	secure := false

	if config.IsProduction() {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	})
}

// SetCSRFCookie sets a CSRF token cookie that must be readable by JavaScript.
func SetCSRFCookie(val string, expiry time.Time, w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	secure := false

	if config.IsProduction() {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    val,
		Expires:  expiry,
		MaxAge:   int(time.Until(expiry).Seconds()),
		Path:     "/",
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: false, // must be readable by JS
	})
}
