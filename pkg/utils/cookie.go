package utils

import (
	"net/http"
	"time"
)

func sameSiteMode(cfg CookieConfig) http.SameSite {
	switch cfg.SameSite {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}

// SetSessionCookie attaches the session token as an HTTP-only cookie.
// Production deployments serve a cross-site frontend, so SameSite=None and
// Secure come from config there; local plain-HTTP development uses Lax.
func SetSessionCookie(w http.ResponseWriter, token string, jwtCfg JWTConfig, cookieCfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwtCfg.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   cookieCfg.Domain,
		MaxAge:   jwtCfg.ExpiryDays * 24 * 60 * 60,
		Expires:  time.Now().Add(time.Duration(jwtCfg.ExpiryDays) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   cookieCfg.Secure,
		SameSite: sameSiteMode(cookieCfg),
	})
}

// ClearSessionCookie expires the session cookie. The attributes must mirror
// the ones used at set time or browsers silently keep the old cookie.
func ClearSessionCookie(w http.ResponseWriter, jwtCfg JWTConfig, cookieCfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwtCfg.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   cookieCfg.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cookieCfg.Secure,
		SameSite: sameSiteMode(cookieCfg),
	})
}
